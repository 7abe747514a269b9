package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type styles struct {
	accent        lipgloss.Style
	dim           lipgloss.Style
	heading       lipgloss.Style
	body          lipgloss.Style
	navBar        lipgloss.Style
	navScrolled   lipgloss.Style
	navActive     lipgloss.Style
	progressOn    lipgloss.Style
	progressOff   lipgloss.Style
	cardTitle     lipgloss.Style
	statValue     lipgloss.Style
	quoteBox      lipgloss.Style
	quoteBoxHover lipgloss.Style
	fieldLabel    lipgloss.Style
	fieldError    lipgloss.Style
	successMsg    lipgloss.Style
	failureMsg    lipgloss.Style
	button        lipgloss.Style
	buttonBusy    lipgloss.Style
	cursorLead    lipgloss.Style
	cursorHover   lipgloss.Style
	cursorTrail   lipgloss.Style
	statusNote    lipgloss.Style
}

func newStyles() styles {
	accent := lipgloss.Color("205")
	subtle := lipgloss.Color("241")
	return styles{
		accent:        lipgloss.NewStyle().Foreground(accent).Bold(true),
		dim:           lipgloss.NewStyle().Foreground(subtle),
		heading:       lipgloss.NewStyle().Foreground(lipgloss.Color("231")).Bold(true),
		body:          lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		navBar:        lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		navScrolled:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Background(lipgloss.Color("236")),
		navActive:     lipgloss.NewStyle().Foreground(accent).Bold(true).Underline(true),
		progressOn:    lipgloss.NewStyle().Foreground(accent),
		progressOff:   lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		cardTitle:     lipgloss.NewStyle().Foreground(lipgloss.Color("231")).Bold(true),
		statValue:     lipgloss.NewStyle().Foreground(accent).Bold(true),
		quoteBox:      lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(subtle).Padding(0, 2),
		quoteBoxHover: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(accent).Padding(0, 2),
		fieldLabel:    lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		fieldError:    lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		successMsg:    lipgloss.NewStyle().Foreground(lipgloss.Color("114")).Bold(true),
		failureMsg:    lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		button:        lipgloss.NewStyle().Foreground(lipgloss.Color("231")).Background(accent).Bold(true).Padding(0, 2),
		buttonBusy:    lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Background(lipgloss.Color("238")).Padding(0, 2),
		cursorLead:    lipgloss.NewStyle().Foreground(accent).Bold(true),
		cursorHover:   lipgloss.NewStyle().Foreground(lipgloss.Color("231")).Background(accent).Bold(true),
		cursorTrail:   lipgloss.NewStyle().Foreground(subtle),
		statusNote:    lipgloss.NewStyle().Foreground(lipgloss.Color("114")),
	}
}

const (
	cursorLeadGlyph  = "✛"
	cursorHoverGlyph = "◎"
	cursorTrailGlyph = "·"
)

func (m *model) pageWidth() int {
	if m.width < minPageWidth {
		return minPageWidth
	}
	return m.width
}

func (m *model) bodyWidth() int {
	w := m.pageWidth() - 4
	if w > maxBodyWidth {
		w = maxBodyWidth
	}
	return w
}

func (m *model) viewH() int {
	h := m.height - chromeRows
	if h < 1 {
		h = 1
	}
	return h
}

func centerText(s string, w int) string {
	n := len([]rune(s))
	if n >= w {
		return string([]rune(s)[:w])
	}
	left := (w - n) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", w-n-left)
}

// wrapText wraps plain text to width using lipgloss and returns padded lines.
func wrapText(s string, w int) []string {
	if w < 1 {
		w = 1
	}
	return strings.Split(lipgloss.NewStyle().Width(w).Render(s), "\n")
}

// reflow renders the whole page at the current width and records the
// geometry every behavior unit works from. Called on resize, on every
// animation frame, and after discrete state changes under reduced motion.
func (m *model) reflow() {
	w := m.pageWidth()
	bw := m.bodyWidth()
	margin := (w - bw) / 2

	lay := layout{}
	var spans []revealSpan

	add := func(id SectionID, lines []string, regions []region, rs []revealSpan) {
		top := len(lay.lines)
		lay.sections[id] = sectionSpan{id: id, top: top, height: len(lines)}
		for _, r := range regions {
			r.top += top
			lay.regions = append(lay.regions, r)
		}
		for _, s := range rs {
			s.top += top
			spans = append(spans, s)
		}
		lay.lines = append(lay.lines, lines...)
	}

	add(SectionHero, m.renderHero(w), nil, nil)
	lines, rs := m.renderServices(bw, margin)
	add(SectionServices, lines, nil, rs)
	lines, rs = m.renderStats(bw, margin)
	add(SectionStats, lines, nil, rs)
	lines, regions, rs := m.renderTestimonials(bw, margin)
	add(SectionTestimonials, lines, regions, rs)
	lines, regions, rs = m.renderContact(bw, margin)
	add(SectionContact, lines, regions, rs)

	m.lay = lay
	m.revealSpans = spans

	m.maxScroll = len(lay.lines) - m.viewH()
	if m.maxScroll < 0 {
		m.maxScroll = 0
	}
	m.scrollTo = clampf(m.scrollTo, 0, float64(m.maxScroll))
	m.scroll = clampf(m.scroll, 0, float64(m.maxScroll))

	// Nav click targets live in screen coordinates and depend only on the
	// labels, so they are rebuilt here rather than at render time.
	m.navRegions = m.navRegions[:0]
	col := 1 + len([]rune(m.content.Brand)) + 3
	for i, item := range m.content.NavItems {
		m.navRegions = append(m.navRegions, region{
			kind: RegionNavItem, index: i,
			top: 1, left: col, width: len([]rune(item)), height: 1,
		})
		col += len([]rune(item)) + 2
	}
}

func (m *model) renderHero(w int) []string {
	h := m.viewH()
	if h < 10 {
		h = 10
	}

	grid := make([][]rune, h)
	for i := range grid {
		row := make([]rune, w)
		for j := range row {
			row[j] = ' '
		}
		grid[i] = row
	}
	if m.particlesOn {
		m.particles.Paint(grid)
	}

	mid := h / 2
	text := map[int]string{
		mid - 4: m.content.Brand + " — " + m.content.Tagline,
		mid - 2: m.content.Headline,
		mid:     m.content.Subheadline,
		mid + 2: "[ " + m.content.CTAText + " ▸ ]",
		h - 2:   "↓ scroll",
	}

	lines := make([]string, h)
	for i := range grid {
		if s, ok := text[i]; ok {
			switch i {
			case mid - 2:
				lines[i] = m.accentLine(s, w)
			case mid - 4:
				lines[i] = m.styles.heading.Render(centerText(s, w))
			case mid + 2:
				lines[i] = m.styles.accent.Render(centerText(s, w))
			default:
				lines[i] = m.styles.dim.Render(centerText(s, w))
			}
			continue
		}
		lines[i] = m.styles.dim.Render(string(grid[i]))
	}
	return lines
}

func (m *model) accentLine(s string, w int) string {
	return m.styles.accent.Render(centerText(strings.ToUpper(s), w))
}

func heading(title string, bw, margin int, st styles) []string {
	pad := strings.Repeat(" ", margin)
	return []string{
		"",
		pad + st.heading.Render(title),
		pad + st.accent.Render(strings.Repeat("─", len([]rune(title))+4)),
		"",
	}
}

// dimPlaceholder fills the rows of a not-yet-revealed block.
func dimPlaceholder(n int) []string {
	lines := make([]string, n)
	for i := range lines {
		lines[i] = ""
	}
	return lines
}

func (m *model) renderServices(bw, margin int) ([]string, []revealSpan) {
	pad := strings.Repeat(" ", margin)
	var lines []string
	var spans []revealSpan

	head := heading("Services", bw, margin, m.styles)
	spans = append(spans, revealSpan{id: "services.head", top: len(lines), height: len(head)})
	if m.reveals.Revealed("services.head") {
		lines = append(lines, head...)
	} else {
		lines = append(lines, dimPlaceholder(len(head))...)
	}

	for i, svc := range m.content.Services {
		var card []string
		card = append(card, pad+m.styles.cardTitle.Render(svc.Icon+" "+svc.Title))
		for _, dl := range wrapText(svc.Description, bw-4) {
			card = append(card, pad+"  "+m.styles.body.Render(dl))
		}
		card = append(card, "")

		id := fmt.Sprintf("services.card.%d", i)
		spans = append(spans, revealSpan{id: id, top: len(lines), height: len(card)})
		if m.reveals.Revealed(id) {
			lines = append(lines, card...)
		} else {
			lines = append(lines, dimPlaceholder(len(card))...)
		}
	}
	lines = append(lines, "")
	return lines, spans
}

func (m *model) renderStats(bw, margin int) ([]string, []revealSpan) {
	pad := strings.Repeat(" ", margin)
	var lines []string
	var spans []revealSpan

	head := heading("Results", bw, margin, m.styles)
	spans = append(spans, revealSpan{id: "stats.head", top: len(lines), height: len(head)})
	if m.reveals.Revealed("stats.head") {
		lines = append(lines, head...)
	} else {
		lines = append(lines, dimPlaceholder(len(head))...)
	}

	n := m.counters.Len()
	if n > 0 {
		col := bw / n
		if col < 8 {
			col = 8
		}
		var values, labels strings.Builder
		for i := 0; i < n; i++ {
			values.WriteString(m.styles.statValue.Render(centerText(m.counters.Value(i), col)))
			labels.WriteString(m.styles.dim.Render(centerText(m.counters.Label(i), col)))
		}
		lines = append(lines, pad+values.String(), pad+labels.String())
	}
	lines = append(lines, "", "")
	return lines, spans
}

func (m *model) renderTestimonials(bw, margin int) ([]string, []region, []revealSpan) {
	pad := strings.Repeat(" ", margin)
	var lines []string
	var regions []region
	var spans []revealSpan

	head := heading("Clients", bw, margin, m.styles)
	spans = append(spans, revealSpan{id: "testimonials.head", top: len(lines), height: len(head)})
	if m.reveals.Revealed("testimonials.head") {
		lines = append(lines, head...)
	} else {
		lines = append(lines, dimPlaceholder(len(head))...)
	}

	if m.carousel == nil {
		return lines, nil, spans
	}

	t := m.content.Testimonials[m.carousel.Active()]
	inner := bw - 8
	if inner < 20 {
		inner = 20
	}
	quote := wrapText("“"+t.Quote+"”", inner)
	for len(quote) < 4 { // fixed card height keeps offsets stable across slides
		quote = append(quote, strings.Repeat(" ", inner))
	}
	body := strings.Join(quote, "\n") + "\n\n" +
		m.styles.cardTitle.Render(t.Author) + m.styles.dim.Render("  "+t.Role+", "+t.Company)

	box := m.styles.quoteBox
	if m.carousel.Hovered() {
		box = m.styles.quoteBoxHover
	}
	card := strings.Split(box.Render(body), "\n")
	cardTop := len(lines)
	for _, cl := range card {
		lines = append(lines, pad+cl)
	}
	regions = append(regions, region{
		kind: RegionCarousel, top: cardTop, left: margin,
		width: visibleWidth(card[0]), height: len(card),
	})

	// Controls row: ‹ arrows ›, indicator dots, selected-state status.
	var dots strings.Builder
	for i := 0; i < m.carousel.Len(); i++ {
		if i == m.carousel.Active() {
			dots.WriteString(m.styles.accent.Render("● "))
		} else {
			dots.WriteString(m.styles.dim.Render("○ "))
		}
	}
	controlTop := len(lines)
	prevCol := margin + 2
	dotsCol := prevCol + 4
	nextCol := dotsCol + m.carousel.Len()*2 + 2
	row := pad + "  " + m.styles.accent.Render("‹") + "   " + dots.String() + "  " +
		m.styles.accent.Render("›") + "   " + m.styles.dim.Render(m.carousel.StatusLine())
	lines = append(lines, "", row)

	regions = append(regions,
		region{kind: RegionCarouselPrev, top: controlTop + 1, left: prevCol, width: 1, height: 1},
		region{kind: RegionCarouselNext, top: controlTop + 1, left: nextCol, width: 1, height: 1},
	)
	for i := 0; i < m.carousel.Len(); i++ {
		regions = append(regions, region{
			kind: RegionCarouselDot, index: i,
			top: controlTop + 1, left: dotsCol + i*2, width: 1, height: 1,
		})
	}

	lines = append(lines, "")
	return lines, regions, spans
}

func (m *model) renderContact(bw, margin int) ([]string, []region, []revealSpan) {
	pad := strings.Repeat(" ", margin)
	var lines []string
	var regions []region
	var spans []revealSpan

	head := heading("Contact", bw, margin, m.styles)
	spans = append(spans, revealSpan{id: "contact.head", top: len(lines), height: len(head)})
	if m.reveals.Revealed("contact.head") {
		lines = append(lines, head...)
	} else {
		lines = append(lines, dimPlaceholder(len(head))...)
	}

	lines = append(lines, pad+m.styles.body.Render(m.content.ContactBlurb))
	lines = append(lines, pad+m.styles.dim.Render(m.content.ContactEmail+"  (press y to copy)"))
	lines = append(lines, "")

	field := func(idx fieldIndex, label, view string) {
		marker := "  "
		if m.mode == ModeForm && m.form.Focused() == idx {
			marker = m.styles.accent.Render("» ")
		}
		top := len(lines)
		lines = append(lines, pad+marker+m.styles.fieldLabel.Render(label))
		for _, vl := range strings.Split(view, "\n") {
			lines = append(lines, pad+"  "+vl)
		}
		h := len(lines) - top
		if msg := m.form.Error(idx); msg != "" {
			lines = append(lines, pad+"  "+m.styles.fieldError.Render("✗ "+msg))
			h++
		}
		regions = append(regions, region{
			kind: RegionFormField, index: int(idx),
			top: top, left: margin, width: bw, height: h,
		})
		lines = append(lines, "")
	}

	field(fieldName, "Name", m.form.name.View())
	field(fieldEmail, "Email", m.form.email.View())
	field(fieldCompany, "Company", m.form.company.View())
	field(fieldService, "Service", m.styles.body.Render("◂ "+m.form.ServiceValue()+" ▸"))
	field(fieldMessage, "Message", m.form.message.View())

	switch m.form.Banner() {
	case bannerSuccess:
		lines = append(lines, pad+m.styles.successMsg.Render("✓ Message sent. We'll be in touch within one business day."))
		lines = append(lines, "")
	case bannerFailure:
		lines = append(lines, pad+m.styles.failureMsg.Render("✗ Something went wrong. Email us directly at "+m.content.ContactEmail+"."))
		lines = append(lines, "")
	}

	buttonTop := len(lines)
	var button string
	if m.form.Submitting() {
		button = m.styles.buttonBusy.Render(m.form.spin.View() + " Sending…")
	} else {
		button = m.styles.button.Render("Send message")
	}
	lines = append(lines, pad+button)
	regions = append(regions, region{
		kind: RegionFormSubmit,
		top:  buttonTop, left: margin, width: visibleWidth(button), height: 1,
	})

	lines = append(lines, "", pad+m.styles.dim.Render("© "+m.content.Brand+" — made with intent"), "")
	return lines, regions, spans
}

// renderProgress draws the scroll progress bar across the top row.
func (m *model) renderProgress() string {
	w := m.pageWidth()
	frac := 0.0
	if m.maxScroll > 0 {
		frac = clampf(m.scroll/float64(m.maxScroll), 0, 1)
	}
	filled := int(frac * float64(w))
	return m.styles.progressOn.Render(strings.Repeat("━", filled)) +
		m.styles.progressOff.Render(strings.Repeat("─", w-filled))
}

// renderNavbar draws the brand, section labels (active one highlighted by
// scroll position) and any transient status note.
func (m model) renderNavbar() string {
	w := m.pageWidth()
	base := m.styles.navBar
	if int(m.scroll) > navScrolledAt {
		base = m.styles.navScrolled
	}

	active := m.activeSection()
	var b strings.Builder
	b.WriteString(" ")
	b.WriteString(m.styles.accent.Render(m.content.Brand))
	b.WriteString("   ")
	for i, item := range m.content.NavItems {
		if SectionID(i) == active {
			b.WriteString(m.styles.navActive.Render(item))
		} else {
			b.WriteString(base.Render(item))
		}
		b.WriteString("  ")
	}

	line := b.String()
	if m.status != "" {
		note := m.styles.statusNote.Render(m.status)
		gap := w - visibleWidth(line) - visibleWidth(note) - 1
		if gap > 0 {
			line += strings.Repeat(" ", gap) + note
		}
	}
	if pad := w - visibleWidth(line); pad > 0 {
		line += strings.Repeat(" ", pad)
	}
	return line
}

// activeSection is the section whose span contains the viewport's upper
// third, which matches how the page highlights nav links while scrolling.
func (m *model) activeSection() SectionID {
	probe := int(m.scroll) + m.viewH()/3
	active := SectionHero
	for id := SectionHero; id < sectionCount; id++ {
		s := m.lay.sections[id]
		if s.height == 0 {
			continue
		}
		if probe >= s.top {
			active = id
		}
	}
	return active
}

func (m model) View() string {
	if m.width == 0 || len(m.lay.lines) == 0 {
		return "loading…"
	}

	viewH := m.viewH()
	top := int(m.scroll)
	if top > m.maxScroll {
		top = m.maxScroll
	}
	if top < 0 {
		top = 0
	}

	rows := make([]string, 0, m.height)
	rows = append(rows, m.renderProgress(), m.renderNavbar())
	for i := 0; i < viewH; i++ {
		if top+i < len(m.lay.lines) {
			rows = append(rows, m.lay.lines[top+i])
		} else {
			rows = append(rows, "")
		}
	}

	// Pointer follower overlay: trail first so the lead wins a shared cell.
	if m.cursor != nil && m.cursor.Visible() {
		tx, ty := m.cursor.TrailCell()
		if !m.cursor.Settled() && ty >= 0 && ty < len(rows) {
			rows[ty] = spliceCell(rows[ty], tx, m.styles.cursorTrail.Render(cursorTrailGlyph))
		}
		lx, ly := m.cursor.LeadCell()
		if ly >= 0 && ly < len(rows) {
			glyph := m.styles.cursorLead.Render(cursorLeadGlyph)
			if m.cursor.Hovering() {
				glyph = m.styles.cursorHover.Render(cursorHoverGlyph)
			}
			rows[ly] = spliceCell(rows[ly], lx, glyph)
		}
	}

	return strings.Join(rows, "\n")
}
