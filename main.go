package main

import (
	"fmt"
	"log"
	"log/slog"
	"math"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/termenv"
)

func main() {
	cfg := loadConfig()
	logger, closeLog := setupLogger(cfg.GetLogPath())
	defer closeLog()

	opts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithReportFocus()}
	if cfg.Mouse {
		opts = append(opts, tea.WithMouseAllMotion())
	}

	p := tea.NewProgram(initialModel(cfg, logger), opts...)
	if _, err := p.Run(); err != nil {
		log.Fatal(err)
	}
}

type model struct {
	cfg     *Config
	log     *slog.Logger
	content *PageContent
	styles  styles

	width  int
	height int
	mode   Mode

	scroll    float64
	scrollTo  float64
	maxScroll int

	lay         layout
	revealSpans []revealSpan
	navRegions  []region

	cursor      *cursorFollower
	reveals     *revealEngine
	counters    *counterGroup
	carousel    *carouselController
	form        *contactForm
	particles   *particleField
	particlesOn bool

	status string
}

func initialModel(cfg *Config, logger *slog.Logger) model {
	content := defaultContent()

	revealIDs := []string{"services.head", "stats.head", "testimonials.head", "contact.head"}
	for i := range content.Services {
		revealIDs = append(revealIDs, fmt.Sprintf("services.card.%d", i))
	}

	particlesOn := !cfg.ReducedMotion && particlesSupported(termenv.ColorProfile())
	if !particlesOn && !cfg.ReducedMotion {
		logger.Warn("terminal below 256 colors, skipping particle effects")
	}

	carousel := newCarousel(len(content.Testimonials), cfg.AutoAdvance, cfg.SwipeThreshold, !cfg.ReducedMotion)
	if carousel == nil {
		logger.Debug("no testimonials configured, carousel disabled")
	}

	var cursor *cursorFollower
	if cfg.Mouse {
		cursor = newCursorFollower(cfg.TrailFactor, cfg.ReducedMotion)
	} else {
		logger.Debug("mouse disabled, pointer follower off")
	}

	m := model{
		cfg:         cfg,
		log:         logger,
		content:     content,
		styles:      newStyles(),
		mode:        ModeBrowse,
		cursor:      cursor,
		reveals:     newRevealEngine(revealIDs, cfg.ReducedMotion),
		counters:    newCounterGroup(content.Stats, cfg.CounterDuration, cfg.CounterStagger, cfg.Locale, cfg.ReducedMotion),
		carousel:    carousel,
		form:        newContactForm(content.ServiceTypes, newSubmitter(cfg)),
		particles:   newParticleField(time.Now().UnixNano()),
		particlesOn: particlesOn,
	}
	return m
}

func frameTick() tea.Cmd {
	return tea.Tick(time.Second/frameRate, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

func (m model) Init() tea.Cmd {
	var cmds []tea.Cmd
	if !m.cfg.ReducedMotion {
		cmds = append(cmds, frameTick())
	}
	if m.carousel != nil {
		if cmd := m.carousel.StartAuto(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return tea.Batch(cmds...)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
		}
		if msg.Height > 0 {
			m.height = msg.Height
		}
		m.form.SetWidth(m.bodyWidth() - 4)
		m.particles.Resize(m.pageWidth(), m.viewH())
		m.reflow()
		cmds = append(cmds, m.fireTriggers()...)

	case frameMsg:
		now := time.Time(msg)
		if m.cursor != nil {
			m.cursor.Step()
		}
		if m.particlesOn {
			m.particles.Step()
		}
		m.counters.Step(now)
		m.stepScroll()
		m.reflow()
		cmds = append(cmds, m.fireTriggers()...)
		cmds = append(cmds, frameTick())

	case tea.FocusMsg:
		if m.cursor != nil {
			m.cursor.Focus()
		}

	case tea.BlurMsg:
		if m.cursor != nil {
			m.cursor.Blur()
		}

	case tea.MouseMsg:
		cmds = append(cmds, m.handleMouse(msg)...)

	case tea.KeyMsg:
		var quit bool
		cmds, quit = m.handleKey(msg, cmds)
		if quit {
			return m, tea.Quit
		}

	case autoAdvanceMsg:
		if m.carousel != nil {
			if cmd := m.carousel.HandleAuto(msg); cmd != nil {
				cmds = append(cmds, cmd)
			}
		}

	case counterStartMsg:
		m.counters.Start(msg.index, msg.at)

	case spinner.TickMsg:
		if cmd := m.form.HandleSpinner(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}

	case submitDoneMsg:
		m.form.HandleResult(msg.err)
		if msg.err != nil {
			m.log.Warn("form submission failed", "err", msg.err)
		} else {
			m.log.Info("form submission delivered")
		}

	case clipboardDoneMsg:
		if msg.err != nil {
			m.log.Warn("clipboard write failed", "err", msg.err)
			m.status = "clipboard unavailable"
		} else {
			m.status = "email copied"
		}

	case exportDoneMsg:
		if msg.err != nil {
			m.log.Warn("snapshot export failed", "err", msg.err)
			m.status = "export failed"
		} else {
			m.status = "saved " + msg.path
		}
	}

	if m.cfg.ReducedMotion {
		// No frame loop: settle scroll and geometry after every event.
		m.scroll = m.scrollTo
		m.reflow()
		cmds = append(cmds, m.fireTriggers()...)
	}

	return m, tea.Batch(cmds...)
}

// stepScroll eases the viewport toward its target one frame at a time,
// snapping once the remainder is under half a row.
func (m *model) stepScroll() {
	d := m.scrollTo - m.scroll
	if math.Abs(d) < 0.5 {
		m.scroll = m.scrollTo
		return
	}
	m.scroll = lerp(m.scroll, m.scrollTo, scrollEase)
}

// fireTriggers runs the visibility-driven one-shots against the current
// geometry: pending reveals and the stats counter group.
func (m *model) fireTriggers() []tea.Cmd {
	scroll := int(m.scroll)
	viewH := m.viewH()

	if m.reveals.Pending() > 0 {
		m.reveals.Scan(m.revealSpans, scroll, viewH)
	}

	if m.counters.Armed() {
		s := m.lay.sectionAt(SectionStats)
		if visibleFraction(s.top, s.height, scroll, viewH) >= counterArmAt {
			return m.counters.Trigger(time.Now())
		}
	}
	return nil
}

func (m *model) scrollBy(rows int) {
	m.scrollTo = clampf(m.scrollTo+float64(rows), 0, float64(m.maxScroll))
}

func (m *model) goToSection(id SectionID) {
	if id < 0 || id >= sectionCount {
		return
	}
	m.scrollTo = clampf(float64(m.lay.sectionAt(id).top), 0, float64(m.maxScroll))
}

// carouselVisible gates keyboard slide navigation so arrow keys elsewhere on
// the page are left alone.
func (m *model) carouselVisible() bool {
	if m.carousel == nil {
		return false
	}
	s := m.lay.sectionAt(SectionTestimonials)
	return visibleFraction(s.top, s.height, int(m.scroll), m.viewH()) > 0
}

func (m *model) contactVisible() bool {
	s := m.lay.sectionAt(SectionContact)
	return visibleFraction(s.top, s.height, int(m.scroll), m.viewH()) > 0
}

// pageCoords converts a mouse position to page coordinates; ok is false over
// the chrome rows.
func (m *model) pageCoords(x, y int) (int, int, bool) {
	if y < chromeRows {
		return x, y, false
	}
	return x, y - chromeRows + int(m.scroll), true
}

func (m *model) handleMouse(msg tea.MouseMsg) []tea.Cmd {
	var cmds []tea.Cmd

	// Wheel scrolling works anywhere on the page.
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.scrollBy(-3)
		return cmds
	case tea.MouseButtonWheelDown:
		m.scrollBy(3)
		return cmds
	}

	px, py, onPage := m.pageCoords(msg.X, msg.Y)

	var hit *region
	if onPage {
		hit = m.lay.regionAt(px, py)
	} else {
		for i := range m.navRegions {
			if m.navRegions[i].contains(msg.X, msg.Y) {
				hit = &m.navRegions[i]
				break
			}
		}
	}

	if m.cursor != nil {
		m.cursor.Track(msg.X, msg.Y, hit != nil)
	}
	if m.carousel != nil {
		hovering := hit != nil && hit.kind == RegionCarousel
		m.carousel.SetHovered(hovering)
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || hit == nil {
			break
		}
		switch hit.kind {
		case RegionNavItem:
			m.goToSection(SectionID(hit.index))
		case RegionCarouselPrev:
			cmds = appendCmd(cmds, m.carousel.Prev())
		case RegionCarouselNext:
			cmds = appendCmd(cmds, m.carousel.Next())
		case RegionCarouselDot:
			cmds = appendCmd(cmds, m.carousel.Interact(hit.index))
		case RegionCarousel:
			m.carousel.BeginDrag(msg.X)
		case RegionFormField:
			m.mode = ModeForm
			cmds = appendCmd(cmds, m.form.Focus(fieldIndex(hit.index)))
		case RegionFormSubmit:
			m.mode = ModeForm
			cmds = appendCmd(cmds, m.form.Submit())
		}
	case tea.MouseActionRelease:
		if m.carousel != nil && m.carousel.Dragging() {
			cmds = appendCmd(cmds, m.carousel.EndDrag(msg.X))
		}
	}

	return cmds
}

func (m *model) handleKey(msg tea.KeyMsg, cmds []tea.Cmd) ([]tea.Cmd, bool) {
	key := msg.String()
	m.status = ""

	if key == "ctrl+c" {
		return cmds, true
	}

	if m.mode == ModeForm {
		switch key {
		case "esc":
			m.mode = ModeBrowse
			m.form.Blur()
		case "tab":
			cmds = appendCmd(cmds, m.form.NextField())
		case "shift+tab":
			cmds = appendCmd(cmds, m.form.PrevField())
		case "ctrl+s":
			cmds = appendCmd(cmds, m.form.Submit())
		case "enter":
			switch m.form.Focused() {
			case fieldSubmit:
				cmds = appendCmd(cmds, m.form.Submit())
			case fieldMessage:
				cmds = appendCmd(cmds, m.form.HandleKey(msg))
			default:
				cmds = appendCmd(cmds, m.form.NextField())
			}
		default:
			cmds = appendCmd(cmds, m.form.HandleKey(msg))
		}
		return cmds, false
	}

	switch key {
	case "q":
		return cmds, true
	case "j", "down":
		m.scrollBy(scrollStep)
	case "k", "up":
		m.scrollBy(-scrollStep)
	case "J", "shift+down":
		m.scrollBy(scrollStep * 2)
	case "K", "shift+up":
		m.scrollBy(-scrollStep * 2)
	case "pgdown", "f":
		m.scrollBy(m.viewH())
	case "pgup", "b":
		m.scrollBy(-m.viewH())
	case "g", "home":
		m.scrollTo = 0
	case "G", "end":
		m.scrollTo = float64(m.maxScroll)
	case "1", "2", "3", "4", "5":
		m.goToSection(SectionID(int(key[0] - '1')))
	case "h", "left":
		if m.carouselVisible() {
			cmds = appendCmd(cmds, m.carousel.Prev())
		}
	case "l", "right":
		if m.carouselVisible() {
			cmds = appendCmd(cmds, m.carousel.Next())
		}
	case "c":
		m.goToSection(SectionContact)
		m.mode = ModeForm
		cmds = appendCmd(cmds, m.form.Focus(fieldName))
	case "tab":
		if m.contactVisible() {
			m.mode = ModeForm
			cmds = appendCmd(cmds, m.form.Focus(fieldName))
		}
	case "y":
		cmds = appendCmd(cmds, copyTextCmd(m.content.ContactEmail))
	case "S":
		path := m.cfg.GetSavePath("vitrine-snapshot.png")
		cmds = appendCmd(cmds, exportSnapshotCmd(m.lay.lines, path))
	}
	return cmds, false
}

func appendCmd(cmds []tea.Cmd, cmd tea.Cmd) []tea.Cmd {
	if cmd != nil {
		cmds = append(cmds, cmd)
	}
	return cmds
}
