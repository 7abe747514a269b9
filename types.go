package main

import "time"

// frameMsg drives one step of every running animation (trail easing, smooth
// scroll, particles, counters). Not scheduled under reduced motion.
type frameMsg time.Time

// autoAdvanceMsg carries the carousel timer generation that scheduled it.
// Ticks from a superseded generation are dropped.
type autoAdvanceMsg struct {
	gen int
}

// counterStartMsg releases counter i after its stagger delay.
type counterStartMsg struct {
	index int
	at    time.Time
}

type submitDoneMsg struct {
	err error
}

type clipboardDoneMsg struct {
	err error
}

type exportDoneMsg struct {
	path string
	err  error
}

// region is a clickable/hoverable rectangle in page coordinates.
type region struct {
	kind   RegionKind
	index  int
	top    int
	left   int
	width  int
	height int
}

func (r region) contains(x, y int) bool {
	return x >= r.left && x < r.left+r.width && y >= r.top && y < r.top+r.height
}

// sectionSpan records where a section landed in the rendered page.
type sectionSpan struct {
	id     SectionID
	top    int
	height int
}

// layout is the product of one reflow pass: the rendered page plus the
// geometry every behavior unit hit-tests against.
type layout struct {
	lines    []string
	sections [sectionCount]sectionSpan
	regions  []region
}

func (l *layout) sectionAt(id SectionID) sectionSpan {
	return l.sections[id]
}

func (l *layout) regionAt(x, y int) *region {
	// Later regions are drawn on top; scan back to front.
	for i := len(l.regions) - 1; i >= 0; i-- {
		if l.regions[i].contains(x, y) {
			return &l.regions[i]
		}
	}
	return nil
}

// visibleFraction reports how much of the rows [top, top+height) fall inside
// the viewport [scroll, scroll+viewH).
func visibleFraction(top, height, scroll, viewH int) float64 {
	if height <= 0 || viewH <= 0 {
		return 0
	}
	lo := top
	if scroll > lo {
		lo = scroll
	}
	hi := top + height
	if scroll+viewH < hi {
		hi = scroll + viewH
	}
	if hi <= lo {
		return 0
	}
	return float64(hi-lo) / float64(height)
}
