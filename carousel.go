package main

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// carouselController owns the testimonial slide index. Navigation wraps in
// both directions; the auto-advance timer is identified by a generation token
// so manual interaction can invalidate an outstanding tick instead of racing
// it.
type carouselController struct {
	count     int
	active    int
	gen       int
	interval  time.Duration
	swipe     int
	auto      bool // false under reduced motion
	hovered   bool
	dragging  bool
	dragFromX int
}

func newCarousel(count int, interval time.Duration, swipeThreshold int, auto bool) *carouselController {
	if count <= 0 {
		return nil
	}
	if swipeThreshold <= 0 {
		swipeThreshold = defaultSwipeThreshold
	}
	return &carouselController{
		count:    count,
		interval: interval,
		swipe:    swipeThreshold,
		auto:     auto,
	}
}

// GoToSlide normalizes any integer, including negatives, into the slide
// range. Invalid indices cannot exist.
func (c *carouselController) GoToSlide(i int) {
	c.active = wrapIndex(i, c.count)
}

func (c *carouselController) Active() int {
	return c.active
}

func (c *carouselController) Len() int {
	return c.count
}

// StatusLine is the selected-state announcement kept in sync with the
// indicators.
func (c *carouselController) StatusLine() string {
	return fmt.Sprintf("slide %d of %d", c.active+1, c.count)
}

// Interact performs a manual navigation to slide i and restarts the
// auto-advance clock from scratch, so the next automatic advance is a full
// interval away.
func (c *carouselController) Interact(i int) tea.Cmd {
	c.GoToSlide(i)
	c.gen++
	return c.schedule()
}

func (c *carouselController) Next() tea.Cmd { return c.Interact(c.active + 1) }
func (c *carouselController) Prev() tea.Cmd { return c.Interact(c.active - 1) }

// StartAuto schedules the first automatic advance. Returns nil when
// auto-advance is suspended (reduced motion).
func (c *carouselController) StartAuto() tea.Cmd {
	return c.schedule()
}

func (c *carouselController) schedule() tea.Cmd {
	if !c.auto || c.interval <= 0 {
		return nil
	}
	gen := c.gen
	return tea.Tick(c.interval, func(time.Time) tea.Msg {
		return autoAdvanceMsg{gen: gen}
	})
}

// HandleAuto processes a timer tick. Stale generations are dropped without
// rescheduling; a tick that lands while the pointer rests on the carousel
// skips the advance but keeps the clock running.
func (c *carouselController) HandleAuto(msg autoAdvanceMsg) tea.Cmd {
	if msg.gen != c.gen {
		return nil
	}
	if c.hovered {
		return c.schedule()
	}
	c.GoToSlide(c.active + 1)
	return c.schedule()
}

// SetHovered tracks whether the pointer is inside the carousel bounds, which
// pauses auto-advance at fire time.
func (c *carouselController) SetHovered(h bool) {
	c.hovered = h
}

func (c *carouselController) Hovered() bool {
	return c.hovered
}

// BeginDrag records the press column of a potential swipe.
func (c *carouselController) BeginDrag(x int) {
	c.dragging = true
	c.dragFromX = x
}

// EndDrag resolves a release: a horizontal delta at or beyond the threshold
// navigates (drag left shows the next slide), anything shorter is ignored.
// The returned Cmd is nil when no swipe happened.
func (c *carouselController) EndDrag(x int) tea.Cmd {
	if !c.dragging {
		return nil
	}
	c.dragging = false
	delta := x - c.dragFromX
	if delta <= -c.swipe {
		return c.Next()
	}
	if delta >= c.swipe {
		return c.Prev()
	}
	return nil
}

func (c *carouselController) Dragging() bool {
	return c.dragging
}
