package main

import "math"

// cursorFollower mirrors the page's dual-element cursor: a lead marker pinned
// to the last pointer cell and a trail marker that eases after it. All math is
// float so the trail keeps converging between cell boundaries.
type cursorFollower struct {
	leadX, leadY   int
	trailX, trailY float64
	factor         float64
	snap           bool // reduced motion: trail follows instantly
	seen           bool // no marker until the first motion event
	focused        bool
	hover          bool
}

func newCursorFollower(factor float64, snap bool) *cursorFollower {
	if factor <= 0 || factor > 1 {
		factor = defaultTrailFactor
	}
	return &cursorFollower{factor: factor, snap: snap, focused: true}
}

// Track records a pointer position in screen coordinates. hover flags whether
// the pointer is over an interactive region, which expands the lead marker.
func (c *cursorFollower) Track(x, y int, hover bool) {
	c.leadX, c.leadY = x, y
	c.hover = hover
	if !c.seen {
		// First sighting: start the trail on the pointer, not at origin.
		c.trailX, c.trailY = float64(x), float64(y)
		c.seen = true
	}
	if c.snap {
		c.trailX, c.trailY = float64(x), float64(y)
	}
}

// Step advances the trail one frame toward the lead marker.
func (c *cursorFollower) Step() {
	if !c.seen || c.snap {
		return
	}
	c.trailX = lerp(c.trailX, float64(c.leadX), c.factor)
	c.trailY = lerp(c.trailY, float64(c.leadY), c.factor)
}

// Blur hides the markers while the terminal is unfocused; Focus restores them.
func (c *cursorFollower) Blur()  { c.focused = false }
func (c *cursorFollower) Focus() { c.focused = true }

func (c *cursorFollower) Visible() bool {
	return c.seen && c.focused
}

// Settled reports whether the trail is visually indistinguishable from the
// lead marker. The controller keeps Step cheap either way; this exists for
// rendering, which hides the trail under the lead once they coincide.
func (c *cursorFollower) Settled() bool {
	dx := c.trailX - float64(c.leadX)
	dy := c.trailY - float64(c.leadY)
	return math.Abs(dx) < 0.5 && math.Abs(dy) < 0.5
}

// TrailCell returns the trail marker's screen cell.
func (c *cursorFollower) TrailCell() (int, int) {
	return int(math.Round(c.trailX)), int(math.Round(c.trailY))
}

// LeadCell returns the lead marker's screen cell.
func (c *cursorFollower) LeadCell() (int, int) {
	return c.leadX, c.leadY
}

func (c *cursorFollower) Hovering() bool {
	return c.hover
}
