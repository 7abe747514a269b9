package main

import (
	"math/rand"

	"github.com/muesli/termenv"
)

var particleGlyphs = []rune{'·', '∙', '•', '◦', '+'}

type particle struct {
	x, y   float64
	vx, vy float64
	glyph  rune
}

// particleField is the decorative drift layer behind the hero. It needs a
// terminal that can render its dim shades; below 256 colors the field stays
// disabled and the caller logs the degradation.
type particleField struct {
	w, h  int
	parts []particle
	rng   *rand.Rand
}

// particlesSupported probes the terminal profile the way the page probes for
// its animation library: missing capability degrades, never breaks.
func particlesSupported(profile termenv.Profile) bool {
	return profile == termenv.ANSI256 || profile == termenv.TrueColor
}

func newParticleField(seed int64) *particleField {
	return &particleField{rng: rand.New(rand.NewSource(seed))}
}

// Resize rebuilds the field for a new hero extent. Particle count scales
// with area up to a fixed budget.
func (p *particleField) Resize(w, h int) {
	p.w, p.h = w, h
	if w <= 0 || h <= 0 {
		p.parts = nil
		return
	}
	n := w * h / 60
	if n > particleBudget {
		n = particleBudget
	}
	if n < 4 {
		n = 4
	}
	p.parts = make([]particle, n)
	for i := range p.parts {
		p.parts[i] = p.spawn()
	}
}

func (p *particleField) spawn() particle {
	return particle{
		x:     p.rng.Float64() * float64(p.w),
		y:     p.rng.Float64() * float64(p.h),
		vx:    (p.rng.Float64() - 0.5) * 0.6,
		vy:    -0.05 - p.rng.Float64()*0.20, // upward drift
		glyph: particleGlyphs[p.rng.Intn(len(particleGlyphs))],
	}
}

// Step advances every particle one frame, wrapping at the edges.
func (p *particleField) Step() {
	if p.w <= 0 || p.h <= 0 {
		return
	}
	for i := range p.parts {
		pt := &p.parts[i]
		pt.x += pt.vx
		pt.y += pt.vy
		if pt.x < 0 {
			pt.x += float64(p.w)
		}
		if pt.x >= float64(p.w) {
			pt.x -= float64(p.w)
		}
		if pt.y < 0 {
			pt.y += float64(p.h)
		}
		if pt.y >= float64(p.h) {
			pt.y -= float64(p.h)
		}
	}
}

// Paint writes the particles into a rune grid of the field's extent, skipping
// cells already occupied by hero copy.
func (p *particleField) Paint(grid [][]rune) {
	for _, pt := range p.parts {
		y, x := int(pt.y), int(pt.x)
		if y < 0 || y >= len(grid) || x < 0 || x >= len(grid[y]) {
			continue
		}
		if grid[y][x] == ' ' {
			grid[y][x] = pt.glyph
		}
	}
}
