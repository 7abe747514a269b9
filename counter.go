package main

import (
	"math"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// counter is one animated stat. display only ever moves up, landing exactly
// on target when its run completes.
type counter struct {
	target  int
	suffix  string
	label   string
	started bool
	startAt time.Time
	display int
	done    bool
}

// counterGroup animates the stats row. The whole group arms once, the first
// time its section is half visible, and each counter starts after its own
// stagger delay for the cascade effect.
type counterGroup struct {
	counters []counter
	fired    bool // one-shot: pending until the section trigger, then fired forever
	duration time.Duration
	stagger  time.Duration
	printer  *message.Printer
}

func newCounterGroup(stats []Stat, duration, stagger time.Duration, locale string, immediate bool) *counterGroup {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}
	g := &counterGroup{
		duration: duration,
		stagger:  stagger,
		printer:  message.NewPrinter(tag),
	}
	for _, s := range stats {
		c := counter{target: s.Target, suffix: s.Suffix, label: s.Label}
		if immediate {
			// Reduced motion: no animation, straight to the final value.
			c.display = s.Target
			c.started = true
			c.done = true
		}
		g.counters = append(g.counters, c)
	}
	if immediate {
		g.fired = true
	}
	return g
}

// Armed reports whether the group still waits for its visibility trigger.
func (g *counterGroup) Armed() bool {
	return !g.fired
}

// Trigger fires the one-shot and schedules each counter's start after its
// stagger delay. Returns nil if already fired.
func (g *counterGroup) Trigger(now time.Time) []tea.Cmd {
	if g.fired {
		return nil
	}
	g.fired = true
	cmds := make([]tea.Cmd, 0, len(g.counters))
	for i := range g.counters {
		if i == 0 {
			idx := i
			cmds = append(cmds, func() tea.Msg { return counterStartMsg{index: idx, at: now} })
			continue
		}
		delay := time.Duration(i) * g.stagger
		idx := i
		cmds = append(cmds, tea.Tick(delay, func(t time.Time) tea.Msg {
			return counterStartMsg{index: idx, at: t}
		}))
	}
	return cmds
}

// Start begins counter i's run at the given time.
func (g *counterGroup) Start(i int, at time.Time) {
	if i < 0 || i >= len(g.counters) {
		return
	}
	c := &g.counters[i]
	if c.started {
		return
	}
	c.started = true
	c.startAt = at
}

// Step advances every running counter to its eased value at now.
func (g *counterGroup) Step(now time.Time) {
	for i := range g.counters {
		c := &g.counters[i]
		if !c.started || c.done {
			continue
		}
		t := float64(now.Sub(c.startAt)) / float64(g.duration)
		if t >= 1 {
			c.display = c.target
			c.done = true
			continue
		}
		v := int(math.Round(float64(c.target) * easeOutCubic(t)))
		if v > c.display { // monotonic non-decreasing by construction
			c.display = v
		}
	}
}

// Running reports whether any counter still animates.
func (g *counterGroup) Running() bool {
	for i := range g.counters {
		if g.counters[i].started && !g.counters[i].done {
			return true
		}
	}
	return false
}

// Value renders counter i with locale thousands grouping plus its suffix.
func (g *counterGroup) Value(i int) string {
	if i < 0 || i >= len(g.counters) {
		return ""
	}
	c := g.counters[i]
	return g.printer.Sprintf("%d", c.display) + c.suffix
}

func (g *counterGroup) Label(i int) string {
	if i < 0 || i >= len(g.counters) {
		return ""
	}
	return g.counters[i].label
}

func (g *counterGroup) Len() int {
	return len(g.counters)
}
