package main

// revealState makes the one-shot nature of a reveal explicit instead of
// relying on the item disappearing from a watch list.
type revealState int

const (
	revealPending revealState = iota
	revealFired
)

// revealSpan is an observed block's current row extent, recomputed each
// reflow because form errors and window width shift offsets around.
type revealSpan struct {
	id     string
	top    int
	height int
}

// revealEngine flips page blocks to revealed the first time enough of them
// scrolls into view. Fired items never revert and are skipped by later scans.
type revealEngine struct {
	states map[string]revealState
	margin int
}

// newRevealEngine registers ids as pending. With immediate set (reduced
// motion) every id starts fired and Scan becomes a no-op.
func newRevealEngine(ids []string, immediate bool) *revealEngine {
	states := make(map[string]revealState, len(ids))
	for _, id := range ids {
		if immediate {
			states[id] = revealFired
		} else {
			states[id] = revealPending
		}
	}
	return &revealEngine{states: states, margin: revealMargin}
}

// Scan fires every pending span with at least revealMinSeen of its rows
// inside the viewport, which is shortened at the bottom by the margin so
// blocks reveal slightly before they are fully on screen.
func (r *revealEngine) Scan(spans []revealSpan, scroll, viewH int) {
	effective := viewH - r.margin
	if effective < 1 {
		effective = 1
	}
	for _, s := range spans {
		if r.states[s.id] != revealPending {
			continue
		}
		if visibleFraction(s.top, s.height, scroll, effective) >= revealMinSeen {
			r.states[s.id] = revealFired
		}
	}
}

func (r *revealEngine) Revealed(id string) bool {
	state, ok := r.states[id]
	return ok && state == revealFired
}

// Pending reports how many blocks are still waiting; once zero, callers can
// stop handing spans to Scan.
func (r *revealEngine) Pending() int {
	n := 0
	for _, s := range r.states {
		if s == revealPending {
			n++
		}
	}
	return n
}
