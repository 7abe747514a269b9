package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReveal_FiresOnceAndNeverReverts(t *testing.T) {
	t.Parallel()
	r := newRevealEngine([]string{"a", "b"}, false)
	spans := []revealSpan{
		{id: "a", top: 0, height: 4},
		{id: "b", top: 40, height: 4},
	}

	r.Scan(spans, 0, 20)
	require.True(t, r.Revealed("a"))
	require.False(t, r.Revealed("b"))
	require.Equal(t, 1, r.Pending())

	// Scrolling past b fires it; scrolling back must not unfire anything.
	r.Scan(spans, 30, 20)
	require.True(t, r.Revealed("b"))

	r.Scan(spans, 100, 20)
	require.True(t, r.Revealed("a"))
	require.True(t, r.Revealed("b"))
	require.Equal(t, 0, r.Pending())
}

func TestReveal_ThresholdTenPercent(t *testing.T) {
	t.Parallel()
	r := newRevealEngine([]string{"x"}, false)
	// 20 rows tall, viewport of 22 rows minus the 2-row margin leaves rows
	// [0,20); with the block at top=18 only 2 rows (10%) are inside.
	spans := []revealSpan{{id: "x", top: 18, height: 20}}
	r.Scan(spans, 0, 22)
	require.True(t, r.Revealed("x"))

	r2 := newRevealEngine([]string{"x"}, false)
	spans[0].top = 19 // 1 row visible: 5%, under the threshold
	r2.Scan(spans, 0, 22)
	require.False(t, r2.Revealed("x"))
}

func TestReveal_BottomMarginTriggersEarlyCutoff(t *testing.T) {
	t.Parallel()
	r := newRevealEngine([]string{"x"}, false)
	// The block starts exactly at the margin-shaved bottom edge, so nothing
	// of it counts as seen yet.
	spans := []revealSpan{{id: "x", top: 18, height: 10}}
	r.Scan(spans, 0, 20)
	require.False(t, r.Revealed("x"))

	r.Scan(spans, 1, 20)
	require.True(t, r.Revealed("x"))
}

func TestReveal_ReducedMotionRevealsEverythingAtInit(t *testing.T) {
	t.Parallel()
	r := newRevealEngine([]string{"a", "b", "c"}, true)
	require.True(t, r.Revealed("a"))
	require.True(t, r.Revealed("b"))
	require.True(t, r.Revealed("c"))
	require.Equal(t, 0, r.Pending())
}

func TestReveal_UnknownIDNotRevealed(t *testing.T) {
	t.Parallel()
	r := newRevealEngine([]string{"a"}, true)
	require.False(t, r.Revealed("missing"))
}
