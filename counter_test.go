package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func testStats() []Stat {
	return []Stat{
		{Target: 240, Suffix: "+", Label: "projects"},
		{Target: 1800000, Suffix: "", Label: "users"},
	}
}

func TestCounterGroup_TriggerFiresOnce(t *testing.T) {
	t.Parallel()
	g := newCounterGroup(testStats(), 2*time.Second, 150*time.Millisecond, "en", false)
	require.True(t, g.Armed())

	cmds := g.Trigger(time.Now())
	require.Len(t, cmds, 2)
	require.False(t, g.Armed())

	require.Nil(t, g.Trigger(time.Now()), "second trigger must be a no-op")
}

func TestCounterGroup_FirstCounterStartsImmediately(t *testing.T) {
	t.Parallel()
	g := newCounterGroup(testStats(), 2*time.Second, 150*time.Millisecond, "en", false)
	now := time.Now()
	cmds := g.Trigger(now)

	msg, ok := cmds[0]().(counterStartMsg)
	require.True(t, ok)
	require.Equal(t, 0, msg.index)
}

func TestCounterGroup_MonotonicAndExactFinal(t *testing.T) {
	t.Parallel()
	g := newCounterGroup(testStats(), 2*time.Second, 0, "en", false)
	start := time.Unix(1000, 0)
	g.Trigger(start)
	g.Start(0, start)
	g.Start(1, start)

	prev0, prev1 := -1, -1
	for ms := 0; ms <= 2200; ms += 50 {
		g.Step(start.Add(time.Duration(ms) * time.Millisecond))
		require.GreaterOrEqual(t, g.counters[0].display, prev0)
		require.GreaterOrEqual(t, g.counters[1].display, prev1)
		prev0 = g.counters[0].display
		prev1 = g.counters[1].display
	}
	require.Equal(t, 240, g.counters[0].display)
	require.Equal(t, 1800000, g.counters[1].display)
	require.False(t, g.Running())
}

func TestCounterGroup_ExactTargetAtDuration(t *testing.T) {
	t.Parallel()
	g := newCounterGroup([]Stat{{Target: 97}}, 2*time.Second, 0, "en", false)
	start := time.Unix(1000, 0)
	g.Trigger(start)
	g.Start(0, start)
	g.Step(start.Add(2 * time.Second))
	require.Equal(t, 97, g.counters[0].display)
}

func TestCounterGroup_LocaleGrouping(t *testing.T) {
	t.Parallel()
	g := newCounterGroup(testStats(), time.Second, 0, "en", true)
	require.Equal(t, "240+", g.Value(0))
	require.Equal(t, "1,800,000", g.Value(1))
}

func TestCounterGroup_ReducedMotionShowsTargets(t *testing.T) {
	t.Parallel()
	g := newCounterGroup(testStats(), time.Second, 0, "en", true)
	require.False(t, g.Armed(), "reduced motion never arms the trigger")
	require.False(t, g.Running())
	require.Equal(t, 240, g.counters[0].display)
	require.Equal(t, 1800000, g.counters[1].display)
}

func TestCounterGroup_BadLocaleFallsBack(t *testing.T) {
	t.Parallel()
	g := newCounterGroup([]Stat{{Target: 1234}}, time.Second, 0, "not-a-locale!!", true)
	require.Equal(t, "1,234", g.Value(0))
}

func TestCounterGroup_StartIsIdempotent(t *testing.T) {
	t.Parallel()
	g := newCounterGroup([]Stat{{Target: 100}}, 2*time.Second, 0, "en", false)
	start := time.Unix(1000, 0)
	g.Trigger(start)
	g.Start(0, start)
	g.Step(start.Add(time.Second))
	mid := g.counters[0].display

	// A duplicate start must not rewind the animation clock.
	g.Start(0, start.Add(time.Second))
	g.Step(start.Add(1100 * time.Millisecond))
	require.GreaterOrEqual(t, g.counters[0].display, mid)
}
