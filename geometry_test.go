package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClampf(t *testing.T) {
	t.Parallel()
	require.Equal(t, 0.0, clampf(-1, 0, 10))
	require.Equal(t, 10.0, clampf(11, 0, 10))
	require.Equal(t, 5.5, clampf(5.5, 0, 10))
}

func TestLerp(t *testing.T) {
	t.Parallel()
	require.Equal(t, 0.0, lerp(0, 10, 0))
	require.Equal(t, 10.0, lerp(0, 10, 1))
	require.InDelta(t, 1.2, lerp(0, 10, 0.12), 1e-9)
}

func TestEaseOutCubic(t *testing.T) {
	t.Parallel()
	require.Equal(t, 0.0, easeOutCubic(0))
	require.Equal(t, 1.0, easeOutCubic(1))
	// Clamped outside the unit interval.
	require.Equal(t, 0.0, easeOutCubic(-3))
	require.Equal(t, 1.0, easeOutCubic(7))
	// Monotone and front-loaded.
	prev := 0.0
	for i := 1; i <= 100; i++ {
		v := easeOutCubic(float64(i) / 100)
		require.GreaterOrEqual(t, v, prev)
		prev = v
	}
	require.Greater(t, easeOutCubic(0.5), 0.5)
}

func TestWrapIndex(t *testing.T) {
	t.Parallel()
	cases := []struct {
		i, n, want int
	}{
		{0, 5, 0},
		{4, 5, 4},
		{5, 5, 0},
		{7, 5, 2},
		{-1, 5, 4},
		{-6, 5, 4},
		{-5, 5, 0},
		{123, 7, 123 % 7},
	}
	for _, c := range cases {
		require.Equal(t, c.want, wrapIndex(c.i, c.n), "wrapIndex(%d, %d)", c.i, c.n)
	}
	// The normalized form holds for a sweep of integers.
	for i := -50; i <= 50; i++ {
		got := wrapIndex(i, 5)
		require.GreaterOrEqual(t, got, 0)
		require.Less(t, got, 5)
		require.Equal(t, ((i%5)+5)%5, got)
	}
}

func TestVisibleFraction(t *testing.T) {
	t.Parallel()
	require.Equal(t, 1.0, visibleFraction(0, 10, 0, 20))
	require.Equal(t, 0.5, visibleFraction(15, 10, 0, 20))
	require.Equal(t, 0.0, visibleFraction(30, 10, 0, 20))
	require.Equal(t, 0.0, visibleFraction(0, 0, 0, 20))
	require.Equal(t, 0.0, visibleFraction(0, 10, 0, 0))
}
