package main

// clampf limits v to [lo, hi].
func clampf(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// lerp moves a toward b by fraction t of the remaining distance.
func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// easeOutCubic maps normalized time t in [0,1] to eased progress.
// easeOutCubic(1) == 1 exactly, so animations land on their targets.
func easeOutCubic(t float64) float64 {
	t = clampf(t, 0, 1)
	u := 1 - t
	return 1 - u*u*u
}

// wrapIndex normalizes i into [0, n) with modulo wrap in both directions.
// n must be positive.
func wrapIndex(i, n int) int {
	return ((i % n) + n) % n
}
