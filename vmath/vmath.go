package vmath

import "math"

// Clamp01 clamps v to [0, 1]. NaN collapses to 0.
func Clamp01(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 1
	}
	return v
}

// Lerp linearly interpolates between a and b, t=0 returns a, t=1 returns b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
