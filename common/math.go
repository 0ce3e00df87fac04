package common

import "math"

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// RoundTo rounds v to the nearest multiple of step.
func RoundTo(v, step float64) float64 {
	if step <= 0 {
		return v
	}
	inv := 1 / step
	return math.Round(v*inv) / inv
}
