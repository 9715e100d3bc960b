package vmath

import "math"

// Clamp limits v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Lerp moves current toward target by factor (0 = stay, 1 = snap)
func Lerp(current, target, factor float64) float64 {
	return current + (target-current)*factor
}

// LerpSnap moves current toward target by factor, snapping exactly
// when the residual falls below epsilon
func LerpSnap(current, target, factor, epsilon float64) float64 {
	next := Lerp(current, target, factor)
	if math.Abs(target-next) < epsilon {
		return target
	}
	return next
}

// NearestRightAngle returns the closest multiple of π/2 to angle
func NearestRightAngle(angle float64) float64 {
	return math.Round(angle/(math.Pi/2)) * (math.Pi / 2)
}
