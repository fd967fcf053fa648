// Package vmath provides the small scalar helpers the session engine
// interpolates difficulty with
package vmath

// Clamp01 bounds v to [0,1]
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Clamp bounds v to [lo,hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Lerp interpolates linearly from a to b by t in [0,1]
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// SmoothStep is the cubic ease 3t²−2t³, clamped to [0,1].
// Used for level-entry easing so difficulty ramps without a kink
func SmoothStep(t float64) float64 {
	t = Clamp01(t)
	return t * t * (3 - 2*t)
}
