// ABOUTME: Timing curves mapping linear progress to eased progress
// ABOUTME: Linear for snap-back, EaseInOut for enter/exit transitions

package present

// Curve maps linear progress in [0, 1] to eased progress in [0, 1].
type Curve func(t float64) float64

// Linear is the identity curve.
func Linear(t float64) float64 {
	return clamp01(t)
}

// EaseInOut accelerates then decelerates (smoothstep).
func EaseInOut(t float64) float64 {
	t = clamp01(t)
	return t * t * (3 - 2*t)
}

// EaseOut decelerates toward the end (quadratic).
func EaseOut(t float64) float64 {
	t = clamp01(t)
	return t * (2 - t)
}

func clamp01(t float64) float64 {
	return clamp(t, 0, 1)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
