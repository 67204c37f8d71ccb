// Package animation drives programmatic page transitions over time.
package animation

import "math"

// Easing maps linear progress t in [0,1] to eased progress.
type Easing func(t float64) float64

// Linear is the identity curve.
func Linear(t float64) float64 {
	return t
}

// Decelerate starts fast and slows down toward the end. A factor of 1
// gives the quadratic ease-out; larger factors decelerate harder.
func Decelerate(factor float64) Easing {
	if factor == 1 {
		return func(t float64) float64 {
			return 1 - (1-t)*(1-t)
		}
	}
	return func(t float64) float64 {
		return 1 - math.Pow(1-t, 2*factor)
	}
}

// AccelerateDecelerate starts and ends slowly with a faster middle.
func AccelerateDecelerate(t float64) float64 {
	return math.Cos((t+1)*math.Pi)/2 + 0.5
}
