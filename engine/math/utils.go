package math

import (
	m "math"

	"golang.org/x/exp/constraints"
)

// Clamp returns the value `f` clamped to the range [low, high].
// It works for any numeric type (integers and floats).
func Clamp[T constraints.Ordered](f, low, high T) T {
	if f < low {
		return low
	}
	if f > high {
		return high
	}
	return f
}

// WrapDegrees keeps the sign of the dividend like C's fmod, so the result is
// in (-360, 360).
func WrapDegrees[T constraints.Float](degrees T) T {
	return T(m.Mod(float64(degrees), 360.0))
}
