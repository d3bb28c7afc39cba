// Package numeric holds the floating point comparisons shared by the
// piecewise packages.
package numeric

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// Epsilon is the default relative and absolute tolerance of IsClose.
const Epsilon = 100 * 2.220446049250313e-16

// IsClose reports whether a and b are equal up to a few hundred ulps.
func IsClose(a, b float64) bool {
	return IsCloseWithin(a, b, Epsilon, Epsilon)
}

// IsCloseWithin reports whether a and b are equal within the relative
// tolerance eps or the absolute threshold.
func IsCloseWithin(a, b, eps, threshold float64) bool {
	return scalar.EqualWithinAbsOrRel(a, b, threshold, eps)
}

// IsFinite reports whether x is neither NaN nor infinite.
func IsFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// AllFinite reports whether every value of s is finite.
func AllFinite(s []float64) bool {
	for _, v := range s {
		if !IsFinite(v) {
			return false
		}
	}
	return true
}
