// Package domain describes where a function may be evaluated.
package domain

import (
	"errors"
	"fmt"

	"github.com/Maxime2/piecewise/internal/numeric"
)

// ErrInvalidDomain is returned for an interval with lower > upper or
// non-finite limits.
var ErrInvalidDomain = errors.New("domain: invalid interval")

// Domain reports whether a value is admissible.
type Domain interface {
	Contains(x float64) bool
}

// Open admits every value.
type Open struct{}

func (Open) Contains(float64) bool { return true }

func (Open) String() string { return "(-inf, +inf)" }

// Interval is the closed interval [Lower, Upper].
type Interval struct {
	Lower float64
	Upper float64
}

// NewInterval validates and returns the interval [lower, upper].
func NewInterval(lower, upper float64) (Interval, error) {
	if !numeric.IsFinite(lower) || !numeric.IsFinite(upper) {
		return Interval{}, fmt.Errorf("%w: limits [%v, %v] are not finite", ErrInvalidDomain, lower, upper)
	}
	if lower > upper {
		return Interval{}, fmt.Errorf("%w: lower limit %v is larger than upper limit %v", ErrInvalidDomain, lower, upper)
	}
	return Interval{Lower: lower, Upper: upper}, nil
}

// IsInside reports whether x lies in [Lower, Upper].
func (d Interval) IsInside(x float64) bool {
	return d.Lower <= x && x <= d.Upper
}

// IsContained reports whether x lies in (Lower, Upper).
func (d Interval) IsContained(x float64) bool {
	return d.Lower < x && x < d.Upper
}

func (d Interval) Contains(x float64) bool { return d.IsInside(x) }

func (d Interval) String() string {
	return fmt.Sprintf("[%v, %v]", d.Lower, d.Upper)
}
