// Package linearisation turns a function into a sequence of points between
// which linear interpolation reproduces the function within a tolerance.
package linearisation

import (
	"errors"
	"fmt"
	"math"

	"github.com/Maxime2/piecewise/internal/numeric"
)

const (
	// DefaultToleranceValue is the default relative tolerance (0.1 %).
	DefaultToleranceValue = 0.001
	// DefaultThresholdValue is the default absolute threshold.
	DefaultThresholdValue = 1e-10
)

// ErrInvalidTolerance is returned for a non-positive or non-finite
// tolerance or threshold.
var ErrInvalidTolerance = errors.New("linearisation: invalid convergence tolerance")

// Convergence decides whether a trial value is close enough to the
// reference value of the function on a panel.
type Convergence interface {
	Converged(trial, reference, xLeft, xRight, yLeft, yRight float64) bool
}

// ConvergenceFunc adapts an ordinary function to the Convergence interface.
type ConvergenceFunc func(trial, reference, xLeft, xRight, yLeft, yRight float64) bool

func (f ConvergenceFunc) Converged(trial, reference, xLeft, xRight, yLeft, yRight float64) bool {
	return f(trial, reference, xLeft, xRight, yLeft, yRight)
}

// Tolerance is the relative tolerance criterion with an absolute
// threshold for values close to zero.
type Tolerance struct {
	Tolerance float64
	Threshold float64
}

// DefaultTolerance returns the 0.1 % criterion with a 1e-10 threshold.
func DefaultTolerance() Tolerance {
	return Tolerance{Tolerance: DefaultToleranceValue, Threshold: DefaultThresholdValue}
}

// NewTolerance validates and returns a tolerance criterion.
func NewTolerance(tolerance, threshold float64) (Tolerance, error) {
	if !numeric.IsFinite(tolerance) || tolerance <= 0 {
		return Tolerance{}, fmt.Errorf("%w: tolerance %v", ErrInvalidTolerance, tolerance)
	}
	if !numeric.IsFinite(threshold) || threshold <= 0 {
		return Tolerance{}, fmt.Errorf("%w: threshold %v", ErrInvalidTolerance, threshold)
	}
	return Tolerance{Tolerance: tolerance, Threshold: threshold}, nil
}

// Converged reports whether |trial - reference| is below the relative
// tolerance, or below the threshold once the relative bound drops under it.
// Equal values always converge. The panel is ignored.
func (c Tolerance) Converged(trial, reference, _, _, _, _ float64) bool {
	if trial == reference {
		return true
	}
	diff := math.Abs(trial - reference)
	limit := (math.Abs(trial) + math.Abs(reference)) * c.Tolerance
	if limit < c.Threshold {
		return diff < c.Threshold
	}
	return diff < limit
}

func (c Tolerance) String() string {
	return fmt.Sprintf("tolerance %g threshold %g", c.Tolerance, c.Threshold)
}
