package piecewise

import (
	"fmt"
	"sort"

	"github.com/Maxime2/piecewise/integration"
	"github.com/Maxime2/piecewise/internal/numeric"
	"github.com/Maxime2/piecewise/interpolation"
)

// Integrator integrates linearised tables over a fixed set of bins given by
// their boundaries. Panels that straddle a bin boundary are split.
type Integrator struct {
	boundaries []float64
}

// NewIntegrator creates an Integrator for the bins between consecutive
// boundaries. The boundaries must be finite, sorted and unique.
func NewIntegrator(boundaries ...float64) (*Integrator, error) {
	if len(boundaries) < 2 {
		return nil, fmt.Errorf("%w: %d values, at least 2 are required", ErrInvalidBoundaries, len(boundaries))
	}
	if !numeric.AllFinite(boundaries) {
		return nil, fmt.Errorf("%w: values must be finite", ErrInvalidBoundaries)
	}
	for i := 1; i < len(boundaries); i++ {
		if boundaries[i] <= boundaries[i-1] {
			return nil, fmt.Errorf("%w: %v is not followed by a larger value", ErrInvalidBoundaries, boundaries[i-1])
		}
	}
	return &Integrator{boundaries: append([]float64(nil), boundaries...)}, nil
}

// Boundaries returns the bin boundaries.
func (in *Integrator) Boundaries() []float64 {
	return append([]float64(nil), in.boundaries...)
}

// Integrate returns the integral of t over every bin.
func (in *Integrator) Integrate(t *Table) ([]float64, error) {
	return in.apply(t, integration.LinLin)
}

// FirstMoment returns the integral of x*t(x) over every bin.
func (in *Integrator) FirstMoment(t *Table) ([]float64, error) {
	return in.apply(t, integration.LinLinMean)
}

// Mean is FirstMoment.
func (in *Integrator) Mean(t *Table) ([]float64, error) {
	return in.FirstMoment(t)
}

// Variance returns the integral of (x - mean)^2 t(x) over every bin.
func (in *Integrator) Variance(t *Table, mean float64) ([]float64, error) {
	return in.apply(t, integration.LinLinVariance(mean))
}

func (in *Integrator) apply(t *Table, f integration.Func) ([]float64, error) {
	if !t.linearised {
		return nil, fmt.Errorf("%w: cannot integrate over bins", ErrNotLinearised)
	}
	x, y := t.x, t.y
	result := make([]float64, len(in.boundaries)-1)
	for k := range result {
		a, b := in.boundaries[k], in.boundaries[k+1]
		for i := max(1, sort.SearchFloat64s(x, a)); i < len(x) && x[i-1] < b; i++ {
			xLeft, xRight := x[i-1], x[i]
			lower, upper := max(a, xLeft), min(b, xRight)
			if lower >= upper {
				continue
			}
			yLower := interpolation.LinLin(lower, xLeft, xRight, y[i-1], y[i])
			yUpper := interpolation.LinLin(upper, xLeft, xRight, y[i-1], y[i])
			result[k] += f(lower, upper, yLower, yUpper)
		}
	}
	return result, nil
}
