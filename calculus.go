package piecewise

import (
	"fmt"

	"github.com/Maxime2/piecewise/integration"
)

// Integral returns the integral of the table over its grid, each region
// integrated analytically with its own law.
func (t *Table) Integral() float64 {
	var sum float64
	for _, r := range t.regions {
		sum += r.integrate(integration.Zeroth(r.law))
	}
	return sum
}

// Mean returns the first raw moment, the integral of x*f(x) over the grid.
// Divide by Integral for the average of x.
func (t *Table) Mean() float64 {
	var sum float64
	for _, r := range t.regions {
		sum += r.integrate(integration.FirstMoment(r.law))
	}
	return sum
}

// Variance returns the integral of (x - mean)^2 f(x) over the grid. It is
// only available for tables made of histogram and linear-linear regions.
func (t *Table) Variance(mean float64) (float64, error) {
	var sum float64
	for k, r := range t.regions {
		f := integration.Variance(r.law, mean)
		if f == nil {
			return 0, fmt.Errorf("%w %v (region %d)", ErrUnsupportedLaw, r.law, k)
		}
		sum += r.integrate(f)
	}
	return sum, nil
}

// CumulativeIntegral returns the running integral at every grid point,
// starting with 0. Both points of a jump get the same value.
func (t *Table) CumulativeIntegral() []float64 {
	result := make([]float64, len(t.x))
	for _, r := range t.regions {
		if r.start > 0 && t.x[r.start] == t.x[r.start-1] {
			result[r.start] = result[r.start-1]
		}
		f := integration.Zeroth(r.law)
		for i := 1; i < len(r.x); i++ {
			result[r.start+i] = result[r.start+i-1] + f(r.x[i-1], r.x[i], r.y[i-1], r.y[i])
		}
	}
	return result
}
