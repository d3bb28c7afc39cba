package piecewise

import (
	"fmt"

	"github.com/Maxime2/piecewise/interpolation"
	"github.com/Maxime2/piecewise/linearisation"
)

// Linearise returns a table with a single law, linear-linear, that
// reproduces t within the convergence criterion c (the default tolerance
// if c is nil). Every grid point of t is kept. A linearised table is
// returned as is.
func (t *Table) Linearise(c linearisation.Convergence) (*Table, error) {
	if t.linearised {
		return t, nil
	}
	if c == nil {
		c = linearisation.DefaultTolerance()
	}
	l := linearisation.New(
		linearisation.WithConvergence(c),
		linearisation.WithLogger(t.logger),
	)

	var (
		x, y       []float64
		boundaries []int
		err        error
	)
	for k, r := range t.regions {
		start := len(x)
		x, y, err = r.linearise(l, x, y)
		if err != nil {
			return nil, err
		}
		last := len(x) - 1
		keep := k == len(t.regions)-1
		if !keep {
			next := t.regions[k+1]
			keep = x[last] == next.x[0] && y[last] != next.y[0]
		}
		if keep {
			boundaries = append(boundaries, last)
		} else {
			x, y = x[:last], y[:last]
		}
		t.logger.Debug("linearised region", "region", k, "law", r.law,
			"points", len(r.x), "linearised", len(x)-start)
	}

	laws := make([]interpolation.Law, len(boundaries))
	for i := range laws {
		laws[i] = interpolation.LawLinearLinear
	}
	lin, err := New(x, y, WithRegions(boundaries, laws), WithLogger(t.logger))
	if err != nil {
		return nil, fmt.Errorf("linearised table: %w", err)
	}
	return lin, nil
}

// LinearisePoints linearises t with the given relative tolerance and
// absolute threshold and returns the resulting grid and values.
func (t *Table) LinearisePoints(tolerance, threshold float64) ([]float64, []float64, error) {
	c, err := linearisation.NewTolerance(tolerance, threshold)
	if err != nil {
		return nil, nil, err
	}
	lin, err := t.Linearise(c)
	if err != nil {
		return nil, nil, err
	}
	return lin.X(), lin.Y(), nil
}
