package piecewise

import (
	"fmt"
	"sort"

	"github.com/Maxime2/piecewise/integration"
	"github.com/Maxime2/piecewise/interpolation"
	"github.com/Maxime2/piecewise/linearisation"
)

// region is a view on the part of a table grid interpolated with one law.
// Its grid never holds a jump.
type region struct {
	law   interpolation.Law
	start int // index of the first point in the table
	x, y  []float64
}

func (r region) verify() error {
	if r.law.LogX() && r.x[0] <= 0 {
		return fmt.Errorf("%v law needs x > 0, got %v", r.law, r.x[0])
	}
	if r.law.LogY() {
		sign := r.y[0] > 0
		for _, v := range r.y {
			if v == 0 || (v > 0) != sign {
				return fmt.Errorf("%v law needs y values of one sign and never 0, got %v", r.law, v)
			}
		}
	}
	return nil
}

func (r region) evaluate(x float64) float64 {
	n := len(r.x)
	if x < r.x[0] || x > r.x[n-1] {
		return 0
	}
	i := 1
	if x != r.x[0] {
		i = sort.SearchFloat64s(r.x, x)
	}
	return r.law.Interpolate(x, r.x[i-1], r.x[i], r.y[i-1], r.y[i])
}

func (r region) integrate(f integration.Func) float64 {
	return integration.Integrate(r.x, r.y, f)
}

// linearise appends the linear-linear points of the region to x and y.
func (r region) linearise(l *linearisation.Lineariser, x, y []float64) ([]float64, []float64, error) {
	switch r.law {
	case interpolation.LawLinearLinear:
		return append(x, r.x...), append(y, r.y...), nil
	case interpolation.LawHistogram:
		n := len(r.x)
		x = append(x, r.x[0])
		y = append(y, r.y[0])
		for i := 1; i < n; i++ {
			x = append(x, r.x[i])
			y = append(y, r.y[i-1])
			if i < n-1 && r.y[i] != r.y[i-1] {
				x = append(x, r.x[i])
				y = append(y, r.y[i])
			}
		}
		return x, y, nil
	}
	x, y, err := l.Linearise(x, y, r.x, r.evaluate)
	if err != nil {
		return x, y, fmt.Errorf("%v region [%g, %g]: %w", r.law, r.x[0], r.x[len(r.x)-1], err)
	}
	return x, y, nil
}
