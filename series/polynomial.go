// Package series provides power series that can be linearised into
// piecewise tables.
package series

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"
	"slices"

	"gonum.org/v1/gonum/mat"

	"github.com/Maxime2/piecewise"
	"github.com/Maxime2/piecewise/domain"
	"github.com/Maxime2/piecewise/internal/numeric"
	"github.com/Maxime2/piecewise/linearisation"
)

// ErrInvalidCoefficients is returned for an empty or non-finite set of
// coefficients.
var ErrInvalidCoefficients = errors.New("series: invalid coefficients")

const (
	// newtonIterations is the number of Newton steps used to polish a root.
	newtonIterations = 5
	// gridTolerance is the distance below which two grid points merge.
	gridTolerance = 1e-7
)

// Polynomial is the power series p(x) = sum c[i] x^i.
type Polynomial struct {
	coefficients []float64
}

// NewPolynomial creates a polynomial from its coefficients, lowest order
// first.
func NewPolynomial(coefficients []float64) (Polynomial, error) {
	if err := verifyCoefficients(coefficients); err != nil {
		return Polynomial{}, err
	}
	return Polynomial{coefficients: slices.Clone(coefficients)}, nil
}

func verifyCoefficients(coefficients []float64) error {
	if len(coefficients) == 0 {
		return fmt.Errorf("%w: no coefficients", ErrInvalidCoefficients)
	}
	if !numeric.AllFinite(coefficients) {
		return fmt.Errorf("%w: %v", ErrInvalidCoefficients, coefficients)
	}
	return nil
}

// Coefficients returns a copy of the coefficients, lowest order first.
func (p Polynomial) Coefficients() []float64 {
	return slices.Clone(p.coefficients)
}

func (p Polynomial) Order() int {
	return len(p.coefficients) - 1
}

// Evaluate returns p(x) using the Horner scheme.
func (p Polynomial) Evaluate(x float64) float64 {
	var y float64
	for i := len(p.coefficients) - 1; i >= 0; i-- {
		y = y*x + p.coefficients[i]
	}
	return y
}

// Derivative returns p'. The derivative of a constant is the zero
// polynomial.
func (p Polynomial) Derivative() Polynomial {
	if len(p.coefficients) == 1 {
		return Polynomial{coefficients: []float64{0}}
	}
	c := make([]float64, len(p.coefficients)-1)
	for i := range c {
		c[i] = p.coefficients[i+1] * float64(i+1)
	}
	return Polynomial{coefficients: c}
}

// Primitive returns the primitive of p that is zero at left.
func (p Polynomial) Primitive(left float64) Polynomial {
	c := make([]float64, len(p.coefficients)+1)
	for i, v := range p.coefficients {
		c[i+1] = v / float64(i+1)
	}
	primitive := Polynomial{coefficients: c}
	c[0] = -primitive.Evaluate(left)
	return primitive
}

// Integral returns the integral of p over d.
func (p Polynomial) Integral(d domain.Interval) float64 {
	return p.Primitive(d.Lower).Evaluate(d.Upper)
}

// Mean returns the integral of x p(x) over d.
func (p Polynomial) Mean(d domain.Interval) float64 {
	moment := Polynomial{coefficients: append([]float64{0}, p.coefficients...)}
	return moment.Integral(d)
}

// Roots returns the distinct real solutions of p(x) = a in ascending order.
// The roots are the eigenvalues of the companion matrix, refined with a few
// Newton iterations.
func (p Polynomial) Roots(a float64) []float64 {
	c := p.trimmed()
	order := len(c) - 1
	switch order {
	case 0:
		return nil
	case 1:
		return []float64{-(c[0] - a) / c[1]}
	}

	eig := new(mat.Eigen)
	if !eig.Factorize(companion(c, a), mat.EigenNone) {
		return nil
	}
	shifted := Polynomial{coefficients: slices.Clone(c)}
	shifted.coefficients[0] -= a
	derivative := shifted.Derivative()

	var roots []float64
	for _, v := range eig.Values(nil) {
		if math.Abs(imag(v)) > 1e-8*math.Max(1, cmplx.Abs(v)) {
			continue
		}
		x := real(v)
		for i := 0; i < newtonIterations; i++ {
			slope := derivative.Evaluate(x)
			if slope == 0 {
				break
			}
			x -= shifted.Evaluate(x) / slope
		}
		roots = append(roots, x)
	}
	slices.Sort(roots)
	return slices.CompactFunc(roots, numeric.IsClose)
}

// trimmed returns the coefficients without vanishing highest order terms.
func (p Polynomial) trimmed() []float64 {
	n := len(p.coefficients)
	for n > 1 && p.coefficients[n-1] == 0 {
		n--
	}
	return p.coefficients[:n]
}

// companion returns the companion matrix of the polynomial c - a, with c
// the coefficients and c[len(c)-1] != 0.
func companion(c []float64, a float64) *mat.Dense {
	order := len(c) - 1
	scale := c[order]
	m := mat.NewDense(order, order, nil)
	for i := 0; i+1 < order; i++ {
		m.Set(i, i+1, 1)
	}
	m.Set(order-1, 0, -(c[0]-a)/scale)
	for i := 1; i < order; i++ {
		m.Set(order-1, i, -c[i]/scale)
	}
	return m
}

// grid returns the limits of d and the extrema and inflection points of p
// that lie inside d. Points closer than gridTolerance are merged.
func (p Polynomial) grid(d domain.Interval) []float64 {
	first := p.Derivative()
	grid := []float64{d.Lower, d.Upper}
	for _, x := range append(first.Roots(0), first.Derivative().Roots(0)...) {
		if d.IsContained(x) {
			grid = append(grid, x)
		}
	}
	slices.Sort(grid)
	grid = slices.CompactFunc(grid, func(a, b float64) bool {
		return numeric.IsCloseWithin(a, b, gridTolerance, gridTolerance)
	})
	if len(grid) == 1 {
		return []float64{d.Lower, d.Upper}
	}
	grid[len(grid)-1] = d.Upper
	return grid
}

// Linearise returns a linear-linear table reproducing p over d within the
// convergence criterion c (the default tolerance if c is nil).
func (p Polynomial) Linearise(d domain.Interval, c linearisation.Convergence) (*piecewise.Table, error) {
	if d.Lower >= d.Upper {
		return nil, fmt.Errorf("%w: cannot linearise over %v", domain.ErrInvalidDomain, d)
	}
	return linearise(p.Order(), p.grid(d), p.Evaluate, c)
}

// linearise tabulates f between the first and last value of grid, starting
// from the points in grid. Series of order 0 or 1 keep the limits only.
func linearise(order int, grid []float64, f func(float64) float64, c linearisation.Convergence) (*piecewise.Table, error) {
	if order <= 1 {
		lower, upper := grid[0], grid[len(grid)-1]
		return piecewise.New([]float64{lower, upper}, []float64{f(lower), f(upper)})
	}
	x, y, err := linearisation.Linearise(grid, f, linearisation.WithConvergence(c))
	if err != nil {
		return nil, err
	}
	return piecewise.New(x, y)
}

func (p Polynomial) String() string {
	return fmt.Sprintf("Polynomial%v", p.coefficients)
}
