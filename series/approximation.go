package series

import (
	"fmt"
	"math"

	"github.com/Maxime2/piecewise"
	"github.com/Maxime2/piecewise/domain"
	"github.com/Maxime2/piecewise/internal/numeric"
	"github.com/Maxime2/piecewise/linearisation"
)

// Approximation approximates a function over an interval [a, b] with a
// Chebyshev series defined over [-1, 1]. Outside [a, b] the approximation
// can diverge quickly.
type Approximation struct {
	interval domain.Interval
	series   Chebyshev
}

// NewApproximation interpolates f at the zeros of the Chebyshev polynomial
// of order+1 mapped onto d.
func NewApproximation(d domain.Interval, f func(float64) float64, order int) (Approximation, error) {
	if !numeric.IsFinite(d.Lower) || !numeric.IsFinite(d.Upper) || d.Lower >= d.Upper {
		return Approximation{}, fmt.Errorf("%w: cannot approximate over %v", domain.ErrInvalidDomain, d)
	}
	if order < 0 {
		return Approximation{}, fmt.Errorf("%w: order %d", ErrInvalidCoefficients, order)
	}

	a := Approximation{interval: d}
	n := order + 1
	values := make([]float64, n)
	for j := range values {
		values[j] = f(a.invert(math.Cos(math.Pi * (float64(j) + 0.5) / float64(n))))
	}
	coefficients := make([]float64, n)
	for i := range coefficients {
		for j, v := range values {
			coefficients[i] += v * math.Cos(math.Pi*float64(i)*(float64(j)+0.5)/float64(n))
		}
		coefficients[i] *= 2 / float64(n)
	}
	coefficients[0] *= 0.5

	series, err := NewChebyshev(coefficients)
	if err != nil {
		return Approximation{}, fmt.Errorf("approximation over %v: %w", d, err)
	}
	a.series = series
	return a, nil
}

func (a Approximation) Domain() domain.Interval {
	return a.interval
}

// Series returns the underlying Chebyshev series over [-1, 1].
func (a Approximation) Series() Chebyshev {
	return a.series
}

func (a Approximation) Coefficients() []float64 {
	return a.series.Coefficients()
}

func (a Approximation) Order() int {
	return a.series.Order()
}

func (a Approximation) Evaluate(x float64) float64 {
	return a.series.Evaluate(a.transform(x))
}

// Derivative returns the approximation of the derivative over the same
// interval.
func (a Approximation) Derivative() Approximation {
	return Approximation{interval: a.interval, series: a.series.Derivative().scale(2 / a.width())}
}

// Primitive returns the approximation of the primitive that is zero at
// left.
func (a Approximation) Primitive(left float64) Approximation {
	return Approximation{interval: a.interval, series: a.series.Primitive(a.transform(left)).scale(a.width() / 2)}
}

// Integral returns the integral over the interval.
func (a Approximation) Integral() float64 {
	return a.width() / 2 * a.series.Integral()
}

// Linearise returns a linear-linear table reproducing the approximation
// over its interval within the convergence criterion c.
func (a Approximation) Linearise(c linearisation.Convergence) (*piecewise.Table, error) {
	grid := a.series.Polynomial().grid(unit)
	for i, x := range grid {
		grid[i] = a.invert(x)
	}
	grid[0], grid[len(grid)-1] = a.interval.Lower, a.interval.Upper
	return linearise(a.Order(), grid, a.Evaluate, c)
}

func (a Approximation) width() float64 {
	return a.interval.Upper - a.interval.Lower
}

// transform maps x in the interval onto [-1, 1].
func (a Approximation) transform(x float64) float64 {
	return (2*x - (a.interval.Upper + a.interval.Lower)) / a.width()
}

// invert maps x in [-1, 1] onto the interval.
func (a Approximation) invert(x float64) float64 {
	return (x+1)*a.width()/2 + a.interval.Lower
}

func (a Approximation) String() string {
	return fmt.Sprintf("Approximation%v%v", a.interval, a.series.coefficients)
}
