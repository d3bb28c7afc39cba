package series

import (
	"fmt"
	"slices"

	"gonum.org/v1/gonum/floats"

	"github.com/Maxime2/piecewise"
	"github.com/Maxime2/piecewise/domain"
	"github.com/Maxime2/piecewise/linearisation"
)

// Chebyshev is the series f(x) = sum c[i] T_i(x) over [-1, 1], with T_i
// the Chebyshev polynomials of the first kind. Evaluate does not check
// the domain.
type Chebyshev struct {
	coefficients []float64
}

// NewChebyshev creates a Chebyshev series from its coefficients, lowest
// order first.
func NewChebyshev(coefficients []float64) (Chebyshev, error) {
	if err := verifyCoefficients(coefficients); err != nil {
		return Chebyshev{}, err
	}
	return Chebyshev{coefficients: slices.Clone(coefficients)}, nil
}

func (s Chebyshev) Coefficients() []float64 {
	return slices.Clone(s.coefficients)
}

func (s Chebyshev) Order() int {
	return len(s.coefficients) - 1
}

func (s Chebyshev) Domain() domain.Interval {
	return unit
}

func (s Chebyshev) Evaluate(x float64) float64 {
	return chebyshevRecurrence.evaluate(s.coefficients, x)
}

// Derivative returns the derivative series, using
// c'[k-1] = c'[k+1] + 2 k c[k].
func (s Chebyshev) Derivative() Chebyshev {
	n := s.Order()
	if n == 0 {
		return Chebyshev{coefficients: []float64{0}}
	}
	d := make([]float64, n+2)
	for k := n; k >= 1; k-- {
		d[k-1] = d[k+1] + 2*float64(k)*s.coefficients[k]
	}
	d[0] /= 2
	return Chebyshev{coefficients: d[:n]}
}

// Primitive returns the primitive series that is zero at left, using
// 2 int T_n = T_(n+1)/(n+1) - T_(n-1)/(n-1).
func (s Chebyshev) Primitive(left float64) Chebyshev {
	n := len(s.coefficients)
	c := make([]float64, n+1)
	c[1] = s.coefficients[0]
	if n > 1 {
		c[2] = 0.25 * s.coefficients[1]
	}
	for i := 2; i < n; i++ {
		v := 0.5 * s.coefficients[i]
		c[i+1] += v / float64(i+1)
		c[i-1] -= v / float64(i-1)
	}
	primitive := Chebyshev{coefficients: c}
	c[0] -= primitive.Evaluate(left)
	return primitive
}

// Integral returns the integral over [-1, 1]. T_n integrates to
// 2 / (1 - n^2) for even n and to zero for odd n.
func (s Chebyshev) Integral() float64 {
	result := 2 * s.coefficients[0]
	for i := 2; i < len(s.coefficients); i += 2 {
		result += 2 * s.coefficients[i] / float64(1-i*i)
	}
	return result
}

// Mean returns the integral of x f(x) over [-1, 1].
func (s Chebyshev) Mean() float64 {
	if s.Order() == 0 {
		return 0
	}
	// x T_m = (T_(m+1) + T_(m-1)) / 2
	result := 2 * s.coefficients[1] / 3
	for i := 3; i < len(s.coefficients); i += 2 {
		a, b := i+1, i-1
		result += s.coefficients[i] * (1/float64(1-a*a) + 1/float64(1-b*b))
	}
	return result
}

// Polynomial returns the series as a power series.
func (s Chebyshev) Polynomial() Polynomial {
	return chebyshevRecurrence.polynomial(s.coefficients)
}

// Linearise returns a linear-linear table reproducing the series over
// [-1, 1] within the convergence criterion c.
func (s Chebyshev) Linearise(c linearisation.Convergence) (*piecewise.Table, error) {
	return linearise(s.Order(), s.Polynomial().grid(unit), s.Evaluate, c)
}

func (s Chebyshev) scale(v float64) Chebyshev {
	return Chebyshev{coefficients: floats.ScaleTo(make([]float64, len(s.coefficients)), v, s.coefficients)}
}

func (s Chebyshev) String() string {
	return fmt.Sprintf("Chebyshev%v", s.coefficients)
}
