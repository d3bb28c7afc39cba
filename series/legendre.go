package series

import (
	"fmt"
	"slices"

	"github.com/Maxime2/piecewise"
	"github.com/Maxime2/piecewise/domain"
	"github.com/Maxime2/piecewise/linearisation"
)

// Legendre is the series f(x) = sum c[i] P_i(x) over [-1, 1], with P_i
// the Legendre polynomials. Evaluate does not check the domain.
type Legendre struct {
	coefficients []float64
}

// NewLegendre creates a Legendre series from its coefficients, lowest
// order first.
func NewLegendre(coefficients []float64) (Legendre, error) {
	if err := verifyCoefficients(coefficients); err != nil {
		return Legendre{}, err
	}
	return Legendre{coefficients: slices.Clone(coefficients)}, nil
}

func (s Legendre) Coefficients() []float64 {
	return slices.Clone(s.coefficients)
}

func (s Legendre) Order() int {
	return len(s.coefficients) - 1
}

func (s Legendre) Domain() domain.Interval {
	return unit
}

func (s Legendre) Evaluate(x float64) float64 {
	return legendreRecurrence.evaluate(s.coefficients, x)
}

// Derivative returns the derivative series, using
// P'_(n+1) = (2n + 1) P_n + (2n - 3) P_(n-2) + ...
func (s Legendre) Derivative() Legendre {
	n := s.Order()
	if n == 0 {
		return Legendre{coefficients: []float64{0}}
	}
	d := make([]float64, n)
	for i := 0; i < n; i++ {
		a := s.coefficients[i+1]
		for j := i; j >= 0; j -= 2 {
			d[j] += float64(2*j+1) * a
		}
	}
	return Legendre{coefficients: d}
}

// Primitive returns the primitive series that is zero at left, using
// int P_n = (P_(n+1) - P_(n-1)) / (2n + 1).
func (s Legendre) Primitive(left float64) Legendre {
	n := len(s.coefficients)
	c := make([]float64, n+1)
	c[1] = s.coefficients[0]
	for i := 1; i < n; i++ {
		v := s.coefficients[i] / float64(2*i+1)
		c[i+1] += v
		c[i-1] -= v
	}
	primitive := Legendre{coefficients: c}
	c[0] -= primitive.Evaluate(left)
	return primitive
}

// Integral returns the integral over [-1, 1].
func (s Legendre) Integral() float64 {
	return 2 * s.coefficients[0]
}

// Mean returns the integral of x f(x) over [-1, 1].
func (s Legendre) Mean() float64 {
	if s.Order() == 0 {
		return 0
	}
	return 2 * s.coefficients[1] / 3
}

// Polynomial returns the series as a power series.
func (s Legendre) Polynomial() Polynomial {
	return legendreRecurrence.polynomial(s.coefficients)
}

// Linearise returns a linear-linear table reproducing the series over
// [-1, 1] within the convergence criterion c.
func (s Legendre) Linearise(c linearisation.Convergence) (*piecewise.Table, error) {
	return linearise(s.Order(), s.Polynomial().grid(unit), s.Evaluate, c)
}

func (s Legendre) String() string {
	return fmt.Sprintf("Legendre%v", s.coefficients)
}
