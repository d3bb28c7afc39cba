package series

import "github.com/Maxime2/piecewise/domain"

// unit is the domain of the orthogonal polynomial series.
var unit = domain.Interval{Lower: -1, Upper: 1}

// recurrence describes a family of polynomials with F_0 = 1, F_1 = x and
// F_(k+1) = a(k) x F_k + b(k) F_(k-1).
type recurrence struct {
	a func(k int) float64
	b func(k int) float64
}

var chebyshevRecurrence = recurrence{
	a: func(int) float64 { return 2 },
	b: func(int) float64 { return -1 },
}

var legendreRecurrence = recurrence{
	a: func(k int) float64 { return float64(2*k+1) / float64(k+1) },
	b: func(k int) float64 { return -float64(k) / float64(k+1) },
}

// evaluate returns sum c[k] F_k(x) using the Clenshaw scheme.
func (r recurrence) evaluate(c []float64, x float64) float64 {
	var y1, y2 float64
	for k := len(c) - 1; k >= 1; k-- {
		y1, y2 = c[k]+r.a(k)*x*y1+r.b(k+1)*y2, y1
	}
	return c[0] + x*y1 + r.b(1)*y2
}

// polynomial returns sum c[k] F_k as a power series.
func (r recurrence) polynomial(c []float64) Polynomial {
	result := make([]float64, len(c))
	result[0] = c[0]
	previous, current := []float64{1}, []float64{0, 1}
	for i := 1; i < len(c); i++ {
		if i > 1 {
			k := i - 1
			next := make([]float64, i+1)
			for j, v := range current {
				next[j+1] += r.a(k) * v
			}
			for j, v := range previous {
				next[j] += r.b(k) * v
			}
			previous, current = current, next
		}
		for j, v := range current {
			result[j] += c[i] * v
		}
	}
	return Polynomial{coefficients: result}
}
