package series

import (
	"math"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/integrate/quad"
)

func mustLegendre(t *testing.T, coefficients ...float64) Legendre {
	t.Helper()
	s, err := NewLegendre(coefficients)
	require.NoError(t, err)
	return s
}

func TestNewLegendre(t *testing.T) {
	_, err := NewLegendre([]float64{})
	assert.ErrorIs(t, err, ErrInvalidCoefficients)
	_, err = NewLegendre([]float64{math.NaN()})
	assert.ErrorIs(t, err, ErrInvalidCoefficients)

	s := mustLegendre(t, 1, 2)
	assert.Equal(t, 1, s.Order())
	assert.Equal(t, unit, s.Domain())
	assert.Equal(t, "Legendre[1 2]", s.String())
}

func TestLegendreEvaluate(t *testing.T) {
	p2 := mustLegendre(t, 0, 0, 1)
	p3 := mustLegendre(t, 0, 0, 0, 1)
	for _, x := range []float64{-1, -0.5, 0, 0.3, 1} {
		assert.InDelta(t, (3*x*x-1)/2, p2.Evaluate(x), 1e-14, "x = %v", x)
		assert.InDelta(t, (5*x*x*x-3*x)/2, p3.Evaluate(x), 1e-14, "x = %v", x)
	}
	assert.Equal(t, 3.0, mustLegendre(t, 1, 2).Evaluate(1))
}

func TestLegendreDerivativeAndPrimitive(t *testing.T) {
	assert.Equal(t, []float64{1, 0, 5}, mustLegendre(t, 0, 0, 0, 1).Derivative().Coefficients())
	assert.Equal(t, []float64{0}, mustLegendre(t, 4).Derivative().Coefficients())
	assert.Equal(t, []float64{0, 1}, mustLegendre(t, 1).Primitive(0).Coefficients())

	s := mustLegendre(t, 1, 2, 3, 4)
	primitive := s.Primitive(0.5)
	assert.InDelta(t, 0, primitive.Evaluate(0.5), 1e-14)
	if diff := cmp.Diff(s.Coefficients(), primitive.Derivative().Coefficients(), cmpopts.EquateApprox(0, 1e-12)); diff != "" {
		t.Errorf("Primitive().Derivative() mismatch (-want +got):\n%s", diff)
	}
}

func TestLegendreIntegralAndMean(t *testing.T) {
	for _, c := range [][]float64{{2}, {1, 2}, {1, 2, 3, 4}} {
		s := mustLegendre(t, c...)
		want := quad.Fixed(s.Evaluate, -1, 1, 16, quad.Legendre{}, 0)
		assert.InDelta(t, want, s.Integral(), 1e-12, "%v", s)
		want = quad.Fixed(func(x float64) float64 { return x * s.Evaluate(x) }, -1, 1, 16, quad.Legendre{}, 0)
		assert.InDelta(t, want, s.Mean(), 1e-12, "%v", s)
	}
}

func TestLegendrePolynomial(t *testing.T) {
	assert.Equal(t, []float64{-0.5, 0, 1.5}, mustLegendre(t, 0, 0, 1).Polynomial().Coefficients())

	s := mustLegendre(t, 1, 2, 3, 4)
	p := s.Polynomial()
	for _, x := range []float64{-1, -0.3, 0.8} {
		assert.InDelta(t, s.Evaluate(x), p.Evaluate(x), 1e-12, "x = %v", x)
	}
}

func TestLegendreLinearise(t *testing.T) {
	table, err := mustLegendre(t, 1, 2).Linearise(nil)
	require.NoError(t, err)
	assert.Equal(t, []float64{-1, 1}, table.X())
	assert.Equal(t, []float64{-1, 3}, table.Y())

	s := mustLegendre(t, 0, 0, 0, 1)
	table, err = s.Linearise(nil)
	require.NoError(t, err)
	x := table.X()
	assert.Equal(t, -1.0, x[0])
	assert.Equal(t, 1.0, x[len(x)-1])
	for _, v := range []float64{-1 / math.Sqrt(5), 0, 1 / math.Sqrt(5)} {
		assert.True(t, slices.ContainsFunc(x, func(x float64) bool {
			return math.Abs(x-v) < 1e-12
		}), "%v not in grid", v)
	}
	for i := 1; i < len(x); i++ {
		middle := (x[i-1] + x[i]) / 2
		want := s.Evaluate(middle)
		assert.InDelta(t, want, table.Evaluate(middle), 2.5e-3*math.Abs(want)+1e-10, "x = %v", middle)
	}
}
