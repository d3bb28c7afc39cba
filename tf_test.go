package piecewise

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"

	"github.com/Maxime2/piecewise/interpolation"
)

func mustNew(t *testing.T, x, y []float64, opts ...Option) *Table {
	t.Helper()
	table, err := New(x, y, opts...)
	require.NoError(t, err)
	return table
}

func TestScale(t *testing.T) {
	table := twoRegions(t)

	scaled, err := table.Scale(2)
	require.NoError(t, err)
	assert.Equal(t, []float64{8, 6, 4, 2}, scaled.Y())
	assert.Equal(t, table.Laws(), scaled.Laws())
	assert.Equal(t, table.Boundaries(), scaled.Boundaries())
	assert.Equal(t, []float64{4, 3, 2, 1}, table.Y())

	divided, err := table.Divide(2)
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 1.5, 1, 0.5}, divided.Y())

	negated, err := table.Negate()
	require.NoError(t, err)
	assert.Equal(t, []float64{-4, -3, -2, -1}, negated.Y())
	assert.InDelta(t, -table.Integral(), negated.Integral(), 1e-12)
}

func TestScaleErrors(t *testing.T) {
	table := mustNew(t, []float64{1, 2}, []float64{1, 2}, WithLaw(loglin))
	_, err := table.Scale(0)
	assert.ErrorIs(t, err, ErrInvalidTable)

	_, err = table.Divide(0)
	assert.ErrorIs(t, err, ErrInvalidTable)
}

func TestShift(t *testing.T) {
	table := mustNew(t, []float64{1, 2, 3}, []float64{1, 2, 3})
	shifted, err := table.Shift(1)
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 3, 4}, shifted.Y())

	_, err = twoRegions(t).Shift(1)
	assert.ErrorIs(t, err, ErrNotLinearised)
}

func TestAddSameGrid(t *testing.T) {
	a := mustNew(t, []float64{1, 2, 3}, []float64{1, 2, 3})
	b := mustNew(t, []float64{1, 2, 3}, []float64{3, 2, 1})

	sum, err := a.Add(b)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3}, sum.X())
	assert.Equal(t, []float64{4, 4, 4}, sum.Y())

	difference, err := a.Subtract(b)
	require.NoError(t, err)
	assert.Equal(t, []float64{-2, 0, 2}, difference.Y())
}

func TestAddDifferentGrids(t *testing.T) {
	a := mustNew(t, []float64{1, 2, 3}, []float64{1, 1, 1})
	b := mustNew(t, []float64{2, 3, 4}, []float64{2, 2, 2})

	sum, err := a.Add(b)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 2, 3, 3, 4}, sum.X())
	assert.Equal(t, []float64{1, 1, 3, 3, 2, 2}, sum.Y())
	assert.Equal(t, []int{1, 3, 5}, sum.Boundaries())
	assert.True(t, sum.IsLinearised())

	for _, x := range []float64{1.5, 2.5, 3.5} {
		assert.InDelta(t, a.Evaluate(x)+b.Evaluate(x), sum.Evaluate(x), 1e-12, "x = %v", x)
	}
	assert.InDelta(t, a.Integral()+b.Integral(), sum.Integral(), 1e-12)

	difference, err := b.Subtract(a)
	require.NoError(t, err)
	assert.Equal(t, []float64{-1, -1, 1, 1, 2, 2}, difference.Y())
}

func TestAddRemovesFlatJumps(t *testing.T) {
	a := mustNew(t, []float64{1, 2}, []float64{1, 1})
	b := mustNew(t, []float64{2, 3}, []float64{1, 1})

	sum, err := a.Add(b)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3}, sum.X())
	assert.Equal(t, []float64{1, 1, 1}, sum.Y())
	assert.Equal(t, 1, sum.NumberRegions())
}

func TestAddNotLinearised(t *testing.T) {
	a := mustNew(t, []float64{1, 2, 3}, []float64{1, 2, 3})
	_, err := a.Add(twoRegions(t))
	assert.ErrorIs(t, err, ErrNotLinearised)
	_, err = twoRegions(t).Subtract(a)
	assert.ErrorIs(t, err, ErrNotLinearised)

	lin, err := twoRegions(t).Linearise(nil)
	require.NoError(t, err)
	_, err = a.Add(lin)
	assert.NoError(t, err)
}

func TestNewIntegrator(t *testing.T) {
	for _, boundaries := range [][]float64{
		{},
		{1},
		{1, math.NaN()},
		{2, 1},
		{1, 1},
		{0, math.Inf(1)},
	} {
		_, err := NewIntegrator(boundaries...)
		assert.ErrorIs(t, err, ErrInvalidBoundaries, "%v", boundaries)
	}

	boundaries := []float64{0, 1, 2}
	in, err := NewIntegrator(boundaries...)
	require.NoError(t, err)
	boundaries[0] = -1
	assert.Equal(t, []float64{0, 1, 2}, in.Boundaries())
}

func TestIntegrator(t *testing.T) {
	triangle := mustNew(t, []float64{0, 2, 4}, []float64{0, 2, 0})
	in, err := NewIntegrator(0, 1, 3, 4, 5)
	require.NoError(t, err)

	approx := cmpopts.EquateApprox(0, 1e-12)

	integrals, err := in.Integrate(triangle)
	require.NoError(t, err)
	if diff := cmp.Diff([]float64{0.5, 3, 0.5, 0}, integrals, approx); diff != "" {
		t.Errorf("Integrate() mismatch (-want +got):\n%s", diff)
	}
	assert.InDelta(t, triangle.Integral(), floats.Sum(integrals), 1e-12)

	moments, err := in.FirstMoment(triangle)
	require.NoError(t, err)
	assert.InDelta(t, 1.0/3, moments[0], 1e-12)
	assert.InDelta(t, triangle.Mean(), floats.Sum(moments), 1e-12)
	assert.InDelta(t, 6, moments[1], 1e-12)
	assert.Equal(t, 0.0, moments[3])

	means, err := in.Mean(triangle)
	require.NoError(t, err)
	assert.Equal(t, moments, means)

	variances, err := in.Variance(triangle, 2)
	require.NoError(t, err)
	assert.InDelta(t, 10.0/12, variances[1], 1e-12)

	_, err = in.Integrate(twoRegions(t))
	assert.ErrorIs(t, err, ErrNotLinearised)
}

func TestIntegratorJump(t *testing.T) {
	table := mustNew(t, []float64{1, 2, 2, 3}, []float64{1, 1, 3, 3},
		WithRegions([]int{1, 3}, []interpolation.Law{linlin, linlin}))
	in, err := NewIntegrator(0, 1.5, 2, 2.5, 10)
	require.NoError(t, err)

	integrals, err := in.Integrate(table)
	require.NoError(t, err)
	if diff := cmp.Diff([]float64{0.5, 0.5, 1.5, 1.5}, integrals, cmpopts.EquateApprox(0, 1e-12)); diff != "" {
		t.Errorf("Integrate() mismatch (-want +got):\n%s", diff)
	}
}
