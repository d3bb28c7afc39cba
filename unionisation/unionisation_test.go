package unionisation

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Maxime2/piecewise/interpolation"
)

func TestUnionise(t *testing.T) {
	tests := []struct {
		name          string
		first, second []float64
		expect        []float64
	}{
		{"same grid", []float64{1, 2, 3, 4}, []float64{1, 2, 3, 4}, []float64{1, 2, 3, 4}},
		{"same grid with jump", []float64{1, 2, 2, 3, 4}, []float64{1, 2, 2, 3, 4}, []float64{1, 2, 2, 3, 4}},
		{"jump in first", []float64{1, 2, 2, 3, 4}, []float64{1, 2, 3, 4}, []float64{1, 2, 2, 3, 4}},
		{"jump in second", []float64{1, 2, 3, 4}, []float64{1, 2, 2, 3, 4}, []float64{1, 2, 2, 3, 4}},
		{"different jumps", []float64{1, 2, 2, 3, 4}, []float64{1, 2, 3, 3, 4}, []float64{1, 2, 2, 3, 3, 4}},
		{"interleaved", []float64{1, 2, 3, 4}, []float64{1, 1.5, 2, 2.5, 3, 3.5, 4}, []float64{1, 1.5, 2, 2.5, 3, 3.5, 4}},
		{"disjoint", []float64{1, 2}, []float64{3, 4}, []float64{1, 2, 3, 4}},
	}
	for _, tc := range tests {
		if diff := cmp.Diff(tc.expect, Unionise(tc.first, tc.second)); diff != "" {
			t.Errorf("%s: Unionise() mismatch (-want +got):\n%s", tc.name, diff)
		}
	}
}

func TestUnioniser(t *testing.T) {
	grid1 := []float64{1, 2, 3, 4}
	grid2 := []float64{1, 1.5, 2, 2.5, 3, 3.5, 4}
	grid3 := []float64{1, 2, 2, 3, 4}
	grid4 := []float64{1, 2, 3, 3, 4}
	grid5 := []float64{1, 2, 2, 3, 3, 4}
	grid6 := []float64{1, 2, 3}

	tests := []struct {
		name   string
		grids  [][]float64
		expect []float64
	}{
		{"same grid", [][]float64{grid1, grid1}, grid1},
		{"common points", [][]float64{grid1, grid2}, grid2},
		{"jump in the first", [][]float64{grid3, grid1}, grid3},
		{"jump in the second", [][]float64{grid1, grid3}, grid3},
		{"different jumps", [][]float64{grid3, grid4}, grid5},
		{"some common jumps", [][]float64{grid4, grid5}, grid5},
		{"different end points", [][]float64{grid1, grid6}, []float64{1, 2, 3, 3, 4}},
		{"different end points reversed", [][]float64{grid6, grid1}, []float64{1, 2, 3, 3, 4}},
		{"end point already a jump", [][]float64{grid4, grid6}, []float64{1, 2, 3, 3, 4}},
		{"end point already a jump reversed", [][]float64{grid6, grid4}, []float64{1, 2, 3, 3, 4}},
		{"different start points", [][]float64{{0, 2, 4}, {1, 3, 5}}, []float64{0, 1, 1, 2, 3, 4, 4, 5}},
		{"three grids", [][]float64{grid6, grid3, {3, 5}}, []float64{1, 2, 2, 3, 3, 4, 4, 5}},
	}

	var u Unioniser
	for _, tc := range tests {
		for _, g := range tc.grids {
			require.NoError(t, u.Add(g))
		}
		got := u.Unionise()
		if diff := cmp.Diff(tc.expect, got); diff != "" {
			t.Errorf("%s: Unionise() mismatch (-want +got):\n%s", tc.name, diff)
		}
		assert.Equal(t, got, u.Grid())
	}

	u.Reset()
	assert.Empty(t, u.Unionise())

	assert.ErrorIs(t, u.Add([]float64{1}), ErrInvalidGrid)
	assert.ErrorIs(t, u.Add([]float64{2, 1}), ErrInvalidGrid)
}

func TestUnioniserInputsUnchanged(t *testing.T) {
	a := []float64{0, 2, 4}
	b := []float64{1, 3, 5}
	var u Unioniser
	require.NoError(t, u.Add(a))
	require.NoError(t, u.Add(b))
	u.Unionise()
	assert.Equal(t, []float64{0, 2, 4}, a)
	assert.Equal(t, []float64{1, 3, 5}, b)
}

func TestIsCompatible(t *testing.T) {
	var u Unioniser
	require.NoError(t, u.Add([]float64{1, 3, 4}))
	require.NoError(t, u.Add([]float64{2, 3, 3, 5}))
	require.Equal(t, []float64{1, 2, 2, 3, 3, 4, 4, 5}, u.Unionise())

	assert.True(t, u.IsCompatible([]float64{1, 3, 4}))
	assert.True(t, u.IsCompatible([]float64{2, 3, 3, 5}))
	assert.True(t, u.IsCompatible([]float64{1, 5}))
	assert.False(t, u.IsCompatible([]float64{1, 2.5, 4}))
	assert.False(t, u.IsCompatible(nil))

	u.Reset()
	require.NoError(t, u.Add([]float64{1, 2, 3, 4}))
	u.Unionise()
	assert.False(t, u.IsCompatible([]float64{1, 2, 2, 3}))
	assert.False(t, u.IsCompatible([]float64{1, 2}))
	assert.False(t, u.IsCompatible([]float64{2, 4}))
	assert.True(t, u.IsCompatible([]float64{1, 4}))
}

func TestEvaluate(t *testing.T) {
	var u Unioniser
	require.NoError(t, u.Add([]float64{1, 3, 4}))
	require.NoError(t, u.Add([]float64{2, 3, 3, 5}))
	u.Unionise()

	got := u.Evaluate([]float64{1, 3, 4}, []float64{1, 3, 4}, nil, nil)
	if diff := cmp.Diff([]float64{1, 2, 2, 3, 3, 4, 0, 0}, got); diff != "" {
		t.Errorf("Evaluate() mismatch (-want +got):\n%s", diff)
	}

	got = u.Evaluate([]float64{2, 3, 3, 5}, []float64{2, 2, 6, 6}, []int{1, 3},
		[]interpolation.Law{interpolation.LawLinearLinear, interpolation.LawLinearLinear})
	if diff := cmp.Diff([]float64{0, 0, 2, 2, 6, 6, 6, 6}, got); diff != "" {
		t.Errorf("Evaluate() mismatch (-want +got):\n%s", diff)
	}

	// a histogram region followed by a linear one
	got = u.Evaluate([]float64{1, 3, 4}, []float64{1, 3, 4}, []int{1, 2},
		[]interpolation.Law{interpolation.LawHistogram, interpolation.LawLinearLinear})
	if diff := cmp.Diff([]float64{1, 1, 1, 3, 3, 4, 0, 0}, got); diff != "" {
		t.Errorf("Evaluate() mismatch (-want +got):\n%s", diff)
	}
}
