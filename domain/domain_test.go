package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInterval(t *testing.T) {
	d, err := NewInterval(-1, 1)
	require.NoError(t, err)

	for _, x := range []float64{-1, 0, 1} {
		assert.True(t, d.IsInside(x), "%v", x)
		assert.True(t, d.Contains(x), "%v", x)
	}
	assert.False(t, d.IsInside(-1.5))
	assert.False(t, d.IsInside(1.5))

	assert.True(t, d.IsContained(0))
	assert.False(t, d.IsContained(-1))
	assert.False(t, d.IsContained(1))
	assert.Equal(t, "[-1, 1]", d.String())

	point, err := NewInterval(2, 2)
	require.NoError(t, err)
	assert.True(t, point.IsInside(2))
	assert.False(t, point.IsContained(2))
}

func TestIntervalErrors(t *testing.T) {
	for _, limits := range [][2]float64{{1, -1}, {math.NaN(), 1}, {0, math.Inf(1)}} {
		_, err := NewInterval(limits[0], limits[1])
		assert.ErrorIs(t, err, ErrInvalidDomain, "%v", limits)
	}
}

func TestOpen(t *testing.T) {
	var d Domain = Open{}
	assert.True(t, d.Contains(-1e300))
	assert.True(t, d.Contains(math.Inf(1)))
}
