package numeric

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsClose(t *testing.T) {
	assert.True(t, IsClose(1, 1))
	assert.True(t, IsClose(1, 1+1e-15))
	assert.True(t, IsClose(0, 1e-15))
	assert.False(t, IsClose(1, 1.001))
	assert.False(t, IsClose(0, 1e-10))

	assert.True(t, IsCloseWithin(100, 100.5, 0.01, 1e-10))
	assert.False(t, IsCloseWithin(100, 102, 0.01, 1e-10))
	assert.True(t, IsCloseWithin(0, 1e-11, 0.01, 1e-10))
}

func TestIsFinite(t *testing.T) {
	assert.True(t, IsFinite(0))
	assert.False(t, IsFinite(math.NaN()))
	assert.False(t, IsFinite(math.Inf(-1)))

	assert.True(t, AllFinite([]float64{1, 2, 3}))
	assert.True(t, AllFinite(nil))
	assert.False(t, AllFinite([]float64{1, math.Inf(1)}))
}
