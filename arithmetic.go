package piecewise

import (
	"fmt"
	"slices"

	"gonum.org/v1/gonum/floats"

	"github.com/Maxime2/piecewise/unionisation"
)

// Shift adds a constant to a linearised table.
func (t *Table) Shift(value float64) (*Table, error) {
	if !t.linearised {
		return nil, fmt.Errorf("%w: cannot shift by %v", ErrNotLinearised, value)
	}
	y := slices.Clone(t.y)
	floats.AddConst(value, y)
	return t.with(t.x, y)
}

// Scale multiplies the values of the table by a constant. The laws are
// kept; scaling by 0 fails for regions interpolated on ln(y).
func (t *Table) Scale(value float64) (*Table, error) {
	y := make([]float64, len(t.y))
	floats.ScaleTo(y, value, t.y)
	return t.with(t.x, y)
}

// Divide divides the values of the table by a constant.
func (t *Table) Divide(value float64) (*Table, error) {
	return t.Scale(1 / value)
}

// Negate returns -t.
func (t *Table) Negate() (*Table, error) {
	return t.Scale(-1)
}

// Add returns t + other. Both tables must be linearised. When the grids
// differ, the result is defined on their union and is 0 where neither
// table is defined.
func (t *Table) Add(other *Table) (*Table, error) {
	return t.combine(other, func(a, b float64) float64 { return a + b })
}

// Subtract returns t - other with the same rules as Add.
func (t *Table) Subtract(other *Table) (*Table, error) {
	return t.combine(other, func(a, b float64) float64 { return a - b })
}

func (t *Table) with(x, y []float64) (*Table, error) {
	return New(x, y, WithRegions(t.boundaries, t.laws), WithLogger(t.logger))
}

func (t *Table) combine(other *Table, op func(a, b float64) float64) (*Table, error) {
	if !t.linearised || !other.linearised {
		return nil, fmt.Errorf("%w: both operands must be linear-linear", ErrNotLinearised)
	}

	if slices.Equal(t.x, other.x) {
		y := make([]float64, len(t.y))
		for i := range y {
			y[i] = op(t.y[i], other.y[i])
		}
		return t.with(t.x, y)
	}

	var u unionisation.Unioniser
	if err := u.Add(t.x); err != nil {
		return nil, err
	}
	if err := u.Add(other.x); err != nil {
		return nil, err
	}
	x := u.Unionise()
	if !u.IsCompatible(t.x) || !u.IsCompatible(other.x) {
		return nil, fmt.Errorf("%w: %v and %v", ErrIncompatibleGrid, t.Domain(), other.Domain())
	}
	y := u.Evaluate(t.x, t.y, t.boundaries, t.laws)
	right := u.Evaluate(other.x, other.y, other.boundaries, other.laws)
	for i := range y {
		y[i] = op(y[i], right[i])
	}
	x, y = removeFlatJumps(x, y)

	t.logger.Debug("combined tables on union grid",
		"left", len(t.x), "right", len(other.x), "union", len(x))
	return New(x, y, WithLogger(t.logger))
}

// removeFlatJumps drops one point of every jump whose two values are equal.
func removeFlatJumps(x, y []float64) ([]float64, []float64) {
	rx, ry := x[:0:0], y[:0:0]
	for i := range x {
		if i > 0 && x[i] == x[i-1] && y[i] == y[i-1] {
			continue
		}
		rx = append(rx, x[i])
		ry = append(ry, y[i])
	}
	return rx, ry
}
