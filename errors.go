package piecewise

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidTable matches every *InvalidTableError.
	ErrInvalidTable = &InvalidTableError{}
	// ErrNotLinearised is returned by operations that need linear-linear tables.
	ErrNotLinearised = errors.New("piecewise: table is not linearised")
	// ErrInvalidBoundaries is returned for integration boundaries that are
	// not sorted, unique and finite.
	ErrInvalidBoundaries = errors.New("piecewise: invalid integration boundaries")
	// ErrUnsupportedLaw is returned by Variance for regions other than
	// histogram and linear-linear.
	ErrUnsupportedLaw = errors.New("piecewise: operation not available for interpolation law")
	// ErrIncompatibleGrid is returned when two tables cannot be brought on a
	// common grid.
	ErrIncompatibleGrid = errors.New("piecewise: incompatible grids")
)

// InvalidTableError is returned when the data given for a table is
// inconsistent. The table is never created in that case.
type InvalidTableError struct {
	Field   string
	Message string
}

func (e *InvalidTableError) Error() string {
	return fmt.Sprintf("piecewise: invalid table %s: %s", e.Field, e.Message)
}

func (e *InvalidTableError) Is(target error) bool {
	_, ok := target.(*InvalidTableError)
	return ok
}

func newInvalidTableError(field, format string, args ...any) *InvalidTableError {
	return &InvalidTableError{
		Field:   field,
		Message: fmt.Sprintf(format, args...),
	}
}
