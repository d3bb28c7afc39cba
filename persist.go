package piecewise

import (
	"encoding/json"
	"slices"

	"github.com/Maxime2/piecewise/interpolation"
)

// Dump is a serializable representation of a Table. Laws are written by
// name.
type Dump struct {
	X            []float64           `json:"x" yaml:"x"`
	Y            []float64           `json:"y" yaml:"y"`
	Boundaries   []int               `json:"boundaries" yaml:"boundaries"`
	Interpolants []interpolation.Law `json:"interpolants" yaml:"interpolants"`
}

// FromDump restores a table from a dump. The dump may come from an
// untrusted source and goes through the same checks as New; it is never
// reordered.
func FromDump(d *Dump, opts ...Option) (*Table, error) {
	opts = append([]Option{WithRegions(d.Boundaries, d.Interpolants)}, opts...)
	return New(d.X, d.Y, opts...)
}

// Dump generates a serializable dump for a table.
func (t *Table) Dump() *Dump {
	return &Dump{
		X:            slices.Clone(t.x),
		Y:            slices.Clone(t.y),
		Boundaries:   slices.Clone(t.boundaries),
		Interpolants: slices.Clone(t.laws),
	}
}

// MarshalJSON implements the json.Marshaler interface for Table.
func (t *Table) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Dump())
}

// UnmarshalJSON implements the json.Unmarshaler interface for Table.
func (t *Table) UnmarshalJSON(bytes []byte) error {
	var dump Dump
	if err := json.Unmarshal(bytes, &dump); err != nil {
		return err
	}

	var opts []Option
	if t.logger != nil {
		opts = append(opts, WithLogger(t.logger))
	}
	restored, err := FromDump(&dump, opts...)
	if err != nil {
		return err
	}
	*t = *restored
	return nil
}
