// Package piecewise represents one dimensional functions tabulated on an
// ordered grid and split into regions, each region interpolated with one
// law from a fixed catalogue.
package piecewise

import (
	"fmt"
	"log/slog"
	"math"
	"slices"
	"sort"

	"github.com/Maxime2/piecewise/domain"
	"github.com/Maxime2/piecewise/internal/numeric"
	"github.com/Maxime2/piecewise/interpolation"
)

// Table is a tabulated function. The grid may hold jumps (an x value given
// twice) which always coincide with a region boundary. A Table is never
// modified after construction; operations return new tables.
type Table struct {
	x, y       []float64
	boundaries []int
	laws       []interpolation.Law
	regions    []region
	linearised bool
	logger     *slog.Logger
}

// Option configures a Table under construction.
type Option func(*options)

type options struct {
	boundaries []int
	laws       []interpolation.Law
	law        interpolation.Law
	logger     *slog.Logger
}

// WithRegions splits the table in regions. boundaries holds the index of
// the last point of each region and laws the law of each region.
func WithRegions(boundaries []int, laws []interpolation.Law) Option {
	return func(o *options) {
		o.boundaries = boundaries
		o.laws = laws
	}
}

// WithLaw makes a single region table interpolated with law.
func WithLaw(law interpolation.Law) Option {
	return func(o *options) { o.law = law }
}

// WithLogger sets the logger used for diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// New creates a table from x and y values. Without options the table has a
// single linear-linear region. The slices are copied.
func New(x, y []float64, opts ...Option) (*Table, error) {
	o := options{law: interpolation.LawLinearLinear, logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}

	t := &Table{
		x:      slices.Clone(x),
		y:      slices.Clone(y),
		logger: o.logger,
	}
	if o.boundaries == nil && o.laws == nil {
		t.boundaries = []int{len(x) - 1}
		t.laws = []interpolation.Law{o.law}
	} else {
		t.boundaries = slices.Clone(o.boundaries)
		t.laws = slices.Clone(o.laws)
	}

	if err := t.processBoundaries(); err != nil {
		if e, ok := err.(*InvalidTableError); ok {
			o.logger.Debug("invalid table", "field", e.Field, "reason", e.Message,
				"points", len(x), "regions", len(t.boundaries))
		}
		return nil, err
	}
	if err := t.generateRegions(); err != nil {
		return nil, err
	}
	return t, nil
}

// processBoundaries verifies the grid and moves or inserts region
// boundaries so that every jump coincides with the end of a region.
func (t *Table) processBoundaries() error {
	n := len(t.x)
	if n < 2 {
		return newInvalidTableError("x", "%d points, at least 2 are required", n)
	}
	if len(t.y) != n {
		return newInvalidTableError("y", "%d values for %d x values", len(t.y), n)
	}
	if len(t.boundaries) == 0 {
		return newInvalidTableError("boundaries", "at least one region is required")
	}
	if len(t.boundaries) != len(t.laws) {
		return newInvalidTableError("boundaries", "%d boundaries for %d interpolation laws",
			len(t.boundaries), len(t.laws))
	}
	if last := t.boundaries[len(t.boundaries)-1]; last != n-1 {
		return newInvalidTableError("boundaries", "last boundary %d does not point to the last x value %d", last, n-1)
	}
	if !sort.IntsAreSorted(t.boundaries) || t.boundaries[0] < 1 {
		return newInvalidTableError("boundaries", "%v is not a strictly increasing list of region ends", t.boundaries)
	}
	for i := 1; i < len(t.boundaries); i++ {
		if t.boundaries[i] == t.boundaries[i-1] {
			return newInvalidTableError("boundaries", "%v is not a strictly increasing list of region ends", t.boundaries)
		}
	}
	for i, l := range t.laws {
		if !l.Valid() {
			return newInvalidTableError("interpolants", "region %d has an invalid law %d", i, int(l))
		}
	}
	if !numeric.AllFinite(t.x) {
		return newInvalidTableError("x", "values must be finite")
	}
	if !numeric.AllFinite(t.y) {
		return newInvalidTableError("y", "values must be finite")
	}
	if !slices.IsSorted(t.x) {
		return newInvalidTableError("x", "values are not in ascending order")
	}
	if t.x[0] == t.x[1] {
		return newInvalidTableError("x", "a jump cannot occur at the beginning of the grid")
	}
	if t.x[n-2] == t.x[n-1] {
		return newInvalidTableError("x", "a jump cannot occur at the end of the grid")
	}

	for i := 1; i < n-2; i++ {
		if t.x[i] != t.x[i+1] {
			continue
		}
		if t.x[i+1] == t.x[i+2] {
			return newInvalidTableError("x", "x = %v is present at least three times", t.x[i])
		}
		k, found := slices.BinarySearch(t.boundaries, i)
		switch {
		case found && k+1 < len(t.boundaries) && t.boundaries[k+1] == i+1:
			// the region [i, i+1] has zero width
			t.boundaries = slices.Delete(t.boundaries, k+1, k+2)
			t.laws = slices.Delete(t.laws, k+1, k+2)
		case found:
		case t.boundaries[k] == i+1:
			t.boundaries[k] = i
		default:
			t.boundaries = slices.Insert(t.boundaries, k, i)
			t.laws = slices.Insert(t.laws, k, t.laws[k])
		}
	}
	return nil
}

// generateRegions builds the per-region views of the grid.
func (t *Table) generateRegions() error {
	t.regions = make([]region, 0, len(t.boundaries))
	t.linearised = true
	start := 0
	for k, end := range t.boundaries {
		if end-start < 1 {
			return newInvalidTableError("boundaries", "region %d has fewer than 2 points", k)
		}
		r := region{
			law:   t.laws[k],
			start: start,
			x:     t.x[start : end+1 : end+1],
			y:     t.y[start : end+1 : end+1],
		}
		if err := r.verify(); err != nil {
			return newInvalidTableError("interpolants", "region %d: %v", k, err)
		}
		t.regions = append(t.regions, r)
		t.linearised = t.linearised && r.law == interpolation.LawLinearLinear

		start = end
		if end+1 < len(t.x) && t.x[end] == t.x[end+1] {
			start = end + 1
		}
	}
	return nil
}

// Evaluate returns the value of the table at x, or 0 outside the grid. At
// a jump the value after the jump is returned.
func (t *Table) Evaluate(x float64) float64 {
	if math.IsNaN(x) {
		return x
	}
	if len(t.regions) == 1 {
		return t.regions[0].evaluate(x)
	}
	i := sort.Search(len(t.x), func(k int) bool { return t.x[k] > x })
	r := sort.SearchInts(t.boundaries, i)
	if r == len(t.regions) {
		r--
	}
	return t.regions[r].evaluate(x)
}

// X returns a copy of the grid.
func (t *Table) X() []float64 { return slices.Clone(t.x) }

// Y returns a copy of the values.
func (t *Table) Y() []float64 { return slices.Clone(t.y) }

// Boundaries returns a copy of the region boundaries.
func (t *Table) Boundaries() []int { return slices.Clone(t.boundaries) }

// Laws returns a copy of the region interpolation laws.
func (t *Table) Laws() []interpolation.Law { return slices.Clone(t.laws) }

func (t *Table) NumberPoints() int { return len(t.x) }

func (t *Table) NumberRegions() int { return len(t.regions) }

// IsLinearised reports whether every region is linear-linear.
func (t *Table) IsLinearised() bool { return t.linearised }

// Domain returns the interval spanned by the grid.
func (t *Table) Domain() domain.Interval {
	return domain.Interval{Lower: t.x[0], Upper: t.x[len(t.x)-1]}
}

// Equal reports whether two tables have the same points and regions.
func (t *Table) Equal(other *Table) bool {
	return slices.Equal(t.x, other.x) && slices.Equal(t.y, other.y) &&
		slices.Equal(t.boundaries, other.boundaries) && slices.Equal(t.laws, other.laws)
}

func (t *Table) String() string {
	s := "\nTabulated function:\n"
	s = fmt.Sprintf("%s\tpoints: %v; regions: %v; linearised: %v\n", s, len(t.x), len(t.regions), t.linearised)
	s = fmt.Sprintf("%s\tboundaries: %v\n", s, t.boundaries)
	s = fmt.Sprintf("%s\tinterpolants: %v\n", s, t.laws)
	s = fmt.Sprintf("%s\tx: %v\n", s, t.x)
	s = fmt.Sprintf("%s\ty: %v\n", s, t.y)
	return s
}
