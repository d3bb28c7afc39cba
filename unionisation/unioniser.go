package unionisation

import (
	"errors"
	"fmt"
	"slices"
	"sort"

	"github.com/Maxime2/piecewise/interpolation"
)

// ErrInvalidGrid is returned by Add for a grid that cannot be unionised.
var ErrInvalidGrid = errors.New("unionisation: invalid grid")

// Unioniser builds the union of several grids and re-evaluates tables
// defined on any of them on the union grid.
//
// Where two grids do not start (or end) at the same x, the union gets a
// jump at the innermost start (or end) point, so that a table that is zero
// outside its own grid keeps its discontinuity there.
type Unioniser struct {
	grids [][]float64
	union []float64
}

// Add registers a grid for the next call to Unionise.
func (u *Unioniser) Add(grid []float64) error {
	if len(grid) < 2 {
		return fmt.Errorf("%w: %d points, at least 2 are required", ErrInvalidGrid, len(grid))
	}
	if !slices.IsSorted(grid) {
		return fmt.Errorf("%w: grid is not sorted", ErrInvalidGrid)
	}
	i := slices.IndexFunc(u.grids, func(g []float64) bool { return len(g) >= len(grid) })
	if i < 0 {
		i = len(u.grids)
	}
	u.grids = slices.Insert(u.grids, i, grid)
	return nil
}

// Unionise merges the registered grids, smallest first, and returns the
// union grid. The registered grids are consumed.
func (u *Unioniser) Unionise() []float64 {
	if len(u.grids) == 0 {
		return u.union
	}
	u.union = slices.Clone(u.grids[0])
	for _, grid := range u.grids[1:] {
		u.union = merge(grid, u.union)
	}
	u.grids = u.grids[:0]
	return u.union
}

// Grid returns the last union grid.
func (u *Unioniser) Grid() []float64 {
	return u.union
}

// Reset forgets the registered grids and the union grid.
func (u *Unioniser) Reset() {
	u.grids = u.grids[:0]
	u.union = nil
}

func merge(first, second []float64) []float64 {
	grid := Unionise(first, second)

	if first[0] != second[0] {
		grid = insertJump(grid, max(first[0], second[0]))
	}
	if a, b := first[len(first)-1], second[len(second)-1]; a != b {
		grid = insertJump(grid, min(a, b))
	}
	return grid
}

func insertJump(grid []float64, x float64) []float64 {
	i := sort.SearchFloat64s(grid, x)
	if i+1 < len(grid) && grid[i+1] == x {
		return grid
	}
	return slices.Insert(grid, i, x)
}

// count returns how often x appears in the union grid.
func (u *Unioniser) count(x float64) int {
	lower := sort.SearchFloat64s(u.union, x)
	upper := sort.Search(len(u.union), func(i int) bool { return u.union[i] > x })
	return upper - lower
}

// IsCompatible reports whether Evaluate can be used for a table on grid:
// every x of the grid is in the union grid, every jump of the grid is a
// jump of the union grid, and the grid start and end points are jumps of
// the union grid unless they are its own start and end points.
func (u *Unioniser) IsCompatible(grid []float64) bool {
	if len(grid) == 0 || len(u.union) == 0 {
		return false
	}
	for _, x := range grid {
		if _, found := slices.BinarySearch(u.union, x); !found {
			return false
		}
	}
	for i := 1; i < len(grid); i++ {
		if grid[i] == grid[i-1] && u.count(grid[i]) < 2 {
			return false
		}
	}
	front, back := grid[0], grid[len(grid)-1]
	if sort.SearchFloat64s(u.union, front) != 0 && u.count(front) < 2 {
		return false
	}
	if sort.SearchFloat64s(u.union, back) != len(u.union)-1 && u.count(back) < 2 {
		return false
	}
	return true
}

// Evaluate returns the values of a table on the union grid. The table is
// given by its grid, values, region boundaries and region laws; empty
// boundaries stand for a single linear-linear region. Values outside the
// table are 0. The table grid must be compatible with the union grid.
func (u *Unioniser) Evaluate(x, y []float64, boundaries []int, laws []interpolation.Law) []float64 {
	result := make([]float64, len(u.union))
	if len(x) == 0 || len(u.union) == 0 {
		return result
	}
	if len(boundaries) == 0 {
		boundaries = []int{len(x) - 1}
		laws = []interpolation.Law{interpolation.LawLinearLinear}
	}

	k := sort.SearchFloat64s(u.union, x[0])
	if k+1 < len(u.union) && u.union[k+1] == x[0] {
		// the table starts after the jump
		k++
	}
	t, region := 0, 0
	for ; k < len(u.union); k++ {
		v := u.union[k]
		if v < x[t] {
			result[k] = laws[region].Interpolate(v, x[t-1], x[t], y[t-1], y[t])
			continue
		}
		result[k] = y[t]
		t++
		if t == len(x) {
			break
		}
		if t > boundaries[region] && region+1 < len(boundaries) {
			region++
		}
	}
	return result
}
