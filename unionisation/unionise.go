// Package unionisation merges sorted grids while preserving the jumps
// (duplicated x values) of each grid, and re-evaluates tabulated data on
// the merged grid.
package unionisation

// Unionise returns the sorted union of two sorted grids. A value present
// in both grids appears as many times as in the grid holding it most, so
// the jumps of either grid survive and Unionise(g, g) equals g.
func Unionise(first, second []float64) []float64 {
	grid := make([]float64, 0, len(first)+len(second))
	i, j := 0, 0
	for i < len(first) && j < len(second) {
		switch {
		case first[i] < second[j]:
			grid = append(grid, first[i])
			i++
		case second[j] < first[i]:
			grid = append(grid, second[j])
			j++
		default:
			grid = append(grid, first[i])
			i++
			j++
		}
	}
	grid = append(grid, first[i:]...)
	return append(grid, second[j:]...)
}
