package search

import "github.com/vk/patrolgrid/internal/grid"

// Candidates lists, in row-major order, the cells visited by a baseline run
// except the start cell.
func Candidates(baseline *grid.Grid, start grid.Position) []grid.Position {
	visited := baseline.VisitedPositions()
	out := make([]grid.Position, 0, len(visited))
	for _, p := range visited {
		if p != start {
			out = append(out, p)
		}
	}
	return out
}

// AllCandidates lists every cell of the pristine grid that could hold a new
// obstruction: everything except the start cell and existing obstructions.
func AllCandidates(pristine *grid.Grid, start grid.Position) []grid.Position {
	var out []grid.Position
	for r := 0; r < pristine.Rows(); r++ {
		for c := 0; c < pristine.Cols(); c++ {
			p := grid.Position{Row: r, Col: c}
			if cell, _ := pristine.At(p); p != start && cell.Kind != grid.Obstruction {
				out = append(out, p)
			}
		}
	}
	return out
}
