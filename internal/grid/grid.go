package grid

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidDimensions is returned when a grid would have no rows or columns.
	ErrInvalidDimensions = errors.New("grid dimensions must be at least 1x1")
	// ErrOutOfBounds is returned when writing to a position outside the grid.
	ErrOutOfBounds = errors.New("position is outside the grid")
)

// Grid is a rows x cols rectangle of cells stored row-major.
type Grid struct {
	rows  int
	cols  int
	cells []Cell
}

// New creates a grid where every cell is Empty.
func New(rows, cols int) (*Grid, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, rows, cols)
	}
	return &Grid{
		rows:  rows,
		cols:  cols,
		cells: make([]Cell, rows*cols),
	}, nil
}

func (g *Grid) Rows() int { return g.rows }
func (g *Grid) Cols() int { return g.cols }

// Contains reports whether p lies inside the grid.
func (g *Grid) Contains(p Position) bool {
	return p.Row >= 0 && p.Row < g.rows && p.Col >= 0 && p.Col < g.cols
}

func (g *Grid) index(p Position) int {
	return p.Row*g.cols + p.Col
}

// At returns the cell at p. The boolean is false when p is out of bounds.
func (g *Grid) At(p Position) (Cell, bool) {
	if !g.Contains(p) {
		return Cell{}, false
	}
	return g.cells[g.index(p)], true
}

// Set overwrites the cell at p.
func (g *Grid) Set(p Position, c Cell) error {
	if !g.Contains(p) {
		return fmt.Errorf("%w: %s in %dx%d", ErrOutOfBounds, p, g.rows, g.cols)
	}
	g.cells[g.index(p)] = c
	return nil
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]Cell, len(g.cells))
	copy(cells, g.cells)
	return &Grid{rows: g.rows, cols: g.cols, cells: cells}
}

// ResetApproaches forgets every obstruction's recorded approach headings.
func (g *Grid) ResetApproaches() {
	for i := range g.cells {
		if g.cells[i].Kind == Obstruction {
			g.cells[i].Approaches = 0
		}
	}
}

// CountVisited returns the number of cells the guard has occupied, including
// the one it currently stands on.
func (g *Grid) CountVisited() int {
	n := 0
	for _, c := range g.cells {
		if c.Kind == Visited || c.Kind == Guard {
			n++
		}
	}
	return n
}

// VisitedPositions lists the Visited and Guard cells in row-major order.
func (g *Grid) VisitedPositions() []Position {
	return g.positionsOf(func(c Cell) bool { return c.Kind == Visited || c.Kind == Guard })
}

// GuardPositions lists every cell holding a Guard in row-major order.
func (g *Grid) GuardPositions() []Position {
	return g.positionsOf(func(c Cell) bool { return c.Kind == Guard })
}

func (g *Grid) positionsOf(match func(Cell) bool) []Position {
	var out []Position
	for i, c := range g.cells {
		if match(c) {
			out = append(out, Position{Row: i / g.cols, Col: i % g.cols})
		}
	}
	return out
}

// String renders the grid using the map alphabet, with X marking visited cells.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.rows * (g.cols + 1))
	for r := 0; r < g.rows; r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for _, c := range g.cells[r*g.cols : (r+1)*g.cols] {
			sb.WriteRune(c.Symbol())
		}
	}
	return sb.String()
}
