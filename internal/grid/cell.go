package grid

import "github.com/vk/patrolgrid/internal/direction"

// Kind tags the variant held by a Cell.
type Kind uint8

const (
	Empty Kind = iota
	Visited
	Guard
	Obstruction
)

func (k Kind) String() string {
	switch k {
	case Empty:
		return "empty"
	case Visited:
		return "visited"
	case Guard:
		return "guard"
	case Obstruction:
		return "obstruction"
	}
	return "unknown"
}

// Cell is a single map square.
type Cell struct {
	Kind Kind
	// Heading is the direction the guard faces. Only meaningful for Guard.
	Heading direction.Direction
	// Approaches records every heading from which the guard has bumped into
	// this cell during the current run. Only meaningful for Obstruction.
	Approaches direction.Set
}

func EmptyCell() Cell   { return Cell{Kind: Empty} }
func VisitedCell() Cell { return Cell{Kind: Visited} }

// GuardCell returns a cell occupied by the guard facing d.
func GuardCell(d direction.Direction) Cell {
	return Cell{Kind: Guard, Heading: d}
}

// ObstructionCell returns an obstruction that has not been approached yet.
func ObstructionCell() Cell {
	return Cell{Kind: Obstruction}
}

// Symbol returns the character used when rendering the cell.
func (c Cell) Symbol() rune {
	switch c.Kind {
	case Visited:
		return 'X'
	case Guard:
		return c.Heading.Symbol()
	case Obstruction:
		return '#'
	}
	return '.'
}
