package grid

import (
	"fmt"

	"github.com/vk/patrolgrid/internal/direction"
)

// Position is a (row, column) coordinate on the map.
type Position struct {
	Row int
	Col int
}

// Add returns the position displaced by the given deltas.
func (p Position) Add(dRow, dCol int) Position {
	return Position{Row: p.Row + dRow, Col: p.Col + dCol}
}

// Step returns the neighbouring position one step towards d.
func (p Position) Step(d direction.Direction) Position {
	return p.Add(d.Vector())
}

// Less orders positions row-major.
func (p Position) Less(other Position) bool {
	if p.Row != other.Row {
		return p.Row < other.Row
	}
	return p.Col < other.Col
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}
