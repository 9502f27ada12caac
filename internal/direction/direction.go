package direction

// Direction is one of the four cardinal headings.
type Direction uint8

const (
	North Direction = iota
	East
	South
	West
)

// All returns the headings in clockwise order starting at North.
func All() []Direction {
	return []Direction{North, East, South, West}
}

// Valid reports whether d is one of the four cardinal headings.
func (d Direction) Valid() bool {
	return d <= West
}

// Vector returns the unit displacement of one step in this heading, expressed
// as a (row, column) delta.
func (d Direction) Vector() (dRow, dCol int) {
	switch d {
	case North:
		return -1, 0
	case East:
		return 0, 1
	case South:
		return 1, 0
	case West:
		return 0, -1
	}
	return 0, 0
}

// RotateClockwise returns the heading after a 90 degree right turn.
func (d Direction) RotateClockwise() Direction {
	return (d + 1) % 4
}

// Symbol returns the map character used for a guard facing d.
func (d Direction) Symbol() rune {
	switch d {
	case North:
		return '^'
	case East:
		return '>'
	case South:
		return 'v'
	case West:
		return '<'
	}
	return '?'
}

// FromSymbol maps a guard character back to its heading.
func FromSymbol(r rune) (Direction, bool) {
	switch r {
	case '^':
		return North, true
	case '>':
		return East, true
	case 'v':
		return South, true
	case '<':
		return West, true
	}
	return 0, false
}

func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	}
	return "unknown"
}
