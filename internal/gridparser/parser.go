package gridparser

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/vk/patrolgrid/internal/direction"
	"github.com/vk/patrolgrid/internal/grid"
)

// Parse builds a grid from its text form and returns it together with the
// position of the single guard.
func Parse(text string) (*grid.Grid, grid.Position, error) {
	lines := splitLines(text)
	if len(lines) == 0 {
		return nil, grid.Position{}, &ParseError{Err: ErrEmptyInput}
	}

	width := utf8.RuneCountInString(lines[0])
	if width == 0 {
		return nil, grid.Position{}, &ParseError{Line: 1, Err: ErrEmptyInput, Detail: "first row has no cells"}
	}
	for i, line := range lines {
		if n := utf8.RuneCountInString(line); n != width {
			return nil, grid.Position{}, &ParseError{
				Line:   i + 1,
				Err:    ErrRaggedRows,
				Detail: fmt.Sprintf("expected %d cells, got %d", width, n),
			}
		}
	}

	g, err := grid.New(len(lines), width)
	if err != nil {
		return nil, grid.Position{}, err
	}

	var start grid.Position
	guards := 0
	for row, line := range lines {
		col := 0
		for _, r := range line {
			p := grid.Position{Row: row, Col: col}
			cell, err := cellFor(r)
			if err != nil {
				return nil, grid.Position{}, &ParseError{Line: row + 1, Column: col + 1, Err: err, Detail: fmt.Sprintf("%q", r)}
			}
			if cell.Kind == grid.Guard {
				guards++
				if guards > 1 {
					return nil, grid.Position{}, &ParseError{
						Line:   row + 1,
						Column: col + 1,
						Err:    ErrMultipleGuards,
						Detail: fmt.Sprintf("first guard at line %d, column %d", start.Row+1, start.Col+1),
					}
				}
				start = p
			}
			if err := g.Set(p, cell); err != nil {
				// Unreachable: dimensions were validated above.
				return nil, grid.Position{}, fmt.Errorf("internal error placing cell: %w", err)
			}
			col++
		}
	}

	if guards == 0 {
		return nil, grid.Position{}, &ParseError{Err: ErrNoGuard}
	}
	return g, start, nil
}

// ParseFile reads and parses a map stored on disk.
func ParseFile(path string) (*grid.Grid, grid.Position, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, grid.Position{}, fmt.Errorf("failed to read map file %s: %w", path, err)
	}
	return Parse(string(data))
}

func cellFor(r rune) (grid.Cell, error) {
	switch r {
	case '.':
		return grid.EmptyCell(), nil
	case '#':
		return grid.ObstructionCell(), nil
	}
	if d, ok := direction.FromSymbol(r); ok {
		return grid.GuardCell(d), nil
	}
	return grid.Cell{}, ErrUnknownSymbol
}

// splitLines normalises line endings and drops trailing blank lines.
func splitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	lines := strings.Split(text, "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
