package gridparser

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/patrolgrid/internal/direction"
	"github.com/vk/patrolgrid/internal/grid"
	"github.com/vk/patrolgrid/internal/testutil"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		name          string
		text          string
		expectedErr   error
		expectedRows  int
		expectedCols  int
		expectedStart grid.Position
		expectedDir   direction.Direction
	}{
		{
			name:          "single guard cell",
			text:          "^",
			expectedRows:  1,
			expectedCols:  1,
			expectedStart: grid.Position{Row: 0, Col: 0},
			expectedDir:   direction.North,
		},
		{
			name:          "guard facing east with trailing newline",
			text:          "..#\n.>.\n...\n",
			expectedRows:  3,
			expectedCols:  3,
			expectedStart: grid.Position{Row: 1, Col: 1},
			expectedDir:   direction.East,
		},
		{
			name:          "windows line endings",
			text:          "#.\r\n<.\r\n",
			expectedRows:  2,
			expectedCols:  2,
			expectedStart: grid.Position{Row: 1, Col: 0},
			expectedDir:   direction.West,
		},
		{
			name:          "guard facing south",
			text:          "..v",
			expectedRows:  1,
			expectedCols:  3,
			expectedStart: grid.Position{Row: 0, Col: 2},
			expectedDir:   direction.South,
		},
		{
			name:        "error - empty input",
			text:        "",
			expectedErr: ErrEmptyInput,
		},
		{
			name:        "error - whitespace only",
			text:        "\n\n",
			expectedErr: ErrEmptyInput,
		},
		{
			name:        "error - ragged rows",
			text:        "...\n.^\n...",
			expectedErr: ErrRaggedRows,
		},
		{
			name:        "error - unknown symbol",
			text:        "..@\n.^.",
			expectedErr: ErrUnknownSymbol,
		},
		{
			name:        "error - no guard",
			text:        "...\n.#.",
			expectedErr: ErrNoGuard,
		},
		{
			name:        "error - two guards",
			text:        "^..\n..>",
			expectedErr: ErrMultipleGuards,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			g, start, err := Parse(tc.text)

			if tc.expectedErr != nil {
				require.ErrorIs(t, err, tc.expectedErr)
				var parseErr *ParseError
				require.ErrorAs(t, err, &parseErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.expectedRows, g.Rows())
			assert.Equal(t, tc.expectedCols, g.Cols())
			assert.Equal(t, tc.expectedStart, start)

			cell, ok := g.At(start)
			require.True(t, ok)
			assert.Equal(t, grid.Guard, cell.Kind)
			assert.Equal(t, tc.expectedDir, cell.Heading)
		})
	}
}

func TestParse_ErrorLocation(t *testing.T) {
	_, _, err := Parse("...\n.^.\n..x")

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, 3, parseErr.Line)
	assert.Equal(t, 3, parseErr.Column)
	assert.Contains(t, err.Error(), "line 3, column 3")
}

func TestParse_SampleRoundTrip(t *testing.T) {
	g, start, err := Parse(testutil.SampleMap)
	require.NoError(t, err)

	assert.Equal(t, 10, g.Rows())
	assert.Equal(t, 10, g.Cols())
	assert.Equal(t, grid.Position{Row: 6, Col: 4}, start)
	assert.Equal(t, testutil.SampleMap, g.String()+"\n")
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "map.txt")
	require.NoError(t, os.WriteFile(path, []byte(".#\n^."), 0600))

	g, start, err := ParseFile(path)
	require.NoError(t, err)
	assert.Equal(t, grid.Position{Row: 1, Col: 0}, start)
	assert.Equal(t, 2, g.Rows())

	_, _, err = ParseFile(filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
}
