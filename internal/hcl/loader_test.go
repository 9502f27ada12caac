package hcl

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/patrolgrid/internal/testutil"
)

func TestLoader_Load(t *testing.T) {
	// --- Arrange ---
	dir := testutil.WriteFiles(t, map[string]string{
		"maps/sample.txt": testutil.SampleMap,
		"main.hcl": `
			puzzle "sample" {
				map        = file("maps/sample.txt")
				workers    = 3
				exhaustive = true
			}

			puzzle "inline" {
				map = trimspace("\n.#\n^.\n")
			}
		`,
		"more/cpu.hcl": `
			puzzle "cpu" {
				map     = "^"
				workers = max(1, cpu_count)
			}
		`,
	})

	// --- Act ---
	model, err := NewLoader().Load(testutil.Context(t), dir)

	// --- Assert ---
	require.NoError(t, err)
	require.Len(t, model.Puzzles, 3)

	byName := map[string]int{}
	for i, p := range model.Puzzles {
		byName[p.Name] = i
	}

	sample := model.Puzzles[byName["sample"]]
	assert.Equal(t, testutil.SampleMap, sample.Map)
	require.NotNil(t, sample.Workers)
	assert.Equal(t, 3, *sample.Workers)
	require.NotNil(t, sample.Exhaustive)
	assert.True(t, *sample.Exhaustive)
	assert.Equal(t, filepath.Join(dir, "main.hcl"), sample.Source)

	inline := model.Puzzles[byName["inline"]]
	assert.Equal(t, ".#\n^.", inline.Map)
	assert.Nil(t, inline.Workers, "omitted attributes stay unset")
	assert.Nil(t, inline.Exhaustive)

	cpu := model.Puzzles[byName["cpu"]]
	require.NotNil(t, cpu.Workers)
	assert.Equal(t, runtime.NumCPU(), *cpu.Workers)
}

func TestLoader_Errors(t *testing.T) {
	testCases := []struct {
		name        string
		files       map[string]string
		errContains string
	}{
		{
			name:        "invalid syntax",
			files:       map[string]string{"main.hcl": `puzzle "a" {`},
			errContains: "failed to parse HCL file",
		},
		{
			name:        "missing map attribute",
			files:       map[string]string{"main.hcl": `puzzle "a" {}`},
			errContains: "failed to decode HCL file",
		},
		{
			name:        "unknown block",
			files:       map[string]string{"main.hcl": `step "a" "b" {}`},
			errContains: "failed to decode HCL file",
		},
		{
			name:        "missing map file",
			files:       map[string]string{"main.hcl": `puzzle "a" { map = file("nope.txt") }`},
			errContains: "nope.txt",
		},
		{
			name:        "wrong workers type",
			files:       map[string]string{"main.hcl": `puzzle "a" { map = "^" workers = "many" }`},
			errContains: "workers",
		},
		{
			name:        "negative workers",
			files:       map[string]string{"main.hcl": `puzzle "a" { map = "^" workers = -2 }`},
			errContains: "must not be negative",
		},
		{
			name: "duplicate names",
			files: map[string]string{
				"a.hcl": `puzzle "same" { map = "^" }`,
				"b.hcl": `puzzle "same" { map = "^" }`,
			},
			errContains: "duplicate puzzle name",
		},
		{
			name:        "no manifests",
			files:       map[string]string{"map.txt": "^"},
			errContains: "no .hcl manifests found",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			dir := testutil.WriteFiles(t, tc.files)

			_, err := NewLoader().Load(testutil.Context(t), dir)

			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.errContains)
		})
	}
}
