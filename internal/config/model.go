package config

// Model is the unified, format-agnostic representation of a run manifest.
type Model struct {
	Puzzles []*Puzzle
}

// Puzzle is one map to solve.
type Puzzle struct {
	Name string
	// Map is the raw map text.
	Map string
	// Source is the file the puzzle was declared in.
	Source string
	// Workers overrides the candidate search pool size when non-nil.
	Workers *int
	// Exhaustive overrides candidate pruning when non-nil.
	Exhaustive *bool
}
