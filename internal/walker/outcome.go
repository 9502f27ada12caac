package walker

import "fmt"

// Kind classifies how a run terminated.
type Kind uint8

const (
	Exited Kind = iota + 1
	Looped
)

func (k Kind) String() string {
	switch k {
	case Exited:
		return "exited"
	case Looped:
		return "looped"
	}
	return "unknown"
}

// Outcome is the terminal classification of a run.
type Outcome struct {
	Kind Kind
	// Visited is the number of distinct cells occupied before exiting. It is
	// zero for looped runs.
	Visited int
	// Steps counts transitions, both moves and turns.
	Steps int
}

func (o Outcome) String() string {
	if o.Kind == Exited {
		return fmt.Sprintf("exited(visited=%d, steps=%d)", o.Visited, o.Steps)
	}
	return fmt.Sprintf("%s(steps=%d)", o.Kind, o.Steps)
}
