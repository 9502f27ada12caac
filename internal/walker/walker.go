package walker

import (
	"errors"
	"fmt"

	"github.com/vk/patrolgrid/internal/direction"
	"github.com/vk/patrolgrid/internal/grid"
	"github.com/vk/patrolgrid/internal/metrics"
)

var (
	// ErrNoGuardAtStart is returned when the start position does not hold the guard.
	ErrNoGuardAtStart = errors.New("start position does not hold the guard")
	// ErrStepBudgetExceeded is returned if a run neither exits nor detects a
	// loop within the transition budget of its grid.
	ErrStepBudgetExceeded = errors.New("walk exceeded its step budget")
	// ErrInvalidObstruction is returned when an extra obstruction would be
	// placed outside the grid or on the guard's start cell.
	ErrInvalidObstruction = errors.New("invalid obstruction placement")
)

// Option adjusts the walker's private grid before the run starts.
type Option func(w *Walker) error

// WithObstruction places a fresh obstruction at p on the walker's own copy of
// the grid, leaving the caller's grid untouched.
func WithObstruction(p grid.Position) Option {
	return func(w *Walker) error {
		if p == w.pos || !w.g.Contains(p) {
			return fmt.Errorf("%w: %s", ErrInvalidObstruction, p)
		}
		return w.g.Set(p, grid.ObstructionCell())
	}
}

// Walker owns a private copy of a grid and the guard's current state.
type Walker struct {
	g       *grid.Grid
	pos     grid.Position
	heading direction.Direction
	steps   int
	budget  int
	done    bool
	outcome Outcome
}

// New prepares a run starting from the guard at start. The supplied grid is
// cloned and never modified.
func New(g *grid.Grid, start grid.Position, opts ...Option) (*Walker, error) {
	cell, ok := g.At(start)
	if !ok || cell.Kind != grid.Guard {
		return nil, fmt.Errorf("%w: %s", ErrNoGuardAtStart, start)
	}

	own := g.Clone()
	own.ResetApproaches()

	w := &Walker{
		g:       own,
		pos:     start,
		heading: cell.Heading,
		budget:  StepBudget(g.Rows(), g.Cols()),
	}
	for _, opt := range opts {
		if err := opt(w); err != nil {
			return nil, err
		}
	}
	return w, nil
}

// StepBudget is an upper bound on the transitions of any run on a rows x cols
// grid. There are at most 4*rows*cols distinct (position, heading) states, so
// a state repeats within that many transitions, and the repeating cycle hits
// an already-approached obstruction within one more lap.
func StepBudget(rows, cols int) int {
	return 8*rows*cols + 1
}

func (w *Walker) Position() grid.Position      { return w.pos }
func (w *Walker) Heading() direction.Direction { return w.heading }
func (w *Walker) Steps() int                   { return w.steps }
func (w *Walker) Grid() *grid.Grid             { return w.g }

// Step applies a single transition. It returns the outcome and true once the
// run has terminated; further calls keep returning the same outcome.
func (w *Walker) Step() (Outcome, bool) {
	if w.done {
		return w.outcome, true
	}
	w.steps++

	next := w.pos.Step(w.heading)
	cell, inside := w.g.At(next)
	if !inside {
		_ = w.g.Set(w.pos, grid.VisitedCell())
		return w.finish(Outcome{Kind: Exited, Visited: w.g.CountVisited(), Steps: w.steps})
	}

	switch cell.Kind {
	case grid.Obstruction:
		if cell.Approaches.Has(w.heading) {
			return w.finish(Outcome{Kind: Looped, Steps: w.steps})
		}
		cell.Approaches = cell.Approaches.With(w.heading)
		_ = w.g.Set(next, cell)
		w.heading = w.heading.RotateClockwise()
		_ = w.g.Set(w.pos, grid.GuardCell(w.heading))
	default:
		_ = w.g.Set(w.pos, grid.VisitedCell())
		_ = w.g.Set(next, grid.GuardCell(w.heading))
		w.pos = next
	}
	return Outcome{}, false
}

func (w *Walker) finish(o Outcome) (Outcome, bool) {
	w.done = true
	w.outcome = o
	metrics.ObserveWalk(o.Kind.String(), o.Steps)
	return o, true
}

// Run steps until the run terminates.
func (w *Walker) Run() (Outcome, error) {
	for w.steps < w.budget {
		if o, done := w.Step(); done {
			return o, nil
		}
	}
	return Outcome{}, fmt.Errorf("%w: %d transitions on a %dx%d grid", ErrStepBudgetExceeded, w.steps, w.g.Rows(), w.g.Cols())
}

// Walk runs the guard from start on a private copy of g and returns the
// outcome together with the final state of that copy.
func Walk(g *grid.Grid, start grid.Position, opts ...Option) (Outcome, *grid.Grid, error) {
	w, err := New(g, start, opts...)
	if err != nil {
		return Outcome{}, nil, err
	}
	o, err := w.Run()
	if err != nil {
		return Outcome{}, nil, err
	}
	return o, w.Grid(), nil
}
