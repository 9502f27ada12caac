package patrol

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/vk/patrolgrid/internal/ctxlog"
	"github.com/vk/patrolgrid/internal/grid"
	"github.com/vk/patrolgrid/internal/search"
	"github.com/vk/patrolgrid/internal/walker"
)

// ErrBaselineLoop means the unmodified map traps the guard. Valid inputs always
// let the guard leave, so this is a fatal input error.
var ErrBaselineLoop = errors.New("guard never leaves the unmodified map")

// Puzzle is a parsed map together with how its loop search should run.
type Puzzle struct {
	Name  string
	Grid  *grid.Grid
	Start grid.Position
	// Workers is the candidate search pool size; below one means one per CPU.
	Workers int
	// Exhaustive tries every free cell instead of only the visited ones.
	Exhaustive bool
}

// Report holds the answers for one puzzle.
type Report struct {
	Name          string          `json:"name"`
	Rows          int             `json:"rows"`
	Cols          int             `json:"cols"`
	Visited       int             `json:"visited"`
	Candidates    int             `json:"candidates"`
	Loops         int             `json:"loops"`
	LoopPositions []grid.Position `json:"loop_positions"`
	Duration      time.Duration   `json:"duration_ns"`
}

// VisitedCount walks the unmodified map and returns the number of distinct
// cells visited, including the start, together with the final grid.
func VisitedCount(g *grid.Grid, start grid.Position) (int, *grid.Grid, error) {
	outcome, final, err := walker.Walk(g, start)
	if err != nil {
		return 0, nil, err
	}
	if outcome.Kind == walker.Looped {
		return 0, nil, fmt.Errorf("%w (after %d transitions)", ErrBaselineLoop, outcome.Steps)
	}
	return outcome.Visited, final, nil
}

// LoopCount runs the baseline walk and then the candidate search.
func LoopCount(ctx context.Context, p Puzzle) (*search.Result, error) {
	_, final, err := VisitedCount(p.Grid, p.Start)
	if err != nil {
		return nil, err
	}
	return search.New(p.Workers).Search(ctx, p.Grid, p.Start, candidatesFor(p, final))
}

// Solve answers both questions for a puzzle.
func Solve(ctx context.Context, p Puzzle) (*Report, error) {
	ctx, logger := ctxlog.With(ctx, "puzzle", p.Name)
	began := time.Now()

	visited, final, err := VisitedCount(p.Grid, p.Start)
	if err != nil {
		return nil, fmt.Errorf("puzzle %q: %w", p.Name, err)
	}
	logger.Debug("Baseline walk finished.", "visited", visited)

	candidates := candidatesFor(p, final)
	searcher := search.New(p.Workers)
	logger.Debug("Searching obstruction candidates.", "candidates", len(candidates), "workers", searcher.Workers(), "exhaustive", p.Exhaustive)

	res, err := searcher.Search(ctx, p.Grid, p.Start, candidates)
	if err != nil {
		return nil, fmt.Errorf("puzzle %q: candidate search failed: %w", p.Name, err)
	}

	report := &Report{
		Name:          p.Name,
		Rows:          p.Grid.Rows(),
		Cols:          p.Grid.Cols(),
		Visited:       visited,
		Candidates:    len(candidates),
		Loops:         res.Loops,
		LoopPositions: res.LoopPositions,
		Duration:      time.Since(began),
	}
	logger.Info("Puzzle solved.", "visited", report.Visited, "loops", report.Loops, "duration", report.Duration)
	return report, nil
}

func candidatesFor(p Puzzle, baseline *grid.Grid) []grid.Position {
	if p.Exhaustive {
		return search.AllCandidates(p.Grid, p.Start)
	}
	return search.Candidates(baseline, p.Start)
}
