package search

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sort"
	"sync"
	"time"

	"github.com/vk/patrolgrid/internal/ctxlog"
	"github.com/vk/patrolgrid/internal/grid"
	"github.com/vk/patrolgrid/internal/metrics"
	"github.com/vk/patrolgrid/internal/walker"
	"golang.org/x/sync/errgroup"
)

// ErrCandidateOutOfBounds is returned when a candidate lies outside the grid.
var ErrCandidateOutOfBounds = errors.New("candidate is outside the grid")

// Result aggregates the outcomes of a candidate search.
type Result struct {
	// Evaluated is the number of candidates actually simulated.
	Evaluated int
	// Skipped counts candidates that were not legal placements (the start cell
	// or an existing obstruction).
	Skipped int
	// Loops is the number of candidates that trap the guard.
	Loops int
	// LoopPositions holds the trapping candidates in row-major order.
	LoopPositions []grid.Position
	Duration      time.Duration
}

// Searcher evaluates candidates on a fixed-size pool of workers.
type Searcher struct {
	workers int
}

// New creates a searcher. A worker count below one selects one worker per CPU.
func New(workers int) *Searcher {
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	return &Searcher{workers: workers}
}

// Workers returns the size of the worker pool.
func (s *Searcher) Workers() int {
	return s.workers
}

// evaluation is the owned result a worker reports for one candidate.
type evaluation struct {
	pos     grid.Position
	skipped bool
	outcome walker.Outcome
}

// Search simulates the guard once per candidate, each time on a private copy
// of pristine with an obstruction added at the candidate, and counts the runs
// that loop.
func (s *Searcher) Search(ctx context.Context, pristine *grid.Grid, start grid.Position, candidates []grid.Position) (*Result, error) {
	logger := ctxlog.FromContext(ctx)
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if cell, ok := pristine.At(start); !ok || cell.Kind != grid.Guard {
		return nil, fmt.Errorf("%w: %s", walker.ErrNoGuardAtStart, start)
	}
	for _, p := range candidates {
		if !pristine.Contains(p) {
			return nil, fmt.Errorf("%w: %s in %dx%d", ErrCandidateOutOfBounds, p, pristine.Rows(), pristine.Cols())
		}
	}

	began := time.Now()
	logger.Debug("Candidate search started.", "candidates", len(candidates), "workers", s.workers)

	jobs := make(chan grid.Position)
	results := make(chan evaluation, s.workers)
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer close(jobs)
		for _, p := range candidates {
			select {
			case jobs <- p:
			case <-gctx.Done():
				return gctx.Err()
			}
		}
		return nil
	})

	var pool sync.WaitGroup
	pool.Add(s.workers)
	for i := 0; i < s.workers; i++ {
		workerID := i
		g.Go(func() error {
			defer pool.Done()
			return s.worker(gctx, pristine, start, jobs, results, workerID)
		})
	}
	go func() {
		pool.Wait()
		close(results)
	}()

	res := &Result{}
	for ev := range results {
		switch {
		case ev.skipped:
			res.Skipped++
			metrics.ObserveCandidate("skipped")
		case ev.outcome.Kind == walker.Looped:
			res.Evaluated++
			res.Loops++
			res.LoopPositions = append(res.LoopPositions, ev.pos)
			metrics.ObserveCandidate("loop")
		default:
			res.Evaluated++
			metrics.ObserveCandidate("exit")
		}
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(res.LoopPositions, func(i, j int) bool {
		return res.LoopPositions[i].Less(res.LoopPositions[j])
	})
	res.Duration = time.Since(began)
	metrics.ObserveSearch(res.Duration)
	logger.Debug("Candidate search finished.", "evaluated", res.Evaluated, "skipped", res.Skipped, "loops", res.Loops, "duration", res.Duration)
	return res, nil
}

// worker is the processing loop for a single concurrent worker.
func (s *Searcher) worker(ctx context.Context, pristine *grid.Grid, start grid.Position, jobs <-chan grid.Position, results chan<- evaluation, workerID int) error {
	logger := ctxlog.FromContext(ctx).With("workerID", workerID)
	logger.Debug("Worker started.")

	for p := range jobs {
		if err := ctx.Err(); err != nil {
			return err
		}

		ev, err := evaluate(pristine, start, p)
		if err != nil {
			logger.Error("Candidate evaluation failed.", "candidate", p.String(), "error", err)
			return fmt.Errorf("candidate %s: %w", p, err)
		}
		if ev.skipped {
			logger.Debug("Candidate skipped.", "candidate", p.String())
		} else {
			logger.Debug("Candidate evaluated.", "candidate", p.String(), "outcome", ev.outcome.Kind.String())
		}

		select {
		case results <- ev:
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	logger.Debug("Worker finished.")
	return nil
}

// evaluate runs the guard with an extra obstruction at p.
func evaluate(pristine *grid.Grid, start grid.Position, p grid.Position) (evaluation, error) {
	cell, _ := pristine.At(p)
	if p == start || cell.Kind == grid.Obstruction {
		return evaluation{pos: p, skipped: true}, nil
	}
	outcome, _, err := walker.Walk(pristine, start, walker.WithObstruction(p))
	if err != nil {
		return evaluation{}, err
	}
	return evaluation{pos: p, outcome: outcome}, nil
}
