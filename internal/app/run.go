package app

import (
	"context"
	"fmt"

	"github.com/vk/patrolgrid/internal/ctxlog"
	"github.com/vk/patrolgrid/internal/patrol"
	"github.com/vk/patrolgrid/internal/publish"
)

// Run loads the configured puzzles, solves them in order and writes one
// result line per puzzle. The first failing puzzle stops the run.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.ctx = ctx
	a.logger.Debug("App.Run method started.")

	if a.config.HealthcheckPort > 0 {
		a.healthCheckServer()
		defer a.closeHealthCheckServer()
	}

	if err := a.LoadPuzzles(); err != nil {
		return err
	}
	if len(a.puzzles) == 0 {
		a.logger.Warn("No puzzles found, nothing to solve.")
		return nil
	}

	publisher, err := a.newPublisher(ctx)
	if err != nil {
		return err
	}
	defer publisher.Close()

	a.logger.Info("🚀 Solving puzzles...", "count", len(a.puzzles))
	for _, p := range a.puzzles {
		report, err := patrol.Solve(ctx, p)
		if err != nil {
			return fmt.Errorf("execution failed: %w", err)
		}
		fmt.Fprintf(a.outW, "%s\tvisited=%d\tloops=%d\n", report.Name, report.Visited, report.Loops)

		if err := publisher.Publish(ctx, report); err != nil {
			return fmt.Errorf("failed to publish report for %q: %w", report.Name, err)
		}
	}
	a.logger.Info("🏁 Execution finished.")

	a.logger.Debug("App.Run method finished.")
	return nil
}

func (a *App) newPublisher(ctx context.Context) (publish.Publisher, error) {
	if a.config.PublishURL == "" {
		return publish.Nop{}, nil
	}
	p, err := publish.Dial(ctx, a.config.PublishURL, publish.Options{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect publisher: %w", err)
	}
	return p, nil
}
