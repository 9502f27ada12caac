package app

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"github.com/vk/patrolgrid/internal/config"
	"github.com/vk/patrolgrid/internal/ctxlog"
	"github.com/vk/patrolgrid/internal/patrol"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	ctx        context.Context
	outW       io.Writer
	logger     *slog.Logger
	config     *Config
	loader     config.Loader
	puzzles    []patrol.Puzzle
	httpServer *http.Server
}

// NewApp is the constructor for the main application. Results are written to
// outW and logs to logW; the logger is isolated from the global one.
func NewApp(outW, logW io.Writer, cfg *Config, loader config.Loader) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	return &App{
		ctx:    ctxlog.WithLogger(context.Background(), logger),
		outW:   outW,
		logger: logger,
		config: cfg,
		loader: loader,
	}
}

// Puzzles returns the puzzles loaded so far. This is primarily for testing.
func (a *App) Puzzles() []patrol.Puzzle {
	return a.puzzles
}
