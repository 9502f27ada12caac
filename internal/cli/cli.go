package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/vk/patrolgrid/internal/app"
)

// ExitError carries the process exit code for a failed invocation.
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string {
	return e.Message
}

func usageError(format string, args ...any) *ExitError {
	return &ExitError{Code: 2, Message: fmt.Sprintf(format, args...)}
}

const usageHeader = `
PatrolGrid - simulates a patrolling guard and counts loop-inducing obstructions.

Usage:
  patrolgrid [options] [GRID_PATH]

Arguments:
  GRID_PATH
    A plain-text map, a single .hcl manifest, or a directory of manifests.

Options:
`

// flags holds the raw values bound to the flag set.
type flags struct {
	grid, g         string
	healthcheckPort int
	logFormat       string
	logLevel        string
	workers         int
	exhaustive      bool
	publishURL      string
}

func newFlagSet(output io.Writer) (*flag.FlagSet, *flags) {
	f := &flags{}
	fs := flag.NewFlagSet("patrolgrid", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprint(output, usageHeader)
		fs.PrintDefaults()
	}

	fs.StringVar(&f.grid, "grid", "", "Path to the map file, manifest, or manifest directory.")
	fs.StringVar(&f.g, "g", "", "Shorthand for -grid.")
	fs.IntVar(&f.healthcheckPort, "healthcheck-port", 0, "Port serving /health and /metrics. 0 is disabled.")
	fs.StringVar(&f.logFormat, "log-format", "text", "Log output format: 'text' or 'json'.")
	fs.StringVar(&f.logLevel, "log-level", "info", "Logging level: 'debug', 'info', 'warn' or 'error'.")
	fs.IntVar(&f.workers, "workers", 0, "Concurrent candidate workers. 0 uses one per CPU.")
	fs.BoolVar(&f.exhaustive, "exhaustive", false, "Try every empty cell as a candidate, not only the guard's path.")
	fs.StringVar(&f.publishURL, "publish-url", "", "socket.io endpoint receiving one report per puzzle. Empty disables publishing.")
	return fs, f
}

// gridPath picks -grid, then -g, then the first positional argument.
func (f *flags) gridPath(fs *flag.FlagSet) string {
	switch {
	case f.grid != "":
		return f.grid
	case f.g != "":
		return f.g
	default:
		return fs.Arg(0)
	}
}

// Parse processes command-line arguments. The boolean result reports that
// help was printed and the program should exit cleanly.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	fs, f := newFlagSet(output)
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, usageError("%s", err)
	}

	path := f.gridPath(fs)
	if path == "" {
		slog.Debug("No grid path provided, printing usage.")
		fs.Usage()
		return nil, true, nil
	}

	logFormat := strings.ToLower(f.logFormat)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, usageError("invalid log-format %q: must be 'text' or 'json'", f.logFormat)
	}
	logLevel := strings.ToLower(f.logLevel)
	switch logLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, false, usageError("invalid log-level %q: must be 'debug', 'info', 'warn', or 'error'", f.logLevel)
	}

	cfg, err := app.NewConfig(app.Config{
		GridPath:        path,
		LogFormat:       logFormat,
		LogLevel:        logLevel,
		HealthcheckPort: f.healthcheckPort,
		WorkerCount:     f.workers,
		Exhaustive:      f.exhaustive,
		PublishURL:      f.publishURL,
	})
	if err != nil {
		return nil, false, usageError("%s", err)
	}

	slog.Debug("CLI arguments parsed.", "config", cfg)
	return cfg, false, nil
}
