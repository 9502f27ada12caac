package app

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/vk/patrolgrid/internal/config"
	"github.com/vk/patrolgrid/internal/ctxlog"
	"github.com/vk/patrolgrid/internal/gridparser"
	"github.com/vk/patrolgrid/internal/patrol"
)

// LoadPuzzles reads the configured grid path. A directory or .hcl file is
// treated as a manifest; anything else is a single plain-text map.
func (a *App) LoadPuzzles() error {
	logger := ctxlog.FromContext(a.ctx)
	path := a.config.GridPath
	logger.Debug("Loading puzzles...", "grid_path", path)

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to access grid path: %w", err)
	}

	if info.IsDir() || filepath.Ext(path) == ".hcl" {
		model, err := a.loader.Load(a.ctx, path)
		if err != nil {
			return fmt.Errorf("failed to load manifest: %w", err)
		}
		puzzles := make([]patrol.Puzzle, 0, len(model.Puzzles))
		for _, cp := range model.Puzzles {
			p, err := a.buildPuzzle(cp)
			if err != nil {
				return err
			}
			puzzles = append(puzzles, p)
		}
		a.puzzles = puzzles
	} else {
		g, start, err := gridparser.ParseFile(path)
		if err != nil {
			return fmt.Errorf("failed to parse map %s: %w", path, err)
		}
		a.puzzles = []patrol.Puzzle{{
			Name:       strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)),
			Grid:       g,
			Start:      start,
			Workers:    a.config.WorkerCount,
			Exhaustive: a.config.Exhaustive,
		}}
	}

	logger.Info("Puzzles loaded successfully.", "puzzles_found", len(a.puzzles))
	return nil
}

// buildPuzzle parses a manifest entry, applying CLI defaults for any setting
// the manifest leaves unset.
func (a *App) buildPuzzle(cp *config.Puzzle) (patrol.Puzzle, error) {
	g, start, err := gridparser.Parse(cp.Map)
	if err != nil {
		return patrol.Puzzle{}, fmt.Errorf("puzzle %q in %s: %w", cp.Name, cp.Source, err)
	}

	p := patrol.Puzzle{
		Name:       cp.Name,
		Grid:       g,
		Start:      start,
		Workers:    a.config.WorkerCount,
		Exhaustive: a.config.Exhaustive,
	}
	if cp.Workers != nil {
		p.Workers = *cp.Workers
	}
	if cp.Exhaustive != nil {
		p.Exhaustive = *cp.Exhaustive
	}
	return p, nil
}
