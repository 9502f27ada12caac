package hcl

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/patrolgrid/internal/config"
	"github.com/vk/patrolgrid/internal/ctxlog"
	"github.com/vk/patrolgrid/internal/fsutil"
	"github.com/vk/patrolgrid/internal/schema"
)

var (
	// ErrNoManifests is returned when none of the paths contain a manifest.
	ErrNoManifests = errors.New("no .hcl manifests found")
	// ErrDuplicatePuzzle is returned when two puzzle blocks share a name.
	ErrDuplicatePuzzle = errors.New("duplicate puzzle name")
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL configuration loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses every .hcl manifest under the given paths into one model.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	files, err := fsutil.CollectFiles(paths, ".hcl")
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w in %v", ErrNoManifests, paths)
	}
	logger.Debug("Discovered HCL files.", "count", len(files))

	model := &config.Model{}
	seen := make(map[string]string)
	parser := hclparse.NewParser()

	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		var root schema.Manifest
		if diags := gohcl.DecodeBody(hclFile.Body, nil, &root); diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}

		evalCtx := newEvalContext(filepath.Dir(file))
		for _, block := range root.Puzzles {
			if prev, dup := seen[block.Name]; dup {
				return nil, fmt.Errorf("%w %q in %s (first declared in %s)", ErrDuplicatePuzzle, block.Name, file, prev)
			}
			seen[block.Name] = file

			p, err := l.translatePuzzle(ctx, block, file, evalCtx)
			if err != nil {
				return nil, err
			}
			model.Puzzles = append(model.Puzzles, p)
		}
	}

	logger.Debug("HCL loading complete.", "puzzles", len(model.Puzzles))
	return model, nil
}

// translatePuzzle evaluates a puzzle block into the agnostic model.
func (l *Loader) translatePuzzle(ctx context.Context, block *schema.Puzzle, file string, evalCtx *hcl.EvalContext) (*config.Puzzle, error) {
	p := &config.Puzzle{Name: block.Name, Source: file}

	ok, err := decodeExpr(ctx, block.Map, evalCtx, &p.Map)
	if err != nil {
		return nil, fmt.Errorf("puzzle %q in %s: map: %w", block.Name, file, err)
	}
	if !ok {
		return nil, fmt.Errorf("puzzle %q in %s: map must not be null", block.Name, file)
	}

	var workers int
	if ok, err := decodeExpr(ctx, block.Workers, evalCtx, &workers); err != nil {
		return nil, fmt.Errorf("puzzle %q in %s: workers: %w", block.Name, file, err)
	} else if ok {
		if workers < 0 {
			return nil, fmt.Errorf("puzzle %q in %s: workers must not be negative, got %d", block.Name, file, workers)
		}
		p.Workers = &workers
	}

	var exhaustive bool
	if ok, err := decodeExpr(ctx, block.Exhaustive, evalCtx, &exhaustive); err != nil {
		return nil, fmt.Errorf("puzzle %q in %s: exhaustive: %w", block.Name, file, err)
	} else if ok {
		p.Exhaustive = &exhaustive
	}

	return p, nil
}
