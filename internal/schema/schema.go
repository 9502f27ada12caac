// Package schema holds the HCL decoding schema of run manifests.
package schema

import "github.com/hashicorp/hcl/v2"

// Puzzle represents a `puzzle` block. Attributes are kept as expressions so
// they can be evaluated against the manifest's own evaluation context.
type Puzzle struct {
	Name       string         `hcl:"name,label"`
	Map        hcl.Expression `hcl:"map"`
	Workers    hcl.Expression `hcl:"workers,optional"`
	Exhaustive hcl.Expression `hcl:"exhaustive,optional"`
}

// Manifest represents the top-level structure of a manifest file. Blocks
// other than `puzzle` are rejected.
type Manifest struct {
	Puzzles []*Puzzle `hcl:"puzzle,block"`
}
