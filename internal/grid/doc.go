// Package grid holds the fixed-size map the guard patrols: positions, the
// tagged cell states and a row-major container with bounds checking.
//
// A Grid never changes shape after construction. Every simulation run works on
// its own Clone, so the per-run approach bookkeeping stored on obstructions is
// never shared between runs.
package grid
