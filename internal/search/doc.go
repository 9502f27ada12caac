// Package search counts the obstruction placements that trap the guard in a
// loop.
//
// Candidates are the cells the guard visits on the unmodified map, minus its
// start cell: an obstruction anywhere else is never reached and cannot change
// the path. Every candidate is an independent run against its own copy of the
// pristine grid, so candidates are spread over a pool of workers that share
// nothing but read-only inputs and report owned results to a single collector.
package search
