// Package config defines the format-agnostic model of a run manifest, the
// batch of puzzles to solve, along with the Loader interface implemented by
// concrete configuration formats such as HCL.
package config
