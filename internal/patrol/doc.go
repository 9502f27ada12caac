// Package patrol answers the two questions asked of a map: how many distinct
// cells the guard visits before leaving it, and how many single-cell
// obstruction placements would trap the guard in a loop instead.
package patrol
