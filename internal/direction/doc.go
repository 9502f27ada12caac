// Package direction defines the four cardinal headings the guard can face,
// their unit displacement vectors and the fixed clockwise turning rule.
package direction
