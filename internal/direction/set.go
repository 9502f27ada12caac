package direction

import (
	"math/bits"
	"strings"
)

// Set is a bitset of headings. The zero value is the empty set.
type Set uint8

// Has reports whether d is a member of the set.
func (s Set) Has(d Direction) bool {
	return s&(1<<d) != 0
}

// With returns a copy of the set with d added.
func (s Set) With(d Direction) Set {
	return s | 1<<d
}

// Len returns the number of headings in the set.
func (s Set) Len() int {
	return bits.OnesCount8(uint8(s))
}

// IsEmpty reports whether the set has no members.
func (s Set) IsEmpty() bool {
	return s == 0
}

func (s Set) String() string {
	var names []string
	for _, d := range All() {
		if s.Has(d) {
			names = append(names, d.String())
		}
	}
	return "{" + strings.Join(names, ",") + "}"
}
