package core

import (
	"sort"
	"strings"
)

// CellSet is an unordered set of cells. The zero value is not usable;
// construct with NewCellSet. Mutating methods operate in place, algebraic
// methods (Union, Diff, Clone, Sorted) never touch their receivers.
type CellSet map[Cell]struct{}

// NewCellSet builds a set containing the given cells.
func NewCellSet(cells ...Cell) CellSet {
	s := make(CellSet, len(cells))
	for _, c := range cells {
		s[c] = struct{}{}
	}
	return s
}

// Add inserts c into the set.
func (s CellSet) Add(c Cell) { s[c] = struct{}{} }

// Remove deletes c from the set; no-op if absent.
func (s CellSet) Remove(c Cell) { delete(s, c) }

// Contains reports membership of c.
func (s CellSet) Contains(c Cell) bool {
	_, ok := s[c]
	return ok
}

// Len returns the number of cells in the set.
func (s CellSet) Len() int { return len(s) }

// Clone returns an independent copy of the set.
func (s CellSet) Clone() CellSet {
	out := make(CellSet, len(s))
	for c := range s {
		out[c] = struct{}{}
	}
	return out
}

// Union returns a new set containing every cell of s and other.
func (s CellSet) Union(other CellSet) CellSet {
	out := make(CellSet, len(s)+len(other))
	for c := range s {
		out[c] = struct{}{}
	}
	for c := range other {
		out[c] = struct{}{}
	}
	return out
}

// Diff returns a new set containing the cells of s absent from other.
func (s CellSet) Diff(other CellSet) CellSet {
	out := make(CellSet, len(s))
	for c := range s {
		if !other.Contains(c) {
			out[c] = struct{}{}
		}
	}
	return out
}

// SubsetOf reports whether every cell of s belongs to other.
// The empty set is a subset of everything.
func (s CellSet) SubsetOf(other CellSet) bool {
	if len(s) > len(other) {
		return false
	}
	for c := range s {
		if !other.Contains(c) {
			return false
		}
	}
	return true
}

// Equal reports whether s and other contain exactly the same cells.
func (s CellSet) Equal(other CellSet) bool {
	return len(s) == len(other) && s.SubsetOf(other)
}

// Sorted returns the cells in row-major ascending order.
// This is the only sanctioned way to iterate when order matters.
func (s CellSet) Sorted() []Cell {
	out := make([]Cell, 0, len(s))
	for c := range s {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}

// String renders the set as "{(r,c), ...}" in sorted order.
func (s CellSet) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, c := range s.Sorted() {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(c.String())
	}
	b.WriteByte('}')
	return b.String()
}
