// Package core provides the fundamental value types shared by every
// minewise package: Cell, a board coordinate, and CellSet, an unordered
// collection of cells with the set algebra the inference engine is built on.
//
// What:
//
//   - Cell: an immutable (Row, Col) pair with row-major ordering.
//   - CellSet: add/remove/contains, union, difference, subset and equality
//     tests, deep cloning, and a deterministic sorted view.
//
// Why:
//
//   - Constraints over the board are sets of cells; subset resolution is
//     literally CellSet.SubsetOf followed by CellSet.Diff.
//   - Map iteration order in Go is randomized, so every ordering that can
//     leak into results goes through Sorted.
//
// Complexity:
//
//   - Membership, Add, Remove: O(1).
//   - Union, Diff, SubsetOf, Equal, Clone: O(n).
//   - Sorted: O(n log n).
//
// CellSet is not safe for concurrent mutation; each game owns its sets.
package core
