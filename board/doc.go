// Package board implements the hidden minesweeper grid the deduction
// engine plays against: dimensions, randomly placed mines, point queries.
//
// What:
//
//   - Board wraps a height×width grid with a fixed set of mines, placed at
//     construction from an injected random source and immutable thereafter.
//   - IsMine answers point queries; NearbyMines counts mines in the Moore
//     neighborhood (the up-to-8 adjacent cells, clipped to grid bounds).
//   - Won compares a flagged set against the true mine set.
//
// Why:
//
//   - The engine never sees the mine layout — it only consumes the
//     neighbor counts a driver relays after each reveal. Keeping the board
//     behind this narrow query surface is what makes the deduction honest.
//
// Options:
//
//   - WithRand: inject a *rand.Rand for reproducible mine placement.
//     Defaults to a time-seeded source.
//
// Errors:
//
//   - ErrDimensions: height or width below 1.
//   - ErrMineCount: mine count negative or above height×width.
//   - ErrCellOutOfBounds: point query outside the grid.
//
// Complexity: construction O(H×W) expected; IsMine O(1); NearbyMines O(1)
// (at most 8 neighbors); Won O(|mines|).
package board
