package board

import (
	"fmt"
	"strings"

	"minewise/core"
)

// mooreOffsets lists the 8 neighbor offsets of the Moore neighborhood:
// N, NE, E, SE, S, SW, W, NW.
var mooreOffsets = [8][2]int{
	{-1, 0}, {-1, 1}, {0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1},
}

// Board is a hidden minesweeper grid. It is immutable once built: the mine
// set is fixed at construction and every query method is read-only.
type Board struct {
	height, width int
	mines         core.CellSet
}

// New constructs a Board with the given dimensions and exactly mineCount
// mines placed uniformly at random from the injected source.
// Returns ErrDimensions if height or width is below 1, ErrMineCount if
// mineCount is negative or exceeds height*width.
// Expected complexity: O(H×W) (rejection sampling over distinct cells).
func New(height, width, mineCount int, opts ...Option) (*Board, error) {
	if height < 1 || width < 1 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrDimensions, height, width)
	}
	if mineCount < 0 || mineCount > height*width {
		return nil, fmt.Errorf("%w: got %d on %dx%d", ErrMineCount, mineCount, height, width)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	mines := core.NewCellSet()
	for mines.Len() < mineCount {
		c := core.Cell{Row: o.Rand.Intn(height), Col: o.Rand.Intn(width)}
		mines.Add(c)
	}

	return &Board{height: height, width: width, mines: mines}, nil
}

// Height returns the number of rows.
func (b *Board) Height() int { return b.height }

// Width returns the number of columns.
func (b *Board) Width() int { return b.width }

// MineCount returns the number of mines on the board.
func (b *Board) MineCount() int { return b.mines.Len() }

// InBounds reports whether c lies within the grid.
func (b *Board) InBounds(c core.Cell) bool {
	return c.Row >= 0 && c.Row < b.height && c.Col >= 0 && c.Col < b.width
}

// IsMine reports whether c holds a mine.
// Returns ErrCellOutOfBounds for cells outside the grid.
func (b *Board) IsMine(c core.Cell) (bool, error) {
	if !b.InBounds(c) {
		return false, fmt.Errorf("%w: %v on %dx%d", ErrCellOutOfBounds, c, b.height, b.width)
	}
	return b.mines.Contains(c), nil
}

// NearbyMines returns the number of mines among the up-to-8 Moore neighbors
// of c, excluding c itself. Neighbors outside the grid are ignored.
// Returns ErrCellOutOfBounds for cells outside the grid.
func (b *Board) NearbyMines(c core.Cell) (int, error) {
	if !b.InBounds(c) {
		return 0, fmt.Errorf("%w: %v on %dx%d", ErrCellOutOfBounds, c, b.height, b.width)
	}
	count := 0
	for _, d := range mooreOffsets {
		n := core.Cell{Row: c.Row + d[0], Col: c.Col + d[1]}
		if b.InBounds(n) && b.mines.Contains(n) {
			count++
		}
	}
	return count, nil
}

// Won reports whether flagged matches the mine set exactly.
func (b *Board) Won(flagged core.CellSet) bool {
	return b.mines.Equal(flagged)
}

// Mines returns a copy of the mine set. Intended for drivers and tests;
// a deduction engine must never consult it.
func (b *Board) Mines() core.CellSet {
	return b.mines.Clone()
}

// String renders the mine layout as ASCII art, one row per grid row,
// mines marked X.
func (b *Board) String() string {
	var sb strings.Builder
	rule := strings.Repeat("--", b.width) + "-\n"
	for r := 0; r < b.height; r++ {
		sb.WriteString(rule)
		for c := 0; c < b.width; c++ {
			if b.mines.Contains(core.Cell{Row: r, Col: c}) {
				sb.WriteString("|X")
			} else {
				sb.WriteString("| ")
			}
		}
		sb.WriteString("|\n")
	}
	sb.WriteString(rule)
	return sb.String()
}
