package core

import "fmt"

// Cell identifies one square of the grid by zero-based row and column.
// A Cell is a plain value: comparable, hashable, safe to copy.
type Cell struct {
	Row, Col int
}

// Less reports whether c precedes other in row-major order
// (by row first, then by column). Used for deterministic iteration.
func (c Cell) Less(other Cell) bool {
	if c.Row != other.Row {
		return c.Row < other.Row
	}
	return c.Col < other.Col
}

// String renders the cell as "(row,col)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}
