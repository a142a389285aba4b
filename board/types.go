// Package board defines options and sentinel errors for Board construction
// and queries.
package board

import (
	"errors"
	"math/rand"
	"time"
)

// Sentinel errors for board operations.
var (
	// ErrDimensions indicates a non-positive height or width.
	ErrDimensions = errors.New("board: height and width must be at least 1")
	// ErrMineCount indicates a mine count outside [0, height*width].
	ErrMineCount = errors.New("board: mine count must be between 0 and height*width")
	// ErrCellOutOfBounds indicates a point query outside the grid.
	ErrCellOutOfBounds = errors.New("board: cell out of bounds")
)

// Option configures Board construction via functional arguments.
type Option func(*Options)

// Options holds tunable parameters for Board construction.
type Options struct {
	// Rand is the source used for mine placement.
	Rand *rand.Rand
}

// DefaultOptions returns Options with a time-seeded random source.
func DefaultOptions() Options {
	return Options{
		Rand: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// WithRand injects a custom random source, making placement reproducible.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r != nil {
			o.Rand = r
		}
	}
}
