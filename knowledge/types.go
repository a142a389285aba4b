// Package knowledge defines options and sentinel errors for the inference
// engine.
package knowledge

import (
	"errors"
	"math/rand"
	"time"
)

// Sentinel errors for knowledge operations.
var (
	// ErrDimensions indicates a non-positive engine height or width.
	ErrDimensions = errors.New("knowledge: height and width must be at least 1")
	// ErrCellOutOfBounds indicates a cell outside the engine's grid.
	ErrCellOutOfBounds = errors.New("knowledge: cell out of bounds")
	// ErrSentenceCount indicates a sentence count outside [0, |cells|].
	ErrSentenceCount = errors.New("knowledge: sentence count must be between 0 and the number of cells")
	// ErrContradiction indicates a derived sentence demanding more mines
	// than it has cells. Valid observations can never produce one; it
	// signals a corrupt driver or a propagation bug and is surfaced loudly.
	ErrContradiction = errors.New("knowledge: contradictory sentence derived")
)

// Option configures Engine construction via functional arguments.
type Option func(*Options)

// Options holds tunable parameters for the Engine.
type Options struct {
	// Rand is the source RandomMove draws from.
	Rand *rand.Rand
}

// DefaultOptions returns Options with a time-seeded random source.
func DefaultOptions() Options {
	return Options{
		Rand: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// WithRand injects a custom random source, making RandomMove reproducible.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r != nil {
			o.Rand = r
		}
	}
}
