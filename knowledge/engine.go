package knowledge

import (
	"fmt"
	"math/rand"

	"minewise/core"
)

// mooreOffsets lists the 8 neighbor offsets of the Moore neighborhood.
var mooreOffsets = [8][2]int{
	{-1, 0}, {-1, 1}, {0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1},
}

// Engine accumulates certain knowledge about a height×width hidden grid.
// It exclusively owns its sentence collection and derived sets; sentences
// never reach into each other — all propagation is the engine iterating
// its own collection.
//
// Invariants, restored before every public call returns:
//
//   - safes ∩ mines = ∅
//   - movesMade ⊆ safes
//   - every sentence's cells are disjoint from safes ∪ mines
//   - no two sentences are equal
type Engine struct {
	height, width int
	rnd           *rand.Rand

	movesMade core.CellSet
	safes     core.CellSet
	mines     core.CellSet
	knowledge []*Sentence
}

// New constructs an Engine for a height×width grid.
// Returns ErrDimensions if either dimension is below 1.
func New(height, width int, opts ...Option) (*Engine, error) {
	if height < 1 || width < 1 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrDimensions, height, width)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Engine{
		height:    height,
		width:     width,
		rnd:       o.Rand,
		movesMade: core.NewCellSet(),
		safes:     core.NewCellSet(),
		mines:     core.NewCellSet(),
	}, nil
}

// inBounds reports whether c lies within the engine's grid.
func (e *Engine) inBounds(c core.Cell) bool {
	return c.Row >= 0 && c.Row < e.height && c.Col >= 0 && c.Col < e.width
}

// MarkMine records the external fact that c is a mine and propagates it
// through every sentence. Returns ErrCellOutOfBounds for cells outside the
// grid and ErrContradiction for a cell already proven safe; state is
// untouched on failure. Re-marking a known mine is a no-op.
func (e *Engine) MarkMine(c core.Cell) error {
	if !e.inBounds(c) {
		return fmt.Errorf("%w: %v on %dx%d", ErrCellOutOfBounds, c, e.height, e.width)
	}
	if e.safes.Contains(c) {
		return fmt.Errorf("%w: %v already proven safe", ErrContradiction, c)
	}
	e.markMine(c)
	return nil
}

// MarkSafe records the external fact that c is safe and propagates it
// through every sentence. Returns ErrCellOutOfBounds for cells outside the
// grid and ErrContradiction for a cell already proven a mine; state is
// untouched on failure. Re-marking a known safe cell is a no-op.
func (e *Engine) MarkSafe(c core.Cell) error {
	if !e.inBounds(c) {
		return fmt.Errorf("%w: %v on %dx%d", ErrCellOutOfBounds, c, e.height, e.width)
	}
	if e.mines.Contains(c) {
		return fmt.Errorf("%w: %v already proven a mine", ErrContradiction, c)
	}
	e.markSafe(c)
	return nil
}

// markMine cascades a proven mine through the derived set and all sentences.
func (e *Engine) markMine(c core.Cell) {
	e.mines.Add(c)
	for _, s := range e.knowledge {
		s.MarkMine(c)
	}
}

// markSafe cascades a proven safe cell through the derived set and all sentences.
func (e *Engine) markSafe(c core.Cell) {
	e.safes.Add(c)
	for _, s := range e.knowledge {
		s.MarkSafe(c)
	}
}

// hasEqual reports whether an equal sentence is already in the knowledge base.
func (e *Engine) hasEqual(s *Sentence) bool {
	for _, k := range e.knowledge {
		if k.Equals(s) {
			return true
		}
	}
	return false
}

// AddKnowledge folds one observation into the knowledge base: the cell c
// was revealed and count of its Moore neighbors are mines. Called once per
// successful reveal. The observation becomes a sentence over the still
// unresolved neighbors (the count adjusted for mines already proven), and
// resolution then runs to a fixpoint, so every derivable fact is in the
// derived sets before the call returns.
//
// Returns ErrCellOutOfBounds for a cell outside the grid and
// ErrContradiction if the observation stream is inconsistent.
func (e *Engine) AddKnowledge(c core.Cell, count int) error {
	if !e.inBounds(c) {
		return fmt.Errorf("%w: %v on %dx%d", ErrCellOutOfBounds, c, e.height, e.width)
	}
	if e.mines.Contains(c) {
		return fmt.Errorf("%w: revealed cell %v already proven a mine", ErrContradiction, c)
	}

	e.movesMade.Add(c)
	e.markSafe(c)

	// Moore neighborhood clipped to the grid, minus the cell itself.
	neighbors := core.NewCellSet()
	for _, d := range mooreOffsets {
		n := core.Cell{Row: c.Row + d[0], Col: c.Col + d[1]}
		if e.inBounds(n) {
			neighbors.Add(n)
		}
	}

	// Already-resolved neighbors carry no information as set members, but
	// known mines among them still count toward the observed total.
	adjusted := count
	unresolved := core.NewCellSet()
	for n := range neighbors {
		switch {
		case e.mines.Contains(n):
			adjusted--
		case e.safes.Contains(n):
			// resolved, nothing to account for
		default:
			unresolved.Add(n)
		}
	}

	if adjusted < 0 || adjusted > unresolved.Len() {
		return fmt.Errorf("%w: reveal of %v reports %d nearby mines, %d unaccounted over %d unresolved neighbors",
			ErrContradiction, c, count, adjusted, unresolved.Len())
	}
	if unresolved.Len() > 0 {
		// The range check above guarantees the constructor cannot fail.
		s, err := NewSentence(unresolved, adjusted)
		if err != nil {
			return err
		}
		if !e.hasEqual(s) {
			e.knowledge = append(e.knowledge, s)
		}
	}

	return e.Resolve()
}

// Resolve runs the inference rules to exhaustion: direct resolution,
// subset resolution, cleanup, repeated until a full pass changes nothing.
// AddKnowledge calls it automatically; calling it again on a stable engine
// is a no-op. Returns ErrContradiction if an impossible sentence is
// derived (more mines demanded than cells available).
//
// Termination: cells move from unresolved to resolved and never back, the
// grid is finite, and duplicate sentences are rejected, so each pass either
// makes measurable progress or ends the loop.
func (e *Engine) Resolve() error {
	for {
		changed := false

		// Direct resolution: collect first, then apply, so that every mark
		// cascades through the full collection — including the sentence
		// that produced it.
		mineCands := core.NewCellSet()
		safeCands := core.NewCellSet()
		for _, s := range e.knowledge {
			for c := range s.KnownMines() {
				if !e.mines.Contains(c) {
					mineCands.Add(c)
				}
			}
			for c := range s.KnownSafes() {
				if !e.safes.Contains(c) {
					safeCands.Add(c)
				}
			}
		}
		for _, c := range mineCands.Sorted() {
			e.markMine(c)
			changed = true
		}
		for _, c := range safeCands.Sorted() {
			e.markSafe(c)
			changed = true
		}

		// Subset resolution: A ⊆ B yields the remainder sentence
		// (B.cells − A.cells, B.count − A.count).
		var derived []*Sentence
		for i, a := range e.knowledge {
			for j, b := range e.knowledge {
				if i == j || !a.cells.SubsetOf(b.cells) {
					continue
				}
				diff := b.cells.Diff(a.cells)
				if b.count-a.count < 0 || diff.Len() == 0 {
					continue
				}
				rest, err := NewSentence(diff, b.count-a.count)
				if err != nil {
					// The remainder demands more mines than it has cells:
					// the premises cannot both hold.
					return fmt.Errorf("%w: %v and %v", ErrContradiction, a, b)
				}
				if e.hasEqual(rest) {
					continue
				}
				dup := false
				for _, d := range derived {
					if d.Equals(rest) {
						dup = true
						break
					}
				}
				if !dup {
					derived = append(derived, rest)
				}
			}
		}
		if len(derived) > 0 {
			e.knowledge = append(e.knowledge, derived...)
			changed = true
		}

		// Cleanup. Only exhausted (empty) sentences are dropped: a
		// zero-count sentence that still has cells may have been derived
		// this very pass, and dropping it would lose the fact that all its
		// cells are safe — direct resolution drains it on the next pass
		// instead. A sentence demanding more mines than it has cells, or a
		// negative count, is impossible and surfaced as a hard error; the
		// engine state is unspecified after ErrContradiction and must be
		// discarded. Cascaded marks can also leave two sentences equal;
		// the later one is dropped to keep the collection duplicate-free.
		kept := e.knowledge[:0]
		for _, s := range e.knowledge {
			if s.count < 0 || s.count > s.cells.Len() {
				return fmt.Errorf("%w: %v", ErrContradiction, s)
			}
			if s.cells.Len() == 0 {
				changed = true
				continue
			}
			dup := false
			for _, k := range kept {
				if k.Equals(s) {
					dup = true
					break
				}
			}
			if dup {
				changed = true
				continue
			}
			kept = append(kept, s)
		}
		e.knowledge = kept

		if !changed {
			return nil
		}
	}
}

// Mines returns a copy of the cells proven to hold mines.
func (e *Engine) Mines() core.CellSet { return e.mines.Clone() }

// Safes returns a copy of the cells proven mine-free.
func (e *Engine) Safes() core.CellSet { return e.safes.Clone() }

// MovesMade returns a copy of the cells already revealed.
func (e *Engine) MovesMade() core.CellSet { return e.movesMade.Clone() }

// KnowledgeSize returns the number of outstanding sentences.
func (e *Engine) KnowledgeSize() int { return len(e.knowledge) }
