package knowledge

import (
	"fmt"

	"minewise/core"
)

// Sentence asserts that exactly count of its cells are mines. Cells are
// removed in place as they are resolved (MarkMine, MarkSafe); a sentence
// holds no reference to the engine or to other sentences.
type Sentence struct {
	cells core.CellSet
	count int
}

// NewSentence builds a sentence over a copy of cells.
// Returns ErrSentenceCount unless 0 <= count <= |cells|.
func NewSentence(cells core.CellSet, count int) (*Sentence, error) {
	if count < 0 || count > cells.Len() {
		return nil, fmt.Errorf("%w: count %d over %d cells", ErrSentenceCount, count, cells.Len())
	}
	return &Sentence{cells: cells.Clone(), count: count}, nil
}

// Cells returns a copy of the unresolved cells.
func (s *Sentence) Cells() core.CellSet { return s.cells.Clone() }

// Count returns the number of mines among the unresolved cells.
func (s *Sentence) Count() int { return s.count }

// KnownMines returns every cell provably a mine: all of them, when the
// count equals the number of cells. Empty otherwise (and trivially empty
// for the degenerate empty sentence).
func (s *Sentence) KnownMines() core.CellSet {
	if s.count == s.cells.Len() {
		return s.cells.Clone()
	}
	return core.NewCellSet()
}

// KnownSafes returns every cell provably safe: all of them, when the count
// is zero. Empty otherwise.
func (s *Sentence) KnownSafes() core.CellSet {
	if s.count == 0 {
		return s.cells.Clone()
	}
	return core.NewCellSet()
}

// MarkMine records that c is a mine: removes it and decrements the count,
// since one of the sentence's mines is now accounted for. No-op when c is
// not among the cells.
func (s *Sentence) MarkMine(c core.Cell) {
	if s.cells.Contains(c) {
		s.cells.Remove(c)
		s.count--
	}
}

// MarkSafe records that c is safe: removes it, count unchanged, since the
// mine total among the remaining cells is unaffected. No-op when c is not
// among the cells.
func (s *Sentence) MarkSafe(c core.Cell) {
	if s.cells.Contains(c) {
		s.cells.Remove(c)
	}
}

// Equals reports whether s and other have identical cell sets and counts.
func (s *Sentence) Equals(other *Sentence) bool {
	return s.count == other.count && s.cells.Equal(other.cells)
}

// String renders the sentence as "{cells} = count".
func (s *Sentence) String() string {
	return fmt.Sprintf("%v = %d", s.cells, s.count)
}
