package knowledge

import "minewise/core"

// SafeMove returns a cell proven safe and not yet revealed, preferring the
// lexicographically smallest (row-major) so identical histories always
// yield identical moves. The second result is false when no safe move
// exists. Never mutates engine state.
// Complexity: O(|safes| log |safes|).
func (e *Engine) SafeMove() (core.Cell, bool) {
	for _, c := range e.safes.Sorted() {
		if !e.movesMade.Contains(c) {
			return c, true
		}
	}
	return core.Cell{}, false
}

// RandomMove returns a uniformly random cell that has not been revealed
// and is not a proven mine, drawn from the engine's injected source. The
// second result is false when every cell is either revealed or a known
// mine — the normal end-of-game condition, not a failure.
// Complexity: O(H×W).
func (e *Engine) RandomMove() (core.Cell, bool) {
	var candidates []core.Cell
	for r := 0; r < e.height; r++ {
		for c := 0; c < e.width; c++ {
			cell := core.Cell{Row: r, Col: c}
			if !e.movesMade.Contains(cell) && !e.mines.Contains(cell) {
				candidates = append(candidates, cell)
			}
		}
	}
	if len(candidates) == 0 {
		return core.Cell{}, false
	}
	return candidates[e.rnd.Intn(len(candidates))], true
}
