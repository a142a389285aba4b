// Package knowledge implements the deduction core: Sentence constraints
// over board cells and the Engine that resolves them to a fixpoint.
//
// What:
//
//   - Sentence: "exactly count of these cells are mines" — a cell set plus
//     a mine count, shrunk in place as cells are resolved.
//   - Engine: owns the evolving knowledge base and three derived sets
//     (moves made, proven-safe, proven-mine); AddKnowledge folds one board
//     observation in and runs resolution until nothing new can be derived.
//   - SafeMove / RandomMove: move selection over the derived sets.
//
// Why:
//
//   - An autonomous player must never guess when a guaranteed-safe move is
//     derivable. Everything the engine reports is a logical necessity of
//     the observations fed to it — no probability is involved anywhere.
//
// Inference rules, applied to exhaustion on every AddKnowledge call:
//
//   - Direct resolution: a sentence whose count equals its cell count
//     proves every cell a mine; a sentence with count zero proves every
//     cell safe. Each proven cell is marked and stripped from all
//     sentences (decrementing counts for mines).
//   - Subset resolution: for sentences A ⊆ B, the remainder
//     (B.cells − A.cells, B.count − A.count) is itself a true sentence and
//     joins the knowledge base unless already present.
//
// Termination: cells only ever move from unresolved to resolved, the board
// is finite, and duplicate sentences are rejected, so a pass that derives
// nothing new ends the loop.
//
// Options:
//
//   - WithRand: inject a *rand.Rand for RandomMove. Defaults to a
//     time-seeded source.
//
// Errors:
//
//   - ErrDimensions: non-positive engine dimensions.
//   - ErrCellOutOfBounds: a cell outside the grid fed to a mutator.
//   - ErrSentenceCount: sentence built with count outside [0, |cells|].
//   - ErrContradiction: the knowledge base derived a sentence demanding
//     more mines than it has cells — a corrupt observation stream.
//     Surfaced, never silently discarded.
//
// Complexity: one resolution pass is O(k²·n) for k sentences of ≤ n cells
// (subset resolution dominates); boards are tens of cells, k stays small.
//
// The engine is not safe for concurrent use; give each game its own
// instance, or serialize AddKnowledge calls behind one lock.
package knowledge
