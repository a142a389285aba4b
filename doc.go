// Package minewise deduces certain facts about a hidden minesweeper grid
// from partial observations — which unopened cells must be mines, and which
// must be safe — using logical necessity only, never probability.
//
// What is minewise?
//
//	A small, deterministic knowledge-base library for an autonomous player:
//		• core/      — Cell & CellSet primitives shared by every package
//		• board/     — the hidden grid: mine placement, adjacency counts, win check
//		• knowledge/ — Sentence constraints and the inference Engine
//
// Why choose minewise?
//
//   - Never guesses when it doesn't have to — a safe move is returned the
//     moment one is derivable.
//   - Reproducible — every random source is injected, every tie-break is
//     deterministic.
//   - Loud on contract violations — contradictory knowledge surfaces as an
//     error instead of being silently discarded.
//
// The flow of a game:
//
//	driver reveals a cell → board reports its neighbor-mine count →
//	Engine.AddKnowledge folds the observation into the knowledge base and
//	runs resolution to a fixpoint → driver asks SafeMove (or RandomMove as
//	a last resort) → repeat until won or a mine is hit.
//
// See knowledge's package documentation for the inference rules and the
// termination argument, and its example tests for a complete driver loop.
package minewise
