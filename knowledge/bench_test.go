package knowledge_test

import (
	"math/rand"
	"testing"

	"minewise/board"
	"minewise/core"
	"minewise/knowledge"
)

// BenchmarkAddKnowledge measures one observation plus its fixpoint on a
// knowledge base seeded with a realistic mid-game spread of sentences.
func BenchmarkAddKnowledge(b *testing.B) {
	for i := 0; i < b.N; i++ {
		eng, err := knowledge.New(8, 8)
		if err != nil {
			b.Fatalf("New error: %v", err)
		}
		// A diagonal of ambiguous observations keeps sentences alive.
		for r := 0; r < 7; r++ {
			if err = eng.AddKnowledge(core.Cell{Row: r, Col: r}, 1); err != nil {
				b.Fatalf("AddKnowledge error: %v", err)
			}
		}
	}
}

// BenchmarkSolveGame measures a complete driver loop on an 8x8 board with
// 10 mines, the classic beginner configuration.
func BenchmarkSolveGame(b *testing.B) {
	for i := 0; i < b.N; i++ {
		rnd := rand.New(rand.NewSource(int64(i) + 1))
		brd, err := board.New(8, 8, 10, board.WithRand(rnd))
		if err != nil {
			b.Fatalf("New board error: %v", err)
		}
		eng, err := knowledge.New(8, 8, knowledge.WithRand(rnd))
		if err != nil {
			b.Fatalf("New engine error: %v", err)
		}

		total := 8 * 8
		for step := 0; step < total; step++ {
			if eng.MovesMade().Len() == total-brd.MineCount() {
				break
			}
			move, ok := eng.SafeMove()
			if !ok {
				if move, ok = eng.RandomMove(); !ok {
					break
				}
			}
			mine, err := brd.IsMine(move)
			if err != nil {
				b.Fatalf("IsMine error: %v", err)
			}
			if mine {
				break
			}
			count, err := brd.NearbyMines(move)
			if err != nil {
				b.Fatalf("NearbyMines error: %v", err)
			}
			if err = eng.AddKnowledge(move, count); err != nil {
				b.Fatalf("AddKnowledge error: %v", err)
			}
		}
	}
}
