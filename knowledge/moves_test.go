package knowledge_test

import (
	"math/rand"
	"testing"

	"minewise/core"
	"minewise/knowledge"
)

//----------------------------------------------------------------------------//
// SafeMove Tests
//----------------------------------------------------------------------------//

// TestSafeMove_TieBreak verifies the row-major tie-break among eligible cells.
func TestSafeMove_TieBreak(t *testing.T) {
	e, err := knowledge.New(3, 3)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	if err = e.AddKnowledge(core.Cell{Row: 0, Col: 0}, 0); err != nil {
		t.Fatalf("AddKnowledge error: %v", err)
	}

	// Safes: (0,0) played, (0,1), (1,0), (1,1) eligible.
	got, ok := e.SafeMove()
	if !ok {
		t.Fatal("SafeMove returned no move; want (0,1)")
	}
	if want := (core.Cell{Row: 0, Col: 1}); got != want {
		t.Errorf("SafeMove = %v; want %v", got, want)
	}
}

// TestSafeMove_None covers the no-knowledge and all-played cases.
func TestSafeMove_None(t *testing.T) {
	e, err := knowledge.New(2, 2)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	if _, ok := e.SafeMove(); ok {
		t.Error("SafeMove on fresh engine returned a move")
	}

	// Play the only safe cell; nothing eligible remains.
	if err = e.AddKnowledge(core.Cell{Row: 0, Col: 0}, 3); err != nil {
		t.Fatalf("AddKnowledge error: %v", err)
	}
	if _, ok := e.SafeMove(); ok {
		t.Error("SafeMove returned a move with every safe cell played")
	}
}

// TestSafeMove_DoesNotMutate verifies repeated queries agree and leave
// state intact.
func TestSafeMove_DoesNotMutate(t *testing.T) {
	e, err := knowledge.New(3, 3)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	if err = e.AddKnowledge(core.Cell{Row: 0, Col: 0}, 0); err != nil {
		t.Fatalf("AddKnowledge error: %v", err)
	}

	first, ok1 := e.SafeMove()
	second, ok2 := e.SafeMove()
	if !ok1 || !ok2 || first != second {
		t.Errorf("SafeMove not stable: (%v,%v) then (%v,%v)", first, ok1, second, ok2)
	}
	if e.Safes().Len() != 4 || e.MovesMade().Len() != 1 {
		t.Error("SafeMove mutated engine state")
	}
}

//----------------------------------------------------------------------------//
// RandomMove Tests
//----------------------------------------------------------------------------//

// TestRandomMove_Seeded verifies the injected source fully determines the move.
func TestRandomMove_Seeded(t *testing.T) {
	const seed = 7
	e, err := knowledge.New(3, 3, knowledge.WithRand(rand.New(rand.NewSource(seed))))
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	// Mirror the engine's draw: 9 candidates in row-major order.
	want := core.Cell{Row: 0, Col: 0}
	idx := rand.New(rand.NewSource(seed)).Intn(9)
	want.Row, want.Col = idx/3, idx%3

	got, ok := e.RandomMove()
	if !ok {
		t.Fatal("RandomMove returned no move on a fresh engine")
	}
	if got != want {
		t.Errorf("RandomMove = %v; want %v under seed %d", got, want, seed)
	}
}

// TestRandomMove_ExcludesResolved verifies the candidate universe is
// all cells minus moves made minus known mines.
func TestRandomMove_ExcludesResolved(t *testing.T) {
	e, err := knowledge.New(1, 2, knowledge.WithRand(rand.New(rand.NewSource(1))))
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	// Reveal (0,0)=1: proves (0,1) a mine. Nothing is left to pick.
	if err = e.AddKnowledge(core.Cell{Row: 0, Col: 0}, 1); err != nil {
		t.Fatalf("AddKnowledge error: %v", err)
	}

	if _, ok := e.RandomMove(); ok {
		t.Error("RandomMove returned a move on a fully resolved board")
	}
	if _, ok := e.SafeMove(); ok {
		t.Error("SafeMove returned a move on a fully resolved board")
	}
}
