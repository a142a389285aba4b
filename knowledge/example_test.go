package knowledge_test

import (
	"fmt"
	"math/rand"

	"minewise/board"
	"minewise/core"
	"minewise/knowledge"
)

// Example feeds the engine three observations from a 2×4 board whose top
// row hides mines at (0,0) and (0,2). No single observation is conclusive;
// subset resolution pins both mines and proves every other cell safe.
func Example() {
	eng, err := knowledge.New(2, 4)
	if err != nil {
		fmt.Println("new engine:", err)
		return
	}

	observations := []struct {
		cell  core.Cell
		count int
	}{
		{core.Cell{Row: 1, Col: 0}, 1},
		{core.Cell{Row: 1, Col: 1}, 2},
		{core.Cell{Row: 1, Col: 2}, 1},
	}
	for _, o := range observations {
		if err = eng.AddKnowledge(o.cell, o.count); err != nil {
			fmt.Println("add knowledge:", err)
			return
		}
	}

	fmt.Println("mines:", eng.Mines())
	next, _ := eng.SafeMove()
	fmt.Println("next safe move:", next)
	// Output:
	// mines: {(0,0), (0,2)}
	// next safe move: (0,1)
}

// Example_driver shows the full loop a driver runs against a hidden board:
// prefer a proven-safe move, fall back to a random one, stop on a mine or
// when every mine-free cell has been revealed.
func Example_driver() {
	rnd := rand.New(rand.NewSource(11))
	b, err := board.New(4, 4, 3, board.WithRand(rnd))
	if err != nil {
		fmt.Println("new board:", err)
		return
	}
	eng, err := knowledge.New(b.Height(), b.Width(), knowledge.WithRand(rnd))
	if err != nil {
		fmt.Println("new engine:", err)
		return
	}

	for {
		move, ok := eng.SafeMove()
		if !ok {
			if move, ok = eng.RandomMove(); !ok {
				break // nothing left to reveal
			}
		}
		mine, err := b.IsMine(move)
		if err != nil {
			fmt.Println("is mine:", err)
			return
		}
		if mine {
			break // lost on a guess
		}
		count, err := b.NearbyMines(move)
		if err != nil {
			fmt.Println("nearby mines:", err)
			return
		}
		if err = eng.AddKnowledge(move, count); err != nil {
			fmt.Println("add knowledge:", err)
			return
		}
	}

	fmt.Println("every revealed cell was proven safe:", eng.MovesMade().SubsetOf(eng.Safes()))
	// Output:
	// every revealed cell was proven safe: true
}
