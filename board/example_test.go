package board_test

import (
	"fmt"

	"github.com/katalvlaran/lightsout/board"
	"github.com/katalvlaran/lightsout/inversion"
)

// ExampleNextMoves clears a light in the last row of a 3×3 board by pressing
// the whole top row and chasing once more.
func ExampleNextMoves() {
	b, _ := board.FromValues([][]int{
		{0, 0, 0},
		{0, 0, 0},
		{0, 1, 0},
	})

	top, _ := board.NextMoves(b, inversion.Default)
	fmt.Println(top)
	_ = b.Apply(top)
	fmt.Println(b)

	chase, _ := board.NextMoves(b, inversion.Default)
	fmt.Println(chase)
	_ = b.Apply(chase)
	fmt.Println(b.IsSolved())
	// Output:
	// [{0 0} {0 1} {0 2}]
	// .#.
	// ###
	// .#.
	// [{1 1}]
	// true
}
