package board

import (
	"fmt"
)

// Solver maps a chased last row to the top-row presses that clear it.
// input and the result hold one 0/1 entry per column, column 0 first.
// *inversion.Cache satisfies Solver.
type Solver interface {
	Product(input []int, rows, cols int) ([]int, error)
}

// Chase presses, for every lit cell outside the last row, the cell directly
// below it, sweeping top to bottom. It returns the presses in order and the
// chased board; b itself is left untouched.
func Chase(b *Board) ([]Move, *Board) {
	out := b.Clone()
	var moves []Move
	for r := 0; r < out.Rows-1; r++ {
		for c := 0; c < out.Cols; c++ {
			if out.lit[r][c] {
				out.toggle(r+1, c)
				moves = append(moves, Move{Row: r + 1, Col: c})
			}
		}
	}

	return moves, out
}

// NextMoves returns the next batch of presses towards a solved board: the
// chase presses while any light sits above the last row, otherwise the
// top-row presses that clear the last row after one more chase. It returns
// nil for a solved board.
func NextMoves(b *Board, s Solver) ([]Move, error) {
	moves, chased := Chase(b)
	if len(moves) > 0 {
		return moves, nil
	}
	if chased.IsSolved() {
		return nil, nil
	}

	top, err := s.Product(chased.Row(chased.Rows-1), chased.Rows, chased.Cols)
	if err != nil {
		return nil, err
	}
	if len(top) > chased.Cols {
		return nil, fmt.Errorf("board: %d top-row presses for %d columns: %w", len(top), chased.Cols, ErrOutOfRange)
	}

	return topRowMoves(top), nil
}

// Solve returns a press set that turns every light off. Each cell appears at
// most once, in row-major order.
func Solve(b *Board, s Solver) ([]Move, error) {
	first, chased := Chase(b)
	if chased.IsSolved() {
		return normalise(first, b.Rows, b.Cols), nil
	}

	top, err := s.Product(chased.Row(chased.Rows-1), b.Rows, b.Cols)
	if err != nil {
		return nil, err
	}

	work := chased.Clone()
	fix := topRowMoves(top)
	if err := work.Apply(fix); err != nil {
		return nil, fmt.Errorf("board: %d top-row presses for %d columns: %w", len(top), b.Cols, err)
	}
	second, final := Chase(work)
	if !final.IsSolved() {
		return nil, fmt.Errorf("board: %dx%d top-row presses %v left lights on", b.Rows, b.Cols, top)
	}

	all := make([]Move, 0, len(first)+len(fix)+len(second))
	all = append(all, first...)
	all = append(all, fix...)
	all = append(all, second...)

	return normalise(all, b.Rows, b.Cols), nil
}

func topRowMoves(top []int) []Move {
	var moves []Move
	for c, v := range top {
		if v != 0 {
			moves = append(moves, Move{Row: 0, Col: c})
		}
	}

	return moves
}

// normalise cancels repeated presses (pressing twice is a no-op) and orders
// the survivors row-major.
func normalise(moves []Move, rows, cols int) []Move {
	pressed := make([]bool, rows*cols)
	for _, m := range moves {
		pressed[m.Row*cols+m.Col] = !pressed[m.Row*cols+m.Col]
	}
	var out []Move
	for i, on := range pressed {
		if on {
			out = append(out, Move{Row: i / cols, Col: i % cols})
		}
	}

	return out
}

// Frames is the state sequence of an animated chase solve. Boards, Inputs
// and Outputs have equal length; frame i shows Boards[i] alongside the
// last-row pattern typed so far (Inputs[i]) and the top-row presses it maps
// to (Outputs[i]).
type Frames struct {
	Boards  []*Board `json:"boardStates"`
	Inputs  [][]int  `json:"inputStates"`
	Outputs [][]int  `json:"outputStates"`
}

// ChaseFrames builds the animation of solving the board reached by pressing
// the given row-major cell indices on an empty rows×cols board.
//
// The sequence is: the first chase; the last row being copied bit by bit
// into the input while the board holds still; the top-row presses; the
// second chase. Partial inputs that the solver rejects repeat the previous
// output frame; only the complete last row must be solvable.
func ChaseFrames(presses []int, rows, cols int, s Solver) (*Frames, error) {
	start, err := New(rows, cols)
	if err != nil {
		return nil, err
	}
	for _, idx := range presses {
		if idx < 0 || idx >= rows*cols {
			return nil, fmt.Errorf("press %d on %dx%d: %w", idx, rows, cols, ErrOutOfRange)
		}
		start.toggle(idx/cols, idx%cols)
	}

	boards := chaseStates([]*Board{start})
	last := boards[len(boards)-1]

	inputs, outputs, err := fillRow(last.Row(rows-1), rows, cols, s)
	if err != nil {
		return nil, err
	}

	before := len(boards) + len(inputs) - 1
	for len(boards) < before {
		boards = append(boards, last.Clone())
	}
	inputs = padFront(inputs, before)
	outputs = padFront(outputs, before)

	state := last.Clone()
	for c, v := range outputs[len(outputs)-1] {
		if v != 0 {
			state.toggle(0, c)
			boards = append(boards, state.Clone())
		}
	}
	boards = chaseStates(boards)

	return &Frames{
		Boards:  boards,
		Inputs:  extendBack(inputs, len(boards)),
		Outputs: extendBack(outputs, len(boards)),
	}, nil
}

// chaseStates appends one frame per chase press, starting from the last
// frame in states.
func chaseStates(states []*Board) []*Board {
	prev := states[len(states)-1]
	for r := 1; r < prev.Rows; r++ {
		for c := 0; c < prev.Cols; c++ {
			if !prev.lit[r-1][c] {
				continue
			}
			next := prev.Clone()
			next.toggle(r, c)
			states = append(states, next)
			prev = next
		}
	}

	return states
}

// fillRow copies row into an initially blank input one lit bit at a time,
// solving after each bit.
func fillRow(row []int, rows, cols int, s Solver) (inputs, outputs [][]int, err error) {
	blank := make([]int, cols)
	inputs = [][]int{blank}
	outputs = [][]int{blank}

	lit := 0
	for _, v := range row {
		if v != 0 {
			lit++
		}
	}

	current := make([]int, cols)
	seen := 0
	for c, v := range row {
		if v == 0 {
			continue
		}
		seen++
		current[c] = 1
		input := append([]int(nil), current...)
		output, perr := s.Product(input, rows, cols)
		if perr != nil {
			if seen == lit {
				return nil, nil, perr
			}
			output = outputs[len(outputs)-1]
		}
		inputs = append(inputs, input)
		outputs = append(outputs, output)
	}

	return inputs, outputs, nil
}

func padFront(states [][]int, size int) [][]int {
	if len(states) >= size {
		return states
	}
	out := make([][]int, 0, size)
	for i := len(states); i < size; i++ {
		out = append(out, append([]int(nil), states[0]...))
	}

	return append(out, states...)
}

func extendBack(states [][]int, size int) [][]int {
	back := states[len(states)-1]
	for len(states) < size {
		states = append(states, append([]int(nil), back...))
	}

	return states
}
