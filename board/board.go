package board

import (
	"encoding/json"
	"math/rand"
	"strings"
)

// pressOffsets are the (row, col) deltas toggled by a press, self included.
var pressOffsets = [][2]int{{0, 0}, {-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// Move is a single press.
type Move struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Board is a rows×cols grid of lights. The zero value is unusable; build
// boards with New, FromValues or Randomize.
type Board struct {
	Rows, Cols int
	lit        [][]bool
}

// New returns an all-dark board.
func New(rows, cols int) (*Board, error) {
	if rows < 1 || cols < 1 {
		return nil, ErrEmptyGrid
	}
	lit := make([][]bool, rows)
	for r := range lit {
		lit[r] = make([]bool, cols)
	}

	return &Board{Rows: rows, Cols: cols, lit: lit}, nil
}

// FromValues builds a board from a rectangular grid; non-zero cells are lit.
// The input is copied.
func FromValues(values [][]int) (*Board, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	cols := len(values[0])
	for _, row := range values {
		if len(row) != cols {
			return nil, ErrNonRectangular
		}
	}
	b, _ := New(len(values), cols)
	for r, row := range values {
		for c, v := range row {
			b.lit[r][c] = v != 0
		}
	}

	return b, nil
}

// Randomize returns a board reached by pressing each cell of an empty board
// with probability ½. Such boards are always solvable.
func Randomize(rows, cols int, rng *rand.Rand) (*Board, error) {
	b, err := New(rows, cols)
	if err != nil {
		return nil, err
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if rng.Intn(2) == 1 {
				b.toggle(r, c)
			}
		}
	}

	return b, nil
}

// InBounds reports whether (r, c) lies on the board.
func (b *Board) InBounds(r, c int) bool {
	return r >= 0 && r < b.Rows && c >= 0 && c < b.Cols
}

// Press toggles (r, c) and its orthogonal neighbours.
func (b *Board) Press(r, c int) error {
	if !b.InBounds(r, c) {
		return ErrOutOfRange
	}
	b.toggle(r, c)

	return nil
}

func (b *Board) toggle(r, c int) {
	for _, d := range pressOffsets {
		nr, nc := r+d[0], c+d[1]
		if b.InBounds(nr, nc) {
			b.lit[nr][nc] = !b.lit[nr][nc]
		}
	}
}

// Apply presses every move in order.
func (b *Board) Apply(moves []Move) error {
	for _, m := range moves {
		if err := b.Press(m.Row, m.Col); err != nil {
			return err
		}
	}

	return nil
}

// Lit reports whether (r, c) is on. Off-board cells read as dark.
func (b *Board) Lit(r, c int) bool {
	return b.InBounds(r, c) && b.lit[r][c]
}

// IsSolved reports whether every light is off.
func (b *Board) IsSolved() bool {
	for _, row := range b.lit {
		for _, on := range row {
			if on {
				return false
			}
		}
	}

	return true
}

// Clone returns a deep copy.
func (b *Board) Clone() *Board {
	out, _ := New(b.Rows, b.Cols)
	for r := range b.lit {
		copy(out.lit[r], b.lit[r])
	}

	return out
}

// Row returns row r as a 0/1 slice, column 0 first.
func (b *Board) Row(r int) []int {
	out := make([]int, b.Cols)
	for c, on := range b.lit[r] {
		if on {
			out[c] = 1
		}
	}

	return out
}

// Values returns the board as a 0/1 grid.
func (b *Board) Values() [][]int {
	out := make([][]int, b.Rows)
	for r := range out {
		out[r] = b.Row(r)
	}

	return out
}

// String draws lit cells as '#' and dark cells as '.', one row per line.
func (b *Board) String() string {
	var sb strings.Builder
	for r, row := range b.lit {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for _, on := range row {
			if on {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
	}

	return sb.String()
}

// MarshalJSON encodes the board as its 0/1 grid.
func (b *Board) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.Values())
}

// UnmarshalJSON decodes a 0/1 grid.
func (b *Board) UnmarshalJSON(data []byte) error {
	var values [][]int
	if err := json.Unmarshal(data, &values); err != nil {
		return err
	}
	nb, err := FromValues(values)
	if err != nil {
		return err
	}
	*b = *nb

	return nil
}
