package board

import "errors"

var (
	// ErrEmptyGrid indicates a board with no rows or no columns.
	ErrEmptyGrid = errors.New("board: grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("board: all rows must have the same length")
	// ErrOutOfRange indicates a cell outside the board.
	ErrOutOfRange = errors.New("board: cell out of range")
)
