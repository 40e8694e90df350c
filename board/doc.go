// Package board models the playing surface of a toggle-grid puzzle and the
// solving moves built on the GF(2) engine.
//
// What:
//
//   - Board is a rows×cols grid of lights. Pressing a cell toggles it and
//     its orthogonal neighbours (the "plus" neighbourhood).
//   - Chase pushes every lit cell down one row at a time until only the
//     last row can be lit.
//   - NextMoves returns the next logical batch of presses: a chase step, or
//     the top-row presses that clear the chased last row.
//   - Solve returns a complete press set, each cell pressed at most once.
//   - ChaseFrames produces the full animation sequence of a chase solve.
//
// Why:
//
//   - After chasing, the last row depends linearly on the top-row presses
//     through the combined operator P_{rows+1}(A), so one cached inversion
//     per shape answers every board of that shape.
//
// Complexity:
//
//   - Press: O(1). Chase: O(rows·cols). Solve: O(rows·cols) plus one
//     Solver.Product call.
//
// Errors:
//
//   - ErrEmptyGrid: a board needs at least one row and one column.
//   - ErrNonRectangular: input rows have differing lengths.
//   - ErrOutOfRange: a press or read outside the board.
//   - Solver errors (for example an unreachable last row on a singular
//     shape) are returned unchanged.
package board
