// Package inversion answers "which presses in the top row clear this last
// row" for rows×cols boards.
//
// For a board shape the combined operator P_{rows+1}(A) is built from the
// one-row operator A, inverted once, and memoised in a Cache keyed by
// "rows,cols". Later calls for the same shape reuse the entry; entries are
// never evicted.
//
// Shapes whose combined operator is singular (for example 5×5) have no
// inverse. Product then returns a minimum-weight solution when the pattern
// is reachable and ErrUnsolvable otherwise.
package inversion
