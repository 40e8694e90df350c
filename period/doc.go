// Package period finds when the polynomial sequence Pₖ, evaluated at the
// one-row press operator A of width n, returns to the identity.
//
// P_{m+1}(A) is the combined operator of an m-row board, so the record
// returned by Find answers for every row count m at once whether the
// m×n board's combined operator is the identity:
//
//	P_{m+1}(A) = I  ⇔  (m mod Z) ∈ R
//
// The recurrence is stepped one power at a time, because every intermediate
// identity hit must be observed; fast exponentiation would skip them.
// Widths up to 256 run on fixed-width uint256 rows.
package period
