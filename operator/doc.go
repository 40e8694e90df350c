// SPDX-License-Identifier: MIT

// Package operator builds the one-dimensional press operator of a puzzle row
// and answers linear-system questions about GF(2) operators: rank, kernel
// (quiet patterns), image and minimum-weight solutions.
//
// Every routine eliminates rows: a toggle vector x selects rows of the
// operator and the resulting state is the XOR of those rows. For the
// symmetric operators produced by Line and its polynomials this is the same
// as the column product M·x.
package operator
