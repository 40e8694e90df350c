// SPDX-License-Identifier: MIT

// Package gf2 implements square bit-matrices over GF(2), the field with two
// elements where addition is XOR and multiplication is AND.
//
// Representation:
//   - A Matrix is a slice of N rows; each row is an N-bit *big.Int.
//   - Column c of a row is the bit at position N-1-c counted from the least
//     significant end, so the leftmost printed digit is column 0.
//   - Every exported operation returns a fresh Matrix and never mutates its
//     arguments. Elimination routines work on private copies.
//
// Operations:
//   - Identity, Zero, Clone, Equal, IsIdentity, IsZero
//   - Add (row-wise XOR), MulSym and Mul (products), Transpose, IsSymmetric
//   - Pow with an optional PowCache (binary exponentiation)
//   - Invert (Gauss–Jordan with a sort-based pivot heuristic)
//   - Apply (matrix–vector product), CountBits, Parity
//   - Pack, Unpack, Format (0/1 slices and zero-padded binary strings)
//
// Matrices of side ≤ 256 are inverted on fixed-width uint256 rows; wider
// matrices fall back to math/big. Both paths share one pivot rule and return
// identical results.
package gf2
