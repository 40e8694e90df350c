// SPDX-License-Identifier: MIT

package gf2

import (
	"math/big"
	"strings"
)

// Matrix is a square GF(2) matrix stored as one *big.Int bitmask per row.
// Column c of row r is bit Size()-1-c of m[r].
type Matrix []*big.Int

// Size returns the side length (number of rows).
func (m Matrix) Size() int { return len(m) }

// Clone returns a deep copy of m.
func (m Matrix) Clone() Matrix {
	out := make(Matrix, len(m))
	for r, row := range m {
		out[r] = new(big.Int).Set(row)
	}

	return out
}

// At reports the entry at (r, c). Out-of-range coordinates read as 0.
func (m Matrix) At(r, c int) uint {
	n := len(m)
	if r < 0 || r >= n || c < 0 || c >= n {
		return 0
	}

	return m[r].Bit(n - 1 - c)
}

// Equal reports whether m and o have the same size and rows.
func (m Matrix) Equal(o Matrix) bool {
	if len(m) != len(o) {
		return false
	}
	for r := range m {
		if m[r].Cmp(o[r]) != 0 {
			return false
		}
	}

	return true
}

// Rows renders every row as a zero-padded binary string of width Size().
func (m Matrix) Rows() []string {
	out := make([]string, len(m))
	for r, row := range m {
		out[r] = Format(row, len(m))
	}

	return out
}

// String renders the matrix one row per line.
func (m Matrix) String() string {
	return strings.Join(m.Rows(), "\n")
}

// Ints converts m to uint64 rows, for display and tests on small matrices.
// Rows wider than 64 bits are truncated to their low word.
func (m Matrix) Ints() []uint64 {
	out := make([]uint64, len(m))
	for r, row := range m {
		out[r] = row.Uint64()
	}

	return out
}

// FromInts builds a Matrix from uint64 row masks.
func FromInts(rows ...uint64) Matrix {
	out := make(Matrix, len(rows))
	for r, v := range rows {
		out[r] = new(big.Int).SetUint64(v)
	}

	return out
}

// Identity returns the size×size identity: row r has only bit size-1-r set.
func Identity(size int) Matrix {
	if size < 0 {
		size = 0
	}
	out := make(Matrix, size)
	for r := 0; r < size; r++ {
		out[r] = new(big.Int).Lsh(big.NewInt(1), uint(size-r-1))
	}

	return out
}

// Zero returns the size×size all-zero matrix.
func Zero(size int) Matrix {
	if size < 0 {
		size = 0
	}
	out := make(Matrix, size)
	for r := range out {
		out[r] = new(big.Int)
	}

	return out
}

// IsIdentity reports whether m equals Identity(m.Size()).
func IsIdentity(m Matrix) bool {
	n := len(m)
	for r, row := range m {
		if row.BitLen() != n-r || row.Sign() == 0 {
			return false
		}
		if row.TrailingZeroBits() != uint(n-r-1) {
			return false
		}
	}

	return true
}

// IsZero reports whether every row of m is zero.
func IsZero(m Matrix) bool {
	for _, row := range m {
		if row.Sign() != 0 {
			return false
		}
	}

	return true
}
