// SPDX-License-Identifier: MIT

package gf2

import (
	"sort"

	"github.com/holiman/uint256"
)

// WordPathMaxSize is the largest side inverted on fixed-width uint256 rows.
const WordPathMaxSize = 256

// Invert returns m⁻¹ over GF(2) by Gauss–Jordan elimination of [m | I].
//
// Blueprint, for each column c:
//
//	Stage 1 (Pivot): sort working rows and accumulator rows together by
//	descending row value; a usable pivot, if any, lands at row c.
//	Stage 2 (Check): no set bit at (c, c) means m is rank-deficient.
//	Stage 3 (Eliminate): XOR row c into every other row with bit c set,
//	mirroring each XOR on the accumulator.
//
// Returns ErrSingular for non-invertible input and ErrBadSize for an empty
// matrix. Complexity: O(n³) bit operations.
func Invert(m Matrix) (Matrix, error) {
	n := len(m)
	if n == 0 {
		return nil, ErrBadSize
	}
	if n <= WordPathMaxSize {
		return invertWords(m)
	}

	return invertBig(m)
}

// sortMatrices reorders work and acc together by descending work rows.
func sortMatrices(work, acc Matrix) {
	idx := make([]int, len(work))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(i, j int) bool {
		return work[idx[i]].Cmp(work[idx[j]]) > 0
	})
	w := make(Matrix, len(work))
	a := make(Matrix, len(acc))
	for i, from := range idx {
		w[i], a[i] = work[from], acc[from]
	}
	copy(work, w)
	copy(acc, a)
}

func invertBig(m Matrix) (Matrix, error) {
	n := len(m)
	work := m.Clone()
	acc := Identity(n)
	for c := 0; c < n; c++ {
		sortMatrices(work, acc)
		bit := n - 1 - c
		if work[c].Bit(bit) == 0 {
			return nil, ErrSingular
		}
		for r := 0; r < n; r++ {
			if r == c || work[r].Bit(bit) == 0 {
				continue
			}
			work[r].Xor(work[r], work[c])
			acc[r].Xor(acc[r], acc[c])
		}
	}

	return acc, nil
}

// wordBit reads bit i of x. uint256.Int is four little-endian limbs.
func wordBit(x *uint256.Int, i int) uint64 {
	return (x[i/64] >> (uint(i) % 64)) & 1
}

func invertWords(m Matrix) (Matrix, error) {
	n := len(m)
	work, ok := toWords(m)
	if !ok {
		return nil, ErrDimensionMismatch
	}
	acc := make([]uint256.Int, n)
	for r := 0; r < n; r++ {
		acc[r].Lsh(uint256.NewInt(1), uint(n-1-r))
	}

	for c := 0; c < n; c++ {
		sortWords(work, acc)
		bit := n - 1 - c
		if wordBit(&work[c], bit) == 0 {
			return nil, ErrSingular
		}
		for r := 0; r < n; r++ {
			if r == c || wordBit(&work[r], bit) == 0 {
				continue
			}
			work[r].Xor(&work[r], &work[c])
			acc[r].Xor(&acc[r], &acc[c])
		}
	}

	return fromWords(acc), nil
}

func sortWords(work, acc []uint256.Int) {
	idx := make([]int, len(work))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(i, j int) bool {
		return work[idx[i]].Cmp(&work[idx[j]]) > 0
	})
	w := make([]uint256.Int, len(work))
	a := make([]uint256.Int, len(acc))
	for i, from := range idx {
		w[i], a[i] = work[from], acc[from]
	}
	copy(work, w)
	copy(acc, a)
}

// toWords converts rows to uint256; ok is false when a row needs more than
// 256 bits or is negative.
func toWords(m Matrix) ([]uint256.Int, bool) {
	out := make([]uint256.Int, len(m))
	for r, row := range m {
		if row.Sign() < 0 {
			return nil, false
		}
		if overflow := out[r].SetFromBig(row); overflow {
			return nil, false
		}
	}

	return out, true
}

// fromWords is the inverse of toWords.
func fromWords(rows []uint256.Int) Matrix {
	out := make(Matrix, len(rows))
	for r := range rows {
		out[r] = rows[r].ToBig()
	}

	return out
}
