// SPDX-License-Identifier: MIT

package operator

import (
	"math/big"

	"github.com/katalvlaran/lightsout/gf2"
)

// echelon is the reduced row form of an operator together with the
// accumulator rows that record which input rows produced each reduced row.
type echelon struct {
	rows   []*big.Int // reduced rows; the first rank are pivot rows
	acc    []*big.Int // acc[i] selects the original rows XOR-ed into rows[i]
	pivots []int      // pivots[i] is the pivot column of rows[i]
	rank   int
}

// reduce performs Gauss–Jordan elimination with a first-set-bit pivot
// search. Column c is scanned from pivotRow down; the first row with bit c
// set is swapped into place and cleared from every other row. size is the
// bit width of each row; m is not modified.
func reduce(m gf2.Matrix, size int) echelon {
	rows := make([]*big.Int, len(m))
	for i, row := range m {
		rows[i] = new(big.Int).Set(row)
	}
	// acc addresses input rows, so it is as wide as m is tall.
	acc := gf2.Identity(len(m))

	e := echelon{rows: rows, acc: acc}
	pivotRow := 0
	for c := 0; c < size && pivotRow < len(rows); c++ {
		bit := size - 1 - c
		p := pivotRow
		for p < len(rows) && rows[p].Bit(bit) == 0 {
			p++
		}
		if p == len(rows) {
			continue
		}
		rows[pivotRow], rows[p] = rows[p], rows[pivotRow]
		acc[pivotRow], acc[p] = acc[p], acc[pivotRow]
		for r := range rows {
			if r != pivotRow && rows[r].Bit(bit) == 1 {
				rows[r].Xor(rows[r], rows[pivotRow])
				acc[r].Xor(acc[r], acc[pivotRow])
			}
		}
		e.pivots = append(e.pivots, c)
		pivotRow++
	}
	e.rank = pivotRow

	return e
}

// Rank returns the GF(2) rank of m read as rows of width size.
func Rank(m gf2.Matrix, size int) int {
	return reduce(m, size).rank
}
