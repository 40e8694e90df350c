// SPDX-License-Identifier: MIT

package operator

import (
	"math/big"

	"github.com/katalvlaran/lightsout/gf2"
)

// Line returns the cols×cols operator of a single puzzle row: pressing light
// c toggles c and its immediate left and right neighbours.
//
// Row 0 starts as the three-bit window 111 shifted to the top of a field one
// bit too wide, each following row is the previous one shifted right by one,
// and the overhanging top bit of row 0 is then cleared. A single light is the
// self-loop [1].
//
// The result is symmetric with at most three set bits per row.
// Line(3) == [0b110, 0b111, 0b011].
func Line(cols int) (gf2.Matrix, error) {
	if cols < 1 {
		return nil, ErrBadSize
	}
	if cols == 1 {
		return gf2.FromInts(1), nil
	}

	m := make(gf2.Matrix, cols)
	m[0] = new(big.Int).Lsh(big.NewInt(7), uint(cols-2))
	for k := 1; k < cols; k++ {
		m[k] = new(big.Int).Rsh(m[k-1], 1)
	}
	m[0].SetBit(m[0], cols, 0)

	return m, nil
}

// MustLine is Line for widths known to be valid; it panics on cols < 1.
func MustLine(cols int) gf2.Matrix {
	m, err := Line(cols)
	if err != nil {
		panic(err)
	}

	return m
}
