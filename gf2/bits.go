// SPDX-License-Identifier: MIT

package gf2

import (
	"math/big"
	"math/bits"
	"strings"
)

// CountBits returns the number of set bits of n using Kernighan's
// clear-lowest-set-bit loop. It fails with ErrNegative when n < 0.
func CountBits(n *big.Int) (int, error) {
	if n.Sign() < 0 {
		return 0, ErrNegative
	}
	var (
		count int
		v     = new(big.Int).Set(n)
		low   = new(big.Int)
		one   = big.NewInt(1)
	)
	for v.Sign() > 0 {
		low.Sub(v, one)
		v.And(v, low)
		count++
	}

	return count, nil
}

// Weight is the Hamming weight of a non-negative vector. It walks machine
// words and is the hot-path sibling of CountBits.
func Weight(v *big.Int) int {
	w := 0
	for _, word := range v.Bits() {
		w += bits.OnesCount(uint(word))
	}

	return w
}

// Parity returns the XOR of all bits of v (0 or 1).
func Parity(v *big.Int) uint {
	var p uint
	for _, word := range v.Bits() {
		p ^= uint(bits.OnesCount(uint(word)) & 1)
	}

	return p
}

// Apply computes the matrix–vector product m·v over GF(2). Output bit
// Size()-1-r is the parity of row r AND v.
func Apply(m Matrix, v *big.Int) *big.Int {
	n := len(m)
	out := new(big.Int)
	tmp := new(big.Int)
	for r, row := range m {
		if Parity(tmp.And(row, v)) == 1 {
			out.SetBit(out, n-1-r, 1)
		}
	}

	return out
}

// Pack joins a 0/1 slice into a bit-vector; bits[0] becomes the most
// significant bit. An empty slice packs to zero.
func Pack(bits []int) (*big.Int, error) {
	out := new(big.Int)
	n := len(bits)
	for i, b := range bits {
		switch b {
		case 0:
		case 1:
			out.SetBit(out, n-1-i, 1)
		default:
			return nil, ErrBadBit
		}
	}

	return out, nil
}

// Unpack is the inverse of Pack for a vector of the given width.
func Unpack(v *big.Int, width int) []int {
	if width < 0 {
		width = 0
	}
	out := make([]int, width)
	for i := 0; i < width; i++ {
		out[i] = int(v.Bit(width - 1 - i))
	}

	return out
}

// Format renders v in binary, left-padded with zeros to width.
func Format(v *big.Int, width int) string {
	s := v.Text(2)
	if len(s) >= width {
		return s
	}

	return strings.Repeat("0", width-len(s)) + s
}
