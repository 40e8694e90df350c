// SPDX-License-Identifier: MIT

package operator

import (
	"math/big"
	"math/bits"

	"github.com/katalvlaran/lightsout/gf2"
)

// MaxBruteForceKernel is the largest kernel dimension for which
// MinWeightSolution enumerates the whole solution coset (2^20 candidates).
const MaxBruteForceKernel = 20

// Mapping pairs a reachable state with a toggle pattern producing it.
type Mapping struct {
	State  *big.Int
	Toggle *big.Int
}

// KernelBasis returns a basis of the toggle patterns that leave every light
// unchanged ("quiet patterns"). The basis is empty for invertible m.
func KernelBasis(m gf2.Matrix, size int) []*big.Int {
	e := reduce(m, size)
	kernel := make([]*big.Int, 0, len(e.rows)-e.rank)
	for i := e.rank; i < len(e.rows); i++ {
		kernel = append(kernel, e.acc[i])
	}

	return kernel
}

// ImageBasis returns the reduced pivot rows: a basis of every state the
// operator can produce.
func ImageBasis(m gf2.Matrix, size int) []*big.Int {
	e := reduce(m, size)

	return e.rows[:e.rank]
}

// ImageMapping returns, for every image basis vector, the toggle pattern
// that produces it.
func ImageMapping(m gf2.Matrix, size int) []Mapping {
	e := reduce(m, size)
	out := make([]Mapping, e.rank)
	for i := 0; i < e.rank; i++ {
		out[i] = Mapping{State: e.rows[i], Toggle: e.acc[i]}
	}

	return out
}

// MinWeightSolution returns a toggle pattern x with x·m = target of minimum
// Hamming weight. ok is false when target is not reachable.
//
// Blueprint:
//
//	Stage 1 (Reduce): eliminate m, remembering pivot columns.
//	Stage 2 (Particular): walk pivots and cancel target bit by bit; any
//	residue means no solution.
//	Stage 3 (Minimise): when the kernel has at most MaxBruteForceKernel
//	vectors, visit every coset member in Gray-code order and keep the
//	lightest, breaking ties by the smaller kernel combination; larger
//	kernels return the particular solution unminimised.
func MinWeightSolution(m gf2.Matrix, target *big.Int, size int) (*big.Int, bool) {
	e := reduce(m, size)

	particular := new(big.Int)
	current := new(big.Int).Set(target)
	for i := 0; i < e.rank; i++ {
		if current.Bit(size-1-e.pivots[i]) == 1 {
			current.Xor(current, e.rows[i])
			particular.Xor(particular, e.acc[i])
		}
	}
	if current.Sign() != 0 {
		return nil, false
	}

	kernel := e.acc[e.rank:]
	if len(kernel) > MaxBruteForceKernel {
		return particular, true
	}

	// Step i holds the combination mask i^(i>>1); ties go to the smaller
	// mask, the winner of a plain ascending enumeration.
	best := new(big.Int).Set(particular)
	bestWeight, bestMask := gf2.Weight(best), uint64(0)
	candidate := new(big.Int).Set(particular)
	for i := uint64(1); i < 1<<uint(len(kernel)); i++ {
		candidate.Xor(candidate, kernel[bits.TrailingZeros64(i)])
		w, mask := gf2.Weight(candidate), i^(i>>1)
		if w < bestWeight || (w == bestWeight && mask < bestMask) {
			bestWeight, bestMask = w, mask
			best.Set(candidate)
		}
	}

	return best, true
}

// Combine XORs the rows of m selected by toggle (bit size-1-i selects row i).
// It is the forward map that MinWeightSolution and ImageMapping invert.
func Combine(m gf2.Matrix, toggle *big.Int, size int) *big.Int {
	out := new(big.Int)
	for i, row := range m {
		if toggle.Bit(size-1-i) == 1 {
			out.Xor(out, row)
		}
	}

	return out
}
