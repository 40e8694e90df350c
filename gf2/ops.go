// SPDX-License-Identifier: MIT

package gf2

import (
	"fmt"
	"math/big"
	"sync"
)

// Add returns the row-wise XOR a ⊕ b. The result has len(a) rows; a row that
// b lacks is dropped rather than reported, so short operands degrade to a
// shorter result.
func Add(a, b Matrix) Matrix {
	out := make(Matrix, 0, len(a))
	for r := range a {
		if r >= len(b) || a[r] == nil || b[r] == nil {
			continue
		}
		out = append(out, new(big.Int).Xor(a[r], b[r]))
	}

	return out
}

// MulSym returns a·b computed by XOR-ing the rows of b selected by the set
// bits of each row of a. The engine only multiplies symmetric operators
// built from the line operator and its powers, which commute, so callers
// may read the result as b·a as well.
// Complexity: O(n²) big-integer XORs.
func MulSym(a, b Matrix) Matrix {
	n := len(a)
	out := make(Matrix, n)
	for r := 0; r < n; r++ {
		acc := new(big.Int)
		for c := 0; c < n && c < len(b); c++ {
			if a[r].Bit(n-1-c) == 1 {
				acc.Xor(acc, b[c])
			}
		}
		out[r] = acc
	}

	return out
}

// Mul is the validated general product a·b. It requires equal sizes and
// makes no symmetry assumption.
func Mul(a, b Matrix) (Matrix, error) {
	if len(a) != len(b) {
		return nil, fmt.Errorf("Mul: %d vs %d: %w", len(a), len(b), ErrDimensionMismatch)
	}

	return MulSym(a, b), nil
}

// Transpose returns mᵀ.
func Transpose(m Matrix) Matrix {
	n := len(m)
	out := Zero(n)
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			if m[r].Bit(n-1-c) == 1 {
				out[c].SetBit(out[c], n-1-r, 1)
			}
		}
	}

	return out
}

// IsSymmetric reports whether m equals its transpose.
func IsSymmetric(m Matrix) bool {
	return m.Equal(Transpose(m))
}

// PowCache memoizes powers of one fixed base matrix, keyed by exponent.
// It is safe for concurrent use. Cached matrices are shared: a hit returns
// the stored value itself and callers must treat it as read-only.
type PowCache struct {
	mu     sync.RWMutex
	powers map[int]Matrix
}

// NewPowCache returns an empty cache.
func NewPowCache() *PowCache {
	return &PowCache{powers: make(map[int]Matrix)}
}

// Len reports how many exponents are cached.
func (pc *PowCache) Len() int {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	return len(pc.powers)
}

func (pc *PowCache) get(power int) (Matrix, bool) {
	pc.mu.RLock()
	defer pc.mu.RUnlock()
	m, ok := pc.powers[power]

	return m, ok
}

func (pc *PowCache) put(power int, m Matrix) {
	pc.mu.Lock()
	pc.powers[power] = m
	pc.mu.Unlock()
}

// Pow returns m^power by repeated squaring, O(log power) products.
// A negative power is treated as 0. When cache is non-nil it is consulted
// first and filled on a miss; it must only ever be used with the same m.
func Pow(m Matrix, power int, cache *PowCache) Matrix {
	if cache != nil {
		if hit, ok := cache.get(power); ok {
			return hit
		}
	}

	out := Identity(len(m))
	base := m.Clone()
	for p := power; p > 0; p >>= 1 {
		if p&1 == 1 {
			out = MulSym(out, base)
		}
		base = MulSym(base, base)
	}

	if cache != nil {
		cache.put(power, out)
	}

	return out
}
