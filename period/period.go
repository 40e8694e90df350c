package period

import (
	"fmt"
	"math/big"
	"slices"

	"github.com/holiman/uint256"

	"github.com/katalvlaran/lightsout/poly"
)

// Pattern is the periodic structure of the sequence for width N.
type Pattern struct {
	N    int   `json:"n"`
	Z    int   `json:"z"`     // minimal period
	R    []int `json:"R"`     // residues m (mod Z) with P_{m+1}(A) = I, ascending
	ZSeq int   `json:"z_seq"` // raw period: P_{ZSeq}(A) = 0 and P_{ZSeq+1}(A) = I
}

// Holds reports whether the m-row board of width p.N has the identity as
// its combined operator.
func (p Pattern) Holds(m int) bool {
	if p.Z <= 0 || m < 0 {
		return false
	}
	_, found := slices.BinarySearch(p.R, m%p.Z)

	return found
}

// stepper advances (prev, curr) ← (curr, A·curr + prev) in place.
type stepper interface {
	step()
	latestIsIdentity() bool
	previousIsZero() bool
}

// Find walks Pₖ(A) for k = 2, 3, … recording every k-1 with Pₖ(A) = I. The
// walk ends when Pₖ(A) = I while P_{k-1}(A) = 0, the exact start state
// (P₁, P₀) = (I, 0); then ZSeq = k-1 and the recorded set is folded to its
// minimal period.
//
// Returns ErrBadSize for n < 1 and ErrPeriodNotFound when the iteration
// limit runs out.
func Find(n int, opts ...Option) (Pattern, error) {
	if n < 1 {
		return Pattern{}, ErrBadSize
	}
	o := gatherOptions(opts)

	var s stepper
	if n <= 256 {
		s = newWordStepper(n)
	} else {
		s = newBigStepper(n)
	}

	R := []int{0}
	for k := 2; k <= o.limit; k++ {
		s.step()
		if !s.latestIsIdentity() {
			continue
		}
		R = append(R, k-1)
		if s.previousIsZero() {
			zSeq := k - 1
			R = slices.DeleteFunc(R, func(r int) bool { return r == zSeq })
			z, minR := MinimalPeriod(zSeq, R)

			return Pattern{N: n, Z: z, R: minR, ZSeq: zSeq}, nil
		}
	}

	return Pattern{}, fmt.Errorf("Find: n=%d limit=%d: %w", n, o.limit, ErrPeriodNotFound)
}

// MinimalPeriod folds a residue set R of period z onto the smallest proper
// divisor d of z for which R is exactly the lift of R mod d, recursing until
// no divisor folds further.
func MinimalPeriod(z int, R []int) (int, []int) {
	for _, d := range poly.Divisors(z) {
		if d == 1 || d == z {
			continue
		}
		folded := make([]int, 0, len(R))
		for _, r := range R {
			folded = append(folded, r%d)
		}
		slices.Sort(folded)
		folded = slices.Compact(folded)
		if len(folded) >= len(R) {
			continue
		}

		lifted := make([]int, 0, len(R))
		for v := 0; v < z; v++ {
			if _, ok := slices.BinarySearch(folded, v%d); ok {
				lifted = append(lifted, v)
			}
		}
		if slices.Equal(lifted, R) {
			return MinimalPeriod(d, folded)
		}
	}

	return z, R
}

// neighbours lists, per row, the columns set in the one-row press operator.
func neighbours(n int) [][]int {
	out := make([][]int, n)
	for r := 0; r < n; r++ {
		for c := r - 1; c <= r+1; c++ {
			if c >= 0 && c < n {
				out[r] = append(out[r], c)
			}
		}
	}

	return out
}

type wordStepper struct {
	adj              [][]int
	id               []uint256.Int
	prev, curr, next []uint256.Int
}

func newWordStepper(n int) *wordStepper {
	s := &wordStepper{
		adj:  neighbours(n),
		id:   make([]uint256.Int, n),
		prev: make([]uint256.Int, n),
		curr: make([]uint256.Int, n),
		next: make([]uint256.Int, n),
	}
	for r := 0; r < n; r++ {
		s.id[r].Lsh(uint256.NewInt(1), uint(n-1-r))
		s.curr[r] = s.id[r]
	}

	return s
}

// step computes next = A·curr + prev and rotates: afterwards curr is the
// newest term and prev the one before it.
func (s *wordStepper) step() {
	for r, cols := range s.adj {
		s.next[r] = s.prev[r]
		for _, c := range cols {
			s.next[r].Xor(&s.next[r], &s.curr[c])
		}
	}
	s.prev, s.curr, s.next = s.curr, s.next, s.prev
}

func (s *wordStepper) latestIsIdentity() bool {
	for r := range s.curr {
		if !s.curr[r].Eq(&s.id[r]) {
			return false
		}
	}

	return true
}

func (s *wordStepper) previousIsZero() bool {
	for r := range s.prev {
		if !s.prev[r].IsZero() {
			return false
		}
	}

	return true
}

type bigStepper struct {
	adj              [][]int
	id               []*big.Int
	prev, curr, next []*big.Int
}

func newBigStepper(n int) *bigStepper {
	s := &bigStepper{
		adj:  neighbours(n),
		id:   make([]*big.Int, n),
		prev: make([]*big.Int, n),
		curr: make([]*big.Int, n),
		next: make([]*big.Int, n),
	}
	for r := 0; r < n; r++ {
		s.id[r] = new(big.Int).Lsh(big.NewInt(1), uint(n-1-r))
		s.prev[r] = new(big.Int)
		s.curr[r] = new(big.Int).Set(s.id[r])
		s.next[r] = new(big.Int)
	}

	return s
}

func (s *bigStepper) step() {
	for r, cols := range s.adj {
		s.next[r].Set(s.prev[r])
		for _, c := range cols {
			s.next[r].Xor(s.next[r], s.curr[c])
		}
	}
	s.prev, s.curr, s.next = s.curr, s.next, s.prev
}

func (s *bigStepper) latestIsIdentity() bool {
	for r := range s.curr {
		if s.curr[r].Cmp(s.id[r]) != 0 {
			return false
		}
	}

	return true
}

func (s *bigStepper) previousIsZero() bool {
	for r := range s.prev {
		if s.prev[r].Sign() != 0 {
			return false
		}
	}

	return true
}
