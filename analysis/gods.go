package analysis

import (
	"fmt"
	"math/big"

	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/lightsout/gf2"
	"github.com/katalvlaran/lightsout/internal/log"
	"github.com/katalvlaran/lightsout/operator"
)

// GodsReport is the result of GodsNumber. Layers[d] counts the reachable
// boards needing exactly d presses.
type GodsReport struct {
	N          int   `json:"n"`
	Rank       int   `json:"rank"`
	Nullity    int   `json:"nullity"`
	GodsNumber int   `json:"godsNumber"`
	Reachable  int   `json:"reachable"`
	Layers     []int `json:"layers,omitempty"`
	Exhaustive bool  `json:"exhaustive"`
}

// GodsNumber returns the largest number of presses any solvable n×n board
// needs.
//
// When the press matrix has full rank every press is independent and the
// answer is n². Otherwise the image of the press matrix is explored breadth
// first from the dark board. States are addressed by their coordinates in
// the reduced image basis, so the visited set holds 2^rank bits.
//
// Returns ErrStateSpaceTooLarge when a search would exceed 2^maxRank states.
func GodsNumber(n int, opts ...Option) (*GodsReport, error) {
	if n < 1 {
		return nil, ErrBadSize
	}
	o := gatherOptions(opts)
	size := n * n

	toggles := pressMatrix(n)
	basis := operator.ImageBasis(toggles, size)
	rank := len(basis)
	rep := &GodsReport{N: n, Rank: rank, Nullity: size - rank}

	if rank == size {
		rep.GodsNumber = size
		if size < 63 {
			rep.Reachable = 1 << uint(size)
		}
		return rep, nil
	}
	if rank > o.maxRank {
		return nil, fmt.Errorf("%dx%d rank %d > %d: %w", n, n, rank, o.maxRank, ErrStateSpaceTooLarge)
	}

	// Basis rows are fully reduced, so a state's coordinate on basis row i
	// is its bit at that row's leading position.
	pivots := make([]int, rank)
	for i, b := range basis {
		pivots[i] = b.BitLen() - 1
	}
	moves := make([]uint32, len(toggles))
	for i, t := range toggles {
		moves[i] = coordinates(t, pivots)
	}

	states := uint(1) << uint(rank)
	visited := bitset.New(states)
	visited.Set(0)
	current := []uint32{0}
	rep.Layers = []int{1}
	total := 1
	for {
		var next []uint32
		for _, s := range current {
			for _, mv := range moves {
				t := s ^ mv
				if visited.Test(uint(t)) {
					continue
				}
				visited.Set(uint(t))
				next = append(next, t)
			}
		}
		if len(next) == 0 {
			break
		}
		total += len(next)
		rep.Layers = append(rep.Layers, len(next))
		current = next
	}

	rep.GodsNumber = len(rep.Layers) - 1
	rep.Reachable = total
	rep.Exhaustive = true
	log.Debug(log.Analysis, "gods number", "n", n, "rank", rank, "result", rep.GodsNumber, "visited", visited.Count())

	return rep, nil
}

// pressMatrix returns the n²×n² toggle matrix: row r·n+c is the set of
// cells a press at (r, c) flips, cell i being bit n²-1-i.
func pressMatrix(n int) gf2.Matrix {
	size := n * n
	out := make(gf2.Matrix, size)
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			v := new(big.Int)
			for _, d := range [][2]int{{0, 0}, {-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
				nr, nc := r+d[0], c+d[1]
				if nr >= 0 && nr < n && nc >= 0 && nc < n {
					v.SetBit(v, size-1-(nr*n+nc), 1)
				}
			}
			out[r*n+c] = v
		}
	}

	return out
}

func coordinates(state *big.Int, pivots []int) uint32 {
	var idx uint32
	for i, p := range pivots {
		if state.Bit(p) == 1 {
			idx |= 1 << uint(i)
		}
	}

	return idx
}
