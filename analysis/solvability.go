package analysis

import (
	"math/big"
	"sort"
	"strconv"

	"golang.org/x/text/message"

	"github.com/katalvlaran/lightsout/gf2"
	"github.com/katalvlaran/lightsout/internal/log"
	"github.com/katalvlaran/lightsout/operator"
)

// MappingEntry is a reachable last row with the lightest top-row presses
// that produce it.
type MappingEntry struct {
	State  string `json:"state"`
	Toggle string `json:"toggle"`
	Weight int    `json:"weight"`
}

// SolvabilityReport describes the n×n board through its combined operator.
type SolvabilityReport struct {
	N               int            `json:"n"`
	Rank            int            `json:"rank"`
	Nullity         int            `json:"nullity"`
	GridRank        int            `json:"gridRank"`
	SolvablePercent string         `json:"solvablePercent"`
	QuietPatterns   []string       `json:"quietPatterns"`
	TotalStates     string         `json:"totalStates"`
	ReachableStates string         `json:"reachableStates"`
	ImageMapping    []MappingEntry `json:"imageMapping"`
	IsFullSubspace  bool           `json:"isFullSubspace"`
}

// Solvability analyses the n×n board.
//
// The kernel of the combined operator is also the kernel of the full
// n²×n² press matrix, so the grid rank is n² minus its dimension and
// exactly 1 in 2^nullity boards is solvable. When the image rank is at
// most FullSubspaceRank every reachable last row is listed, ascending;
// otherwise only the image basis is. The dark row is never listed.
func Solvability(n int, opts ...Option) (*SolvabilityReport, error) {
	if n < 1 {
		return nil, ErrBadSize
	}
	o := gatherOptions(opts)
	m, err := o.cache.Operator(n, n)
	if err != nil {
		return nil, err
	}

	kernel := operator.KernelBasis(m, n)
	nullity := len(kernel)
	rank := n - nullity
	p := message.NewPrinter(o.lang)

	rep := &SolvabilityReport{
		N:               n,
		Rank:            rank,
		Nullity:         nullity,
		GridRank:        n*n - nullity,
		SolvablePercent: percent(nullity),
		QuietPatterns:   make([]string, len(kernel)),
		TotalStates:     formatStates(p, n*n),
		ReachableStates: formatStates(p, n*n-nullity),
	}
	for i, k := range kernel {
		rep.QuietPatterns[i] = gf2.Format(k, n)
	}

	basis := operator.ImageBasis(m, n)
	targets := basis
	if rank > 0 && rank <= FullSubspaceRank {
		rep.IsFullSubspace = true
		targets = span(basis)
	}
	rep.ImageMapping = make([]MappingEntry, 0, len(targets))
	for _, t := range targets {
		x, ok := operator.MinWeightSolution(m, t, n)
		if !ok {
			continue
		}
		rep.ImageMapping = append(rep.ImageMapping, MappingEntry{
			State:  gf2.Format(t, n),
			Toggle: gf2.Format(x, n),
			Weight: gf2.Weight(x),
		})
	}
	if rep.IsFullSubspace {
		sort.Slice(rep.ImageMapping, func(i, j int) bool {
			return rep.ImageMapping[i].State < rep.ImageMapping[j].State
		})
	}

	log.Debug(log.Analysis, "solvability", "n", n, "rank", rank, "nullity", nullity)

	return rep, nil
}

// span lists every non-empty XOR combination of basis.
func span(basis []*big.Int) []*big.Int {
	all := []*big.Int{new(big.Int)}
	for _, b := range basis {
		for _, v := range all[:len(all):len(all)] {
			all = append(all, new(big.Int).Xor(v, b))
		}
	}

	return all[1:]
}

// percent renders the solvable share of boards, 100/2^nullity, with two
// decimals unless every board is solvable.
func percent(nullity int) string {
	if nullity == 0 {
		return "100"
	}

	return strconv.FormatFloat(100/float64(uint64(1)<<uint(nullity)), 'f', 2, 64)
}

// formatStates renders 2^bits with digit grouping, or as "2^bits" once the
// count no longer reads well in full.
func formatStates(p *message.Printer, bits int) string {
	if bits < groupingLimit {
		return p.Sprintf("%d", uint64(1)<<uint(bits))
	}

	return "2^" + strconv.Itoa(bits)
}
