package analysis

import (
	"context"

	"github.com/katalvlaran/lightsout/gf2"
	"github.com/katalvlaran/lightsout/internal/log"
	"github.com/katalvlaran/lightsout/operator"
	"github.com/katalvlaran/lightsout/period"
)

// Discrepancy is a height where a pattern's prediction is wrong.
type Discrepancy struct {
	M        int  `json:"m"`
	Expected bool `json:"expected"`
	Actual   bool `json:"actual"`
}

// Verification is the outcome of VerifyPeriodicity.
type Verification struct {
	N           int          `json:"n"`
	Limit       int          `json:"limit"`
	OK          bool         `json:"ok"`
	Discrepancy *Discrepancy `json:"discrepancy,omitempty"`
}

// VerifyPeriodicity checks p.Holds(m) against the combined operator
// P_{m+1}(A) for every height m in [1, limit], stopping at the first
// disagreement. The operators are stepped with the recurrence
// P_{k+1}(A) = A·P_k(A) + P_{k-1}(A), one matrix product per height.
func VerifyPeriodicity(ctx context.Context, p period.Pattern, limit int) (*Verification, error) {
	if limit < 1 {
		return nil, ErrBadSize
	}
	line, err := operator.Line(p.N)
	if err != nil {
		return nil, err
	}

	v := &Verification{N: p.N, Limit: limit, OK: true}
	prev, curr := gf2.Zero(p.N), gf2.Identity(p.N)
	for m := 1; m <= limit; m++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		prev, curr = curr, gf2.Add(gf2.MulSym(line, curr), prev)
		expected := p.Holds(m)
		actual := gf2.IsIdentity(curr)
		if expected != actual {
			v.OK = false
			v.Discrepancy = &Discrepancy{M: m, Expected: expected, Actual: actual}
			log.Warn(log.Analysis, "pattern discrepancy", "n", p.N, "m", m, "expected", expected)
			break
		}
	}

	return v, nil
}
