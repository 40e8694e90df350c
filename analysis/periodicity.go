package analysis

import (
	"fmt"

	"github.com/katalvlaran/lightsout/internal/log"
	"github.com/katalvlaran/lightsout/operator"
	"github.com/katalvlaran/lightsout/period"
	"github.com/katalvlaran/lightsout/poly"
)

// Proof is the pair of congruences certifying the raw period: the sequence
// polynomial after it is congruent to 1 and the one at it to 0, modulo the
// minimal polynomial of the line operator.
type Proof struct {
	Eq1  string `json:"eq1"`
	Res1 string `json:"res1"`
	Eq2  string `json:"eq2"`
	Res2 string `json:"res2"`
}

// PeriodicityReport explains which heights of width N make the combined
// operator the identity.
type PeriodicityReport struct {
	Pattern        period.Pattern `json:"pattern"`
	MinimalPoly    string         `json:"minimalPoly"`
	MinimalPolyTeX string         `json:"minimalPolyTeX"`
	Factorization  string         `json:"factorization"`
	Proof          Proof          `json:"proof"`
}

// Periodicity finds the identity pattern of width n and backs it with the
// minimal polynomial of the line operator.
func Periodicity(n int, opts ...period.Option) (*PeriodicityReport, error) {
	pat, err := period.Find(n, opts...)
	if err != nil {
		return nil, fmt.Errorf("periodicity %d: %w", n, err)
	}
	line, err := operator.Line(n)
	if err != nil {
		return nil, err
	}

	mu := poly.Minimal(line)
	after, err := poly.Mod(poly.Sequence(pat.ZSeq+1), mu)
	if err != nil {
		return nil, err
	}
	at, err := poly.Mod(poly.Sequence(pat.ZSeq), mu)
	if err != nil {
		return nil, err
	}

	log.Debug(log.Analysis, "periodicity", "n", n, "z", pat.Z, "z_seq", pat.ZSeq)

	return &PeriodicityReport{
		Pattern:        pat,
		MinimalPoly:    poly.String(mu),
		MinimalPolyTeX: poly.TeX(mu),
		Factorization:  poly.FormatFactors(poly.Factorize(mu)),
		Proof: Proof{
			Eq1:  "P" + poly.Subscript(pat.ZSeq+1) + "(x) mod μ(x)",
			Res1: poly.String(after),
			Eq2:  "P" + poly.Subscript(pat.ZSeq) + "(x) mod μ(x)",
			Res2: poly.String(at),
		},
	}, nil
}
