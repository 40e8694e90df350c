package analysis_test

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/katalvlaran/lightsout/analysis"
	"github.com/katalvlaran/lightsout/inversion"
	"github.com/katalvlaran/lightsout/period"
)

func TestSolvability(t *testing.T) {
	cases := []struct {
		n        int
		rank     int
		nullity  int
		percent  string
		quiet    []string
		full     bool
		mappings int
	}{
		{n: 1, rank: 1, percent: "100", quiet: []string{}, full: true, mappings: 1},
		{n: 3, rank: 3, percent: "100", quiet: []string{}, full: true, mappings: 7},
		{n: 4, rank: 0, nullity: 4, percent: "6.25", quiet: []string{"1000", "0100", "0010", "0001"}},
		{n: 5, rank: 3, nullity: 2, percent: "25.00", quiet: []string{"01110", "10101"}, full: true, mappings: 7},
		{n: 6, rank: 6, percent: "100", quiet: []string{}, full: true, mappings: 63},
		{n: 9, rank: 1, nullity: 8, percent: "0.39", full: true, mappings: 1},
	}
	cache := inversion.New()
	for _, tc := range cases {
		rep, err := analysis.Solvability(tc.n, analysis.WithCache(cache))
		require.NoError(t, err, "n=%d", tc.n)
		assert.Equal(t, tc.rank, rep.Rank, "n=%d", tc.n)
		assert.Equal(t, tc.nullity, rep.Nullity, "n=%d", tc.n)
		assert.Equal(t, tc.n*tc.n-tc.nullity, rep.GridRank, "n=%d", tc.n)
		assert.Equal(t, tc.percent, rep.SolvablePercent, "n=%d", tc.n)
		if tc.quiet != nil {
			assert.Equal(t, tc.quiet, rep.QuietPatterns, "n=%d", tc.n)
		}
		assert.Equal(t, tc.full, rep.IsFullSubspace, "n=%d", tc.n)
		assert.Len(t, rep.ImageMapping, tc.mappings, "n=%d", tc.n)
		for _, e := range rep.ImageMapping {
			assert.NotEqual(t, strings.Repeat("0", tc.n), e.State, "n=%d lists the dark row", tc.n)
		}
	}
}

func TestSolvabilityMapping5(t *testing.T) {
	rep, err := analysis.Solvability(5)
	require.NoError(t, err)

	want := []analysis.MappingEntry{
		{State: "00111", Toggle: "00010", Weight: 1},
		{State: "01010", Toggle: "10010", Weight: 2},
		{State: "01101", Toggle: "10000", Weight: 1},
		{State: "10001", Toggle: "11000", Weight: 2},
		{State: "10110", Toggle: "00001", Weight: 1},
		{State: "11011", Toggle: "00100", Weight: 1},
		{State: "11100", Toggle: "01000", Weight: 1},
	}
	assert.Equal(t, want, rep.ImageMapping)
	assert.Equal(t, "33,554,432", rep.TotalStates)
	assert.Equal(t, "8,388,608", rep.ReachableStates)

	data, err := json.Marshal(rep)
	require.NoError(t, err)
	for _, key := range []string{"rank", "nullity", "gridRank", "solvablePercent", "quietPatterns",
		"totalStates", "reachableStates", "imageMapping", "isFullSubspace"} {
		assert.Contains(t, string(data), `"`+key+`"`)
	}
}

func TestSolvabilityFormatting(t *testing.T) {
	rep, err := analysis.Solvability(8, analysis.WithLanguage(language.German))
	require.NoError(t, err)
	assert.Equal(t, "2^64", rep.TotalStates)

	rep, err = analysis.Solvability(7, analysis.WithLanguage(language.German))
	require.NoError(t, err)
	assert.Equal(t, "562.949.953.421.312", rep.TotalStates)

	_, err = analysis.Solvability(0)
	assert.ErrorIs(t, err, analysis.ErrBadSize)
}

func TestPeriodicity(t *testing.T) {
	cases := []struct {
		n             int
		z, zSeq       int
		minimal       string
		factorization string
		eq1, eq2      string
	}{
		{n: 1, z: 3, zSeq: 3, minimal: "x + 1", factorization: "(x + 1)", eq1: "P₄(x) mod μ(x)", eq2: "P₃(x) mod μ(x)"},
		{n: 3, z: 12, zSeq: 12, minimal: "x³ + x² + x + 1", factorization: "(x + 1)³", eq1: "P₁₃(x) mod μ(x)", eq2: "P₁₂(x) mod μ(x)"},
		{n: 5, z: 24, zSeq: 24, minimal: "x⁵ + x⁴", factorization: "x⁴(x + 1)", eq1: "P₂₅(x) mod μ(x)", eq2: "P₂₄(x) mod μ(x)"},
		{n: 8, z: 14, zSeq: 28, minimal: "x⁸ + x⁶ + x²", eq1: "P₂₉(x) mod μ(x)", eq2: "P₂₈(x) mod μ(x)"},
	}
	for _, tc := range cases {
		rep, err := analysis.Periodicity(tc.n)
		require.NoError(t, err, "n=%d", tc.n)
		assert.Equal(t, tc.z, rep.Pattern.Z, "n=%d", tc.n)
		assert.Equal(t, tc.zSeq, rep.Pattern.ZSeq, "n=%d", tc.n)
		assert.Equal(t, tc.minimal, rep.MinimalPoly, "n=%d", tc.n)
		if tc.factorization != "" {
			assert.Equal(t, tc.factorization, rep.Factorization, "n=%d", tc.n)
		}
		assert.Equal(t, analysis.Proof{Eq1: tc.eq1, Res1: "1", Eq2: tc.eq2, Res2: "0"}, rep.Proof, "n=%d", tc.n)
	}

	_, err := analysis.Periodicity(2, period.WithIterationLimit(2))
	assert.ErrorIs(t, err, period.ErrPeriodNotFound)
}

func TestIdentitySearch(t *testing.T) {
	shapes, err := analysis.IdentitySearch(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, []analysis.Shape{
		{Rows: 1, Cols: 1},
		{Rows: 2, Cols: 2},
		{Rows: 3, Cols: 1},
		{Rows: 4, Cols: 1},
		{Rows: 4, Cols: 2},
		{Rows: 6, Cols: 1},
		{Rows: 6, Cols: 2},
		{Rows: 6, Cols: 5},
		{Rows: 7, Cols: 1},
		{Rows: 8, Cols: 2},
		{Rows: 8, Cols: 4},
		{Rows: 9, Cols: 1},
		{Rows: 10, Cols: 1},
		{Rows: 10, Cols: 2},
		{Rows: 10, Cols: 3},
		{Rows: 10, Cols: 4},
	}, shapes)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = analysis.IdentitySearch(ctx, 8)
	assert.ErrorIs(t, err, context.Canceled)

	_, err = analysis.IdentitySearch(context.Background(), 0)
	assert.ErrorIs(t, err, analysis.ErrBadSize)
}

func TestVerifyPeriodicity(t *testing.T) {
	for n := 1; n <= 6; n++ {
		p, err := period.Find(n)
		require.NoError(t, err)
		v, err := analysis.VerifyPeriodicity(context.Background(), p, 100)
		require.NoError(t, err)
		assert.True(t, v.OK, "n=%d", n)
		assert.Nil(t, v.Discrepancy)
	}

	// Long walks stay cheap: one product per height.
	for _, n := range []int{8, 17} {
		p, err := period.Find(n)
		require.NoError(t, err)
		v, err := analysis.VerifyPeriodicity(context.Background(), p, 2000)
		require.NoError(t, err)
		assert.True(t, v.OK, "n=%d", n)
	}

	wrong := period.Pattern{N: 3, Z: 12, R: []int{0, 9}, ZSeq: 12}
	v, err := analysis.VerifyPeriodicity(context.Background(), wrong, 100)
	require.NoError(t, err)
	assert.False(t, v.OK)
	assert.Equal(t, &analysis.Discrepancy{M: 9, Expected: true, Actual: false}, v.Discrepancy)
}

func TestGodsNumber(t *testing.T) {
	cases := []struct {
		n, rank, gods int
		exhaustive    bool
		layers        []int
	}{
		{n: 1, rank: 1, gods: 1},
		{n: 3, rank: 9, gods: 9},
		{n: 4, rank: 12, gods: 7, exhaustive: true, layers: []int{1, 16, 120, 560, 1387, 1440, 540, 32}},
	}
	for _, tc := range cases {
		rep, err := analysis.GodsNumber(tc.n)
		require.NoError(t, err, "n=%d", tc.n)
		assert.Equal(t, tc.rank, rep.Rank, "n=%d", tc.n)
		assert.Equal(t, tc.gods, rep.GodsNumber, "n=%d", tc.n)
		assert.Equal(t, tc.exhaustive, rep.Exhaustive, "n=%d", tc.n)
		if tc.layers != nil {
			assert.Equal(t, tc.layers, rep.Layers)
			assert.Equal(t, 1<<uint(tc.rank), rep.Reachable)
		}
	}

	_, err := analysis.GodsNumber(5, analysis.WithMaxRank(20))
	assert.ErrorIs(t, err, analysis.ErrStateSpaceTooLarge)

	assert.Panics(t, func() { analysis.WithMaxRank(0) })
}

func TestGodsNumber5x5(t *testing.T) {
	if testing.Short() {
		t.Skip("explores 2^23 states")
	}
	rep, err := analysis.GodsNumber(5)
	require.NoError(t, err)
	assert.Equal(t, 23, rep.Rank)
	assert.Equal(t, 15, rep.GodsNumber)
	assert.Equal(t, 8388608, rep.Reachable)
}
