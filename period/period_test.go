package period_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lightsout/gf2"
	"github.com/katalvlaran/lightsout/operator"
	"github.com/katalvlaran/lightsout/period"
	"github.com/katalvlaran/lightsout/poly"
)

func TestFindGolden(t *testing.T) {
	cases := []period.Pattern{
		{N: 1, Z: 3, R: []int{0, 1}, ZSeq: 3},
		{N: 2, Z: 2, R: []int{0}, ZSeq: 4},
		{N: 3, Z: 12, R: []int{0, 10}, ZSeq: 12},
		{N: 4, Z: 10, R: []int{0, 8}, ZSeq: 10},
		{N: 5, Z: 24, R: []int{0, 6, 16, 22}, ZSeq: 24},
		{N: 6, Z: 18, R: []int{0, 16}, ZSeq: 18},
		{N: 7, Z: 24, R: []int{0, 22}, ZSeq: 24},
		{N: 8, Z: 14, R: []int{0, 12}, ZSeq: 28},
		{N: 9, Z: 60, R: []int{0, 18, 40, 58}, ZSeq: 60},
		{N: 10, Z: 62, R: []int{0, 60}, ZSeq: 62},
		{N: 11, Z: 48, R: []int{0, 46}, ZSeq: 48},
		{N: 12, Z: 126, R: []int{0, 124}, ZSeq: 126},
	}
	for _, want := range cases {
		got, err := period.Find(want.N)
		require.NoError(t, err, "n=%d", want.N)
		assert.Equal(t, want, got, "n=%d", want.N)
	}
}

// TestHoldsMatchesEvaluation checks the pattern against direct evaluation of
// P_{m+1}(A) over several periods.
func TestHoldsMatchesEvaluation(t *testing.T) {
	for n := 1; n <= 7; n++ {
		p, err := period.Find(n)
		require.NoError(t, err)
		a := operator.MustLine(n)
		cache := gf2.NewPowCache()
		for m := 0; m <= 2*p.ZSeq+3; m++ {
			direct := gf2.IsIdentity(poly.Eval(a, poly.Sequence(m+1), cache))
			assert.Equal(t, direct, p.Holds(m), "n=%d m=%d", n, m)
		}
	}
}

func TestFindErrors(t *testing.T) {
	_, err := period.Find(0)
	require.ErrorIs(t, err, period.ErrBadSize)

	_, err = period.Find(9, period.WithIterationLimit(10))
	require.ErrorIs(t, err, period.ErrPeriodNotFound)

	assert.Panics(t, func() { period.WithIterationLimit(1) })
}

func TestMinimalPeriod(t *testing.T) {
	cases := []struct {
		name  string
		z     int
		R     []int
		wantZ int
		wantR []int
	}{
		{"FoldsToHalf", 4, []int{0, 2}, 2, []int{0}},
		{"FoldsTwice", 12, []int{0, 6}, 6, []int{0}},
		{"FoldsPairs", 28, []int{0, 12, 14, 26}, 14, []int{0, 12}},
		{"Irreducible", 12, []int{0, 10}, 12, []int{0, 10}},
		{"Prime", 7, []int{0}, 7, []int{0}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			z, R := period.MinimalPeriod(tc.z, tc.R)
			assert.Equal(t, tc.wantZ, z)
			assert.Equal(t, tc.wantR, R)
		})
	}
}

func TestHoldsEdges(t *testing.T) {
	p := period.Pattern{N: 5, Z: 24, R: []int{0, 6, 16, 22}, ZSeq: 24}
	assert.True(t, p.Holds(30))
	assert.False(t, p.Holds(5))
	assert.False(t, p.Holds(-1))
	assert.False(t, period.Pattern{}.Holds(0))
}
