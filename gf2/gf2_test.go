package gf2_test

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lightsout/gf2"
)

// lineOperator builds the self+neighbours operator locally so gf2 tests do
// not depend on the operator package.
func lineOperator(n int) gf2.Matrix {
	m := gf2.Zero(n)
	for r := 0; r < n; r++ {
		for c := r - 1; c <= r+1; c++ {
			if c >= 0 && c < n {
				m[r].SetBit(m[r], n-1-c, 1)
			}
		}
	}

	return m
}

// unitUpper builds an upper bidiagonal matrix with ones on the diagonal,
// which is always invertible.
func unitUpper(n int) gf2.Matrix {
	m := gf2.Identity(n)
	for r := 0; r+1 < n; r++ {
		m[r].SetBit(m[r], n-2-r, 1)
	}

	return m
}

func TestIdentityAndZero(t *testing.T) {
	assert.Equal(t, []uint64{4, 2, 1}, gf2.Identity(3).Ints())
	assert.True(t, gf2.IsIdentity(gf2.Identity(7)))
	assert.False(t, gf2.IsIdentity(gf2.FromInts(4, 3, 1)))
	assert.False(t, gf2.IsIdentity(gf2.FromInts(4, 0, 1)))
	assert.True(t, gf2.IsZero(gf2.Zero(5)))
	assert.False(t, gf2.IsZero(gf2.Identity(1)))
	assert.Empty(t, gf2.Identity(0))
}

func TestCountBits(t *testing.T) {
	cases := []struct {
		in   int64
		want int
	}{
		{0, 0},
		{1, 1},
		{0b10101, 3},
		{0b1011, 3},
		{0b1111, 4},
	}
	for _, tc := range cases {
		got, err := gf2.CountBits(big.NewInt(tc.in))
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "CountBits(%b)", tc.in)
		assert.Equal(t, tc.want, gf2.Weight(big.NewInt(tc.in)))
	}

	_, err := gf2.CountBits(big.NewInt(-3))
	require.ErrorIs(t, err, gf2.ErrNegative)
}

func TestAddAndMul(t *testing.T) {
	m := gf2.FromInts(6, 7, 3)
	assert.True(t, gf2.IsZero(gf2.Add(m, m)))
	assert.Equal(t, []uint64{2, 5, 2}, gf2.Add(m, gf2.Identity(3)).Ints())

	// Short operands drop the unmatched rows.
	assert.Len(t, gf2.Add(m, gf2.FromInts(1)), 1)

	assert.True(t, gf2.MulSym(m, gf2.Identity(3)).Equal(m))
	assert.True(t, gf2.MulSym(gf2.Identity(3), m).Equal(m))
	// [110;111;011]² = [001;010;100] over GF(2).
	assert.Equal(t, []uint64{1, 2, 4}, gf2.MulSym(m, m).Ints())

	_, err := gf2.Mul(m, gf2.Identity(2))
	require.ErrorIs(t, err, gf2.ErrDimensionMismatch)
}

func TestTransposeSymmetric(t *testing.T) {
	for n := 1; n <= 9; n++ {
		assert.True(t, gf2.IsSymmetric(lineOperator(n)), "n=%d", n)
	}
	upper := unitUpper(4)
	assert.False(t, gf2.IsSymmetric(upper))
	assert.True(t, gf2.Transpose(gf2.Transpose(upper)).Equal(upper))
}

func TestPow(t *testing.T) {
	m := lineOperator(5)
	assert.True(t, gf2.IsIdentity(gf2.Pow(m, 0, nil)))
	assert.True(t, gf2.Pow(m, 1, nil).Equal(m))

	want := gf2.Identity(5)
	for k := 1; k <= 12; k++ {
		want = gf2.MulSym(want, m)
		assert.True(t, gf2.Pow(m, k, nil).Equal(want), "k=%d", k)
	}

	cache := gf2.NewPowCache()
	first := gf2.Pow(m, 9, cache)
	second := gf2.Pow(m, 9, cache)
	require.Equal(t, 1, cache.Len())
	assert.Same(t, first[0], second[0], "cache hit must return the stored matrix")
}

func TestInvert(t *testing.T) {
	m := gf2.FromInts(6, 7, 3)
	inv, err := gf2.Invert(m)
	require.NoError(t, err)
	assert.Equal(t, []uint64{3, 7, 6}, inv.Ints())
	assert.True(t, gf2.IsIdentity(gf2.MulSym(m, inv)))
	assert.Equal(t, []uint64{6, 7, 3}, m.Ints(), "input must not be mutated")

	_, err = gf2.Invert(gf2.FromInts(3, 3))
	require.ErrorIs(t, err, gf2.ErrSingular)
	_, err = gf2.Invert(gf2.Zero(4))
	require.ErrorIs(t, err, gf2.ErrSingular)
	_, err = gf2.Invert(gf2.Matrix{})
	require.ErrorIs(t, err, gf2.ErrBadSize)
}

func TestInvertLineOperators(t *testing.T) {
	for n := 1; n <= 40; n++ {
		m := lineOperator(n)
		inv, err := gf2.Invert(m)
		if err != nil {
			require.ErrorIs(t, err, gf2.ErrSingular, "n=%d", n)
			continue
		}
		assert.True(t, gf2.IsIdentity(gf2.MulSym(m, inv)), "n=%d", n)
		assert.True(t, gf2.IsIdentity(gf2.MulSym(inv, m)), "n=%d", n)
	}
}

func TestInvertPathsAgree(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 20; trial++ {
		n := 1 + rng.Intn(64)
		m := gf2.Zero(n)
		for r := range m {
			for c := 0; c < n; c++ {
				if rng.Intn(2) == 1 {
					m[r].SetBit(m[r], c, 1)
				}
			}
		}
		a, errA := gf2.InvertBig(m)
		b, errB := gf2.InvertWords(m)
		if errA != nil {
			require.ErrorIs(t, errA, gf2.ErrSingular)
			require.ErrorIs(t, errB, gf2.ErrSingular)
			continue
		}
		require.NoError(t, errB)
		assert.True(t, a.Equal(b), "n=%d", n)
		assert.True(t, gf2.IsIdentity(gf2.MulSym(m, a)), "n=%d", n)
	}
}

func TestInvertWide(t *testing.T) {
	m := unitUpper(300)
	inv, err := gf2.Invert(m)
	require.NoError(t, err)
	assert.True(t, gf2.IsIdentity(gf2.MulSym(m, inv)))
}

func TestPackUnpackFormat(t *testing.T) {
	v, err := gf2.Pack([]int{1, 0, 1, 1})
	require.NoError(t, err)
	assert.Equal(t, int64(0b1011), v.Int64())
	assert.Equal(t, []int{1, 0, 1, 1}, gf2.Unpack(v, 4))
	assert.Equal(t, []int{0, 0, 1, 0, 1, 1}, gf2.Unpack(v, 6))
	assert.Equal(t, "001011", gf2.Format(v, 6))
	assert.Equal(t, "1011", gf2.Format(v, 2))

	empty, err := gf2.Pack(nil)
	require.NoError(t, err)
	assert.Zero(t, empty.Sign())

	_, err = gf2.Pack([]int{1, 2})
	require.ErrorIs(t, err, gf2.ErrBadBit)

	assert.Equal(t, []string{"110", "111", "011"}, gf2.FromInts(6, 7, 3).Rows())
}

func TestApply(t *testing.T) {
	m := gf2.FromInts(6, 7, 3)
	// Pressing the middle light of a 3-wide row toggles all three.
	assert.Equal(t, int64(0b111), gf2.Apply(m, big.NewInt(0b010)).Int64())
	assert.Equal(t, int64(0b110), gf2.Apply(m, big.NewInt(0b100)).Int64())
	assert.Equal(t, uint(1), gf2.Parity(big.NewInt(0b111)))
	assert.Equal(t, uint(0), gf2.Parity(big.NewInt(0b101)))
}
