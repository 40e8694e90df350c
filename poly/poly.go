package poly

import (
	"math/big"

	"github.com/katalvlaran/lightsout/gf2"
)

// Sequence returns Pₖ for k = index. Negative indices yield 0.
// Sequence(0..3) = 0, 1, x, x²+1.
func Sequence(index int) *big.Int {
	prev, curr := new(big.Int), big.NewInt(1)
	if index <= 0 {
		return prev
	}
	for k := 1; k < index; k++ {
		next := new(big.Int).Lsh(curr, 1)
		next.Xor(next, prev)
		prev, curr = curr, next
	}

	return curr
}

// Degree returns the index of the highest set bit, or -1 for zero.
func Degree(p *big.Int) int {
	return p.BitLen() - 1
}

// Div performs schoolbook long division: a = q·b + r with deg r < deg b.
func Div(a, b *big.Int) (q, r *big.Int, err error) {
	if b.Sign() == 0 {
		return nil, nil, ErrDivisionByZero
	}
	q = new(big.Int)
	r = new(big.Int).Set(a)
	db := Degree(b)
	shifted := new(big.Int)
	for dr := Degree(r); dr >= db; dr = Degree(r) {
		shift := uint(dr - db)
		q.SetBit(q, int(shift), 1)
		r.Xor(r, shifted.Lsh(b, shift))
	}

	return q, r, nil
}

// Mod returns a mod b.
func Mod(a, b *big.Int) (*big.Int, error) {
	_, r, err := Div(a, b)

	return r, err
}

// Mul returns the carry-less product a·b.
func Mul(a, b *big.Int) *big.Int {
	out := new(big.Int)
	shifted := new(big.Int)
	for i := 0; i < b.BitLen(); i++ {
		if b.Bit(i) == 1 {
			out.Xor(out, shifted.Lsh(a, uint(i)))
		}
	}

	return out
}

// Eval returns p(m): the XOR of m^k for every set bit k of p. cache, when
// non-nil, memoises powers of m across calls.
func Eval(m gf2.Matrix, p *big.Int, cache *gf2.PowCache) gf2.Matrix {
	out := gf2.Zero(len(m))
	for k := 0; k < p.BitLen(); k++ {
		if p.Bit(k) == 1 {
			out = gf2.Add(out, gf2.Pow(m, k, cache))
		}
	}

	return out
}

// Minimal returns the minimal polynomial of m: the monic polynomial of least
// degree with μ(m) = 0.
//
// Powers m⁰, m¹, … are flattened into single bit-vectors (row 0 most
// significant) and reduced against an echelon basis of earlier powers, each
// basis vector carrying the polynomial that generated it. The first power
// that reduces to zero yields μ. The search stops after size² steps and then
// falls back to Sequence(size+1).
func Minimal(m gf2.Matrix) *big.Int {
	size := len(m)
	type entry struct {
		vector *big.Int
		poly   *big.Int
	}
	// basis is kept sorted by descending leading bit, all leading bits distinct.
	var basis []entry

	power := gf2.Identity(size)
	for d := 0; d <= size*size; d++ {
		if d > 0 {
			power = gf2.MulSym(power, m)
		}
		v := flatten(power, size)
		current := new(big.Int).SetBit(new(big.Int), d, 1)
		for _, b := range basis {
			if v.BitLen() == b.vector.BitLen() {
				v.Xor(v, b.vector)
				current.Xor(current, b.poly)
			}
		}
		if v.Sign() == 0 {
			return current
		}

		at := len(basis)
		for i, b := range basis {
			if b.vector.BitLen() < v.BitLen() {
				at = i
				break
			}
		}
		basis = append(basis, entry{})
		copy(basis[at+1:], basis[at:])
		basis[at] = entry{vector: v, poly: current}
	}

	return Sequence(size + 1)
}

func flatten(m gf2.Matrix, size int) *big.Int {
	out := new(big.Int)
	for _, row := range m {
		out.Lsh(out, uint(size))
		out.Or(out, row)
	}

	return out
}

// Divisors returns the positive divisors of n in ascending order.
func Divisors(n int) []int {
	if n < 1 {
		return nil
	}
	var low, high []int
	for i := 1; i*i <= n; i++ {
		if n%i == 0 {
			low = append(low, i)
			if i != n/i {
				high = append(high, n/i)
			}
		}
	}
	for i := len(high) - 1; i >= 0; i-- {
		low = append(low, high[i])
	}

	return low
}
