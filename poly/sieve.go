package poly

import (
	"math/big"
	"sync"
)

// Sieve is a lazily extended list of irreducible polynomials in ascending
// numeric order. It only grows; a Sieve is safe for concurrent use.
type Sieve struct {
	mu        sync.Mutex
	primes    []*big.Int
	maxDegree int
}

// NewSieve returns a sieve seeded with x and x + 1.
func NewSieve() *Sieve {
	return &Sieve{primes: []*big.Int{big.NewInt(0b10), big.NewInt(0b11)}, maxDegree: 1}
}

var defaultSieve = NewSieve()

// Irreducibles lists all irreducible polynomials of degree ≤ maxDegree using
// the package-wide sieve.
func Irreducibles(maxDegree int) []*big.Int {
	return defaultSieve.Irreducibles(maxDegree)
}

// Irreducibles extends the sieve to maxDegree if needed and returns the
// irreducibles of degree ≤ maxDegree. A candidate of degree d is tested by
// trial division against known irreducibles of degree ≤ d/2.
func (s *Sieve) Irreducibles(maxDegree int) []*big.Int {
	s.mu.Lock()
	defer s.mu.Unlock()

	if maxDegree > s.maxDegree {
		s.extend(maxDegree)
	}

	n := len(s.primes)
	for n > 0 && Degree(s.primes[n-1]) > maxDegree {
		n--
	}
	out := make([]*big.Int, n)
	copy(out, s.primes[:n])

	return out
}

func (s *Sieve) extend(maxDegree int) {
	one := big.NewInt(1)
	limit := new(big.Int).Lsh(one, uint(maxDegree+1))
	p := new(big.Int).Lsh(one, uint(s.maxDegree+1))
	for ; p.Cmp(limit) < 0; p.Add(p, one) {
		if isIrreducible(p, s.primes) {
			s.primes = append(s.primes, new(big.Int).Set(p))
		}
	}
	s.maxDegree = maxDegree
}

func isIrreducible(p *big.Int, primes []*big.Int) bool {
	half := Degree(p) / 2
	for _, f := range primes {
		if Degree(f) > half {
			break
		}
		if r, _ := Mod(p, f); r.Sign() == 0 {
			return false
		}
	}

	return true
}

// Factor is an irreducible factor with its multiplicity.
type Factor struct {
	Factor   *big.Int
	Exponent int
}

// Factorize splits p into irreducible factors in ascending order.
// 0 and 1 have no factors.
func Factorize(p *big.Int) []Factor {
	return defaultSieve.Factorize(p)
}

// Factorize splits p by trial division. Candidates stop at half the degree
// of the remaining cofactor; a cofactor left over is itself irreducible.
func (s *Sieve) Factorize(p *big.Int) []Factor {
	if p.Sign() <= 0 || p.Cmp(big.NewInt(1)) == 0 {
		return nil
	}

	var out []Factor
	rem := new(big.Int).Set(p)
	one := big.NewInt(1)
	for _, f := range s.Irreducibles(Degree(p) / 2) {
		if Degree(f) > Degree(rem)/2 {
			break
		}
		exp := 0
		for {
			q, r, _ := Div(rem, f)
			if r.Sign() != 0 {
				break
			}
			rem = q
			exp++
		}
		if exp > 0 {
			out = append(out, Factor{Factor: f, Exponent: exp})
		}
		if rem.Cmp(one) == 0 {
			return out
		}
	}
	if rem.Cmp(one) != 0 {
		// Every trial factor has lower degree, so the cofactor sorts last.
		out = append(out, Factor{Factor: rem, Exponent: 1})
	}

	return out
}
