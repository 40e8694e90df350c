// Package poly implements polynomial arithmetic over GF(2) and the
// polynomial side of the puzzle's algebra.
//
// A polynomial is a non-negative *big.Int bitmask: bit k is the coefficient
// of x^k. The zero polynomial has degree -1.
//
// The central object is the sequence
//
//	P₀ = 0, P₁ = 1, Pₖ = x·Pₖ₋₁ + Pₖ₋₂
//
// Evaluating P_{rows+1} at the one-row press operator yields the combined
// operator of a rows×cols board, which reduces a (rows·cols)² system to a
// cols² one.
//
// The package also provides long division, evaluation at a matrix, the
// minimal polynomial of a matrix, a lazily extended sieve of irreducible
// polynomials, factorisation by trial division and text rendering with
// Unicode superscripts ("x³ + x + 1") or TeX ("x^{3} + x + 1").
package poly
