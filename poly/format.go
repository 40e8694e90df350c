package poly

import (
	"math/big"
	"strconv"
	"strings"
)

var superscripts = [...]rune{'⁰', '¹', '²', '³', '⁴', '⁵', '⁶', '⁷', '⁸', '⁹'}

var subscripts = [...]rune{'₀', '₁', '₂', '₃', '₄', '₅', '₆', '₇', '₈', '₉'}

// Superscript renders n with Unicode superscript digits: 12 → "¹²".
func Superscript(n int) string {
	return mapDigits(n, superscripts)
}

// Subscript renders n with Unicode subscript digits: 4 → "₄".
func Subscript(n int) string {
	return mapDigits(n, subscripts)
}

func mapDigits(n int, table [10]rune) string {
	var sb strings.Builder
	for _, d := range strconv.Itoa(n) {
		if d == '-' {
			sb.WriteRune('⁻')
			continue
		}
		sb.WriteRune(table[d-'0'])
	}

	return sb.String()
}

// String renders p with descending terms, e.g. "x³ + x + 1".
func String(p *big.Int) string {
	return render(p, func(k int) string { return "x" + Superscript(k) })
}

// TeX renders p with TeX exponents, e.g. "x^{3} + x + 1".
func TeX(p *big.Int) string {
	return render(p, func(k int) string { return "x^{" + strconv.Itoa(k) + "}" })
}

func render(p *big.Int, power func(int) string) string {
	if p.Sign() == 0 {
		return "0"
	}
	terms := make([]string, 0, p.BitLen())
	for k := p.BitLen() - 1; k >= 0; k-- {
		if p.Bit(k) == 0 {
			continue
		}
		switch k {
		case 0:
			terms = append(terms, "1")
		case 1:
			terms = append(terms, "x")
		default:
			terms = append(terms, power(k))
		}
	}

	return strings.Join(terms, " + ")
}

// FormatFactors renders a factorisation as a product, e.g.
// "x(x + 1)²(x² + x + 1)". An empty factorisation renders as "1".
func FormatFactors(fs []Factor) string {
	if len(fs) == 0 {
		return "1"
	}
	var sb strings.Builder
	for _, f := range fs {
		s := String(f.Factor)
		if strings.Contains(s, " ") {
			s = "(" + s + ")"
		}
		sb.WriteString(s)
		if f.Exponent > 1 {
			sb.WriteString(Superscript(f.Exponent))
		}
	}

	return sb.String()
}
