package poly_test

import (
	"fmt"

	"github.com/katalvlaran/lightsout/operator"
	"github.com/katalvlaran/lightsout/poly"
)

// ExampleMinimal prints the minimal polynomial of the 6-wide row operator
// and its factorisation.
func ExampleMinimal() {
	mu := poly.Minimal(operator.MustLine(6))
	fmt.Println(poly.String(mu))
	fmt.Println(poly.FormatFactors(poly.Factorize(mu)))
	// Output:
	// x⁶ + x² + 1
	// (x³ + x + 1)²
}

func ExampleSequence() {
	for k := 0; k <= 5; k++ {
		fmt.Printf("P%s = %s\n", poly.Subscript(k), poly.String(poly.Sequence(k)))
	}
	// Output:
	// P₀ = 0
	// P₁ = 1
	// P₂ = x
	// P₃ = x² + 1
	// P₄ = x³
	// P₅ = x⁴ + x² + 1
}
