package gf2_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/lightsout/gf2"
)

var benchSizes = []int{32, 128, 512}

// sinks to defeat dead-code elimination
var (
	sinkM   gf2.Matrix
	sinkErr error
)

func BenchmarkInvert(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			m := unitUpper(n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkM, sinkErr = gf2.Invert(m)
			}
		})
	}
}

func BenchmarkPow(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			m := lineOperator(n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkM = gf2.Pow(m, 1000, nil)
			}
		})
	}
}
