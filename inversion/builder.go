package inversion

import (
	"github.com/katalvlaran/lightsout/gf2"
	"github.com/katalvlaran/lightsout/operator"
	"github.com/katalvlaran/lightsout/poly"
)

//go:generate mockgen -destination=mock_builder_test.go -package=inversion_test github.com/katalvlaran/lightsout/inversion Builder

// Builder produces the combined operator of a board shape.
type Builder interface {
	Operator(rows, cols int) (gf2.Matrix, error)
}

// DefaultBuilder evaluates P_{rows+1} at the one-row operator of width cols.
type DefaultBuilder struct{}

// Operator implements Builder.
func (DefaultBuilder) Operator(rows, cols int) (gf2.Matrix, error) {
	line, err := operator.Line(cols)
	if err != nil {
		return nil, err
	}

	return poly.Eval(line, poly.Sequence(rows+1), gf2.NewPowCache()), nil
}
