package analysis

import (
	"context"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lightsout/gf2"
	"github.com/katalvlaran/lightsout/internal/log"
	"github.com/katalvlaran/lightsout/operator"
	"github.com/katalvlaran/lightsout/poly"
)

// Shape is a board size.
type Shape struct {
	Rows int `json:"rows"`
	Cols int `json:"cols"`
}

// IdentitySearch returns every shape up to max×max whose combined operator
// is the identity, ordered by rows then columns. Such boards are solved by
// pressing the chased last row straight into the top row.
//
// Each column count is evaluated in its own goroutine with a private power
// cache.
func IdentitySearch(ctx context.Context, max int) ([]Shape, error) {
	if max < 1 {
		return nil, ErrBadSize
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	found := make([][]Shape, max+1)
	for cols := 1; cols <= max; cols++ {
		g.Go(func() error {
			line, err := operator.Line(cols)
			if err != nil {
				return err
			}
			cache := gf2.NewPowCache()
			for rows := 1; rows <= max; rows++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				if gf2.IsIdentity(poly.Eval(line, poly.Sequence(rows+1), cache)) {
					found[cols] = append(found[cols], Shape{Rows: rows, Cols: cols})
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var out []Shape
	for _, shapes := range found {
		out = append(out, shapes...)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Rows != out[j].Rows {
			return out[i].Rows < out[j].Rows
		}
		return out[i].Cols < out[j].Cols
	})
	log.Info(log.Analysis, "identity search", "max", max, "found", len(out))

	return out, nil
}
