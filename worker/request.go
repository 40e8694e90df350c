package worker

import (
	"fmt"

	"github.com/katalvlaran/lightsout/period"
)

// Kind names a job.
type Kind string

const (
	// KindProduct maps a last row to top-row presses (Rows, Cols, Input).
	KindProduct Kind = "product"
	// KindPattern reports the identity periodicity of width N. Limit, when
	// positive, bounds the recurrence walk.
	KindPattern Kind = "pattern"
	// KindSolvability reports on the N×N board.
	KindSolvability Kind = "solvability"
	// KindIdentity lists identity shapes up to N×N.
	KindIdentity Kind = "identity"
	// KindGodsNumber computes the God's number of the N×N board.
	KindGodsNumber Kind = "gods-number"
	// KindVerify checks the width-N pattern for heights 1..Limit.
	KindVerify Kind = "verify"
	// KindSolve returns the press set clearing Board.
	KindSolve Kind = "solve"
	// KindChase returns the chase animation of Presses on a Rows×Cols board.
	KindChase Kind = "chase"
)

// Request describes one job. Fields a kind does not use are ignored.
type Request struct {
	ID      string  `json:"id,omitempty"`
	Kind    Kind    `json:"kind"`
	N       int     `json:"n,omitempty"`
	Rows    int     `json:"rows,omitempty"`
	Cols    int     `json:"cols,omitempty"`
	Input   []int   `json:"input,omitempty"`
	Limit   int     `json:"limit,omitempty"`
	Board   [][]int `json:"board,omitempty"`
	Presses []int   `json:"presses,omitempty"`
}

// Response is the single reply to a Request.
type Response struct {
	ID      string `json:"id,omitempty"`
	Success bool   `json:"success"`
	Result  any    `json:"result,omitempty"`
	Error   string `json:"error,omitempty"`
}

func success(id string, result any) Response {
	return Response{ID: id, Success: true, Result: result}
}

func failure(id string, err error) Response {
	return Response{ID: id, Error: err.Error()}
}

const (
	// maxGodsWidth bounds KindGodsNumber regardless of the dispatcher limit.
	maxGodsWidth = 32
	// MaxVerifyLimit bounds the heights a KindVerify job checks. Each height
	// costs one N×N product.
	MaxVerifyLimit = 100_000
)

// validate checks the sizes a kind reads against limit.
func (r Request) validate(limit int) error {
	check := func(name string, v int) error {
		if v > limit {
			return fmt.Errorf("%s %d > %d: %w", name, v, limit, ErrTooLarge)
		}
		return nil
	}
	switch r.Kind {
	case KindProduct, KindChase:
		if err := check("rows", r.Rows); err != nil {
			return err
		}
		return check("cols", r.Cols)
	case KindGodsNumber:
		// The press matrix is n²×n²; keep its elimination tractable.
		if r.N > maxGodsWidth {
			return fmt.Errorf("n %d > %d: %w", r.N, maxGodsWidth, ErrTooLarge)
		}
		return check("n", r.N)
	case KindPattern:
		if r.Limit > period.DefaultIterationLimit {
			return fmt.Errorf("limit %d > %d: %w", r.Limit, period.DefaultIterationLimit, ErrTooLarge)
		}
		return check("n", r.N)
	case KindVerify:
		if r.Limit > MaxVerifyLimit {
			return fmt.Errorf("limit %d > %d: %w", r.Limit, MaxVerifyLimit, ErrTooLarge)
		}
		return check("n", r.N)
	case KindSolvability, KindIdentity:
		return check("n", r.N)
	case KindSolve:
		if err := check("rows", len(r.Board)); err != nil {
			return err
		}
		if len(r.Board) > 0 {
			return check("cols", len(r.Board[0]))
		}
		return nil
	default:
		return fmt.Errorf("%q: %w", r.Kind, ErrUnknownKind)
	}
}
