package inversion

import "errors"

var (
	// ErrBadShape indicates rows or cols below 1.
	ErrBadShape = errors.New("inversion: rows and cols must be >= 1")

	// ErrInputWidth indicates an input pattern whose length is not cols.
	ErrInputWidth = errors.New("inversion: input length must equal cols")

	// ErrUnsolvable is returned for a pattern outside the image of a
	// singular combined operator.
	ErrUnsolvable = errors.New("inversion: pattern is not solvable")

	// ErrSingularShape is returned by Inverse for shapes without an inverse.
	ErrSingularShape = errors.New("inversion: combined operator is singular")

	// ErrCacheInconsistent signals a cache entry missing after a fill.
	ErrCacheInconsistent = errors.New("inversion: cache entry missing after fill")
)
