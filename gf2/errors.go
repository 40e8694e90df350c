// SPDX-License-Identifier: MIT

package gf2

import "errors"

// Sentinel errors. Every message carries the "gf2: " prefix; callers match
// them with errors.Is.
var (
	// ErrNegative is returned by CountBits for a negative argument.
	ErrNegative = errors.New("gf2: negative bit-vector")

	// ErrSingular is returned by Invert when the matrix has no inverse.
	ErrSingular = errors.New("gf2: singular matrix")

	// ErrDimensionMismatch indicates operands of different sizes.
	ErrDimensionMismatch = errors.New("gf2: dimension mismatch")

	// ErrBadSize indicates a non-positive matrix side or vector width.
	ErrBadSize = errors.New("gf2: size must be > 0")

	// ErrBadBit indicates a packed vector entry outside {0, 1}.
	ErrBadBit = errors.New("gf2: vector entries must be 0 or 1")
)
