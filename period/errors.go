package period

import "errors"

var (
	// ErrPeriodNotFound is returned when the iteration limit is exhausted.
	ErrPeriodNotFound = errors.New("period: period not found within iteration limit")

	// ErrBadSize indicates a width below 1.
	ErrBadSize = errors.New("period: width must be >= 1")
)
