package analysis

import "errors"

var (
	// ErrBadSize indicates a width or bound below 1.
	ErrBadSize = errors.New("analysis: size must be at least 1")
	// ErrStateSpaceTooLarge indicates a reachable state space above the
	// configured rank limit.
	ErrStateSpaceTooLarge = errors.New("analysis: state space too large")
)
