package poly

import "errors"

// ErrDivisionByZero is returned by Div and Mod for a zero divisor.
var ErrDivisionByZero = errors.New("poly: division by zero polynomial")
