// SPDX-License-Identifier: MIT

package operator

import "errors"

var (
	// ErrBadSize indicates a row width below 1.
	ErrBadSize = errors.New("operator: width must be >= 1")
)
