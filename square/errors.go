// SPDX-License-Identifier: MIT

package square

import "errors"

var (
	// ErrNilGrid indicates a nil *grid.Grid was passed in.
	ErrNilGrid = errors.New("square: grid is nil")

	// ErrMismatch indicates the diagonal sweep and the brute-force oracle disagree.
	ErrMismatch = errors.New("square: sweep and oracle disagree")
)
