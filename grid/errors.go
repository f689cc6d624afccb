// SPDX-License-Identifier: MIT

package grid

import "errors"

var (
	// ErrNonSquare indicates ragged rows or a row count different from the column count.
	ErrNonSquare = errors.New("grid: input must be an n×n matrix")

	// ErrBadCell indicates Parse met a rune that is neither a true nor a false marker.
	ErrBadCell = errors.New("grid: unrecognized cell marker")

	// ErrOutOfRange indicates a diagonal offset outside −(n−1)..(n−1).
	ErrOutOfRange = errors.New("grid: diagonal offset out of range")
)
