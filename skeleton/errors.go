// SPDX-License-Identifier: MIT

package skeleton

import "errors"

var (
	// ErrEmptyDomain indicates Build was called with no keys.
	ErrEmptyDomain = errors.New("skeleton: domain must be non-empty")

	// ErrUnsortedDomain indicates the domain is not strictly ascending.
	ErrUnsortedDomain = errors.New("skeleton: domain must be strictly ascending")

	// ErrNotInDomain indicates Insert was given a key outside the build domain.
	ErrNotInDomain = errors.New("skeleton: value not in domain")
)
