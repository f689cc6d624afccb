// SPDX-License-Identifier: MIT
// Package: lvsquare/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only package-level sentinels are exposed; callers use errors.Is.
//   • Constructors attach context with %w (method tag + parameters).

package builder

import "errors"

// ErrTooSmall indicates a dimension or side below the allowed minimum.
var ErrTooSmall = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without an RNG.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrOutOfBounds indicates a painted region does not fit in the canvas.
var ErrOutOfBounds = errors.New("builder: region out of bounds")
