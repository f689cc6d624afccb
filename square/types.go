// SPDX-License-Identifier: MIT

package square

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/katalvlaran/lvsquare/grid"
)

// Square is an axis-aligned square given by its top-left corner and side.
// The zero value (Side == 0) means no square was found.
type Square struct {
	Row, Col int
	Side     int
}

// TopLeft returns the top-left corner.
func (s Square) TopLeft() grid.Point { return grid.Point{Row: s.Row, Col: s.Col} }

// BottomRight returns the bottom-right corner. Meaningless when Side == 0.
func (s Square) BottomRight() grid.Point {
	return grid.Point{Row: s.Row + s.Side - 1, Col: s.Col + s.Side - 1}
}

// String renders "side@(row,col)", or "none" for the zero value.
func (s Square) String() string {
	if s.Side == 0 {
		return "none"
	}
	return fmt.Sprintf("%d@(%d,%d)", s.Side, s.Row, s.Col)
}

// Algorithm selects the search strategy used by Find.
type Algorithm int

const (
	// DiagonalSweep is the O(n² log n) skeleton-tree sweep (frame semantics).
	DiagonalSweep Algorithm = iota
	// BruteForceScan is the O(n³) corner scan oracle (frame semantics).
	BruteForceScan
	// FilledInterior is the O(n²) DP requiring every interior cell true.
	FilledInterior
)

var algorithmNames = [...]string{
	DiagonalSweep:  "sweep",
	BruteForceScan: "brute",
	FilledInterior: "filled",
}

// String returns the short name used by ParseAlgorithm.
func (a Algorithm) String() string {
	if a < 0 || int(a) >= len(algorithmNames) {
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
	return algorithmNames[a]
}

// ParseAlgorithm maps "sweep", "brute" or "filled" (case-insensitive) to an Algorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	for i, s := range algorithmNames {
		if strings.EqualFold(name, s) {
			return Algorithm(i), nil
		}
	}
	return 0, fmt.Errorf("square: unknown algorithm %q (want sweep, brute or filled)", name)
}

// DefaultAlgorithm is used when Find receives no WithAlgorithm option.
const DefaultAlgorithm = DiagonalSweep

// Option customizes Find.
type Option func(*options)

type options struct {
	algorithm Algorithm
	logger    *slog.Logger
}

// WithAlgorithm selects the search strategy.
// Panics on a value outside the declared constants.
func WithAlgorithm(a Algorithm) Option {
	if a < DiagonalSweep || a > FilledInterior {
		panic(fmt.Sprintf("square: WithAlgorithm(%d)", int(a)))
	}
	return func(o *options) {
		o.algorithm = a
	}
}

// WithLogger enables debug tracing (one record per diagonal for the sweep).
// Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("square: WithLogger(nil)")
	}
	return func(o *options) {
		o.logger = l
	}
}

// gatherOptions applies opts in order over the defaults; last wins.
func gatherOptions(opts ...Option) options {
	o := options{
		algorithm: DefaultAlgorithm,
		logger:    slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
