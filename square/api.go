// SPDX-License-Identifier: MIT

package square

import (
	"fmt"

	"github.com/katalvlaran/lvsquare/grid"
	"github.com/katalvlaran/lvsquare/runs"
)

// Largest returns the side of the largest square frame of g (diagonal
// sweep), or 0 for a nil or empty grid.
func Largest(g *grid.Grid) int {
	sq, err := Find(g)
	if err != nil {
		return 0
	}
	return sq.Side
}

// Find locates a largest square of g with the configured algorithm.
// Defaults: DiagonalSweep, no logging.
//
// Errors: ErrNilGrid.
func Find(g *grid.Grid, opts ...Option) (Square, error) {
	if g == nil {
		return Square{}, ErrNilGrid
	}
	o := gatherOptions(opts...)

	var (
		sq  Square
		err error
	)
	switch o.algorithm {
	case BruteForceScan:
		sq, err = BruteForce(g)
	case FilledInterior:
		sq, err = Filled(g)
	default:
		sq, err = sweep(g, runs.ElbowsOf(g), o.logger)
	}
	if err != nil {
		return Square{}, err
	}
	o.logger.Debug("square found",
		"algorithm", o.algorithm.String(),
		"n", g.Side(),
		"square", sq.String(),
	)

	return sq, nil
}

// CrossCheck runs the diagonal sweep and the brute-force oracle on g and
// returns both results. It shares one run-length field between them and
// returns ErrMismatch if the sides differ. Corners may legitimately differ
// when several squares share the maximum side.
func CrossCheck(g *grid.Grid) (swept, oracle Square, err error) {
	if g == nil {
		return Square{}, Square{}, ErrNilGrid
	}
	field := runs.Compute(g)
	swept, err = sweep(g, runs.ComputeElbows(field), nil)
	if err != nil {
		return Square{}, Square{}, err
	}
	oracle = BruteForceField(field)
	if swept.Side != oracle.Side {
		return swept, oracle, fmt.Errorf("CrossCheck: n=%d sweep=%s oracle=%s: %w",
			g.Side(), swept, oracle, ErrMismatch)
	}

	return swept, oracle, nil
}
