// SPDX-License-Identifier: MIT

package square

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/lvsquare/grid"
	"github.com/katalvlaran/lvsquare/runs"
	"github.com/katalvlaran/lvsquare/skeleton"
)

// Sweep finds the largest square frame of g with the diagonal sweep.
//
// Algorithm Outline (per diagonal D, ascending column):
//  1. For every q ∈ D with L = UpLeft(q) > 0, register q under the trigger
//     point at column q.col − L + 1 (always on D, since L ≤ Up and L ≤ Left).
//  2. Build a skeleton.Tree over the columns of D.
//  3. For every p ∈ D in order:
//     a. insert each q registered under p; from now on q's up-left reach
//     covers p, so q can close any square that starts at p.
//     b. probe F = p.col + DownRight(p) − 1. The greatest active column ≤ F
//     is the farthest bottom-right partner of p; fold its side into the best.
//  4. The answer is the best square over all diagonals.
//
// Complexity: O(n² log n) time, O(n²) memory for the elbow field plus O(n)
// per diagonal for the registry and tree.
func Sweep(g *grid.Grid) (Square, error) {
	if g == nil {
		return Square{}, ErrNilGrid
	}
	return sweep(g, runs.ElbowsOf(g), nil)
}

// sweep runs the per-diagonal procedure over every diagonal of g. The best
// square is threaded through as a plain value; diagonals share no state.
func sweep(g *grid.Grid, e *runs.Elbows, logger *slog.Logger) (Square, error) {
	trace := logger != nil && logger.Enabled(context.Background(), slog.LevelDebug)

	var best Square
	for delta := range g.Deltas() {
		pts, err := g.DiagonalPoints(delta)
		if err != nil {
			return Square{}, fmt.Errorf("Sweep: %w", err)
		}
		found, activated, err := sweepDiagonal(pts, e)
		if err != nil {
			return Square{}, fmt.Errorf("Sweep: delta=%d: %w", delta, err)
		}
		if found.Side > best.Side {
			best = found
		}
		if trace {
			logger.Debug("diagonal swept",
				slog.Int("delta", delta),
				slog.Int("points", len(pts)),
				slog.Int("activated", activated),
				slog.Int("diagonal_best", found.Side),
				slog.Int("best", best.Side),
			)
		}
	}

	return best, nil
}

// sweepDiagonal returns the best square whose corners lie on pts (one
// diagonal, ascending column) and the number of points activated in its tree.
func sweepDiagonal(pts []grid.Point, e *runs.Elbows) (Square, int, error) {
	first := pts[0].Col

	// registry[i]: columns that become eligible once the sweep reaches pts[i].
	registry := make([][]int, len(pts))
	cols := make([]int, len(pts))
	for i, q := range pts {
		cols[i] = q.Col
		if reach := e.AtPoint(q).UpLeft; reach > 0 {
			trigger := q.Col - reach + 1 - first
			registry[trigger] = append(registry[trigger], q.Col)
		}
	}

	tree, err := skeleton.Build(cols)
	if err != nil {
		return Square{}, 0, err
	}

	var best Square
	for i, p := range pts {
		for _, col := range registry[i] {
			if err := tree.Insert(col); err != nil {
				return Square{}, 0, err
			}
		}

		reach := e.AtPoint(p).DownRight
		if reach == 0 {
			continue
		}
		qCol, ok := tree.FindValueOrPredecessor(p.Col + reach - 1)
		if !ok {
			continue
		}
		// Partners left of p close no square.
		if side := qCol - p.Col + 1; side > best.Side {
			best = Square{Row: p.Row, Col: p.Col, Side: side}
		}
	}

	return best, tree.Inserted(), nil
}
