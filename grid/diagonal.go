// SPDX-License-Identifier: MIT

package grid

import (
	"fmt"
	"iter"
)

// DiagonalCount returns 2n−1, or 0 for the empty grid.
func (g *Grid) DiagonalCount() int {
	if g.n == 0 {
		return 0
	}
	return 2*g.n - 1
}

// DiagonalLen returns the number of cells with row − col == delta,
// or 0 when delta is outside −(n−1)..(n−1).
func (g *Grid) DiagonalLen(delta int) int {
	if delta < 0 {
		delta = -delta
	}
	if delta >= g.n {
		return 0
	}
	return g.n - delta
}

// diagonalStart returns the top-left cell of the diagonal row − col == delta.
func diagonalStart(delta int) Point {
	if delta >= 0 {
		return Point{Row: delta, Col: 0}
	}
	return Point{Row: 0, Col: -delta}
}

// Diagonal returns the cells with row − col == delta in ascending column
// order. The sequence is lazy and holds no state between enumerations.
// An out-of-range delta yields an empty sequence.
// Complexity: O(n−|δ|) per enumeration, O(1) memory.
func (g *Grid) Diagonal(delta int) iter.Seq[Point] {
	length := g.DiagonalLen(delta)
	start := diagonalStart(delta)
	return func(yield func(Point) bool) {
		for i := 0; i < length; i++ {
			if !yield(Point{Row: start.Row + i, Col: start.Col + i}) {
				return
			}
		}
	}
}

// DiagonalPoints materializes Diagonal(delta) into a slice.
// Returns ErrOutOfRange if delta is outside −(n−1)..(n−1).
func (g *Grid) DiagonalPoints(delta int) ([]Point, error) {
	length := g.DiagonalLen(delta)
	if length == 0 {
		return nil, fmt.Errorf("DiagonalPoints: delta=%d, n=%d: %w", delta, g.n, ErrOutOfRange)
	}
	start := diagonalStart(delta)
	pts := make([]Point, length)
	for i := range pts {
		pts[i] = Point{Row: start.Row + i, Col: start.Col + i}
	}
	return pts, nil
}

// Diagonals enumerates all 2n−1 diagonals, ordered by delta from −(n−1)
// (the top-right corner cell) to n−1 (the bottom-left corner cell).
// Each inner sequence is ascending in column.
func (g *Grid) Diagonals() iter.Seq[iter.Seq[Point]] {
	return func(yield func(iter.Seq[Point]) bool) {
		for delta := -(g.n - 1); delta <= g.n-1; delta++ {
			if !yield(g.Diagonal(delta)) {
				return
			}
		}
	}
}

// Deltas enumerates the diagonal offsets in the same order as Diagonals.
func (g *Grid) Deltas() iter.Seq[int] {
	return func(yield func(int) bool) {
		for delta := -(g.n - 1); delta <= g.n-1; delta++ {
			if !yield(delta) {
				return
			}
		}
	}
}
