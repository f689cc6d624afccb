// SPDX-License-Identifier: MIT

package square

import (
	"github.com/katalvlaran/lvsquare/grid"
	"github.com/katalvlaran/lvsquare/runs"
)

// BruteForceField scans sizes from n down to 1 and, for each size, every
// top-left corner in row-major order. A corner qualifies when
//
//	topLeft.Right ≥ k, topLeft.Down ≥ k, bottomLeft.Right ≥ k, topRight.Down ≥ k
//
// i.e. all four edges are true. The first hit is returned.
// Complexity: O(n³) time, O(1) extra memory.
func BruteForceField(f *runs.Field) Square {
	n := f.Side()
	for k := n; k >= 1; k-- {
		last := n - k
		for row := 0; row <= last; row++ {
			for col := 0; col <= last; col++ {
				tl := f.At(row, col)
				if tl.Right < k || tl.Down < k {
					continue
				}
				if f.At(row+k-1, col).Right >= k && f.At(row, col+k-1).Down >= k {
					return Square{Row: row, Col: col, Side: k}
				}
			}
		}
	}
	return Square{}
}

// BruteForce is BruteForceField over the run-length field of g.
func BruteForce(g *grid.Grid) (Square, error) {
	if g == nil {
		return Square{}, ErrNilGrid
	}
	return BruteForceField(runs.Compute(g)), nil
}
