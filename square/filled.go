// SPDX-License-Identifier: MIT

package square

import "github.com/katalvlaran/lvsquare/grid"

// Filled finds the largest square whose every cell, interior included, is true.
//
// DP over bottom-right corners, two rolling rows:
//
//	s(r,c) = 0                                          if cell false
//	s(r,c) = 1 + min(s(r−1,c), s(r,c−1), s(r−1,c−1))    otherwise
//
// Complexity: O(n²) time, O(n) memory.
func Filled(g *grid.Grid) (Square, error) {
	if g == nil {
		return Square{}, ErrNilGrid
	}
	n := g.Side()
	prev := make([]int, n+1)
	curr := make([]int, n+1)

	var best Square
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			if !g.Cell(r, c) {
				curr[c+1] = 0
				continue
			}
			s := 1 + min(prev[c+1], curr[c], prev[c])
			curr[c+1] = s
			if s > best.Side {
				best = Square{Row: r - s + 1, Col: c - s + 1, Side: s}
			}
		}
		prev, curr = curr, prev
	}

	return best, nil
}
