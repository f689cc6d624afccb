// SPDX-License-Identifier: MIT

package runs

import "github.com/katalvlaran/lvsquare/grid"

// Run is the four directional run lengths of a single cell.
type Run struct {
	Up, Down, Left, Right int
}

// Field stores one Run per cell, row-major.
type Field struct {
	n     int
	cells []Run
}

// Compute builds the run-length field of g with four independent scans:
// Up top-down, Down bottom-up, Left left-to-right, Right right-to-left.
// Complexity: O(n²) time and memory.
func Compute(g *grid.Grid) *Field {
	n := g.Side()
	f := &Field{n: n, cells: make([]Run, n*n)}

	// Vertical scans, one column at a time.
	for c := 0; c < n; c++ {
		up := 0
		for r := 0; r < n; r++ {
			if g.Cell(r, c) {
				up++
			} else {
				up = 0
			}
			f.cells[r*n+c].Up = up
		}
		down := 0
		for r := n - 1; r >= 0; r-- {
			if g.Cell(r, c) {
				down++
			} else {
				down = 0
			}
			f.cells[r*n+c].Down = down
		}
	}

	// Horizontal scans, one row at a time.
	for r := 0; r < n; r++ {
		left := 0
		for c := 0; c < n; c++ {
			if g.Cell(r, c) {
				left++
			} else {
				left = 0
			}
			f.cells[r*n+c].Left = left
		}
		right := 0
		for c := n - 1; c >= 0; c-- {
			if g.Cell(r, c) {
				right++
			} else {
				right = 0
			}
			f.cells[r*n+c].Right = right
		}
	}

	return f
}

// Side returns the grid dimension n the field was computed for.
func (f *Field) Side() int { return f.n }

// At returns the runs of cell (row, col). Coordinates must be in range.
func (f *Field) At(row, col int) Run {
	return f.cells[row*f.n+col]
}

// AtPoint is At for a grid.Point.
func (f *Field) AtPoint(p grid.Point) Run {
	return f.cells[p.Row*f.n+p.Col]
}
