// SPDX-License-Identifier: MIT

package runs

import "github.com/katalvlaran/lvsquare/grid"

// Elbow is the L-reach of a cell in the two diagonal directions.
//
//   - DownRight: how far the top and left edges of a square can extend when
//     the cell is its top-left corner.
//   - UpLeft: how far the bottom and right edges can extend back when the cell
//     is its bottom-right corner.
type Elbow struct {
	DownRight, UpLeft int
}

// Elbows stores one Elbow per cell, row-major.
type Elbows struct {
	n     int
	cells []Elbow
}

// ComputeElbows derives the elbow field from a run-length field.
// Complexity: O(n²).
func ComputeElbows(f *Field) *Elbows {
	e := &Elbows{n: f.n, cells: make([]Elbow, len(f.cells))}
	for i, run := range f.cells {
		e.cells[i] = Elbow{
			DownRight: min(run.Down, run.Right),
			UpLeft:    min(run.Up, run.Left),
		}
	}
	return e
}

// ElbowsOf is shorthand for ComputeElbows(Compute(g)).
func ElbowsOf(g *grid.Grid) *Elbows {
	return ComputeElbows(Compute(g))
}

// Side returns the grid dimension n.
func (e *Elbows) Side() int { return e.n }

// At returns the elbow of cell (row, col). Coordinates must be in range.
func (e *Elbows) At(row, col int) Elbow {
	return e.cells[row*e.n+col]
}

// AtPoint is At for a grid.Point.
func (e *Elbows) AtPoint(p grid.Point) Elbow {
	return e.cells[p.Row*e.n+p.Col]
}
