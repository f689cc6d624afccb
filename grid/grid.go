// SPDX-License-Identifier: MIT

package grid

import (
	"fmt"
	"strings"
	"unicode"
)

// New builds a Grid from a square [][]bool. The input is deep-copied.
// A nil or empty slice yields the empty grid (Side() == 0).
// Returns ErrNonSquare if any row length differs from the row count.
// Complexity: O(n²) time and memory.
func New(rows [][]bool) (*Grid, error) {
	n := len(rows)
	for r, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("New: row %d has %d cells, want %d: %w", r, len(row), n, ErrNonSquare)
		}
	}
	cells := make([]bool, n*n)
	for r, row := range rows {
		copy(cells[r*n:(r+1)*n], row)
	}

	return &Grid{n: n, cells: cells}, nil
}

// FromInts builds a Grid from a square [][]int; non-zero values are true.
// Returns ErrNonSquare on ragged or non-square input.
func FromInts(values [][]int) (*Grid, error) {
	n := len(values)
	rows := make([][]bool, n)
	for r, row := range values {
		if len(row) != n {
			return nil, fmt.Errorf("FromInts: row %d has %d cells, want %d: %w", r, len(row), n, ErrNonSquare)
		}
		rows[r] = make([]bool, n)
		for c, v := range row {
			rows[r][c] = v != 0
		}
	}

	return New(rows)
}

// Parse reads one grid row per non-blank line of s. Whitespace inside a line
// is ignored, so "1 0 1" and "101" are the same row.
//
// True markers: 1 # X. False markers: 0 . _
// Returns ErrBadCell on any other rune and ErrNonSquare on shape mismatch.
func Parse(s string) (*Grid, error) {
	var rows [][]bool
	for lineNo, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		row := make([]bool, 0, len(line))
		for _, ch := range line {
			switch {
			case unicode.IsSpace(ch):
				continue
			case ch == markTrue || ch == markTrueHash || ch == markTrueX:
				row = append(row, true)
			case ch == markFalse || ch == markFalseDot || ch == markFalseUnder:
				row = append(row, false)
			default:
				return nil, fmt.Errorf("Parse: line %d: %q: %w", lineNo+1, ch, ErrBadCell)
			}
		}
		rows = append(rows, row)
	}

	return New(rows)
}

// Side returns n, the number of rows (and columns).
func (g *Grid) Side() int { return g.n }

// InBounds reports whether p addresses a cell of g.
// Complexity: O(1).
func (g *Grid) InBounds(p Point) bool {
	return p.Row >= 0 && p.Row < g.n && p.Col >= 0 && p.Col < g.n
}

// At returns the value of the cell at p. Out-of-range points read as false.
// Complexity: O(1).
func (g *Grid) At(p Point) bool {
	return g.Cell(p.Row, p.Col)
}

// Cell returns the value at (row, col). Out-of-range coordinates read as false.
func (g *Grid) Cell(row, col int) bool {
	if row < 0 || row >= g.n || col < 0 || col >= g.n {
		return false
	}
	return g.cells[row*g.n+col]
}

// Rows returns a deep copy of the matrix as [][]bool.
func (g *Grid) Rows() [][]bool {
	out := make([][]bool, g.n)
	for r := range out {
		out[r] = make([]bool, g.n)
		copy(out[r], g.cells[r*g.n:(r+1)*g.n])
	}
	return out
}

// Count returns the number of true cells.
func (g *Grid) Count() int {
	total := 0
	for _, v := range g.cells {
		if v {
			total++
		}
	}
	return total
}

// String renders g as rows of '1' and '0', one line per row.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.n * (g.n + 1))
	for r := 0; r < g.n; r++ {
		for c := 0; c < g.n; c++ {
			if g.cells[r*g.n+c] {
				sb.WriteByte(markTrue)
			} else {
				sb.WriteByte(markFalse)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
