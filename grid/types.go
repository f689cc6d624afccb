// SPDX-License-Identifier: MIT

package grid

// Point addresses a single cell. Row 0 is the top row, Col 0 the left column.
//
// Points are compared by column only: on a diagonal the column determines the
// row, so column order is the natural sweep order.
type Point struct {
	Row, Col int
}

// Less reports whether p lies strictly left of q.
func (p Point) Less(q Point) bool { return p.Col < q.Col }

// LessEq reports whether p lies left of q or in the same column.
func (p Point) LessEq(q Point) bool { return p.Col <= q.Col }

// Delta returns the diagonal offset row − col that p belongs to.
func (p Point) Delta() int { return p.Row - p.Col }

// Grid is an immutable n×n boolean matrix.
// cells holds the values row-major: cells[row*n+col].
type Grid struct {
	n     int
	cells []bool
}

// Marker runes recognized by Parse.
const (
	markTrue     = '1'
	markTrueHash = '#'
	markTrueX    = 'X'

	markFalse      = '0'
	markFalseDot   = '.'
	markFalseUnder = '_'
)
