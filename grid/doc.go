// SPDX-License-Identifier: MIT

// Package grid holds the immutable square boolean matrix that every other
// lvsquare package reads from.
//
// What:
//
//   - Grid wraps an n×n [][]bool (row 0 = top, column 0 = left) in a flat,
//     row-major buffer. It is deep-copied on construction and never mutated.
//   - Point addresses a cell by (Row, Col). Points are ordered by column only;
//     two points on the same diagonal never share a column.
//   - Diagonals enumerates the 2n−1 diagonals (row − col = δ) lazily, each as an
//     ascending-column iter.Seq[Point]. Sequences carry no shared cursor, so
//     they may be re-enumerated or walked from several goroutines at once.
//
// Construction:
//
//   - New([][]bool): deep copy; empty or nil input gives n = 0.
//   - FromInts([][]int): non-zero cells are true.
//   - Parse(string): text rows of 1/#/X (true) and 0/./_ (false).
//
// Diagonal order (3×3, values are cell identifiers):
//
//	1 0 2
//	2 3 4      →   [2] [0 4] [1 3 7] [2 6] [5]
//	5 6 7
//
// Complexity:
//
//   - New / FromInts / Parse: O(n²) time and memory.
//   - At / Cell / InBounds:   O(1).
//   - Diagonal(δ):            O(n−|δ|) per enumeration, O(1) extra memory.
//
// Errors:
//
//   - ErrNonSquare:  ragged rows or rows ≠ columns.
//   - ErrBadCell:    Parse met a rune that is neither a true nor a false marker.
//   - ErrOutOfRange: a diagonal offset outside −(n−1)..(n−1) was requested.
package grid
