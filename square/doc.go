// SPDX-License-Identifier: MIT

// Package square finds the largest axis-aligned square of true cells in a
// grid.Grid.
//
// 🚀 Algorithms
//
//	DiagonalSweep (default): O(n² log n).
//	  A square with top-left p and bottom-right q has p and q on the same
//	  diagonal. Its four edges are true iff DownRight(p) ≥ k and UpLeft(q) ≥ k
//	  where k = q.col − p.col + 1. For each diagonal the sweep walks p in
//	  ascending column, activates every q whose UpLeft reach now covers back to
//	  p, and asks a skeleton.Tree for the farthest active q within p's
//	  DownRight reach.
//
//	BruteForceScan: O(n³).
//	  For sizes n…1, scan every top-left corner and test the same four edge
//	  runs directly. Kept as the verification oracle for DiagonalSweep.
//
//	FilledInterior: O(n²).
//	  Classic dynamic program for the largest square whose interior is true
//	  as well as its border.
//
// ⚠️ Frame semantics
//
//	Sweep and BruteForce check only the four boundary edges. For
//
//	  1 1 1
//	  1 0 1
//	  1 1 1
//
//	both report 3 (a frame), while FilledInterior reports 1. Pick the
//	algorithm that matches the question being asked.
//
// ⚙️ Usage:
//
//	g, _ := grid.Parse(text)
//	side := square.Largest(g)
//
//	sq, err := square.Find(g,
//	    square.WithAlgorithm(square.BruteForceScan),
//	    square.WithLogger(slog.Default()),
//	)
//
// Errors:
//
//   - ErrNilGrid:  a nil *grid.Grid was passed to Find or CrossCheck.
//   - ErrMismatch: CrossCheck observed different sides from sweep and oracle.
package square
