// SPDX-License-Identifier: MIT

// Package runs precomputes directional run lengths and the derived "elbow"
// reaches for every cell of a grid.Grid.
//
// What:
//
//   - Field holds, per cell, the number of consecutive true cells starting at
//     the cell and extending Up, Down, Left and Right (the cell included).
//     A false cell has all four runs equal to 0.
//   - Elbows holds, per cell, DownRight = min(Down, Right) and
//     UpLeft = min(Up, Left): the longest L-shape of true cells anchored there.
//
// Recurrence (Right; the other three directions mirror it):
//
//	right(r,c) = 0                   if cell (r,c) is false
//	right(r,c) = 1 + right(r,c+1)    otherwise, with right(r,n) = 0
//
// Complexity:
//
//   - Compute:       four linear scans, O(n²) time and memory.
//   - ComputeElbows: one pass of pairwise minimums, O(n²).
//
// Both results are read-only after construction and safe to share.
package runs
