// Package lvsquare finds the largest axis-aligned square whose four edges lie
// entirely on true cells of an n×n boolean grid, in O(n² log n) time.
//
// 🚀 What is lvsquare?
//
//	A small, dependency-light library that brings together:
//		• Grids: parse, index and enumerate every diagonal of an n×n grid
//		• Run lengths: up/down/left/right runs and the two elbow fields
//		• Skeleton trees: arena-backed static predecessor structures
//		• Square search: diagonal sweep, brute-force oracle, filled-interior DP
//		• Fixtures: seeded random grids and planted shapes for tests
//
// ✨ Why a diagonal sweep?
//
//   - Every square has its top-left and bottom-right corners on one diagonal
//   - A corner pair is valid when both elbow arms reach the other corner
//   - Activating candidates by trigger column turns each query into one
//     predecessor lookup
//
// Subpackages:
//
//	grid/          Grid, Point, parsing, diagonal enumeration
//	runs/          run-length and elbow fields
//	skeleton/      generic static predecessor tree over a sorted domain
//	square/        Find, Sweep, BruteForce, Filled, CrossCheck
//	builder/       random and shaped grid fixtures
//	cmd/lvsquare/  solve and stress commands
//
// Quick ASCII example (largest square has side 3, top-left (1,1)):
//
//	# # . .
//	# # # #
//	# # # #
//	. # # #
//
//	go get github.com/katalvlaran/lvsquare
package lvsquare
