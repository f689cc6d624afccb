// SPDX-License-Identifier: MIT

// Package builder produces deterministic grid.Grid fixtures for tests,
// benchmarks and the stress harness.
//
// What:
//
//   - One orchestrator, Build(n, opts, cons...), allocates an n×n all-false
//     canvas and applies constructors in order; later constructors paint over
//     earlier ones.
//   - Constructors: Random(p), Fill(v), Block(row, col, side, v),
//     Frame(row, col, side), Checker().
//   - Functional options: WithSeed / WithRand feed stochastic constructors.
//
// Contract:
//
//   - Constructors validate parameters and return sentinel errors; they never
//     panic. Option constructors panic on nonsensical arguments (nil RNG).
//   - Determinism: same n, seed and constructor order ⇒ identical grid.
//     Random draws one Float64 per cell in row-major order.
//
// Example:
//
//	g, err := builder.Build(64,
//	    []builder.BuilderOption{builder.WithSeed(7)},
//	    builder.Random(0.8),
//	    builder.Frame(10, 10, 20),
//	)
//
// Errors:
//
//   - ErrTooSmall:           n < 0 or a non-positive side.
//   - ErrInvalidProbability: p outside [0,1].
//   - ErrNeedRandSource:     Random without WithSeed/WithRand.
//   - ErrOutOfBounds:        a painted square leaves the canvas.
package builder
