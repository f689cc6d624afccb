// SPDX-License-Identifier: MIT
// Package: lvsquare/builder
//
// api.go: the Build orchestrator and the Constructor type.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvsquare/grid"
)

// canvas is the mutable n×n matrix constructors paint into before it is
// frozen into a grid.Grid.
type canvas struct {
	n     int
	cells [][]bool
}

// Constructor paints onto the canvas using the resolved configuration.
// Constructors validate early and return sentinel errors wrapped with context.
type Constructor func(c *canvas, cfg builderConfig) error

// Build allocates an n×n all-false canvas, applies cons in order and returns
// the resulting grid. n == 0 yields the empty grid.
//
// Errors: ErrTooSmall for n < 0; any constructor error wrapped with
// "Build: %w".
// Complexity: O(n²) plus the cost of each constructor.
func Build(n int, opts []BuilderOption, cons ...Constructor) (*grid.Grid, error) {
	if n < 0 {
		return nil, fmt.Errorf("Build: n=%d: %w", n, ErrTooSmall)
	}
	cfg := newBuilderConfig(opts...)
	c := &canvas{n: n, cells: make([][]bool, n)}
	for r := range c.cells {
		c.cells[r] = make([]bool, n)
	}
	for _, con := range cons {
		if err := con(c, cfg); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}

	return grid.New(c.cells)
}

// RandomGrid is Build(n, WithSeed(seed), Random(p)), the shape used by the
// stress harness.
func RandomGrid(n int, p float64, seed int64) (*grid.Grid, error) {
	return Build(n, []BuilderOption{WithSeed(seed)}, Random(p))
}
