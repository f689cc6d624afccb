// SPDX-License-Identifier: MIT
// Package: lvsquare/builder
//
// impl_random.go: Random(p): each cell true independently with probability p.
//
// Contract:
//   • 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   • cfg.rng must be non-nil (else ErrNeedRandSource), even for p ∈ {0,1}.
//   • Draws exactly one Float64 per cell in row-major order; a cell is true
//     when the draw is ≤ p. Every cell is overwritten.
//
// Complexity: O(n²) time, O(1) extra space.

package builder

import (
	"fmt"
	"math"
)

const (
	methodRandom = "Random"
	probMin      = 0.0
	probMax      = 1.0
)

// Random returns a Constructor that fills the canvas with density p.
func Random(p float64) Constructor {
	return func(c *canvas, cfg builderConfig) error {
		if math.IsNaN(p) || p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandom, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandom, ErrNeedRandSource)
		}
		for r := 0; r < c.n; r++ {
			for col := 0; col < c.n; col++ {
				c.cells[r][col] = cfg.rng.Float64() <= p
			}
		}
		return nil
	}
}
