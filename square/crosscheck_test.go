// SPDX-License-Identifier: MIT

package square_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsquare/builder"
	"github.com/katalvlaran/lvsquare/square"
)

// TestCrossCheck_Random compares the sweep with the oracle on seeded random
// grids across sizes and densities, and checks the reported corners describe
// a valid frame of the reported side.
func TestCrossCheck_Random(t *testing.T) {
	sizes := []int{1, 2, 3, 4, 7, 10, 25, 50}
	densities := []float64{0.1, 0.3, 0.5, 0.8, 0.95}
	seed := int64(1)
	for _, n := range sizes {
		for _, p := range densities {
			for trial := 0; trial < 4; trial++ {
				seed++
				name := fmt.Sprintf("n=%d/p=%.2f/seed=%d", n, p, seed)
				g, err := builder.RandomGrid(n, p, seed)
				require.NoError(t, err, name)

				swept, oracle, err := square.CrossCheck(g)
				require.NoError(t, err, name)
				assert.Equal(t, oracle.Side, swept.Side, name)
				assertFrame(t, g.Cell, swept, name)
				assertFrame(t, g.Cell, oracle, name)
			}
		}
	}
}

// TestCrossCheck_LargeDense runs bigger, dense grids where up-left reaches are
// long and the per-diagonal trees are deep.
func TestCrossCheck_LargeDense(t *testing.T) {
	if testing.Short() {
		t.Skip("large cross-check skipped in -short mode")
	}
	seed := int64(500)
	for _, n := range []int{96, 128} {
		for _, p := range []float64{0.9, 0.95, 0.99} {
			seed++
			name := fmt.Sprintf("n=%d/p=%.2f/seed=%d", n, p, seed)
			g, err := builder.RandomGrid(n, p, seed)
			require.NoError(t, err, name)

			swept, oracle, err := square.CrossCheck(g)
			require.NoError(t, err, name)
			assert.Equal(t, oracle.Side, swept.Side, name)
			assertFrame(t, g.Cell, swept, name)
		}
	}
}

// TestCrossCheck_PlantedFrames plants frames of known side into noise so the
// answer is at least that side.
func TestCrossCheck_PlantedFrames(t *testing.T) {
	for i, tc := range []struct{ n, row, col, side int }{
		{12, 0, 0, 12},
		{12, 3, 5, 7},
		{20, 11, 2, 9},
		{30, 1, 1, 4},
	} {
		g, err := builder.Build(tc.n,
			[]builder.BuilderOption{builder.WithSeed(int64(100 + i))},
			builder.Random(0.35),
			builder.Frame(tc.row, tc.col, tc.side),
		)
		require.NoError(t, err)

		swept, oracle, err := square.CrossCheck(g)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, swept.Side, tc.side)
		assert.Equal(t, oracle.Side, swept.Side)
	}
}

// assertFrame checks that all four edges of sq are true in the grid.
func assertFrame(t *testing.T, cell func(r, c int) bool, sq square.Square, name string) {
	t.Helper()
	if sq.Side == 0 {
		return
	}
	last := sq.Side - 1
	for i := 0; i < sq.Side; i++ {
		for _, rc := range [][2]int{
			{sq.Row, sq.Col + i},
			{sq.Row + last, sq.Col + i},
			{sq.Row + i, sq.Col},
			{sq.Row + i, sq.Col + last},
		} {
			if !cell(rc[0], rc[1]) {
				t.Fatalf("%s: square %s has false border cell (%d,%d)", name, sq, rc[0], rc[1])
			}
		}
	}
}
