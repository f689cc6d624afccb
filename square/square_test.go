// SPDX-License-Identifier: MIT

package square_test

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsquare/builder"
	"github.com/katalvlaran/lvsquare/grid"
	"github.com/katalvlaran/lvsquare/square"
)

func mustParse(t *testing.T, s string) *grid.Grid {
	t.Helper()
	g, err := grid.Parse(s)
	require.NoError(t, err)
	return g
}

// findAll runs all three algorithms on g.
func findAll(t *testing.T, g *grid.Grid) (swept, brute, filled square.Square) {
	t.Helper()
	var err error
	swept, err = square.Find(g)
	require.NoError(t, err)
	brute, err = square.Find(g, square.WithAlgorithm(square.BruteForceScan))
	require.NoError(t, err)
	filled, err = square.Find(g, square.WithAlgorithm(square.FilledInterior))
	require.NoError(t, err)
	return swept, brute, filled
}

//----------------------------------------------------------------------------//
// Known fixtures
//----------------------------------------------------------------------------//

// TestFixtures checks the two reference grids.
func TestFixtures(t *testing.T) {
	cases := []struct {
		name string
		grid string
		want int
	}{
		{"Side2", "1100\n1011\n1111\n0011", 2},
		{"Side3", "1100\n1111\n1111\n0111", 3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := mustParse(t, tc.grid)
			swept, brute, filled := findAll(t, g)
			assert.Equal(t, tc.want, swept.Side, "sweep")
			assert.Equal(t, tc.want, brute.Side, "brute force")
			assert.Equal(t, tc.want, filled.Side, "filled (interior is full here)")
			assert.Equal(t, tc.want, square.Largest(g))
		})
	}
}

// TestFixture_Corner checks the reported corner of a unique maximum.
func TestFixture_Corner(t *testing.T) {
	g := mustParse(t, "1100\n1111\n1111\n0111")
	swept, brute, _ := findAll(t, g)
	want := square.Square{Row: 1, Col: 1, Side: 3}
	assert.Equal(t, want, swept)
	assert.Equal(t, want, brute)
	assert.Equal(t, grid.Point{Row: 3, Col: 3}, swept.BottomRight())
	assert.Equal(t, grid.Point{Row: 1, Col: 1}, swept.TopLeft())
	assert.Equal(t, "3@(1,1)", swept.String())
}

//----------------------------------------------------------------------------//
// Boundary cases
//----------------------------------------------------------------------------//

// TestBoundaries covers empty, all-false, all-true and single-cell grids.
func TestBoundaries(t *testing.T) {
	empty, err := grid.New(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, square.Largest(empty))
	sq, err := square.Find(empty)
	require.NoError(t, err)
	assert.Equal(t, "none", sq.String())

	for _, n := range []int{1, 2, 5, 17} {
		allFalse, err := builder.Build(n, nil, builder.Fill(false))
		require.NoError(t, err)
		swept, brute, filled := findAll(t, allFalse)
		assert.Equal(t, 0, swept.Side, "all-false n=%d", n)
		assert.Equal(t, 0, brute.Side, "all-false n=%d", n)
		assert.Equal(t, 0, filled.Side, "all-false n=%d", n)

		allTrue, err := builder.Build(n, nil, builder.Fill(true))
		require.NoError(t, err)
		swept, brute, filled = findAll(t, allTrue)
		assert.Equal(t, square.Square{Side: n}, swept, "all-true n=%d", n)
		assert.Equal(t, square.Square{Side: n}, brute, "all-true n=%d", n)
		assert.Equal(t, square.Square{Side: n}, filled, "all-true n=%d", n)
	}

	assert.Equal(t, 1, square.Largest(mustParse(t, "1")))
	assert.Equal(t, 0, square.Largest(mustParse(t, "0")))
}

// TestChecker expects side 1 on a checkerboard.
func TestChecker(t *testing.T) {
	g, err := builder.Build(8, nil, builder.Checker())
	require.NoError(t, err)
	swept, brute, filled := findAll(t, g)
	assert.Equal(t, 1, swept.Side)
	assert.Equal(t, 1, brute.Side)
	assert.Equal(t, 1, filled.Side)
}

//----------------------------------------------------------------------------//
// Frame semantics
//----------------------------------------------------------------------------//

// TestFrameSemantics records that the sweep and the oracle accept a square
// whose border is true and whose interior is not, while Filled does not.
func TestFrameSemantics(t *testing.T) {
	ring := mustParse(t, "111\n101\n111")
	swept, brute, filled := findAll(t, ring)
	assert.Equal(t, 3, swept.Side, "sweep checks the border only")
	assert.Equal(t, 3, brute.Side, "oracle checks the border only")
	assert.Equal(t, 1, filled.Side, "filled requires a true interior")

	// A hollow 6-frame beats a solid 3-block for frame semantics only.
	g, err := builder.Build(10, nil,
		builder.Frame(0, 0, 6),
		builder.Block(7, 7, 3, true),
	)
	require.NoError(t, err)
	swept, brute, filled = findAll(t, g)
	assert.Equal(t, square.Square{Row: 0, Col: 0, Side: 6}, swept)
	assert.Equal(t, square.Square{Row: 0, Col: 0, Side: 6}, brute)
	assert.Equal(t, square.Square{Row: 7, Col: 7, Side: 3}, filled)
}

//----------------------------------------------------------------------------//
// Facade and options
//----------------------------------------------------------------------------//

// TestNilGrid checks every entry point rejects nil.
func TestNilGrid(t *testing.T) {
	_, err := square.Find(nil)
	assert.ErrorIs(t, err, square.ErrNilGrid)
	_, err = square.Sweep(nil)
	assert.ErrorIs(t, err, square.ErrNilGrid)
	_, err = square.BruteForce(nil)
	assert.ErrorIs(t, err, square.ErrNilGrid)
	_, err = square.Filled(nil)
	assert.ErrorIs(t, err, square.ErrNilGrid)
	_, _, err = square.CrossCheck(nil)
	assert.ErrorIs(t, err, square.ErrNilGrid)
	assert.Equal(t, 0, square.Largest(nil))
}

// TestFind_BruteForceScanDispatch expects the BruteForceScan algorithm and the
// BruteForce function to be distinct identifiers that agree on a result.
func TestFind_BruteForceScanDispatch(t *testing.T) {
	g := mustParse(t, "111\n101\n111\n")

	direct, err := square.BruteForce(g)
	require.NoError(t, err)
	viaFind, err := square.Find(g, square.WithAlgorithm(square.BruteForceScan))
	require.NoError(t, err)

	assert.Equal(t, square.Square{Row: 0, Col: 0, Side: 3}, direct)
	assert.Equal(t, direct, viaFind)

	parsed, err := square.ParseAlgorithm("brute")
	require.NoError(t, err)
	assert.Equal(t, square.BruteForceScan, parsed)
	assert.Equal(t, "brute", square.BruteForceScan.String())
}

// TestOptions covers option guards and algorithm names.
func TestOptions(t *testing.T) {
	assert.Panics(t, func() { square.WithAlgorithm(square.Algorithm(42)) })
	assert.Panics(t, func() { square.WithLogger(nil) })

	for _, a := range []square.Algorithm{square.DiagonalSweep, square.BruteForceScan, square.FilledInterior} {
		got, err := square.ParseAlgorithm(strings.ToUpper(a.String()))
		require.NoError(t, err)
		assert.Equal(t, a, got)
	}
	_, err := square.ParseAlgorithm("quantum")
	assert.Error(t, err)
	assert.Equal(t, "Algorithm(9)", square.Algorithm(9).String())
}

// TestWithLogger expects one debug record per diagonal plus the summary.
func TestWithLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	g := mustParse(t, "1100\n1011\n1111\n0011")
	sq, err := square.Find(g, square.WithLogger(logger))
	require.NoError(t, err)
	assert.Equal(t, 2, sq.Side)

	out := buf.String()
	assert.Equal(t, g.DiagonalCount(), strings.Count(out, "diagonal swept"))
	assert.Contains(t, out, "square found")
	assert.Contains(t, out, "algorithm=sweep")
}

// TestWithLogger_InfoLevelSilent expects no sweep trace above debug level.
func TestWithLogger_InfoLevelSilent(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))

	_, err := square.Find(mustParse(t, "11\n11"), square.WithLogger(logger))
	require.NoError(t, err)
	assert.Empty(t, buf.String())
}
