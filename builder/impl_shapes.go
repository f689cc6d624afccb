// SPDX-License-Identifier: MIT
// Package: lvsquare/builder
//
// impl_shapes.go: deterministic painters: Fill, Block, Frame, Checker.
//
// Contract:
//   • Block/Frame require side ≥ 1 (ErrTooSmall) and the square
//     [row, row+side) × [col, col+side) inside the canvas (ErrOutOfBounds).
//   • Painters touch only the cells they describe; earlier paint elsewhere
//     is preserved.
//
// Complexity: Fill/Checker O(n²), Block O(side²), Frame O(side).

package builder

import "fmt"

const (
	methodBlock = "Block"
	methodFrame = "Frame"
	minSide     = 1
)

// Fill sets every cell to v.
func Fill(v bool) Constructor {
	return func(c *canvas, _ builderConfig) error {
		for r := range c.cells {
			for col := range c.cells[r] {
				c.cells[r][col] = v
			}
		}
		return nil
	}
}

// Block paints the side×side square with top-left (row, col) to v.
func Block(row, col, side int, v bool) Constructor {
	return func(c *canvas, _ builderConfig) error {
		if err := checkSquare(methodBlock, c, row, col, side); err != nil {
			return err
		}
		for r := row; r < row+side; r++ {
			for k := col; k < col+side; k++ {
				c.cells[r][k] = v
			}
		}
		return nil
	}
}

// Frame paints the border of the side×side square with top-left (row, col)
// true and leaves its interior as it was.
func Frame(row, col, side int) Constructor {
	return func(c *canvas, _ builderConfig) error {
		if err := checkSquare(methodFrame, c, row, col, side); err != nil {
			return err
		}
		last := side - 1
		for i := 0; i < side; i++ {
			c.cells[row][col+i] = true
			c.cells[row+last][col+i] = true
			c.cells[row+i][col] = true
			c.cells[row+i][col+last] = true
		}
		return nil
	}
}

// Checker sets cell (r,c) true when r+c is even. No square larger than 1
// exists in the result.
func Checker() Constructor {
	return func(c *canvas, _ builderConfig) error {
		for r := range c.cells {
			for col := range c.cells[r] {
				c.cells[r][col] = (r+col)%2 == 0
			}
		}
		return nil
	}
}

// checkSquare validates a painted square against the canvas.
func checkSquare(method string, c *canvas, row, col, side int) error {
	if side < minSide {
		return fmt.Errorf("%s: side=%d < min=%d: %w", method, side, minSide, ErrTooSmall)
	}
	if row < 0 || col < 0 || row+side > c.n || col+side > c.n {
		return fmt.Errorf("%s: (%d,%d)+%d exceeds %d×%d: %w",
			method, row, col, side, c.n, c.n, ErrOutOfBounds)
	}
	return nil
}
