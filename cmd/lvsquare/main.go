// SPDX-License-Identifier: MIT

// Command lvsquare finds the largest square of true cells in a grid read from
// a file or stdin, and stress-tests the diagonal sweep against the
// brute-force oracle on random grids.
//
//	lvsquare solve grid.txt
//	lvsquare solve --algorithm filled < grid.txt
//	lvsquare stress --config stress.yaml --log-level debug
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
