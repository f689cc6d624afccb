// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvsquare/grid"
	"github.com/katalvlaran/lvsquare/square"
)

func newSolveCmd(a *app) *cobra.Command {
	var (
		algorithm string
		check     bool
	)
	cmd := &cobra.Command{
		Use:   "solve [file]",
		Short: "Solve one grid read from a file or stdin",
		Long: "Reads one grid row per line (1/#/X true, 0/./_ false) and prints the side\n" +
			"and top-left corner of the largest square.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := a.cfg.Algorithm
			if cmd.Flags().Changed("algorithm") {
				name = algorithm
			}
			alg, err := square.ParseAlgorithm(name)
			if err != nil {
				return err
			}

			g, err := readGrid(cmd, args)
			if err != nil {
				return err
			}

			start := time.Now()
			sq, err := square.Find(g, square.WithAlgorithm(alg), square.WithLogger(a.logger))
			if err != nil {
				return err
			}
			a.logger.Info("solved",
				"algorithm", alg.String(),
				"n", g.Side(),
				"side", sq.Side,
				"elapsed", time.Since(start),
			)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "side: %d\n", sq.Side)
			if sq.Side > 0 {
				fmt.Fprintf(out, "top-left: (%d,%d)\n", sq.Row, sq.Col)
			}

			if check {
				swept, oracle, err := square.CrossCheck(g)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "check: sweep=%s oracle=%s ok\n", swept, oracle)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&algorithm, "algorithm", square.DefaultAlgorithm.String(), "sweep, brute or filled")
	cmd.Flags().BoolVar(&check, "check", false, "also cross-check the sweep against the brute-force oracle")
	return cmd
}

// readGrid parses the grid from args[0], or from stdin when no file or "-" is given.
func readGrid(cmd *cobra.Command, args []string) (*grid.Grid, error) {
	var (
		raw []byte
		err error
	)
	if len(args) == 0 || args[0] == "-" {
		raw, err = io.ReadAll(cmd.InOrStdin())
	} else {
		raw, err = os.ReadFile(args[0])
	}
	if err != nil {
		return nil, fmt.Errorf("read grid: %w", err)
	}
	return grid.Parse(string(raw))
}
