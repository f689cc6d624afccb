// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/lvsquare/builder"
	"github.com/katalvlaran/lvsquare/square"
)

// sizeTimings collects per-run durations in milliseconds for one grid size.
type sizeTimings struct {
	n      int
	sweep  []float64
	oracle []float64
}

func newStressCmd(a *app) *cobra.Command {
	var over Config
	cmd := &cobra.Command{
		Use:   "stress",
		Short: "Compare the sweep with the brute-force oracle on random grids",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := a.cfg
			flags := cmd.Flags()
			if flags.Changed("seed") {
				cfg.Seed = over.Seed
			}
			if flags.Changed("trials") {
				cfg.Trials = over.Trials
			}
			if flags.Changed("sizes") {
				cfg.Sizes = over.Sizes
			}
			if flags.Changed("densities") {
				cfg.Densities = over.Densities
			}
			if flags.Changed("oracle-max-size") {
				cfg.OracleMaxSize = over.OracleMaxSize
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			report, err := runStress(a, cfg)
			if err != nil {
				return err
			}
			writeReport(cmd.OutOrStdout(), report)
			return nil
		},
	}
	def := DefaultConfig()
	f := cmd.Flags()
	f.Int64Var(&over.Seed, "seed", def.Seed, "base seed; run i uses seed+i")
	f.IntVar(&over.Trials, "trials", def.Trials, "grids per size and density")
	f.IntSliceVar(&over.Sizes, "sizes", def.Sizes, "grid sides to test")
	f.Float64SliceVar(&over.Densities, "densities", def.Densities, "probabilities of a true cell")
	f.IntVar(&over.OracleMaxSize, "oracle-max-size", def.OracleMaxSize, "largest side checked by brute force")
	return cmd
}

// runStress generates every size × density × trial grid and fails on the
// first disagreement between the sweep and the oracle.
func runStress(a *app, cfg Config) ([]sizeTimings, error) {
	report := make([]sizeTimings, 0, len(cfg.Sizes))
	seed := cfg.Seed

	for _, n := range cfg.Sizes {
		st := sizeTimings{n: n}
		for _, p := range cfg.Densities {
			for trial := 0; trial < cfg.Trials; trial++ {
				g, err := builder.RandomGrid(n, p, seed)
				if err != nil {
					return nil, err
				}

				start := time.Now()
				swept, err := square.Sweep(g)
				if err != nil {
					return nil, err
				}
				sweepDur := time.Since(start)
				st.sweep = append(st.sweep, millis(sweepDur))

				attrs := []any{"n", n, "density", p, "trial", trial, "seed", seed,
					"side", swept.Side, "sweep", sweepDur}

				if n <= cfg.OracleMaxSize {
					start = time.Now()
					oracle, err := square.BruteForce(g)
					if err != nil {
						return nil, err
					}
					oracleDur := time.Since(start)
					st.oracle = append(st.oracle, millis(oracleDur))
					attrs = append(attrs, "oracle", oracleDur)

					if swept.Side != oracle.Side {
						a.logger.Error("mismatch", append(attrs, "oracle_side", oracle.Side)...)
						return nil, fmt.Errorf("n=%d density=%v seed=%d: sweep %s, oracle %s: %w",
							n, p, seed, swept, oracle, square.ErrMismatch)
					}
				}
				a.logger.Info("run", attrs...)
				seed++
			}
		}
		report = append(report, st)
	}
	return report, nil
}

// writeReport prints mean ± stddev per size; the oracle column is "-" when skipped.
func writeReport(w io.Writer, report []sizeTimings) {
	fmt.Fprintf(w, "%6s %5s %22s %22s\n", "n", "runs", "sweep ms", "oracle ms")
	for _, st := range report {
		fmt.Fprintf(w, "%6d %5d %22s %22s\n", st.n, len(st.sweep), summarize(st.sweep), summarize(st.oracle))
	}
}

func summarize(xs []float64) string {
	if len(xs) == 0 {
		return "-"
	}
	mean, std := stat.MeanStdDev(xs, nil)
	if len(xs) == 1 {
		std = 0
	}
	return fmt.Sprintf("%.3f ± %.3f", mean, std)
}

func millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
