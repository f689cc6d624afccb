// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
)

// app carries state shared by subcommands once PersistentPreRunE has run.
type app struct {
	configPath string
	logLevel   string

	cfg    Config
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{cfg: DefaultConfig()}

	root := &cobra.Command{
		Use:           "lvsquare",
		Short:         "Largest square of true cells in a boolean grid",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			level, err := parseLevel(a.logLevel)
			if err != nil {
				return err
			}
			a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

			if a.configPath != "" {
				cfg, err := LoadConfig(a.configPath)
				if err != nil {
					return err
				}
				a.cfg = cfg
				a.logger.Debug("configuration loaded", "path", a.configPath)
			}
			return nil
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "YAML configuration file")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "info", "log level: debug, info, warn, error")

	root.AddCommand(newSolveCmd(a), newStressCmd(a))
	return root
}

// parseLevel maps a flag value to a slog level.
func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(s))); err != nil {
		return 0, fmt.Errorf("log-level %q: %w", s, err)
	}
	return level, nil
}
