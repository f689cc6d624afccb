// SPDX-License-Identifier: MIT

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig_Valid(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())
}

func TestParseConfig_OverridesDefaults(t *testing.T) {
	cfg, err := parseConfig([]byte(`
seed: 7
trials: 3
sizes: [5, 9]
oracle_max_size: 5
`))
	require.NoError(t, err)
	assert.Equal(t, int64(7), cfg.Seed)
	assert.Equal(t, 3, cfg.Trials)
	assert.Equal(t, []int{5, 9}, cfg.Sizes)
	assert.Equal(t, 5, cfg.OracleMaxSize)
	assert.Equal(t, DefaultConfig().Densities, cfg.Densities, "unset keys keep defaults")
	assert.Equal(t, "sweep", cfg.Algorithm)
}

func TestParseConfig_Empty(t *testing.T) {
	cfg, err := parseConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestParseConfig_UnknownKey(t *testing.T) {
	_, err := parseConfig([]byte("sizez: [3]\n"))
	require.Error(t, err)
}

func TestConfig_Validate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero trials", func(c *Config) { c.Trials = 0 }},
		{"no sizes", func(c *Config) { c.Sizes = nil }},
		{"negative size", func(c *Config) { c.Sizes = []int{4, -1} }},
		{"no densities", func(c *Config) { c.Densities = []float64{} }},
		{"density above one", func(c *Config) { c.Densities = []float64{1.5} }},
		{"negative oracle bound", func(c *Config) { c.OracleMaxSize = -1 }},
		{"unknown algorithm", func(c *Config) { c.Algorithm = "greedy" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), errBadConfig)
		})
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stress.yaml")
	require.NoError(t, os.WriteFile(path, []byte("algorithm: brute\ndensities: [0.5]\n"), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "brute", cfg.Algorithm)
	assert.Equal(t, []float64{0.5}, cfg.Densities)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
