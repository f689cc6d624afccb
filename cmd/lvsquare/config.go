// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvsquare/square"
)

// errBadConfig marks every configuration validation failure.
var errBadConfig = errors.New("lvsquare: invalid configuration")

// Config drives the stress command and the default solve algorithm.
type Config struct {
	Seed          int64     `yaml:"seed"`
	Trials        int       `yaml:"trials"`
	Sizes         []int     `yaml:"sizes"`
	Densities     []float64 `yaml:"densities"`
	OracleMaxSize int       `yaml:"oracle_max_size"`
	Algorithm     string    `yaml:"algorithm"`
}

// DefaultConfig mirrors the classic stress sweep: several sizes, five
// densities, one trial each, brute force up to 400×400.
func DefaultConfig() Config {
	return Config{
		Seed:          1,
		Trials:        1,
		Sizes:         []int{10, 50, 100, 200, 400},
		Densities:     []float64{0.1, 0.3, 0.5, 0.8, 0.95},
		OracleMaxSize: 400,
		Algorithm:     square.DefaultAlgorithm.String(),
	}
}

// LoadConfig reads a YAML file over DefaultConfig. Unknown keys are rejected.
func LoadConfig(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	return parseConfig(raw)
}

func parseConfig(raw []byte) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks ranges; it reports the first violation.
func (c Config) Validate() error {
	if c.Trials < 1 {
		return fmt.Errorf("trials=%d must be ≥ 1: %w", c.Trials, errBadConfig)
	}
	if len(c.Sizes) == 0 {
		return fmt.Errorf("sizes must be non-empty: %w", errBadConfig)
	}
	for _, n := range c.Sizes {
		if n < 1 {
			return fmt.Errorf("size=%d must be ≥ 1: %w", n, errBadConfig)
		}
	}
	if len(c.Densities) == 0 {
		return fmt.Errorf("densities must be non-empty: %w", errBadConfig)
	}
	for _, p := range c.Densities {
		if !(p >= 0 && p <= 1) {
			return fmt.Errorf("density=%v must be in [0,1]: %w", p, errBadConfig)
		}
	}
	if c.OracleMaxSize < 0 {
		return fmt.Errorf("oracle_max_size=%d must be ≥ 0: %w", c.OracleMaxSize, errBadConfig)
	}
	if _, err := square.ParseAlgorithm(c.Algorithm); err != nil {
		return fmt.Errorf("algorithm: %v: %w", err, errBadConfig)
	}
	return nil
}
