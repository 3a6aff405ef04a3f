// Package config holds the driver's run options: a small yaml manifest
// selecting which built-in programs to run and how to present results. The
// core packages never read configuration; it exists for the cmd/minml driver
// and for tests.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// RunConfig is the top-level minml.yaml configuration.
type RunConfig struct {
	// Color controls ANSI coloring of driver output: auto, always or never.
	// Defaults to auto (color when stdout is a terminal).
	Color string `yaml:"color,omitempty"`

	// Trace prints each program's source rendering before its result.
	Trace bool `yaml:"trace,omitempty"`

	// Programs lists the built-in programs to run, by name. Empty means all.
	Programs []string `yaml:"programs,omitempty"`
}

// Default returns the configuration used when no manifest file exists.
func Default() *RunConfig {
	return &RunConfig{Color: ColorAuto}
}

// Load reads and validates a run manifest.
func Load(path string) (*RunConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if cfg.Color == "" {
		cfg.Color = ColorAuto
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks field values the yaml decoder cannot.
func (c *RunConfig) Validate() error {
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("invalid color mode %q (want auto, always or never)", c.Color)
	}
	return nil
}
