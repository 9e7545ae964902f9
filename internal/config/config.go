// Package config loads the settings of a comparison run from defaults, an
// optional YAML or JSON file and FFTCOMPARE_* environment variables.
package config

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cwbudde/fftcompare"
)

// Environment variables read by Load.
const (
	EnvRows            = "FFTCOMPARE_ROWS"
	EnvCols            = "FFTCOMPARE_COLS"
	EnvTrials          = "FFTCOMPARE_TRIALS"
	EnvSeed            = "FFTCOMPARE_SEED"
	EnvTolerance       = "FFTCOMPARE_TOLERANCE"
	EnvBackendA        = "FFTCOMPARE_BACKEND_A"
	EnvBackendB        = "FFTCOMPARE_BACKEND_B"
	EnvClock           = "FFTCOMPARE_CLOCK"
	EnvReusePlans      = "FFTCOMPARE_REUSE_PLANS"
	EnvReseedEachTrial = "FFTCOMPARE_RESEED_EACH_TRIAL"
	EnvLogLevel        = "FFTCOMPARE_LOG_LEVEL"
)

// Config is the complete set of run settings.
type Config struct {
	Rows      int     `json:"rows" yaml:"rows"`
	Cols      int     `json:"cols" yaml:"cols"`
	Trials    int     `json:"trials" yaml:"trials"`
	Seed      uint64  `json:"seed" yaml:"seed"`
	Tolerance float64 `json:"tolerance" yaml:"tolerance"`

	BackendA string `json:"backend_a" yaml:"backend_a"`
	BackendB string `json:"backend_b" yaml:"backend_b"`
	Clock    string `json:"clock" yaml:"clock"`

	ReusePlans      bool `json:"reuse_plans" yaml:"reuse_plans"`
	ReseedEachTrial bool `json:"reseed_each_trial" yaml:"reseed_each_trial"`

	LogLevel string `json:"log_level" yaml:"log_level"`
}

// Default returns the default settings: two 2048x2048 transforms per
// trial, 1000 trials, seed 1, tolerance 1e-6, gonum against go-dsp.
func Default() Config {
	run := fftcompare.DefaultRunConfig()

	return Config{
		Rows:      run.Shape.Rows,
		Cols:      run.Shape.Cols,
		Trials:    run.Trials,
		Seed:      run.Seed,
		Tolerance: run.Tolerance,
		BackendA:  "gonum",
		BackendB:  "godsp",
		Clock:     fftcompare.ClockMonotonic,
		LogLevel:  "info",
	}
}

// Override adjusts a Config after the file and environment layers.
type Override func(*Config)

// Load builds a Config with priority overrides > env > file > defaults and
// validates only the merged result, so a higher layer may correct a lower
// one. An empty path or a missing file leaves the defaults in place.
func Load(path string, overrides ...Override) (Config, error) {
	cfg := Default()

	if path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return cfg, fmt.Errorf("load config file: %w", err)
		}
	}

	if err := loadEnv(&cfg); err != nil {
		return cfg, err
	}

	for _, o := range overrides {
		o(&cfg)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	// Try YAML first, then JSON.
	if err := yaml.Unmarshal(data, cfg); err != nil {
		if jsonErr := json.Unmarshal(data, cfg); jsonErr != nil {
			return fmt.Errorf("parse config (tried YAML and JSON): YAML error: %v, JSON error: %w", err, jsonErr)
		}
	}

	return nil
}

// loadEnv applies FFTCOMPARE_* overrides. Malformed values are errors.
func loadEnv(cfg *Config) error {
	ints := []struct {
		key string
		dst *int
	}{
		{EnvRows, &cfg.Rows},
		{EnvCols, &cfg.Cols},
		{EnvTrials, &cfg.Trials},
	}
	for _, e := range ints {
		if v := os.Getenv(e.key); v != "" {
			i, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("%s: %w", e.key, err)
			}
			*e.dst = i
		}
	}

	if v := os.Getenv(EnvSeed); v != "" {
		s, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvSeed, err)
		}
		cfg.Seed = s
	}

	if v := os.Getenv(EnvTolerance); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvTolerance, err)
		}
		cfg.Tolerance = f
	}

	bools := []struct {
		key string
		dst *bool
	}{
		{EnvReusePlans, &cfg.ReusePlans},
		{EnvReseedEachTrial, &cfg.ReseedEachTrial},
	}
	for _, e := range bools {
		if v := os.Getenv(e.key); v != "" {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return fmt.Errorf("%s: %w", e.key, err)
			}
			*e.dst = b
		}
	}

	if v := os.Getenv(EnvBackendA); v != "" {
		cfg.BackendA = v
	}
	if v := os.Getenv(EnvBackendB); v != "" {
		cfg.BackendB = v
	}
	if v := os.Getenv(EnvClock); v != "" {
		cfg.Clock = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}

	return nil
}

// Validate checks that the settings describe a runnable comparison.
func (c Config) Validate() error {
	if err := c.RunConfig().Validate(); err != nil {
		return err
	}
	if c.BackendA == "" || c.BackendB == "" {
		return fmt.Errorf("backend_a and backend_b must be set")
	}
	switch c.Clock {
	case fftcompare.ClockMonotonic, fftcompare.ClockCycles:
	default:
		return fmt.Errorf("%w: %q", fftcompare.ErrUnknownClock, c.Clock)
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// RunConfig returns the part of c that fixes the trial loop.
func (c Config) RunConfig() fftcompare.RunConfig {
	return fftcompare.RunConfig{
		Shape:           fftcompare.Shape{Rows: c.Rows, Cols: c.Cols},
		Trials:          c.Trials,
		Seed:            c.Seed,
		Tolerance:       c.Tolerance,
		ReusePlans:      c.ReusePlans,
		ReseedEachTrial: c.ReseedEachTrial,
	}
}

// SlogLevel parses LogLevel (debug, info, warn or error).
func (c Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel))); err != nil {
		return 0, fmt.Errorf("log_level: %w", err)
	}
	return level, nil
}
