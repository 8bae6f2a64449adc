// SPDX-License-Identifier: MIT

// Package config loads hopsim settings from defaults, an optional YAML file
// and HOPSIM_* environment variables, in that order.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/hopsim/internal/logging"
	"github.com/katalvlaran/hopsim/simulation"
)

// Environment variables consulted by Load.
const (
	EnvTrials    = "HOPSIM_TRIALS"
	EnvWorkers   = "HOPSIM_WORKERS"
	EnvChunkSize = "HOPSIM_CHUNK_SIZE"
	EnvSeed      = "HOPSIM_SEED"
	EnvLogLevel  = "HOPSIM_LOG_LEVEL"
)

// Config contains all hopsim settings.
type Config struct {
	// Simulation controls the Monte Carlo run.
	Simulation SimulationConfig `json:"simulation" yaml:"simulation"`

	// Logging controls operational output on stderr.
	Logging LoggingConfig `json:"logging" yaml:"logging"`
}

// SimulationConfig configures the estimator.
type SimulationConfig struct {
	// Trials is the number of independent trials. Must be > 0.
	Trials int `json:"trials" yaml:"trials"`

	// Workers bounds concurrent chunks. 0 means one per GOMAXPROCS.
	Workers int `json:"workers" yaml:"workers"`

	// ChunkSize is the number of trials per chunk. Must be > 0.
	ChunkSize int `json:"chunk_size" yaml:"chunk_size"`

	// Seed fixes the base seed when set; nil draws a fresh seed per run.
	Seed *uint64 `json:"seed,omitempty" yaml:"seed,omitempty"`
}

// LoggingConfig configures the logger.
type LoggingConfig struct {
	// Level is one of "error", "warn", "info" (default), "debug", "trace".
	Level string `json:"level" yaml:"level"`
}

// Default returns a Config with the built-in defaults.
func Default() *Config {
	return &Config{
		Simulation: SimulationConfig{
			Trials:    simulation.DefaultTrials,
			Workers:   0,
			ChunkSize: simulation.DefaultChunkSize,
		},
		Logging: LoggingConfig{
			Level: logging.LevelNameInfo,
		},
	}
}

// Load resolves defaults, then path if non-empty, then environment overrides.
// A missing file at an explicitly given path is an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		fileCfg, err := LoadFromFile(path)
		if err != nil {
			return nil, fmt.Errorf("loading config file: %w", err)
		}
		cfg = fileCfg
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFromFile loads configuration from a YAML file on top of the defaults.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	return cfg, nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.Simulation.Trials <= 0 {
		return fmt.Errorf("trials must be positive, got %d", c.Simulation.Trials)
	}
	if c.Simulation.Workers < 0 {
		return fmt.Errorf("workers must be non-negative, got %d", c.Simulation.Workers)
	}
	if c.Simulation.ChunkSize <= 0 {
		return fmt.Errorf("chunk_size must be positive, got %d", c.Simulation.ChunkSize)
	}
	if !logging.ValidLevel(c.Logging.Level) {
		return fmt.Errorf("invalid log level: %s (valid: error, warn, info, debug, trace)", c.Logging.Level)
	}
	return nil
}

// EstimatorOptions translates the simulation settings into estimator options.
// Call Validate first; invalid values make the option constructors panic.
func (c *Config) EstimatorOptions() []simulation.Option {
	opts := []simulation.Option{
		simulation.WithTrials(c.Simulation.Trials),
		simulation.WithChunkSize(c.Simulation.ChunkSize),
	}
	if c.Simulation.Workers > 0 {
		opts = append(opts, simulation.WithWorkers(c.Simulation.Workers))
	}
	if c.Simulation.Seed != nil {
		opts = append(opts, simulation.WithSeed(*c.Simulation.Seed))
	}
	return opts
}

// applyEnvOverrides applies HOPSIM_* variables. Unlike free-form settings,
// numeric variables that fail to parse are reported rather than ignored.
func applyEnvOverrides(cfg *Config) error {
	ints := []struct {
		env string
		dst *int
	}{
		{EnvTrials, &cfg.Simulation.Trials},
		{EnvWorkers, &cfg.Simulation.Workers},
		{EnvChunkSize, &cfg.Simulation.ChunkSize},
	}
	for _, o := range ints {
		v := os.Getenv(o.env)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", o.env, err)
		}
		*o.dst = n
	}

	if v := os.Getenv(EnvSeed); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvSeed, err)
		}
		cfg.Simulation.Seed = &seed
	}

	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.Logging.Level = v
	}
	return nil
}
