package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat is returned by LoadConfig for unknown file extensions.
var ErrUnsupportedFormat = errors.New("unsupported config format")

// Config defines how an automaton is named and observed.
type Config struct {
	// Name identifies the automaton in emitted events.
	Name string `json:"name" yaml:"name" env:"AUTOMATON_NAME"`

	// Observer names a registered observer ("noop", "slog", "zap", ...) or a
	// comma-separated list of them.
	Observer string `json:"observer" yaml:"observer" env:"AUTOMATON_OBSERVER"`

	// FreshGraph rebuilds the state graph from its builder on every run.
	FreshGraph bool `json:"fresh_graph" yaml:"fresh_graph" env:"AUTOMATON_FRESH_GRAPH"`
}

// DefaultConfig returns defaults for the given automaton name.
//
// Default values:
//   - Observer: "noop" so runs emit nothing unless asked to
//   - FreshGraph: false, the graph is built once and reused
func DefaultConfig(name string) Config {
	return Config{
		Name:     name,
		Observer: "noop",
	}
}

// Merge applies non-zero values from source into c.
func (c *Config) Merge(source *Config) {
	if source == nil {
		return
	}

	if source.Name != "" {
		c.Name = source.Name
	}

	if source.Observer != "" {
		c.Observer = source.Observer
	}

	if source.FreshGraph {
		c.FreshGraph = true
	}
}

// LoadConfig reads a JSON or YAML config file. The returned Config holds only
// what the file sets; merge it over DefaultConfig.
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var loaded Config
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".json":
		if err := json.Unmarshal(data, &loaded); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &loaded); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	return &loaded, nil
}

// FromEnv overlays AUTOMATON_* environment variables onto cfg. Variables that
// are unset leave the corresponding field untouched. A .env file in the
// working directory is loaded first when present; it never overrides
// variables already set in the process environment.
func FromEnv(cfg *Config) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to load .env file: %w", err)
	}

	var overrides Config
	if err := env.Parse(&overrides); err != nil {
		return fmt.Errorf("failed to parse environment: %w", err)
	}

	cfg.Merge(&overrides)
	return nil
}
