// Package config loads scoring settings from YAML.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"

	"github.com/dd0wney/cluso-surprise/pkg/algorithms"
	"github.com/dd0wney/cluso-surprise/pkg/validation"
)

// MaxWorkers bounds the scoring worker pool.
const MaxWorkers = 1024

// LogLevels accepted by log_level.
var LogLevels = []string{"debug", "info", "warn", "error"}

// Config holds settings for a scoring run.
type Config struct {
	LogLevel         string                 `yaml:"log_level"`
	Workers          int                    `yaml:"workers"`
	Algorithms       []string               `yaml:"algorithms"`
	LabelPropagation LabelPropagationConfig `yaml:"label_propagation"`
	MetricsFile      string                 `yaml:"metrics_file"`
}

// LabelPropagationConfig tunes the label propagation baseline.
type LabelPropagationConfig struct {
	MaxIterations int `yaml:"max_iterations"`
}

// DefaultConfig returns the settings used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		LogLevel:   "info",
		Workers:    runtime.NumCPU(),
		Algorithms: append([]string(nil), algorithms.Algorithms...),
		LabelPropagation: LabelPropagationConfig{
			MaxIterations: 100,
		},
	}
}

// ApplyDefaults fills unset fields from DefaultConfig.
func (c *Config) ApplyDefaults() {
	d := DefaultConfig()
	c.LogLevel = validation.DefaultOr(c.LogLevel, d.LogLevel)
	c.Workers = validation.DefaultOrInt(c.Workers, d.Workers)
	c.LabelPropagation.MaxIterations = validation.DefaultOrInt(c.LabelPropagation.MaxIterations, d.LabelPropagation.MaxIterations)
	if len(c.Algorithms) == 0 {
		c.Algorithms = d.Algorithms
	}
}

// Validate checks every field and reports all problems at once.
func (c *Config) Validate() error {
	return validation.NewConfigValidator("Config").
		OneOf("log_level", c.LogLevel, LogLevels).
		RangeInt("workers", c.Workers, 1, MaxWorkers).
		Positive("label_propagation.max_iterations", c.LabelPropagation.MaxIterations).
		EachOneOf("algorithms", c.Algorithms, algorithms.Algorithms).
		Custom("algorithms", func() error {
			seen := make(map[string]bool, len(c.Algorithms))
			for _, a := range c.Algorithms {
				if seen[a] {
					return fmt.Errorf("%q listed more than once", a)
				}
				seen[a] = true
			}
			return nil
		}).
		When(c.MetricsFile != "", func(v *validation.ConfigValidator) {
			v.Custom("metrics_file", func() error {
				dir := filepath.Dir(c.MetricsFile)
				info, err := os.Stat(dir)
				if err != nil {
					return err
				}
				if !info.IsDir() {
					return fmt.Errorf("%s is not a directory", dir)
				}
				return nil
			})
		}).
		Validate()
}

// Load reads a YAML config file, applies defaults and validates it.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML, applies defaults and validates the result. Unknown keys
// are rejected and an empty document yields the defaults.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.ApplyDefaults()
	if err := validation.ValidateConfig(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
