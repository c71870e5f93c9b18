// Package config loads optional YAML configuration controlling the
// allow-list and output defaults.
package config

import (
	"fmt"
	"os"
	"strings"

	"textcat/pkg/classify"

	"gopkg.in/yaml.v3"
)

// Config holds user-tunable settings. Zero values fall back to the
// built-in defaults, so a partial YAML file only overrides what it
// names.
type Config struct {
	// Extensions replaces the default extension allow-list when
	// non-empty. Entries must start with a dot.
	Extensions []string `yaml:"extensions"`

	// ExtraExtensions is appended to the effective extension list.
	ExtraExtensions []string `yaml:"extra_extensions"`

	// SpecialNames replaces the default special-filename allow-list
	// when non-empty (e.g. LICENSE, Dockerfile, .gitignore).
	SpecialNames []string `yaml:"special_names"`

	// Output overrides the default output filename.
	Output string `yaml:"output"`

	// LogLevel sets logging verbosity (debug, info, warn, error).
	LogLevel string `yaml:"log_level"`
}

// DefaultConfig returns a Config with the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		LogLevel: "info",
	}
}

// Load reads a YAML config file. A missing path returns the defaults;
// unreadable or invalid YAML is an error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	for _, ext := range append(append([]string{}, c.Extensions...), c.ExtraExtensions...) {
		if !strings.HasPrefix(ext, ".") {
			return fmt.Errorf("extension %q must start with a dot", ext)
		}
	}
	switch c.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.LogLevel)
	}
	return nil
}

// AllowRule builds the effective allow rule: configured lists where
// present, built-in defaults otherwise, plus any extra extensions.
func (c *Config) AllowRule() classify.AllowRule {
	exts := c.Extensions
	if len(exts) == 0 {
		exts = classify.DefaultExtensions()
	}
	exts = append(append([]string{}, exts...), c.ExtraExtensions...)

	names := c.SpecialNames
	if len(names) == 0 {
		names = classify.DefaultSpecialNames()
	}
	return classify.NewAllowRule(exts, names)
}
