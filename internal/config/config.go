// Package config provides configuration loading for jbrecent.
//
// Configuration is assembled from built-in defaults, an optional YAML file,
// and JBRECENT_* environment variables, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"strings"
)

// Output formats understood by the renderer.
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
	FormatTOML  = "toml"
)

// MaxWorkers bounds the metadata resolution pool.
const MaxWorkers = 64

// Config holds the complete jbrecent configuration.
type Config struct {
	JetBrains JetBrainsConfig `koanf:"jetbrains" yaml:"jetbrains"`
	Extract   ExtractConfig   `koanf:"extract" yaml:"extract"`
	Output    OutputConfig    `koanf:"output" yaml:"output"`
	Logging   LoggingConfig   `koanf:"logging" yaml:"logging"`
}

// JetBrainsConfig controls where recent projects files are looked up.
type JetBrainsConfig struct {
	// ConfigRoots overrides the OS default JetBrains config directory.
	ConfigRoots []string `koanf:"config_roots" yaml:"config_roots"`
	// Products restricts lookup to matching product names (case-insensitive prefix).
	Products []string `koanf:"products" yaml:"products"`
	// LatestOnly keeps only the newest version of each product.
	LatestOnly bool `koanf:"latest_only" yaml:"latest_only"`
}

// ExtractConfig holds extractor settings.
type ExtractConfig struct {
	Workers int `koanf:"workers" yaml:"workers"`
}

// OutputConfig holds rendering settings.
type OutputConfig struct {
	Format string `koanf:"format" yaml:"format"`
}

// LoggingConfig holds the subset of logging settings exposed to users.
type LoggingConfig struct {
	Level  string `koanf:"level" yaml:"level"`
	Format string `koanf:"format" yaml:"format"`
}

// Validate validates the configuration.
//
// Returns an error if:
//   - Extract workers is not between 1 and MaxWorkers
//   - Output format is not table, json or yaml
//   - Logging format is not console or json
func (c *Config) Validate() error {
	if c.Extract.Workers < 1 || c.Extract.Workers > MaxWorkers {
		return fmt.Errorf("invalid extract workers: %d (must be 1-%d)", c.Extract.Workers, MaxWorkers)
	}

	switch c.Output.Format {
	case FormatTable, FormatJSON, FormatYAML, FormatTOML:
	default:
		return fmt.Errorf("invalid output format %q (must be table, json, yaml or toml)", c.Output.Format)
	}

	if c.Logging.Format != "console" && c.Logging.Format != "json" {
		return fmt.Errorf("invalid logging format %q (must be console or json)", c.Logging.Format)
	}
	if c.Logging.Level == "" {
		return errors.New("logging level cannot be empty")
	}

	return nil
}

// normalize cleans list values that may arrive comma-joined from the environment.
func (c *Config) normalize() {
	c.JetBrains.Products = splitList(c.JetBrains.Products)
	c.JetBrains.ConfigRoots = splitList(c.JetBrains.ConfigRoots)
	c.Output.Format = strings.ToLower(strings.TrimSpace(c.Output.Format))
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
}

func splitList(values []string) []string {
	var out []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
