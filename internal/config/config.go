// =============================================================================
// Triangle Accumulator - Configuration Module
// =============================================================================
//
// This module loads the optional application configuration file. All
// settings are operational knobs around the pipeline; the accumulation
// contracts themselves (schema columns, rounding, output format) are fixed
// and not configurable.
//
// CONFIGURATION FILE (config.yaml):
//
//   log_level: info            # debug | info | warn | error
//   archive:
//     enabled: false
//     dir: ./input_archive
//   export:
//     sheet_prefix: ""         # prepended to per-product worksheet names
//
// A missing configuration file is not an error: defaults apply.
//
// =============================================================================

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the application configuration.
type Config struct {
	// LogLevel is the minimum level emitted by the logger.
	// One of: debug, info, warn, error. Default: info.
	LogLevel string `yaml:"log_level"`

	// Archive controls input archival after successful runs.
	Archive ArchiveConfig `yaml:"archive"`

	// Export controls the XLSX workbook export.
	Export ExportConfig `yaml:"export"`
}

// ArchiveConfig controls input archival.
type ArchiveConfig struct {
	// Enabled turns archival on. Default: false.
	Enabled bool `yaml:"enabled"`

	// Dir is the directory archived inputs are copied into.
	// Default: "./input_archive".
	Dir string `yaml:"dir"`
}

// ExportConfig controls the XLSX workbook export.
type ExportConfig struct {
	// SheetPrefix is prepended to each per-product worksheet name.
	SheetPrefix string `yaml:"sheet_prefix"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		LogLevel: "info",
		Archive: ArchiveConfig{
			Enabled: false,
			Dir:     "./input_archive",
		},
	}
}

// Load reads the configuration from path. A nonexistent file yields the
// default configuration.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate rejects settings the pipeline cannot run with.
func (c *Config) validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log_level %q: must be one of debug, info, warn, error", c.LogLevel)
	}

	if c.Archive.Enabled && c.Archive.Dir == "" {
		return fmt.Errorf("archive.dir must be set when archive.enabled is true")
	}

	return nil
}
