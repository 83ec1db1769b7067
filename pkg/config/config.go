package config

import (
	"encoding/json"
	"log/slog"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config controls how procedure sources are analyzed.
//
// The same keys are read by LoadFromFile and by the CLI, which decodes its
// config file, environment and flags into this struct through viper.
type Config struct {
	// PreserveCase keeps identifiers as written instead of lowercasing them.
	PreserveCase bool `yaml:"preserveCase" json:"preserveCase" mapstructure:"preserveCase"`
	// Sort orders the reported tables alphabetically instead of by first appearance.
	Sort bool `yaml:"sort" json:"sort" mapstructure:"sort"`
	// SplitProcedures analyzes every CREATE PROCEDURE definition in a source separately.
	SplitProcedures bool `yaml:"splitProcedures" json:"splitProcedures" mapstructure:"splitProcedures"`
	// MaxInputBytes rejects larger sources. Zero means no limit.
	MaxInputBytes int `yaml:"maxInputBytes" json:"maxInputBytes" mapstructure:"maxInputBytes"`
}

// LoadFromFile loads configuration from a file
func LoadFromFile(filename string) (*Config, error) {
	slog.Debug("Loading config from file", "filename", filename)
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read config file: %s", filename)
	}

	config := DefaultConfig()

	// Try YAML first, then JSON
	if err := yaml.Unmarshal(data, config); err != nil {
		slog.Debug("YAML unmarshal failed", "error", err)
		if err := json.Unmarshal(data, config); err != nil {
			return nil, errors.Wrapf(err, "failed to parse config file: %s", filename)
		}
		slog.Debug("JSON unmarshal succeeded")
	}

	if err := config.Validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid config file: %s", filename)
	}

	slog.Debug("Loaded config", "config", *config)
	return config, nil
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{}
}

// Validate checks the configuration values.
func (c *Config) Validate() error {
	if c.MaxInputBytes < 0 {
		return errors.Errorf("maxInputBytes must not be negative, got %d", c.MaxInputBytes)
	}
	return nil
}
