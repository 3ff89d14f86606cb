package internal

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Config holds the runtime settings read from a YAML file
type Config struct {
	// MaxDepth bounds nested user function calls
	MaxDepth int `yaml:"max_depth"`
	// LogLevel is a logrus level name
	LogLevel string `yaml:"log_level"`
	// FormatDecimals is used by format when no decimal count is given
	FormatDecimals int `yaml:"format_decimals"`
	// History is the REPL history file
	History string `yaml:"history"`
	// Color enables colored CLI output
	Color bool `yaml:"color"`
}

// DefaultConfig returns the settings used when no file is given
func DefaultConfig() Config {
	return Config{
		MaxDepth:       1000,
		LogLevel:       logrus.WarnLevel.String(),
		FormatDecimals: 2,
		History:        ".numscript_history",
		Color:          true,
	}
}

// LoadConfig reads path on top of the defaults. Unknown keys are rejected.
func LoadConfig(path string) (Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	defer file.Close()
	return DecodeConfig(file)
}

// DecodeConfig reads YAML settings from r on top of the defaults
func DecodeConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()

	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the settings for values the interpreter cannot use
func (c Config) Validate() error {
	if c.MaxDepth <= 0 {
		return fmt.Errorf("config: max_depth must be positive, got %d", c.MaxDepth)
	}
	if c.FormatDecimals < 0 || c.FormatDecimals > maxFormatDecimals {
		return fmt.Errorf("config: format_decimals must be between 0 and %d, got %d", maxFormatDecimals, c.FormatDecimals)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}
