// File: config.go
// Title: Configuration Loading
// Description: Implements loading and parsing of textkit configuration from
//              TOML and YAML files with format auto-detection. The
//              configuration currently carries the logging section used to
//              build the library's logging sink.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial implementation with TOML/YAML support

package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/msto63/textkit/core/check"
	kiterror "github.com/msto63/textkit/core/error"
	kitlog "github.com/msto63/textkit/core/log"
)

// Format represents the configuration file format
type Format int

const (
	// FormatTOML represents TOML format (default)
	FormatTOML Format = iota

	// FormatYAML represents YAML format
	FormatYAML

	// FormatAuto auto-detects format from file extension
	FormatAuto
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// Config represents the textkit configuration
type Config struct {
	Log LogConfig `toml:"log" yaml:"log"`
}

// LogConfig carries the logging section
type LogConfig struct {
	// Level is the minimum log level ("trace".."fatal")
	Level string `toml:"level" yaml:"level"`

	// Format is the output format ("json", "text", "console")
	Format string `toml:"format" yaml:"format"`

	// Output is the log destination: "stdout", "stderr", or a file path
	Output string `toml:"output" yaml:"output"`

	// Name is the logger name attached to every entry
	Name string `toml:"name" yaml:"name"`
}

// Default returns the configuration used when no file is provided
func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level:  kitlog.DefaultLevel().String(),
			Format: kitlog.FormatText.String(),
			Output: "stderr",
			Name:   "textkit",
		},
	}
}

// Load loads configuration from a file, detecting the format from the
// file extension
func Load(filePath string) (*Config, error) {
	if err := check.State(strings.TrimSpace(filePath) != "", "config file path cannot be empty"); err != nil {
		return nil, err
	}

	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return nil, kiterror.New("config file not found: " + filePath).
			WithCode(kiterror.CodeNotFound).
			WithOperation("config.Load").
			WithDetail("filePath", filePath)
	}

	content, err := os.ReadFile(filePath)
	if err != nil {
		return nil, kiterror.Wrap(err, "failed to read config file").
			WithCode(kiterror.CodeConfigError).
			WithOperation("config.Load").
			WithDetail("filePath", filePath)
	}

	cfg, err := LoadFromString(string(content), detectFormat(filePath))
	if err != nil {
		return nil, kiterror.Wrap(err, "failed to parse config file").
			WithDetail("filePath", filePath)
	}
	return cfg, nil
}

// LoadFromString loads configuration from a string with the specified
// format. FormatAuto defaults to TOML.
func LoadFromString(content string, format Format) (*Config, error) {
	if format == FormatAuto {
		format = FormatTOML
	}

	cfg := Default()
	switch format {
	case FormatTOML:
		if err := toml.Unmarshal([]byte(content), cfg); err != nil {
			return nil, kiterror.Wrap(err, "TOML parse error").
				WithCode(kiterror.CodeInvalidConfig).
				WithOperation("config.LoadFromString")
		}
	case FormatYAML:
		if err := yaml.Unmarshal([]byte(content), cfg); err != nil {
			return nil, kiterror.Wrap(err, "YAML parse error").
				WithCode(kiterror.CodeInvalidConfig).
				WithOperation("config.LoadFromString")
		}
	default:
		return nil, kiterror.New("unsupported config format: " + format.String()).
			WithCode(kiterror.CodeInvalidConfig).
			WithOperation("config.LoadFromString")
	}

	return cfg, nil
}

// detectFormat determines the configuration format from the file extension
func detectFormat(filePath string) Format {
	ext := strings.ToLower(filepath.Ext(filePath))
	switch ext {
	case ".yaml", ".yml":
		return FormatYAML
	case ".toml":
		return FormatTOML
	default:
		return FormatTOML
	}
}

// Logger builds a logger from the logging section. Unknown level or
// format strings produce an INVALID_CONFIG error rather than a silent
// fallback.
func (c *Config) Logger() (*kitlog.Logger, error) {
	level, err := kitlog.ParseLevel(c.Log.Level)
	if err != nil {
		return nil, kiterror.Wrap(err, "invalid log level").
			WithCode(kiterror.CodeInvalidConfig).
			WithOperation("config.Logger").
			WithDetail("level", c.Log.Level)
	}

	format, err := kitlog.ParseFormat(c.Log.Format)
	if err != nil {
		return nil, kiterror.Wrap(err, "invalid log format").
			WithCode(kiterror.CodeInvalidConfig).
			WithOperation("config.Logger").
			WithDetail("format", c.Log.Format)
	}

	output, err := openOutput(c.Log.Output)
	if err != nil {
		return nil, err
	}

	return kitlog.NewWithConfig(kitlog.Config{
		Level:  level,
		Format: format,
		Output: output,
		Name:   c.Log.Name,
	}), nil
}

// openOutput resolves the configured log destination
func openOutput(output string) (*os.File, error) {
	switch strings.ToLower(strings.TrimSpace(output)) {
	case "", "stderr":
		return os.Stderr, nil
	case "stdout":
		return os.Stdout, nil
	default:
		f, err := os.OpenFile(output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, kiterror.Wrap(err, "cannot open log output").
				WithCode(kiterror.CodeConfigError).
				WithOperation("config.openOutput").
				WithDetail("output", output)
		}
		return f, nil
	}
}
