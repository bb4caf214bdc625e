// File: config.go
// Title: Configuration Management
// Description: Loads and validates Mink configuration from TOML or YAML
//              files and supplies sensible defaults for every setting.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-01
// Modified: 2025-03-01
//
// Change History:
// - 2025-03-01 v0.1.0: Initial configuration management

package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	minkerror "github.com/msto63/mink/core/error"
	minklog "github.com/msto63/mink/core/log"
)

// Config holds the complete Mink configuration
type Config struct {
	Log    LogConfig    `toml:"log" yaml:"log"`
	Parser ParserConfig `toml:"parser" yaml:"parser"`
	REPL   REPLConfig   `toml:"repl" yaml:"repl"`
}

// LogConfig configures logging behavior
type LogConfig struct {
	// Level is the minimum log level (trace, debug, info, warn, error, fatal)
	Level string `toml:"level" yaml:"level"`

	// Format is the log output format (text, json)
	Format string `toml:"format" yaml:"format"`
}

// ParserConfig configures parser behavior
type ParserConfig struct {
	// MaxInputLength limits accepted input length in bytes
	MaxInputLength int `toml:"max_input_length" yaml:"max_input_length"`
}

// REPLConfig configures the interactive session
type REPLConfig struct {
	// Prompt is printed before each input line
	Prompt string `toml:"prompt" yaml:"prompt"`

	// Color enables styled terminal output
	Color bool `toml:"color" yaml:"color"`
}

// Default returns a configuration with default values for every setting
func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Parser: ParserConfig{
			MaxInputLength: 65536,
		},
		REPL: REPLConfig{
			Prompt: ">> ",
			Color:  true,
		},
	}
}

// Load reads a configuration file and merges it over the defaults. The
// format is selected by file extension (.toml, .yaml, .yml).
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, minkerror.Wrap(err, "cannot read configuration file").
			WithCode(minkerror.CodeMissingConfig).
			WithDetail("path", path)
	}

	cfg := Default()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, minkerror.Wrap(err, "cannot parse TOML configuration").
				WithCode(minkerror.CodeInvalidConfig).
				WithDetail("path", path)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, minkerror.Wrap(err, "cannot parse YAML configuration").
				WithCode(minkerror.CodeInvalidConfig).
				WithDetail("path", path)
		}
	default:
		return nil, minkerror.Newf("unsupported configuration format: %s", filepath.Ext(path)).
			WithCode(minkerror.CodeInvalidConfig).
			WithDetail("path", path)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadOrDefault loads the given configuration file, or returns the default
// configuration when no path is given
func LoadOrDefault(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}

// Validate checks all settings for consistency
func (c *Config) Validate() error {
	if _, err := minklog.ParseLevel(c.Log.Level); err != nil {
		return minkerror.Newf("invalid log level: %s", c.Log.Level).
			WithCode(minkerror.CodeInvalidConfig)
	}

	if _, err := minklog.ParseFormat(c.Log.Format); err != nil {
		return minkerror.Newf("invalid log format: %s", c.Log.Format).
			WithCode(minkerror.CodeInvalidConfig)
	}

	if c.Parser.MaxInputLength <= 0 {
		return minkerror.Newf("parser max input length must be positive: %d",
			c.Parser.MaxInputLength).
			WithCode(minkerror.CodeInvalidConfig)
	}

	if c.REPL.Prompt == "" {
		return minkerror.New("repl prompt must not be empty").
			WithCode(minkerror.CodeInvalidConfig)
	}

	return nil
}

// LogLevel returns the configured log level
func (c *Config) LogLevel() minklog.Level {
	level, err := minklog.ParseLevel(c.Log.Level)
	if err != nil {
		return minklog.DefaultLevel()
	}
	return level
}

// LogFormat returns the configured log format
func (c *Config) LogFormat() minklog.Format {
	format, err := minklog.ParseFormat(c.Log.Format)
	if err != nil {
		return minklog.FormatText
	}
	return format
}
