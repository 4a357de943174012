// File: config.go
// Title: dynstr Configuration
// Description: Loads the dynstr tool configuration from TOML or YAML files,
//              applies defaults and validates the result.
// Author: msto63
// Version: v0.2.0
// Created: 2025-02-11
// Modified: 2025-02-12
//
// Change History:
// - 2025-02-11 v0.1.0: TOML configuration with defaults
// - 2025-02-12 v0.2.0: YAML support selected by file extension, validation

package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/dynstr/pkg/core/error"
	"github.com/msto63/dynstr/pkg/core/log"
)

// EnvVar names the environment variable holding the config file path
const EnvVar = "DYNSTR_CONFIG"

// Config holds the complete tool configuration
type Config struct {
	General GeneralConfig `toml:"general" yaml:"general"`
	Buffer  BufferConfig  `toml:"buffer" yaml:"buffer"`
	Random  RandomConfig  `toml:"random" yaml:"random"`
	Output  OutputConfig  `toml:"output" yaml:"output"`
	REPL    REPLConfig    `toml:"repl" yaml:"repl"`
}

// GeneralConfig holds general settings
type GeneralConfig struct {
	Name      string `toml:"name" yaml:"name"`
	LogLevel  string `toml:"log_level" yaml:"log_level"`
	LogFormat string `toml:"log_format" yaml:"log_format"`
}

// BufferConfig limits buffer allocations. Zero means unlimited.
type BufferConfig struct {
	MaxCapacity int `toml:"max_capacity" yaml:"max_capacity"`
}

// RandomConfig seeds random fixtures. Zero means a fresh seed per run.
type RandomConfig struct {
	Seed uint64 `toml:"seed" yaml:"seed"`
}

// OutputConfig controls how values are rendered
type OutputConfig struct {
	Styled bool `toml:"styled" yaml:"styled"`
}

// REPLConfig holds interactive session settings
type REPLConfig struct {
	History       int      `toml:"history" yaml:"history"`
	StatusTimeout Duration `toml:"status_timeout" yaml:"status_timeout"`
}

// Duration wraps time.Duration for TOML and YAML parsing
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string
func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// MarshalText formats the duration as a string
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// UnmarshalYAML parses a duration scalar
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	return d.UnmarshalText([]byte(s))
}

// Default returns a configuration with all defaults applied
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from a .toml, .yaml or .yml file
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, mdwerror.New("config file not found").
			WithCode(mdwerror.CodeNotFound).
			WithOperation("config.Load").
			WithDetail("path", path)
	}

	var cfg Config
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return nil, parseError(path, err)
		}
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, parseError(path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, parseError(path, err)
		}
	default:
		return nil, mdwerror.Newf("unsupported config format %q", ext).
			WithCode(mdwerror.CodeConfigError).
			WithOperation("config.Load").
			WithDetail("path", path)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func parseError(path string, err error) error {
	return mdwerror.Wrap(err, "failed to parse config").
		WithCode(mdwerror.CodeConfigError).
		WithOperation("config.Load").
		WithDetail("path", path)
}

// DefaultPaths lists the locations LoadFromEnv searches, in order
func DefaultPaths() []string {
	return []string{
		"./configs/dynstr.toml",
		"./dynstr.toml",
		"./dynstr.yaml",
		filepath.Join(os.Getenv("HOME"), ".config/dynstr/config.toml"),
	}
}

// LoadFromEnv loads configuration from the DYNSTR_CONFIG environment variable
// or the first existing default path. Without any file it fails with NOT_FOUND.
func LoadFromEnv() (*Config, error) {
	path := os.Getenv(EnvVar)
	if path == "" {
		for _, p := range DefaultPaths() {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
	}

	if path == "" {
		return nil, mdwerror.New("no config file found, set " + EnvVar + " or create configs/dynstr.toml").
			WithCode(mdwerror.CodeNotFound).
			WithOperation("config.LoadFromEnv")
	}

	return Load(path)
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	if c.General.Name == "" {
		c.General.Name = "dynstr"
	}
	if c.General.LogLevel == "" {
		c.General.LogLevel = "warn"
	}
	if c.General.LogFormat == "" {
		c.General.LogFormat = "console"
	}
	if c.REPL.History == 0 {
		c.REPL.History = 200
	}
	if c.REPL.StatusTimeout.Duration == 0 {
		c.REPL.StatusTimeout.Duration = 3 * time.Second
	}
}

// Validate checks value ranges and enumerations
func (c *Config) Validate() error {
	invalid := func(field string, value interface{}, reason string) error {
		return mdwerror.New(reason).
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("config.Validate").
			WithDetail("field", field).
			WithDetail("value", value)
	}

	if _, err := log.ParseLevel(c.General.LogLevel); err != nil {
		return invalid("general.log_level", c.General.LogLevel, "unknown log level")
	}
	if _, err := log.ParseFormat(c.General.LogFormat); err != nil {
		return invalid("general.log_format", c.General.LogFormat, "unknown log format")
	}
	if c.Buffer.MaxCapacity < 0 {
		return invalid("buffer.max_capacity", c.Buffer.MaxCapacity, "must not be negative")
	}
	if c.REPL.History < 0 {
		return invalid("repl.history", c.REPL.History, "must not be negative")
	}
	if c.REPL.StatusTimeout.Duration < 0 {
		return invalid("repl.status_timeout", c.REPL.StatusTimeout.String(), "must not be negative")
	}
	return nil
}

// Level returns the parsed log level, the log default when invalid
func (c *Config) Level() log.Level {
	level, err := log.ParseLevel(c.General.LogLevel)
	if err != nil {
		return log.DefaultLevel()
	}
	return level
}

// Format returns the parsed log format, console when invalid
func (c *Config) Format() log.Format {
	format, err := log.ParseFormat(c.General.LogFormat)
	if err != nil {
		return log.FormatConsole
	}
	return format
}
