// Package config loads cloudplaza settings.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

// DefaultPath is read by Load when CLOUDPLAZA_CONFIG is unset.
const DefaultPath = "cloudplaza.yaml"

// Config is the root configuration structure.
type Config struct {
	Log     LogConfig     `yaml:"log"`
	Content ContentConfig `yaml:"content"`
	Present PresentConfig `yaml:"present"`
	Export  ExportConfig  `yaml:"export"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level string `yaml:"level"`
	// File receives the log while the terminal presentation runs. Empty discards it.
	File string `yaml:"file"`
}

// ContentConfig points at an optional YAML deck overriding the built-in content.
type ContentConfig struct {
	Path string `yaml:"path"`
}

// PresentConfig contains terminal presentation settings.
type PresentConfig struct {
	AltScreen bool `yaml:"alt_screen"`
	Mouse     bool `yaml:"mouse"`
}

// ExportConfig contains HTML export settings.
type ExportConfig struct {
	Output string `yaml:"output"`
}

// Load loads configuration with precedence: defaults → YAML file → env vars.
// The file path comes from CLOUDPLAZA_CONFIG; a missing file is not an error.
func Load() (*Config, error) {
	cfg := newDefaults()

	if err := loadYAMLFile(cfg, getEnv("CLOUDPLAZA_CONFIG", DefaultPath)); err != nil {
		return nil, err
	}
	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFromFile loads configuration from a specific path, which must exist.
func LoadFromFile(path string) (*Config, error) {
	cfg := newDefaults()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newDefaults() *Config {
	return &Config{
		Log: LogConfig{
			Level: "info",
		},
		Present: PresentConfig{
			AltScreen: true,
			Mouse:     true,
		},
		Export: ExportConfig{
			Output: "index.html",
		},
	}
}

// loadYAMLFile loads configuration from a YAML file if it exists.
func loadYAMLFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}
	return nil
}

// applyEnvOverrides applies environment variable overrides to the config.
// Only non-empty env vars override config values.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("CLOUDPLAZA_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("CLOUDPLAZA_LOG_FILE"); v != "" {
		cfg.Log.File = v
	}
	if v := os.Getenv("CLOUDPLAZA_CONTENT"); v != "" {
		cfg.Content.Path = v
	}
	if v := os.Getenv("CLOUDPLAZA_ALT_SCREEN"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Present.AltScreen = b
		}
	}
	if v := os.Getenv("CLOUDPLAZA_MOUSE"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Present.Mouse = b
		}
	}
	if v := os.Getenv("CLOUDPLAZA_OUTPUT"); v != "" {
		cfg.Export.Output = v
	}
}

// Validate checks the values a command depends on.
func (c *Config) Validate() error {
	var errs []error
	if _, err := log.ParseLevel(strings.ToLower(c.Log.Level)); err != nil {
		errs = append(errs, fmt.Errorf("log.level %q: %w", c.Log.Level, err))
	}
	if strings.TrimSpace(c.Export.Output) == "" {
		errs = append(errs, errors.New("export.output is required"))
	}
	return errors.Join(errs...)
}

// LogLevel returns the parsed log level. Call after Validate.
func (c *Config) LogLevel() log.Level {
	lvl, err := log.ParseLevel(strings.ToLower(c.Log.Level))
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
