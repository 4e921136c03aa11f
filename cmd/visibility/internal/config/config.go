package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"go.uber.org/zap/zapcore"
	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up when a directory is given.
const FileName = "visibility.yaml"

// SchemaVersion is the config schema understood by this build.
const SchemaVersion = "v1.0.0"

// Config represents the optional visibility.yaml configuration.
type Config struct {
	Version string        `yaml:"version,omitempty"`
	Events  EventsConfig  `yaml:"events"`
	Log     LogConfig     `yaml:"log"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// EventsConfig names the channels a tracker publishes on.
type EventsConfig struct {
	Update string `yaml:"update,omitempty" env:"VISIBILITY_UPDATE_EVENT"`
}

// LogConfig controls the CLI logger.
type LogConfig struct {
	Level  string `yaml:"level,omitempty" env:"VISIBILITY_LOG_LEVEL"`
	Format string `yaml:"format,omitempty" env:"VISIBILITY_LOG_FORMAT"`
}

// MetricsConfig controls the /metrics endpoint. An empty Addr disables it.
type MetricsConfig struct {
	Addr string `yaml:"addr,omitempty" env:"VISIBILITY_METRICS_ADDR"`
}

// LoadOptional reads the config file at path if present. A directory is
// searched for visibility.yaml.
func LoadOptional(path string) (*Config, error) {
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		path = filepath.Join(path, FileName)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return &cfg, nil
}

// Resolve loads the config file (if present), applies environment
// overrides, fills defaults and validates the result.
func Resolve(path string) (*Config, error) {
	cfg, err := LoadOptional(path)
	if err != nil {
		return nil, err
	}

	if err := ParseEnv(cfg); err != nil {
		return nil, err
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ParseEnv overlays environment variables onto target. Unset variables
// leave existing values alone.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

func (c *Config) applyDefaults() {
	c.Version = strings.TrimSpace(c.Version)
	if c.Version == "" {
		c.Version = SchemaVersion
	}

	c.Events.Update = strings.TrimSpace(c.Events.Update)
	if c.Events.Update == "" {
		c.Events.Update = "update"
	}

	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}

	c.Log.Format = strings.ToLower(strings.TrimSpace(c.Log.Format))
	if c.Log.Format == "" {
		c.Log.Format = "console"
	}

	c.Metrics.Addr = strings.TrimSpace(c.Metrics.Addr)
}

// Validate checks a resolved config.
func (c *Config) Validate() error {
	if !semver.IsValid(c.Version) {
		return fmt.Errorf("version must be a semantic version like %s (got %q)", SchemaVersion, c.Version)
	}
	if major := semver.Major(c.Version); major != semver.Major(SchemaVersion) {
		return fmt.Errorf("unsupported config version %s (want %s.x.y)", c.Version, semver.Major(SchemaVersion))
	}
	if c.Events.Update == "" {
		return fmt.Errorf("events.update must not be empty")
	}
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("invalid log.level %q", c.Log.Level)
	}
	switch c.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("log.format must be console or json (got %q)", c.Log.Format)
	}
	return nil
}
