// Package config loads message-part settings from defaults, an optional
// YAML file and MP_-prefixed environment variables, in that order.
package config

import (
	"errors"
	"fmt"
	"os"

	"dario.cat/mergo"
	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "MP_"

// DefaultPort is the HTTP port used when nothing else is configured.
const DefaultPort = 8080

// Config holds server and storage settings.
type Config struct {
	// DBPath is the SQLite database file. Empty means db.DefaultPath.
	DBPath string `yaml:"db_path" env:"DB"`

	// Port is the HTTP listen port for `mp serve`.
	Port int `yaml:"port" env:"PORT"`

	// DevMode switches logging to human-readable debug output.
	DevMode bool `yaml:"dev_mode" env:"DEV_MODE"`
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{Port: DefaultPort}
}

// Load builds the configuration. path may be empty, in which case only
// defaults and the environment are used. A missing file at an explicit
// path is an error.
func Load(path string) (Config, error) {
	cfg := Defaults()

	if path != "" {
		fileCfg, err := readFile(path)
		if err != nil {
			return Config{}, err
		}
		if err := mergo.Merge(&cfg, fileCfg, mergo.WithOverride); err != nil {
			return Config{}, fmt.Errorf("merging config file: %w", err)
		}
	}

	// Only variables that are present are applied, so MP_DEV_MODE=false
	// can switch off a value the file turned on.
	if err := parseEnv(&cfg); err != nil {
		return Config{}, err
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func readFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

func parseEnv(cfg *Config) error {
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("reading environment: %w", err)
	}
	return nil
}

// ErrInvalidPort is returned when the port is outside 1-65535.
var ErrInvalidPort = errors.New("port must be between 1 and 65535")

func (c Config) validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("%w: got %d", ErrInvalidPort, c.Port)
	}
	return nil
}
