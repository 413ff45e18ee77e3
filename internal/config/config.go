// Package config loads the server configuration from YAML and the environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/averycrespi/calculator-mcp/pkg/types"
)

// Environment variables that override file values
const (
	EnvMaxDigits        = "CALCULATOR_MAX_DIGITS"
	EnvMaxDecimalPlaces = "CALCULATOR_MAX_DECIMAL_PLACES"
	EnvMaxSessions      = "CALCULATOR_MAX_SESSIONS"
	EnvLogLevel         = "CALCULATOR_LOG_LEVEL"
)

// Load reads the configuration at path on top of the defaults. A missing file
// yields the defaults. Environment overrides are applied before validation.
func Load(path string) (*types.Config, error) {
	cfg := types.DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// defaults
		case err != nil:
			return nil, fmt.Errorf("failed to read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Save writes cfg to path as YAML
func Save(cfg *types.Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

func applyEnvOverrides(cfg *types.Config) error {
	ints := []struct {
		name   string
		target *int
	}{
		{EnvMaxDigits, &cfg.Calculator.MaxDigits},
		{EnvMaxDecimalPlaces, &cfg.Calculator.MaxDecimalPlaces},
		{EnvMaxSessions, &cfg.Sessions.MaxSessions},
	}
	for _, o := range ints {
		v := os.Getenv(o.name)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", o.name, v, err)
		}
		*o.target = n
	}

	if level := os.Getenv(EnvLogLevel); level != "" {
		cfg.Logging.Level = level
	}
	return nil
}
