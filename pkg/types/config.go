package types

import (
	"errors"
	"fmt"
	"time"

	"github.com/averycrespi/calculator-mcp/internal/calculator"
)

// Config represents the configuration for the calculator-mcp server
type Config struct {
	Calculator calculator.Config `yaml:"calculator"`
	Sessions   SessionsConfig    `yaml:"sessions"`
	Logging    LoggingConfig     `yaml:"logging"`
}

// SessionsConfig bounds the number and lifetime of calculator sessions
type SessionsConfig struct {
	MaxSessions   int    `yaml:"max_sessions"`
	IdleTimeout   string `yaml:"idle_timeout"`
	SweepInterval string `yaml:"sweep_interval"`
}

// LoggingConfig selects the log level
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// DefaultConfig returns the built-in configuration
func DefaultConfig() *Config {
	return &Config{
		Calculator: calculator.DefaultConfig(),
		Sessions: SessionsConfig{
			MaxSessions:   64,
			IdleTimeout:   "30m",
			SweepInterval: "1m",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// IdleTimeoutDuration parses the idle timeout, returning 0 when unset
func (c SessionsConfig) IdleTimeoutDuration() (time.Duration, error) {
	return parseOptionalDuration("idle_timeout", c.IdleTimeout)
}

// SweepIntervalDuration parses the sweep interval, returning 0 when unset
func (c SessionsConfig) SweepIntervalDuration() (time.Duration, error) {
	return parseOptionalDuration("sweep_interval", c.SweepInterval)
}

func parseOptionalDuration(name, value string) (time.Duration, error) {
	if value == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", name, value, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("%s must not be negative", name)
	}
	return d, nil
}

// Validate checks the configuration for out-of-range values
func (c *Config) Validate() error {
	if err := c.Calculator.Validate(); err != nil {
		return fmt.Errorf("calculator: %w", err)
	}
	if c.Sessions.MaxSessions < 0 || c.Sessions.MaxSessions == 1 {
		return errors.New("sessions: max_sessions must be 0 (unlimited) or >= 2, the default session counts toward it")
	}
	if _, err := c.Sessions.IdleTimeoutDuration(); err != nil {
		return fmt.Errorf("sessions: %w", err)
	}
	if _, err := c.Sessions.SweepIntervalDuration(); err != nil {
		return fmt.Errorf("sessions: %w", err)
	}
	return nil
}
