package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/averycrespi/calculator-mcp/pkg/types"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{EnvMaxDigits, EnvMaxDecimalPlaces, EnvMaxSessions, EnvLogLevel} {
		t.Setenv(name, "")
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, types.DefaultConfig(), cfg)
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 15, cfg.Calculator.MaxDigits)
	assert.Equal(t, 10, cfg.Calculator.MaxDecimalPlaces)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadYAML(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "calculator.yaml")
	content := `calculator:
  max_digits: 8
  max_decimal_places: 4
sessions:
  max_sessions: 5
  idle_timeout: 10m
logging:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.Calculator.MaxDigits)
	assert.Equal(t, 4, cfg.Calculator.MaxDecimalPlaces)
	assert.Equal(t, 5, cfg.Sessions.MaxSessions)
	assert.Equal(t, "10m", cfg.Sessions.IdleTimeout)
	assert.Equal(t, "1m", cfg.Sessions.SweepInterval, "unset keys keep their defaults")
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestSaveLoad(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "nested", "calculator.yaml")
	cfg := types.DefaultConfig()
	cfg.Calculator.MaxDigits = 20
	cfg.Sessions.IdleTimeout = "5m"

	require.NoError(t, Save(cfg, path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvMaxDigits, "9")
	t.Setenv(EnvMaxDecimalPlaces, "3")
	t.Setenv(EnvMaxSessions, "2")
	t.Setenv(EnvLogLevel, "warn")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 9, cfg.Calculator.MaxDigits)
	assert.Equal(t, 3, cfg.Calculator.MaxDecimalPlaces)
	assert.Equal(t, 2, cfg.Sessions.MaxSessions)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		env     map[string]string
	}{
		{name: "Malformed YAML", content: "calculator: [\n"},
		{name: "Zero max digits", content: "calculator:\n  max_digits: 0\n"},
		{name: "Negative decimal places", content: "calculator:\n  max_decimal_places: -2\n"},
		{name: "Bad idle timeout", content: "sessions:\n  idle_timeout: soon\n"},
		{name: "Negative sessions", content: "sessions:\n  max_sessions: -1\n"},
		{name: "Single session leaves no room beside default", content: "sessions:\n  max_sessions: 1\n"},
		{name: "Non-numeric env", env: map[string]string{EnvMaxDigits: "many"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			path := filepath.Join(t.TempDir(), "calculator.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0644))

			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}
