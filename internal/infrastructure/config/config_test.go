package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/carpool-go/internal/infrastructure/config"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := config.LoadConfig(writeConfig(t, "{}\n"))

	require.NoError(t, err)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
	assert.Equal(t, "stderr", cfg.Logging.Output)
	assert.False(t, cfg.Metrics.Enabled)
	assert.Equal(t, 20, cfg.Fleet.MinCapacity)
	assert.Equal(t, 60, cfg.Fleet.MaxCapacity)
	assert.Equal(t, 5, cfg.Fleet.Step)
	assert.Equal(t, 5, cfg.Fleet.DefaultSize)
	assert.Zero(t, cfg.Fleet.Seed)
}

func TestLoadConfig_FromFile(t *testing.T) {
	path := writeConfig(t, `
logging:
  level: debug
  format: json
metrics:
  enabled: true
fleet:
  min_capacity: 10
  max_capacity: 40
  step: 10
  seed: 99
`)

	cfg, err := config.LoadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, 10, cfg.Fleet.MinCapacity)
	assert.Equal(t, 40, cfg.Fleet.MaxCapacity)
	assert.Equal(t, 10, cfg.Fleet.Step)
	assert.Equal(t, uint64(99), cfg.Fleet.Seed)
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "logging:\n  level: debug\n")
	t.Setenv("CARPOOL_LOGGING_LEVEL", "warn")
	t.Setenv("CARPOOL_FLEET_SEED", "42")

	cfg, err := config.LoadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, uint64(42), cfg.Fleet.Seed)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad level", "logging:\n  level: loud\n"},
		{"file output without path", "logging:\n  output: file\n"},
		{"max below min", "fleet:\n  min_capacity: 50\n  max_capacity: 30\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.LoadConfig(writeConfig(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), "invalid configuration")
		})
	}
}

func TestLoadConfig_InvalidNamesConfigKey(t *testing.T) {
	_, err := config.LoadConfig(writeConfig(t, "logging:\n  level: loud\nfleet:\n  step: -1\n"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), `logging.level: failed "oneof" (value: 'loud')`)
	assert.Contains(t, err.Error(), `fleet.step: failed "min"`)
}
