package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/carpool-go/internal/adapters/metrics"
)

const quietConfig = "logging:\n  level: error\n"

func runCLI(t *testing.T, configYAML string, args ...string) (string, error) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(configYAML), 0o600))

	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--config", path}, args...))

	err := cmd.Execute()
	return out.String(), err
}

func TestCLI_Commands(t *testing.T) {
	tests := []struct {
		name    string
		config  string
		args    []string
		wantOut []string
		wantErr string
	}{
		{
			name:    "fill by litres",
			args:    []string{"fill", "--brand", "Fiat", "--capacity", "100", "--fuel", "30", "--litres", "20"},
			wantOut: []string{"✓ Tank filled", "Fuel Added:    20", "Current Fuel:  50", "Filled:        50%"},
		},
		{
			name:    "fill to fraction below level",
			args:    []string{"fill", "--capacity", "100", "--fuel", "30", "--fraction", "0.1"},
			wantOut: []string{"Fuel Added:    0", "Current Fuel:  30"},
		},
		{
			name:    "fill to full",
			args:    []string{"fill", "--capacity", "60", "--fuel", "15"},
			wantOut: []string{"Fuel Added:    45", "Filled:        100%"},
		},
		{
			name:    "fill overflow",
			args:    []string{"fill", "--capacity", "100", "--fuel", "30", "--litres", "80"},
			wantErr: "requested 80, room for 70",
		},
		{
			name:    "fill diesel",
			args:    []string{"fill", "--capacity", "80", "--diesel"},
			wantErr: "diesel fuel not available due to environmental reasons",
		},
		{
			name:    "fill unknown capacity",
			args:    []string{"fill", "--litres", "10"},
			wantErr: "tank capacity not known",
		},
		{
			name:    "fill with fraction and litres",
			args:    []string{"fill", "--capacity", "100", "--fraction", "0.5", "--litres", "10"},
			wantErr: "not allowed together",
		},
		{
			name:    "fleet generate with seed",
			args:    []string{"fleet", "generate", "--size", "3", "--seed", "42"},
			wantOut: []string{"BRAND", "CAPACITY", "Vehicles: 3"},
		},
		{
			name:    "fleet generate without seed",
			args:    []string{"fleet", "generate", "--size", "4"},
			wantOut: []string{"Vehicles: 4"},
		},
		{
			name:    "fleet generate default size from config",
			config:  quietConfig + "fleet:\n  default_size: 2\n  seed: 7\n",
			args:    []string{"fleet", "generate"},
			wantOut: []string{"Vehicles: 2"},
		},
		{
			name:    "fleet generate too large",
			args:    []string{"fleet", "generate", "--size", "1000", "--seed", "42"},
			wantErr: "unique brands",
		},
		{
			name:    "config show",
			args:    []string{"config", "show"},
			wantOut: []string{"Carpool Configuration", "level: error", "min_capacity: 20", "default_size: 5"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := tt.config
			if config == "" {
				config = quietConfig
			}

			out, err := runCLI(t, config, tt.args...)

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			for _, want := range tt.wantOut {
				assert.Contains(t, out, want)
			}
		})
	}
}

func TestCLI_MetricsAfterSuccessfulFill(t *testing.T) {
	out, err := runCLI(t, quietConfig, "--metrics", "fill", "--capacity", "100", "--litres", "20")

	require.NoError(t, err)
	assert.Contains(t, out, `carpool_fuel_fills_total{mode="litres",outcome="success"} 1`)
	assert.False(t, metrics.IsEnabled())
}

func TestCLI_MetricsAfterFailedFill(t *testing.T) {
	out, err := runCLI(t, quietConfig, "--metrics", "fill", "--capacity", "100", "--fuel", "30", "--litres", "80")

	require.Error(t, err)
	assert.Contains(t, out, `carpool_fuel_fills_total{mode="litres",outcome="failure"} 1`)
	assert.False(t, metrics.IsEnabled(), "metrics state must be released after a failed command")
}

func TestCLI_MetricsEnabledFromConfigAreReleased(t *testing.T) {
	_, err := runCLI(t, quietConfig+"metrics:\n  enabled: true\n", "fill", "--capacity", "50", "--diesel")

	require.Error(t, err)
	assert.False(t, metrics.IsEnabled())
}
