package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// NewConfigCommand creates the config command with subcommands
func NewConfigCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect configuration settings",
		Long: `Inspect carpool configuration settings.

Configuration is loaded from multiple sources with priority:
1. Environment variables (CARPOOL_* prefix)
2. Config file (config.yaml)
3. Default values`,
	}

	cmd.AddCommand(newConfigShowCommand(opts))

	return cmd
}

func newConfigShowCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := opts.app.cfg
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, "Carpool Configuration")
			fmt.Fprintln(out, "=====================")

			data, err := yaml.Marshal(map[string]any{
				"logging": map[string]any{
					"level":     cfg.Logging.Level,
					"format":    cfg.Logging.Format,
					"output":    cfg.Logging.Output,
					"file_path": cfg.Logging.FilePath,
				},
				"metrics": map[string]any{
					"enabled": cfg.Metrics.Enabled,
				},
				"fleet": map[string]any{
					"min_capacity": cfg.Fleet.MinCapacity,
					"max_capacity": cfg.Fleet.MaxCapacity,
					"step":         cfg.Fleet.Step,
					"seed":         cfg.Fleet.Seed,
					"default_size": cfg.Fleet.DefaultSize,
				},
			})
			if err != nil {
				return fmt.Errorf("failed to render config: %w", err)
			}
			_, err = out.Write(data)
			return err
		},
	}
}
