package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/carpool-go/internal/adapters/metrics"
)

// rootOptions holds global flags and the state built from them
type rootOptions struct {
	configPath  string
	verbose     bool
	showMetrics bool

	app *app
}

// NewRootCommand creates the root command for the CLI
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "carpool",
		Short: "Carpool CLI - Fill vehicle tanks and generate fleets",
		Long: `Carpool CLI builds vehicles with fuel tanks and fills them
by litres, up to a fraction of capacity, or to full.

Examples:
  carpool fill --capacity 100 --fuel 30 --litres 20
  carpool fill --capacity 100 --fuel 30 --fraction 0.5
  carpool fill --capacity 60 --diesel
  carpool fleet generate --size 5 --seed 42
  carpool config show`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(opts)
			if err != nil {
				return err
			}
			opts.app = a
			cmd.SetContext(a.ctx)
			return nil
		},
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "",
		"Path to config file (default: search ./config.yaml, ./configs, /etc/carpool)")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false,
		"Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&opts.showMetrics, "metrics", false,
		"Collect fill metrics and print them after the command")

	rootCmd.AddCommand(NewFillCommand(opts))
	rootCmd.AddCommand(NewFleetCommand(opts))
	rootCmd.AddCommand(NewConfigCommand(opts))

	wrapRunE(rootCmd, opts)

	return rootCmd
}

// wrapRunE makes every runnable command finish the app when it returns,
// whether it succeeded or not. Cobra skips post-run hooks after a failed RunE.
func wrapRunE(cmd *cobra.Command, opts *rootOptions) {
	for _, sub := range cmd.Commands() {
		wrapRunE(sub, opts)
	}
	if cmd.RunE == nil {
		return
	}

	run := cmd.RunE
	cmd.RunE = func(cmd *cobra.Command, args []string) (err error) {
		defer func() {
			if finishErr := opts.finish(cmd.OutOrStdout()); err == nil {
				err = finishErr
			}
		}()
		return run(cmd, args)
	}
}

// finish prints gathered metrics if requested and releases the app
func (o *rootOptions) finish(out io.Writer) error {
	if o.app == nil {
		return nil
	}
	defer func() {
		o.app.close()
		o.app = nil
	}()

	if o.showMetrics {
		return metrics.WriteText(out)
	}
	return nil
}

// Execute runs the root command
func Execute() {
	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
