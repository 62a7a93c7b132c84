package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	vehicleCommands "github.com/andrescamacho/carpool-go/internal/application/vehicle/commands"
	vehicleQueries "github.com/andrescamacho/carpool-go/internal/application/vehicle/queries"
	"github.com/andrescamacho/carpool-go/pkg/utils"
)

// NewFleetCommand creates the fleet command with subcommands
func NewFleetCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fleet",
		Short: "Generate and inspect fleets",
	}

	cmd.AddCommand(newFleetGenerateCommand(opts))

	return cmd
}

func newFleetGenerateCommand(opts *rootOptions) *cobra.Command {
	var (
		size int
		seed uint64
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a fleet of vehicles with unique brands",
		Long: `Generate a fleet of petrol vehicles with unique brands and random tanks.

Examples:
  carpool fleet generate
  carpool fleet generate --size 10 --seed 42`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if !cmd.Flags().Changed("size") {
				size = opts.app.cfg.Fleet.DefaultSize
			}

			m, err := opts.app.mediator(seed)
			if err != nil {
				return err
			}

			if _, err := m.Send(ctx, &vehicleCommands.GenerateFleetCommand{Size: size}); err != nil {
				return err
			}

			resp, err := m.Send(ctx, &vehicleQueries.ListVehiclesQuery{})
			if err != nil {
				return err
			}
			vehicles := resp.(*vehicleQueries.ListVehiclesResponse).Vehicles

			resp, err = m.Send(ctx, &vehicleQueries.FleetSummaryQuery{})
			if err != nil {
				return err
			}
			summary := resp.(*vehicleQueries.FleetSummaryResponse).Summary

			out := cmd.OutOrStdout()
			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "BRAND\tCAPACITY\tFUEL\tFILLED")
			for _, v := range vehicles {
				fmt.Fprintf(w, "%s\t%s\t%g\t%g%%\n",
					v.Brand(),
					v.Tank().Capacity(),
					v.Tank().Fuel(),
					utils.RoundUp(v.Tank().PercentFilled(), 1),
				)
			}
			if err := w.Flush(); err != nil {
				return err
			}

			fmt.Fprintf(out, "\nVehicles: %d  Capacity: %g  Fuel: %g  Mean filled: %g%%\n",
				summary.Count,
				summary.TotalCapacity,
				summary.TotalFuel,
				utils.RoundUp(summary.MeanPercentFilled, 1),
			)

			return nil
		},
	}

	cmd.Flags().IntVar(&size, "size", 0, "Number of vehicles (default from config)")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "Random seed (default from config, then clock)")

	return cmd
}
