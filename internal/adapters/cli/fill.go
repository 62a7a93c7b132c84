package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	vehicleCommands "github.com/andrescamacho/carpool-go/internal/application/vehicle/commands"
	"github.com/andrescamacho/carpool-go/internal/domain/vehicle"
	"github.com/andrescamacho/carpool-go/pkg/utils"
)

// NewFillCommand creates the fill command
func NewFillCommand(opts *rootOptions) *cobra.Command {
	var (
		brand    string
		capacity float64
		fuel     float64
		fraction float64
		litres   float64
		diesel   bool
	)

	cmd := &cobra.Command{
		Use:   "fill",
		Short: "Build a vehicle and fill its tank once",
		Long: `Build a vehicle with the given tank and fill it once.

Use --fraction to fill up to a share of capacity, --litres to add an exact
volume, or neither to fill to full. The two flags cannot be combined.
Omit --capacity for a tank of unknown capacity.

Examples:
  carpool fill --capacity 100 --fuel 30 --litres 20
  carpool fill --capacity 100 --fuel 30 --fraction 0.1
  carpool fill --capacity 100 --fuel 30
  carpool fill --brand Iveco --capacity 80 --diesel`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			m, err := opts.app.mediator(0)
			if err != nil {
				return err
			}

			fuelType := vehicle.FuelTypePetrol
			if diesel {
				fuelType = vehicle.FuelTypeDiesel
			}

			register := &vehicleCommands.RegisterVehicleCommand{
				Brand:       brand,
				FuelType:    fuelType,
				InitialFuel: fuel,
			}
			if cmd.Flags().Changed("capacity") {
				register.Capacity = &capacity
			}

			resp, err := m.Send(ctx, register)
			if err != nil {
				return err
			}
			v := resp.(*vehicleCommands.RegisterVehicleResponse).Vehicle

			fill := &vehicleCommands.FillTankCommand{VehicleID: v.ID()}
			if cmd.Flags().Changed("fraction") {
				fill.TargetFraction = &fraction
			}
			if cmd.Flags().Changed("litres") {
				fill.Litres = &litres
			}

			resp, err = m.Send(ctx, fill)
			if err != nil {
				return err
			}
			result := resp.(*vehicleCommands.FillTankResponse)

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "✓ Tank filled")
			fmt.Fprintf(out, "  Vehicle:       %s\n", result.VehicleID)
			fmt.Fprintf(out, "  Fuel Added:    %g\n", result.FuelAdded)
			fmt.Fprintf(out, "  Current Fuel:  %g\n", result.CurrentFuel)
			fmt.Fprintf(out, "  Filled:        %g%%\n", utils.RoundUp(result.PercentFilled, 1))

			return nil
		},
	}

	cmd.Flags().StringVar(&brand, "brand", "", "Vehicle brand label")
	cmd.Flags().Float64Var(&capacity, "capacity", 0, "Tank capacity in litres (omit for unknown)")
	cmd.Flags().Float64Var(&fuel, "fuel", 0, "Initial fuel in litres")
	cmd.Flags().Float64Var(&fraction, "fraction", 0, "Fill up to this share of capacity, in (0, 1]")
	cmd.Flags().Float64Var(&litres, "litres", 0, "Add exactly this many litres")
	cmd.Flags().BoolVar(&diesel, "diesel", false, "Build a diesel vehicle")

	return cmd
}
