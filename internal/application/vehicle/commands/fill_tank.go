package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/andrescamacho/carpool-go/internal/adapters/metrics"
	"github.com/andrescamacho/carpool-go/internal/application/common"
	"github.com/andrescamacho/carpool-go/internal/domain/shared"
	"github.com/andrescamacho/carpool-go/internal/domain/vehicle"
)

// FillTankCommand - Command to fill a registered vehicle's tank
type FillTankCommand struct {
	VehicleID      string
	TargetFraction *float64 // fill up to this share of capacity
	Litres         *float64 // add exactly this many litres
	// Both nil = fill to full. Both set = rejected.
}

// FillTankResponse - Response from fill tank command
type FillTankResponse struct {
	VehicleID     string
	FuelAdded     float64
	CurrentFuel   float64
	PercentFilled float64
}

// FillTankHandler - Handles fill tank commands
type FillTankHandler struct {
	vehicleRepo vehicle.VehicleRepository
}

// NewFillTankHandler creates a new fill tank handler
func NewFillTankHandler(vehicleRepo vehicle.VehicleRepository) *FillTankHandler {
	return &FillTankHandler{
		vehicleRepo: vehicleRepo,
	}
}

// Handle executes the fill tank command
func (h *FillTankHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*FillTankCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	if cmd.VehicleID == "" {
		return nil, shared.NewValidationError("vehicle_id", "is required")
	}

	req := vehicle.FillRequest{
		TargetFraction: cmd.TargetFraction,
		Litres:         cmd.Litres,
	}
	mode := req.Mode().Name()

	var added float64
	updated, err := h.vehicleRepo.Update(ctx, cmd.VehicleID, func(v *vehicle.Vehicle) error {
		var fillErr error
		added, fillErr = v.FillTank(req)
		return fillErr
	})
	if err != nil {
		outcome := metrics.OutcomeFailure
		if errors.Is(err, vehicle.ErrVehicleNotFound) {
			outcome = metrics.OutcomeNotFound
		}
		metrics.RecordFill(mode, outcome, 0, 0)
		return nil, fmt.Errorf("failed to fill tank of vehicle %s: %w", cmd.VehicleID, err)
	}

	tank := updated.Tank()
	metrics.RecordFill(mode, metrics.OutcomeSuccess, added, tank.PercentFilled())

	zerolog.Ctx(ctx).Debug().
		Str("vehicle_id", updated.ID()).
		Str("mode", mode).
		Float64("fuel_added", added).
		Float64("fuel", tank.Fuel()).
		Msg("tank filled")

	return &FillTankResponse{
		VehicleID:     updated.ID(),
		FuelAdded:     added,
		CurrentFuel:   tank.Fuel(),
		PercentFilled: tank.PercentFilled(),
	}, nil
}
