package commands

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/andrescamacho/carpool-go/internal/application/common"
	"github.com/andrescamacho/carpool-go/internal/domain/vehicle"
	"github.com/andrescamacho/carpool-go/pkg/utils"
)

// RegisterVehicleCommand - Command to create a vehicle and add it to the registry
type RegisterVehicleCommand struct {
	Brand       string
	FuelType    vehicle.FuelType // empty = petrol
	Capacity    *float64         // nil = unknown capacity
	InitialFuel float64
}

// RegisterVehicleResponse - Response from register vehicle command
type RegisterVehicleResponse struct {
	Vehicle *vehicle.Vehicle
}

// RegisterVehicleHandler - Handles register vehicle commands
type RegisterVehicleHandler struct {
	vehicleRepo vehicle.VehicleRepository
}

// NewRegisterVehicleHandler creates a new register vehicle handler
func NewRegisterVehicleHandler(vehicleRepo vehicle.VehicleRepository) *RegisterVehicleHandler {
	return &RegisterVehicleHandler{
		vehicleRepo: vehicleRepo,
	}
}

// Handle executes the register vehicle command
func (h *RegisterVehicleHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*RegisterVehicleCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	fuelType, err := vehicle.ParseFuelType(string(cmd.FuelType))
	if err != nil {
		return nil, err
	}

	v, err := vehicle.NewVehicle(cmd.Brand, fuelType, vehicle.CapacityFromPtr(cmd.Capacity), cmd.InitialFuel)
	if err != nil {
		return nil, fmt.Errorf("failed to create vehicle: %w", err)
	}

	if err := h.vehicleRepo.Add(ctx, v); err != nil {
		return nil, fmt.Errorf("failed to register vehicle: %w", err)
	}

	zerolog.Ctx(ctx).Info().
		Str("vehicle_id", v.ID()).
		Str("brand", v.Brand()).
		Float64("percent_filled", utils.RoundUp(v.Tank().PercentFilled(), 1)).
		Msg("new vehicle registered")

	return &RegisterVehicleResponse{Vehicle: v}, nil
}
