package commands

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/andrescamacho/carpool-go/internal/application/common"
	"github.com/andrescamacho/carpool-go/internal/domain/fleet"
	"github.com/andrescamacho/carpool-go/internal/domain/vehicle"
)

// GenerateFleetCommand - Command to generate random vehicles and register them
type GenerateFleetCommand struct {
	Size int
}

// GenerateFleetResponse - Response from generate fleet command
type GenerateFleetResponse struct {
	Vehicles []*vehicle.Vehicle
}

// GenerateFleetHandler - Handles generate fleet commands
type GenerateFleetHandler struct {
	vehicleRepo vehicle.VehicleRepository
	generator   *fleet.Generator
}

// NewGenerateFleetHandler creates a new generate fleet handler
func NewGenerateFleetHandler(vehicleRepo vehicle.VehicleRepository, generator *fleet.Generator) *GenerateFleetHandler {
	return &GenerateFleetHandler{
		vehicleRepo: vehicleRepo,
		generator:   generator,
	}
}

// Handle executes the generate fleet command
func (h *GenerateFleetHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*GenerateFleetCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	vehicles, err := h.generator.Generate(cmd.Size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate fleet: %w", err)
	}

	if err := h.vehicleRepo.AddAll(ctx, vehicles); err != nil {
		return nil, fmt.Errorf("failed to register fleet: %w", err)
	}

	zerolog.Ctx(ctx).Info().Int("size", len(vehicles)).Msg("fleet generated")

	return &GenerateFleetResponse{Vehicles: vehicles}, nil
}
