package queries

import (
	"context"
	"fmt"

	"github.com/andrescamacho/carpool-go/internal/application/common"
	"github.com/andrescamacho/carpool-go/internal/domain/fleet"
	"github.com/andrescamacho/carpool-go/internal/domain/vehicle"
)

// FleetSummaryQuery summarizes fuel levels over all registered vehicles
type FleetSummaryQuery struct{}

type FleetSummaryResponse struct {
	Summary fleet.Summary
}

type FleetSummaryHandler struct {
	vehicleRepo vehicle.VehicleRepository
}

func NewFleetSummaryHandler(vehicleRepo vehicle.VehicleRepository) *FleetSummaryHandler {
	return &FleetSummaryHandler{vehicleRepo: vehicleRepo}
}

func (h *FleetSummaryHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	if _, ok := request.(*FleetSummaryQuery); !ok {
		return nil, fmt.Errorf("invalid request type: expected *FleetSummaryQuery")
	}

	vehicles, err := h.vehicleRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	return &FleetSummaryResponse{Summary: fleet.Summarize(vehicles)}, nil
}
