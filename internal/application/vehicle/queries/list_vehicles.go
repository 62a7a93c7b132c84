package queries

import (
	"context"
	"fmt"
	"sort"

	"github.com/andrescamacho/carpool-go/internal/application/common"
	"github.com/andrescamacho/carpool-go/internal/domain/vehicle"
)

// ListVehiclesQuery lists every registered vehicle
type ListVehiclesQuery struct{}

// ListVehiclesResponse holds vehicles sorted by brand, then ID
type ListVehiclesResponse struct {
	Vehicles []*vehicle.Vehicle
}

type ListVehiclesHandler struct {
	vehicleRepo vehicle.VehicleRepository
}

func NewListVehiclesHandler(vehicleRepo vehicle.VehicleRepository) *ListVehiclesHandler {
	return &ListVehiclesHandler{vehicleRepo: vehicleRepo}
}

func (h *ListVehiclesHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	if _, ok := request.(*ListVehiclesQuery); !ok {
		return nil, fmt.Errorf("invalid request type: expected *ListVehiclesQuery")
	}

	vehicles, err := h.vehicleRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(vehicles, func(i, j int) bool {
		if vehicles[i].Brand() != vehicles[j].Brand() {
			return vehicles[i].Brand() < vehicles[j].Brand()
		}
		return vehicles[i].ID() < vehicles[j].ID()
	})

	return &ListVehiclesResponse{Vehicles: vehicles}, nil
}
