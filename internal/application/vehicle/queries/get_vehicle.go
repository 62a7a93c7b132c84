package queries

import (
	"context"
	"fmt"

	"github.com/andrescamacho/carpool-go/internal/application/common"
	"github.com/andrescamacho/carpool-go/internal/domain/vehicle"
)

// GetVehicleQuery represents a query to get vehicle details
type GetVehicleQuery struct {
	VehicleID string
}

// GetVehicleResponse represents the result of getting a vehicle
type GetVehicleResponse struct {
	Vehicle *vehicle.Vehicle
}

// GetVehicleHandler handles the GetVehicle query
type GetVehicleHandler struct {
	vehicleRepo vehicle.VehicleRepository
}

// NewGetVehicleHandler creates a new GetVehicleHandler
func NewGetVehicleHandler(vehicleRepo vehicle.VehicleRepository) *GetVehicleHandler {
	return &GetVehicleHandler{vehicleRepo: vehicleRepo}
}

// Handle executes the GetVehicle query
func (h *GetVehicleHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	query, ok := request.(*GetVehicleQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *GetVehicleQuery")
	}

	if query.VehicleID == "" {
		return nil, fmt.Errorf("vehicle_id is required")
	}

	v, err := h.vehicleRepo.FindByID(ctx, query.VehicleID)
	if err != nil {
		return nil, err
	}

	return &GetVehicleResponse{Vehicle: v}, nil
}
