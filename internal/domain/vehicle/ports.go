package vehicle

import (
	"context"
	"errors"
)

// ErrVehicleNotFound is returned by repositories for unknown vehicle IDs
var ErrVehicleNotFound = errors.New("vehicle not found")

// VehicleRepository defines vehicle storage operations
type VehicleRepository interface {
	Add(ctx context.Context, vehicle *Vehicle) error
	// AddAll stores every vehicle or none of them
	AddAll(ctx context.Context, vehicles []*Vehicle) error
	FindByID(ctx context.Context, id string) (*Vehicle, error)
	List(ctx context.Context) ([]*Vehicle, error)

	// Update loads the vehicle, applies fn and stores the result atomically.
	// Updates are serialized; if fn returns an error nothing is stored.
	Update(ctx context.Context, id string, fn func(*Vehicle) error) (*Vehicle, error)
}
