package persistence

import (
	"context"
	"fmt"

	"github.com/hashicorp/go-memdb"

	"github.com/andrescamacho/carpool-go/internal/domain/vehicle"
)

// MemDBVehicleRepository implements VehicleRepository on an in-memory database.
// go-memdb admits a single write transaction at a time, which serializes Update.
type MemDBVehicleRepository struct {
	db *memdb.MemDB
}

// NewMemDBVehicleRepository creates a new in-memory vehicle repository
func NewMemDBVehicleRepository() (*MemDBVehicleRepository, error) {
	db, err := memdb.NewMemDB(schema())
	if err != nil {
		return nil, fmt.Errorf("failed to create vehicle store: %w", err)
	}
	return &MemDBVehicleRepository{db: db}, nil
}

// Add stores a new vehicle
func (r *MemDBVehicleRepository) Add(ctx context.Context, v *vehicle.Vehicle) error {
	return r.AddAll(ctx, []*vehicle.Vehicle{v})
}

// AddAll stores vehicles in one write transaction. Either all are stored or none.
func (r *MemDBVehicleRepository) AddAll(ctx context.Context, vehicles []*vehicle.Vehicle) error {
	txn := r.db.Txn(true)
	defer txn.Abort()

	for _, v := range vehicles {
		if err := r.insertNew(txn, v); err != nil {
			return err
		}
	}

	txn.Commit()
	return nil
}

func (r *MemDBVehicleRepository) insertNew(txn *memdb.Txn, v *vehicle.Vehicle) error {
	if v == nil {
		return fmt.Errorf("vehicle cannot be nil")
	}

	existing, err := txn.First(vehiclesTable, "id", v.ID())
	if err != nil {
		return fmt.Errorf("failed to look up vehicle: %w", err)
	}
	if existing != nil {
		return fmt.Errorf("vehicle %s already exists", v.ID())
	}

	if err := txn.Insert(vehiclesTable, r.vehicleToModel(v)); err != nil {
		return fmt.Errorf("failed to add vehicle %s: %w", v.ID(), err)
	}
	return nil
}

// FindByID retrieves a vehicle by ID
func (r *MemDBVehicleRepository) FindByID(ctx context.Context, id string) (*vehicle.Vehicle, error) {
	txn := r.db.Txn(false)
	defer txn.Abort()

	model, err := r.first(txn, id)
	if err != nil {
		return nil, err
	}
	return r.modelToVehicle(model)
}

// List retrieves all vehicles ordered by ID
func (r *MemDBVehicleRepository) List(ctx context.Context) ([]*vehicle.Vehicle, error) {
	txn := r.db.Txn(false)
	defer txn.Abort()

	it, err := txn.Get(vehiclesTable, "id")
	if err != nil {
		return nil, fmt.Errorf("failed to list vehicles: %w", err)
	}

	var vehicles []*vehicle.Vehicle
	for obj := it.Next(); obj != nil; obj = it.Next() {
		v, err := r.modelToVehicle(obj.(*VehicleModel))
		if err != nil {
			return nil, err
		}
		vehicles = append(vehicles, v)
	}

	return vehicles, nil
}

// Update applies fn to a vehicle inside a single write transaction
func (r *MemDBVehicleRepository) Update(ctx context.Context, id string, fn func(*vehicle.Vehicle) error) (*vehicle.Vehicle, error) {
	txn := r.db.Txn(true)
	defer txn.Abort()

	model, err := r.first(txn, id)
	if err != nil {
		return nil, err
	}

	v, err := r.modelToVehicle(model)
	if err != nil {
		return nil, err
	}

	if err := fn(v); err != nil {
		return nil, err
	}

	if err := txn.Insert(vehiclesTable, r.vehicleToModel(v)); err != nil {
		return nil, fmt.Errorf("failed to update vehicle: %w", err)
	}

	txn.Commit()
	return v, nil
}

func (r *MemDBVehicleRepository) first(txn *memdb.Txn, id string) (*VehicleModel, error) {
	raw, err := txn.First(vehiclesTable, "id", id)
	if err != nil {
		return nil, fmt.Errorf("failed to find vehicle: %w", err)
	}
	if raw == nil {
		return nil, fmt.Errorf("%w: %s", vehicle.ErrVehicleNotFound, id)
	}
	return raw.(*VehicleModel), nil
}

func (r *MemDBVehicleRepository) vehicleToModel(v *vehicle.Vehicle) *VehicleModel {
	capacity, known := v.Tank().Capacity().Litres()
	return &VehicleModel{
		ID:            v.ID(),
		Brand:         v.Brand(),
		FuelType:      string(v.FuelType()),
		Capacity:      capacity,
		CapacityKnown: known,
		Fuel:          v.Tank().Fuel(),
	}
}

func (r *MemDBVehicleRepository) modelToVehicle(model *VehicleModel) (*vehicle.Vehicle, error) {
	capacity := vehicle.UnknownCapacity
	if model.CapacityKnown {
		capacity = vehicle.CapacityOf(model.Capacity)
	}

	v, err := vehicle.ReconstituteVehicle(
		model.ID,
		model.Brand,
		vehicle.FuelType(model.FuelType),
		capacity,
		model.Fuel,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstitute vehicle %s: %w", model.ID, err)
	}
	return v, nil
}
