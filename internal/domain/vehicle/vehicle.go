package vehicle

import (
	"fmt"

	"github.com/andrescamacho/carpool-go/internal/domain/shared"
	"github.com/andrescamacho/carpool-go/pkg/utils"
)

// FuelType is the fuel a vehicle runs on
type FuelType string

const (
	FuelTypePetrol FuelType = "PETROL"
	FuelTypeDiesel FuelType = "DIESEL"
)

var validFuelTypes = map[FuelType]bool{
	FuelTypePetrol: true,
	FuelTypeDiesel: true,
}

// ParseFuelType validates a fuel type name, defaulting to petrol when empty
func ParseFuelType(name string) (FuelType, error) {
	if name == "" {
		return FuelTypePetrol, nil
	}
	ft := FuelType(name)
	if !validFuelTypes[ft] {
		return "", shared.NewValidationError("fuel_type", fmt.Sprintf("unsupported fuel type %q", name))
	}
	return ft, nil
}

// FillPolicy returns the tank policy implied by the fuel type
func (f FuelType) FillPolicy() FillPolicy {
	if f == FuelTypeDiesel {
		return FillPolicyUnavailable
	}
	return FillPolicyStandard
}

// Vehicle entity - a branded vehicle owning exactly one fuel tank
//
// Invariants:
// - id is non-empty and never changes
// - the tank policy always matches the fuel type
type Vehicle struct {
	id       string
	brand    string
	fuelType FuelType
	tank     *Tank
}

// NewVehicle creates a vehicle with a fresh ID and a validated tank
func NewVehicle(brand string, fuelType FuelType, capacity Capacity, initialFuel float64) (*Vehicle, error) {
	return ReconstituteVehicle(utils.GenerateVehicleID(brand), brand, fuelType, capacity, initialFuel)
}

// ReconstituteVehicle rebuilds a vehicle from stored fields, keeping its ID
func ReconstituteVehicle(id, brand string, fuelType FuelType, capacity Capacity, fuel float64) (*Vehicle, error) {
	if id == "" {
		return nil, shared.NewValidationError("id", "cannot be empty")
	}
	if !validFuelTypes[fuelType] {
		return nil, shared.NewValidationError("fuel_type", fmt.Sprintf("unsupported fuel type %q", fuelType))
	}

	tank, err := NewTank(capacity, fuel, fuelType.FillPolicy())
	if err != nil {
		return nil, err
	}

	return &Vehicle{
		id:       id,
		brand:    brand,
		fuelType: fuelType,
		tank:     tank,
	}, nil
}

// Getters

func (v *Vehicle) ID() string {
	return v.id
}

func (v *Vehicle) Brand() string {
	return v.brand
}

func (v *Vehicle) FuelType() FuelType {
	return v.fuelType
}

func (v *Vehicle) Tank() *Tank {
	return v.tank
}

// FillTank fills the vehicle's tank and returns the litres added
func (v *Vehicle) FillTank(req FillRequest) (float64, error) {
	return v.tank.Fill(req)
}

func (v *Vehicle) String() string {
	label := "Car"
	if v.fuelType == FuelTypeDiesel {
		label = "DieselCar"
	}
	return fmt.Sprintf("%s brand: %s, tank capacity %s, tanked fuel: %g",
		label, v.brand, v.tank.Capacity(), v.tank.Fuel())
}

// Describe returns a short identity line with the fill level rounded up to one decimal
func (v *Vehicle) Describe() string {
	return fmt.Sprintf("<Car %s of brand %s, with tank full in %g%%>",
		v.id, v.brand, utils.RoundUp(v.tank.PercentFilled(), 1))
}
