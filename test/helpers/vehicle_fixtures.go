package helpers

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/andrescamacho/carpool-go/internal/adapters/persistence"
	"github.com/andrescamacho/carpool-go/internal/application/common"
	"github.com/andrescamacho/carpool-go/internal/application/setup"
	"github.com/andrescamacho/carpool-go/internal/domain/fleet"
	"github.com/andrescamacho/carpool-go/internal/domain/shared"
	"github.com/andrescamacho/carpool-go/internal/domain/vehicle"
)

// MustVehicle builds a vehicle with a known capacity and panics on invalid input
func MustVehicle(brand string, fuelType vehicle.FuelType, capacity, fuel float64) *vehicle.Vehicle {
	v, err := vehicle.NewVehicle(brand, fuelType, vehicle.CapacityOf(capacity), fuel)
	if err != nil {
		panic(fmt.Sprintf("invalid test vehicle %s: %v", brand, err))
	}
	return v
}

// NewSeededGenerator returns a fleet generator with default options and a fixed seed
func NewSeededGenerator(seed uint64) *fleet.Generator {
	g, err := fleet.NewGenerator(fleet.DefaultGeneratorOptions(), rand.New(rand.NewPCG(seed, seed)))
	if err != nil {
		panic(fmt.Sprintf("failed to create generator: %v", err))
	}
	return g
}

// NewTestMediator wires a mediator over a fresh in-memory registry
func NewTestMediator(seed uint64) (common.Mediator, *persistence.MemDBVehicleRepository, error) {
	repo, err := persistence.NewMemDBVehicleRepository()
	if err != nil {
		return nil, nil, err
	}

	m, err := setup.NewHandlerRegistry(repo, NewSeededGenerator(seed)).CreateConfiguredMediator()
	if err != nil {
		return nil, nil, err
	}

	return m, repo, nil
}

// ErrorKind names the domain error kind carried by err, or "" when there is none
func ErrorKind(err error) string {
	var (
		configErr      *shared.ConfigurationError
		capacityErr    *shared.CapacityExceededError
		argumentErr    *shared.InvalidArgumentError
		requestErr     *shared.InvalidRequestError
		unknownCapErr  *shared.UnknownCapacityError
		unavailableErr *shared.FuelUnavailableError
		validationErr  *shared.ValidationError
	)

	switch {
	case err == nil:
		return ""
	case errors.As(err, &configErr):
		return "ConfigurationError"
	case errors.As(err, &capacityErr):
		return "CapacityExceededError"
	case errors.As(err, &argumentErr):
		return "InvalidArgumentError"
	case errors.As(err, &requestErr):
		return "InvalidRequestError"
	case errors.As(err, &unknownCapErr):
		return "UnknownCapacityError"
	case errors.As(err, &unavailableErr):
		return "FuelUnavailableError"
	case errors.As(err, &validationErr):
		return "ValidationError"
	case errors.Is(err, vehicle.ErrVehicleNotFound):
		return "VehicleNotFound"
	default:
		return fmt.Sprintf("%T", err)
	}
}
