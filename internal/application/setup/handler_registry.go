package setup

import (
	"reflect"

	"github.com/andrescamacho/carpool-go/internal/application/common"
	vehicleCommands "github.com/andrescamacho/carpool-go/internal/application/vehicle/commands"
	vehicleQueries "github.com/andrescamacho/carpool-go/internal/application/vehicle/queries"
	"github.com/andrescamacho/carpool-go/internal/domain/fleet"
	"github.com/andrescamacho/carpool-go/internal/domain/vehicle"
)

// HandlerRegistry holds all application dependencies for handler creation
type HandlerRegistry struct {
	vehicleRepo vehicle.VehicleRepository
	generator   *fleet.Generator
}

// NewHandlerRegistry creates a new handler registry with required dependencies.
// generator may be nil, in which case fleet generation is not registered.
func NewHandlerRegistry(vehicleRepo vehicle.VehicleRepository, generator *fleet.Generator) *HandlerRegistry {
	return &HandlerRegistry{
		vehicleRepo: vehicleRepo,
		generator:   generator,
	}
}

// RegisterVehicleHandlers registers all vehicle command and query handlers with the mediator
//
// This method registers:
//   - RegisterVehicleCommand → RegisterVehicleHandler
//   - FillTankCommand → FillTankHandler
//   - GetVehicleQuery → GetVehicleHandler
//   - ListVehiclesQuery → ListVehiclesHandler
//   - FleetSummaryQuery → FleetSummaryHandler
func (r *HandlerRegistry) RegisterVehicleHandlers(m common.Mediator) error {
	registrations := []struct {
		requestType reflect.Type
		handler     common.RequestHandler
	}{
		{reflect.TypeOf(&vehicleCommands.RegisterVehicleCommand{}), vehicleCommands.NewRegisterVehicleHandler(r.vehicleRepo)},
		{reflect.TypeOf(&vehicleCommands.FillTankCommand{}), vehicleCommands.NewFillTankHandler(r.vehicleRepo)},
		{reflect.TypeOf(&vehicleQueries.GetVehicleQuery{}), vehicleQueries.NewGetVehicleHandler(r.vehicleRepo)},
		{reflect.TypeOf(&vehicleQueries.ListVehiclesQuery{}), vehicleQueries.NewListVehiclesHandler(r.vehicleRepo)},
		{reflect.TypeOf(&vehicleQueries.FleetSummaryQuery{}), vehicleQueries.NewFleetSummaryHandler(r.vehicleRepo)},
	}

	for _, reg := range registrations {
		if err := m.Register(reg.requestType, reg.handler); err != nil {
			return err
		}
	}

	return nil
}

// RegisterFleetHandlers registers the fleet generation command handler
func (r *HandlerRegistry) RegisterFleetHandlers(m common.Mediator) error {
	return common.RegisterHandler[*vehicleCommands.GenerateFleetCommand](
		m,
		vehicleCommands.NewGenerateFleetHandler(r.vehicleRepo, r.generator),
	)
}

// CreateConfiguredMediator creates a mediator with logging middleware and all handlers registered
func (r *HandlerRegistry) CreateConfiguredMediator() (common.Mediator, error) {
	m := common.NewMediator()
	m.Use(common.LoggingMiddleware())

	if err := r.RegisterVehicleHandlers(m); err != nil {
		return nil, err
	}

	// Register fleet handlers if a generator is available
	if r.generator != nil {
		if err := r.RegisterFleetHandlers(m); err != nil {
			return nil, err
		}
	}

	return m, nil
}
