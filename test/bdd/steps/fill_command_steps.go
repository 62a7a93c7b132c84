package steps

import (
	"context"
	"fmt"

	"github.com/cucumber/godog"

	"github.com/andrescamacho/carpool-go/internal/adapters/persistence"
	"github.com/andrescamacho/carpool-go/internal/application/common"
	vehicleCommands "github.com/andrescamacho/carpool-go/internal/application/vehicle/commands"
	"github.com/andrescamacho/carpool-go/internal/domain/vehicle"
	"github.com/andrescamacho/carpool-go/test/helpers"
)

type fillCommandContext struct {
	mediator common.Mediator
	repo     *persistence.MemDBVehicleRepository
	ids      map[string]string // brand -> vehicle ID
	response *vehicleCommands.FillTankResponse
	err      error
}

func (fcc *fillCommandContext) reset() {
	fcc.mediator = nil
	fcc.repo = nil
	fcc.ids = make(map[string]string)
	fcc.response = nil
	fcc.err = nil
}

// Given steps

func (fcc *fillCommandContext) aFreshVehicleRegistry() error {
	m, repo, err := helpers.NewTestMediator(1)
	if err != nil {
		return err
	}
	fcc.mediator = m
	fcc.repo = repo
	return nil
}

func (fcc *fillCommandContext) aRegisteredPetrolVehicle(brand string, capacity, fuel float64) error {
	return fcc.register(brand, vehicle.FuelTypePetrol, capacity, fuel)
}

func (fcc *fillCommandContext) aRegisteredDieselVehicle(brand string, capacity, fuel float64) error {
	return fcc.register(brand, vehicle.FuelTypeDiesel, capacity, fuel)
}

func (fcc *fillCommandContext) register(brand string, fuelType vehicle.FuelType, capacity, fuel float64) error {
	resp, err := fcc.mediator.Send(context.Background(), &vehicleCommands.RegisterVehicleCommand{
		Brand:       brand,
		FuelType:    fuelType,
		Capacity:    &capacity,
		InitialFuel: fuel,
	})
	if err != nil {
		return fmt.Errorf("failed to register %s: %w", brand, err)
	}
	fcc.ids[brand] = resp.(*vehicleCommands.RegisterVehicleResponse).Vehicle.ID()
	return nil
}

// When steps

func (fcc *fillCommandContext) iSendAFillCommandWithLitres(brand string, litres float64) error {
	return fcc.send(brand, nil, &litres)
}

func (fcc *fillCommandContext) iSendAFillCommandToFraction(brand string, fraction float64) error {
	return fcc.send(brand, &fraction, nil)
}

func (fcc *fillCommandContext) iSendAFillCommandToFull(brand string) error {
	return fcc.send(brand, nil, nil)
}

func (fcc *fillCommandContext) send(brand string, fraction, litres *float64) error {
	id, ok := fcc.ids[brand]
	if !ok {
		id = brand
	}

	resp, err := fcc.mediator.Send(context.Background(), &vehicleCommands.FillTankCommand{
		VehicleID:      id,
		TargetFraction: fraction,
		Litres:         litres,
	})
	fcc.err = err
	if err == nil {
		fcc.response = resp.(*vehicleCommands.FillTankResponse)
	}
	return nil
}

// Then steps

func (fcc *fillCommandContext) theCommandShouldReportLitresAdded(expected float64) error {
	if fcc.err != nil {
		return fmt.Errorf("expected command to succeed, got: %v", fcc.err)
	}
	return expectFloat("fuel added", expected, fcc.response.FuelAdded)
}

func (fcc *fillCommandContext) theStoredVehicleShouldHaveLitresOfFuel(brand string, expected float64) error {
	v, err := fcc.repo.FindByID(context.Background(), fcc.ids[brand])
	if err != nil {
		return err
	}
	return expectFloat("stored fuel", expected, v.Tank().Fuel())
}

func (fcc *fillCommandContext) theCommandShouldFailWith(kind string) error {
	if fcc.err == nil {
		return fmt.Errorf("expected command to fail with %s, but it succeeded", kind)
	}
	if got := helpers.ErrorKind(fcc.err); got != kind {
		return fmt.Errorf("expected %s, got %s (%v)", kind, got, fcc.err)
	}
	return nil
}

func InitializeFillCommandScenario(ctx *godog.ScenarioContext) {
	fcc := &fillCommandContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		fcc.reset()
		return ctx, nil
	})

	ctx.Step(`^a fresh vehicle registry$`, fcc.aFreshVehicleRegistry)
	ctx.Step(`^a registered petrol vehicle "([^"]*)" with capacity `+number+` and fuel `+number+`$`, fcc.aRegisteredPetrolVehicle)
	ctx.Step(`^a registered diesel vehicle "([^"]*)" with capacity `+number+` and fuel `+number+`$`, fcc.aRegisteredDieselVehicle)

	ctx.Step(`^I send a fill command for "([^"]*)" with `+number+` litres$`, fcc.iSendAFillCommandWithLitres)
	ctx.Step(`^I send a fill command for "([^"]*)" to fraction `+number+`$`, fcc.iSendAFillCommandToFraction)
	ctx.Step(`^I send a fill command for "([^"]*)" to full$`, fcc.iSendAFillCommandToFull)

	ctx.Step(`^the command should report `+number+` litres added$`, fcc.theCommandShouldReportLitresAdded)
	ctx.Step(`^the stored vehicle "([^"]*)" should have `+number+` litres of fuel$`, fcc.theStoredVehicleShouldHaveLitresOfFuel)
	ctx.Step(`^the command should fail with "([^"]*)"$`, fcc.theCommandShouldFailWith)
}
