package steps

import (
	"context"
	"fmt"
	"math"

	"github.com/cucumber/godog"

	"github.com/andrescamacho/carpool-go/internal/domain/vehicle"
	"github.com/andrescamacho/carpool-go/test/helpers"
)

const number = `(-?\d+(?:\.\d+)?)`

type tankContext struct {
	tank    *vehicle.Tank
	err     error
	added   float64
	fillErr error
}

func (tc *tankContext) reset() {
	tc.tank = nil
	tc.err = nil
	tc.added = 0
	tc.fillErr = nil
}

// Given steps

func (tc *tankContext) aTankWithCapacityAndFuel(capacity, fuel float64) error {
	return tc.givenTank(vehicle.CapacityOf(capacity), fuel, vehicle.FillPolicyStandard)
}

func (tc *tankContext) aDieselTankWithCapacityAndFuel(capacity, fuel float64) error {
	return tc.givenTank(vehicle.CapacityOf(capacity), fuel, vehicle.FuelTypeDiesel.FillPolicy())
}

func (tc *tankContext) aTankWithUnknownCapacity() error {
	return tc.givenTank(vehicle.UnknownCapacity, 0, vehicle.FillPolicyStandard)
}

func (tc *tankContext) givenTank(capacity vehicle.Capacity, fuel float64, policy vehicle.FillPolicy) error {
	tank, err := vehicle.NewTank(capacity, fuel, policy)
	if err != nil {
		return fmt.Errorf("failed to create tank: %w", err)
	}
	tc.tank = tank
	return nil
}

// When steps

func (tc *tankContext) iCreateATankWithCapacityAndFuel(capacity, fuel float64) error {
	tc.tank, tc.err = vehicle.NewTank(vehicle.CapacityOf(capacity), fuel, vehicle.FillPolicyStandard)
	return nil
}

func (tc *tankContext) iCreateATankWithUnknownCapacityAndFuel(fuel float64) error {
	tc.tank, tc.err = vehicle.NewTank(vehicle.UnknownCapacity, fuel, vehicle.FillPolicyStandard)
	return nil
}

func (tc *tankContext) iFillTheTankToFraction(fraction float64) error {
	return tc.fill(vehicle.ToFraction(fraction))
}

func (tc *tankContext) iFillTheTankWithLitres(litres float64) error {
	return tc.fill(vehicle.ByLitres(litres))
}

func (tc *tankContext) iFillTheTankWithLitresAndFraction(litres, fraction float64) error {
	return tc.fill(vehicle.FillRequest{TargetFraction: &fraction, Litres: &litres})
}

func (tc *tankContext) iFillTheTankToFull() error {
	return tc.fill(vehicle.ToFull())
}

func (tc *tankContext) fill(req vehicle.FillRequest) error {
	if tc.tank == nil {
		return fmt.Errorf("no tank available")
	}
	tc.added, tc.fillErr = tc.tank.Fill(req)
	return nil
}

// Then steps

func (tc *tankContext) theTankCreationShouldSucceed() error {
	if tc.err != nil {
		return fmt.Errorf("expected tank creation to succeed, but got error: %v", tc.err)
	}
	if tc.tank == nil {
		return fmt.Errorf("expected tank to be created, but it was nil")
	}
	return nil
}

func (tc *tankContext) theTankCreationShouldFailWith(kind string) error {
	if tc.err == nil {
		return fmt.Errorf("expected tank creation to fail with %s, but it succeeded", kind)
	}
	if got := helpers.ErrorKind(tc.err); got != kind {
		return fmt.Errorf("expected %s, got %s (%v)", kind, got, tc.err)
	}
	return nil
}

func (tc *tankContext) theTankShouldBePercentFilled(expected float64) error {
	return expectFloat("percent filled", expected, tc.tank.PercentFilled())
}

func (tc *tankContext) theFuelAddedShouldBe(expected float64) error {
	if tc.fillErr != nil {
		return fmt.Errorf("expected fill to succeed, but got error: %v", tc.fillErr)
	}
	return expectFloat("fuel added", expected, tc.added)
}

func (tc *tankContext) theTankFuelShouldBe(expected float64) error {
	return expectFloat("tank fuel", expected, tc.tank.Fuel())
}

func (tc *tankContext) theFillShouldFailWith(kind string) error {
	if tc.fillErr == nil {
		return fmt.Errorf("expected fill to fail with %s, but it returned %g", kind, tc.added)
	}
	if got := helpers.ErrorKind(tc.fillErr); got != kind {
		return fmt.Errorf("expected %s, got %s (%v)", kind, got, tc.fillErr)
	}
	return nil
}

func expectFloat(what string, expected, actual float64) error {
	if math.Abs(expected-actual) > 1e-9 {
		return fmt.Errorf("expected %s %g, got %g", what, expected, actual)
	}
	return nil
}

func InitializeTankScenario(ctx *godog.ScenarioContext) {
	tc := &tankContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		tc.reset()
		return ctx, nil
	})

	ctx.Step(`^a tank with capacity `+number+` and fuel `+number+`$`, tc.aTankWithCapacityAndFuel)
	ctx.Step(`^a diesel tank with capacity `+number+` and fuel `+number+`$`, tc.aDieselTankWithCapacityAndFuel)
	ctx.Step(`^a tank with unknown capacity$`, tc.aTankWithUnknownCapacity)

	ctx.Step(`^I create a tank with capacity `+number+` and fuel `+number+`$`, tc.iCreateATankWithCapacityAndFuel)
	ctx.Step(`^I create a tank with unknown capacity and fuel `+number+`$`, tc.iCreateATankWithUnknownCapacityAndFuel)
	ctx.Step(`^I fill the tank to fraction `+number+`$`, tc.iFillTheTankToFraction)
	ctx.Step(`^I fill the tank with `+number+` litres$`, tc.iFillTheTankWithLitres)
	ctx.Step(`^I fill the tank with `+number+` litres and fraction `+number+`$`, tc.iFillTheTankWithLitresAndFraction)
	ctx.Step(`^I fill the tank to full$`, tc.iFillTheTankToFull)

	ctx.Step(`^the tank creation should succeed$`, tc.theTankCreationShouldSucceed)
	ctx.Step(`^the tank creation should fail with "([^"]*)"$`, tc.theTankCreationShouldFailWith)
	ctx.Step(`^the tank should be `+number+` percent filled$`, tc.theTankShouldBePercentFilled)
	ctx.Step(`^the fuel added should be `+number+`$`, tc.theFuelAddedShouldBe)
	ctx.Step(`^the tank fuel should be `+number+`$`, tc.theTankFuelShouldBe)
	ctx.Step(`^the fill should fail with "([^"]*)"$`, tc.theFillShouldFailWith)
}
