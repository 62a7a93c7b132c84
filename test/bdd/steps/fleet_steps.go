package steps

import (
	"context"
	"fmt"
	"strconv"

	"github.com/cucumber/godog"
	messages "github.com/cucumber/messages/go/v21"

	"github.com/andrescamacho/carpool-go/internal/domain/fleet"
	"github.com/andrescamacho/carpool-go/internal/domain/vehicle"
	"github.com/andrescamacho/carpool-go/test/helpers"
)

type fleetContext struct {
	generator *fleet.Generator
	vehicles  []*vehicle.Vehicle
	summary   fleet.Summary
	err       error
}

func (fc *fleetContext) reset() {
	fc.generator = nil
	fc.vehicles = nil
	fc.summary = fleet.Summary{}
	fc.err = nil
}

// Given steps

func (fc *fleetContext) aFleetGeneratorSeededWith(seed int) error {
	fc.generator = helpers.NewSeededGenerator(uint64(seed))
	return nil
}

func (fc *fleetContext) theFollowingVehicles(table *godog.Table) error {
	if len(table.Rows) < 2 {
		return fmt.Errorf("table needs a header and at least one row")
	}
	header := table.Rows[0]
	for _, row := range table.Rows[1:] {
		capacity, err := strconv.ParseFloat(cellValue(header, row, "capacity"), 64)
		if err != nil {
			return fmt.Errorf("invalid capacity: %w", err)
		}
		fuel, err := strconv.ParseFloat(cellValue(header, row, "fuel"), 64)
		if err != nil {
			return fmt.Errorf("invalid fuel: %w", err)
		}
		fc.vehicles = append(fc.vehicles,
			helpers.MustVehicle(cellValue(header, row, "brand"), vehicle.FuelTypePetrol, capacity, fuel))
	}
	return nil
}

// When steps

func (fc *fleetContext) iGenerateAFleetOfVehicles(n int) error {
	if fc.generator == nil {
		return fmt.Errorf("no fleet generator available")
	}
	fc.vehicles, fc.err = fc.generator.Generate(n)
	return nil
}

func (fc *fleetContext) iSummarizeTheFleet() error {
	fc.summary = fleet.Summarize(fc.vehicles)
	return nil
}

// Then steps

func (fc *fleetContext) theFleetShouldHaveVehiclesWithDistinctBrands(n int) error {
	if fc.err != nil {
		return fmt.Errorf("expected fleet generation to succeed, got: %v", fc.err)
	}
	if len(fc.vehicles) != n {
		return fmt.Errorf("expected %d vehicles, got %d", n, len(fc.vehicles))
	}
	seen := make(map[string]bool, n)
	for _, v := range fc.vehicles {
		if seen[v.Brand()] {
			return fmt.Errorf("brand %s appears twice", v.Brand())
		}
		seen[v.Brand()] = true
	}
	return nil
}

func (fc *fleetContext) everyVehicleShouldHaveACapacityBetweenInStepsOf(lo, hi, step int) error {
	for _, v := range fc.vehicles {
		litres, known := v.Tank().Capacity().Litres()
		if !known {
			return fmt.Errorf("vehicle %s has unknown capacity", v.Brand())
		}
		capacity := int(litres)
		if capacity < lo || capacity > hi || (capacity-lo)%step != 0 {
			return fmt.Errorf("vehicle %s has capacity %d outside %d..%d step %d", v.Brand(), capacity, lo, hi, step)
		}
	}
	return nil
}

func (fc *fleetContext) everyVehicleShouldHaveLessFuelThanCapacity() error {
	for _, v := range fc.vehicles {
		litres, _ := v.Tank().Capacity().Litres()
		if v.Tank().Fuel() < 0 || v.Tank().Fuel() >= litres {
			return fmt.Errorf("vehicle %s has fuel %g for capacity %g", v.Brand(), v.Tank().Fuel(), litres)
		}
	}
	return nil
}

func (fc *fleetContext) fleetGenerationShouldFailWith(kind string) error {
	if fc.err == nil {
		return fmt.Errorf("expected fleet generation to fail with %s, but it succeeded", kind)
	}
	if got := helpers.ErrorKind(fc.err); got != kind {
		return fmt.Errorf("expected %s, got %s (%v)", kind, got, fc.err)
	}
	return nil
}

func (fc *fleetContext) theFleetSummaryShouldReportVehicles(n int) error {
	if fc.summary.Count != n {
		return fmt.Errorf("expected %d vehicles, got %d", n, fc.summary.Count)
	}
	return nil
}

func (fc *fleetContext) theFleetSummaryTotalCapacityShouldBe(expected float64) error {
	return expectFloat("total capacity", expected, fc.summary.TotalCapacity)
}

func (fc *fleetContext) theFleetSummaryTotalFuelShouldBe(expected float64) error {
	return expectFloat("total fuel", expected, fc.summary.TotalFuel)
}

func (fc *fleetContext) theFleetSummaryMeanFillShouldBePercent(expected float64) error {
	return expectFloat("mean fill", expected, fc.summary.MeanPercentFilled)
}

// cellValue returns the cell of row under the named header column
func cellValue(header, row *messages.PickleTableRow, column string) string {
	for i, cell := range header.Cells {
		if cell.Value == column && i < len(row.Cells) {
			return row.Cells[i].Value
		}
	}
	return ""
}

func InitializeFleetScenario(ctx *godog.ScenarioContext) {
	fc := &fleetContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		fc.reset()
		return ctx, nil
	})

	ctx.Step(`^a fleet generator seeded with (\d+)$`, fc.aFleetGeneratorSeededWith)
	ctx.Step(`^the following vehicles:$`, fc.theFollowingVehicles)

	ctx.Step(`^I generate a fleet of (\d+) vehicles$`, fc.iGenerateAFleetOfVehicles)
	ctx.Step(`^I summarize the fleet$`, fc.iSummarizeTheFleet)

	ctx.Step(`^the fleet should have (\d+) vehicles with distinct brands$`, fc.theFleetShouldHaveVehiclesWithDistinctBrands)
	ctx.Step(`^every vehicle should have a capacity between (\d+) and (\d+) in steps of (\d+)$`, fc.everyVehicleShouldHaveACapacityBetweenInStepsOf)
	ctx.Step(`^every vehicle should have less fuel than capacity$`, fc.everyVehicleShouldHaveLessFuelThanCapacity)
	ctx.Step(`^fleet generation should fail with "([^"]*)"$`, fc.fleetGenerationShouldFailWith)
	ctx.Step(`^the fleet summary should report (\d+) vehicles$`, fc.theFleetSummaryShouldReportVehicles)
	ctx.Step(`^the fleet summary total capacity should be `+number+`$`, fc.theFleetSummaryTotalCapacityShouldBe)
	ctx.Step(`^the fleet summary total fuel should be `+number+`$`, fc.theFleetSummaryTotalFuelShouldBe)
	ctx.Step(`^the fleet summary mean fill should be `+number+` percent$`, fc.theFleetSummaryMeanFillShouldBePercent)
}
