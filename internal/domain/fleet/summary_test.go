package fleet_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/carpool-go/internal/domain/fleet"
	"github.com/andrescamacho/carpool-go/internal/domain/vehicle"
	"github.com/andrescamacho/carpool-go/test/helpers"
)

func TestSummarize(t *testing.T) {
	vehicles := []*vehicle.Vehicle{
		helpers.MustVehicle("Fiat", vehicle.FuelTypePetrol, 40, 10),
		helpers.MustVehicle("Opel", vehicle.FuelTypePetrol, 50, 25),
		helpers.MustVehicle("Volvo", vehicle.FuelTypePetrol, 60, 45),
	}

	summary := fleet.Summarize(vehicles)

	assert.Equal(t, 3, summary.Count)
	assert.Equal(t, 3, summary.Measured)
	assert.InDelta(t, 150.0, summary.TotalCapacity, 1e-9)
	assert.InDelta(t, 80.0, summary.TotalFuel, 1e-9)
	assert.InDelta(t, 50.0, summary.MeanPercentFilled, 1e-9)
	assert.InDelta(t, 25.0, summary.StdDevPercentFilled, 1e-9)
}

func TestSummarize_SkipsUnknownCapacity(t *testing.T) {
	unknown, err := vehicle.NewVehicle("Lada", vehicle.FuelTypePetrol, vehicle.UnknownCapacity, 0)
	require.NoError(t, err)

	summary := fleet.Summarize([]*vehicle.Vehicle{
		unknown,
		helpers.MustVehicle("Fiat", vehicle.FuelTypePetrol, 40, 10),
	})

	assert.Equal(t, 2, summary.Count)
	assert.Equal(t, 1, summary.Measured)
	assert.Equal(t, 40.0, summary.TotalCapacity)
	assert.Equal(t, 25.0, summary.MeanPercentFilled)
	assert.Zero(t, summary.StdDevPercentFilled)
}

func TestSummarize_Empty(t *testing.T) {
	assert.Equal(t, fleet.Summary{}, fleet.Summarize(nil))
}
