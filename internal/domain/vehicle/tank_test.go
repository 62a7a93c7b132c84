package vehicle_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/carpool-go/internal/domain/vehicle"
	"github.com/andrescamacho/carpool-go/test/helpers"
)

func ptr(f float64) *float64 { return &f }

func TestNewTank_Validation(t *testing.T) {
	tests := []struct {
		name     string
		capacity vehicle.Capacity
		fuel     float64
		wantKind string
	}{
		{"capacity and fuel", vehicle.CapacityOf(100), 30, ""},
		{"capacity without fuel", vehicle.CapacityOf(45), 0, ""},
		{"full at creation", vehicle.CapacityOf(45), 45, ""},
		{"unknown capacity", vehicle.UnknownCapacity, 0, ""},
		{"fuel without capacity", vehicle.UnknownCapacity, 10, "ConfigurationError"},
		{"zero capacity", vehicle.CapacityOf(0), 0, "ConfigurationError"},
		{"negative capacity", vehicle.CapacityOf(-20), 0, "ConfigurationError"},
		{"infinite capacity", vehicle.CapacityOf(math.Inf(1)), 0, "ConfigurationError"},
		{"negative fuel", vehicle.CapacityOf(50), -5, "ConfigurationError"},
		{"NaN fuel", vehicle.CapacityOf(50), math.NaN(), "ConfigurationError"},
		{"fuel above capacity", vehicle.CapacityOf(50), 60, "CapacityExceededError"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tank, err := vehicle.NewTank(tt.capacity, tt.fuel, vehicle.FillPolicyStandard)

			if tt.wantKind == "" {
				require.NoError(t, err)
				assert.Equal(t, tt.fuel, tank.Fuel())
				assert.Equal(t, tt.capacity, tank.Capacity())
				return
			}
			require.Error(t, err)
			assert.Nil(t, tank)
			assert.Equal(t, tt.wantKind, helpers.ErrorKind(err))
		})
	}
}

func TestTank_PercentFilled(t *testing.T) {
	tank, err := vehicle.NewTank(vehicle.CapacityOf(100), 30, vehicle.FillPolicyStandard)
	require.NoError(t, err)
	assert.InDelta(t, 30.0, tank.PercentFilled(), 1e-9)
	assert.InDelta(t, 70.0, tank.Room(), 1e-9)
	assert.False(t, tank.IsFull())

	unknown, err := vehicle.NewTank(vehicle.UnknownCapacity, 0, vehicle.FillPolicyStandard)
	require.NoError(t, err)
	assert.Equal(t, 0.0, unknown.PercentFilled())
	assert.Equal(t, 0.0, unknown.Room())
	assert.False(t, unknown.IsFull())
}

func TestTank_Fill(t *testing.T) {
	tests := []struct {
		name      string
		request   vehicle.FillRequest
		wantAdded float64
		wantFuel  float64
		wantKind  string
	}{
		{"fraction below level", vehicle.ToFraction(0.1), 0, 30, ""},
		{"fraction at level", vehicle.ToFraction(0.3), 0, 30, ""},
		{"fraction above level", vehicle.ToFraction(0.5), 20, 50, ""},
		{"fraction full", vehicle.ToFraction(1), 70, 100, ""},
		{"fraction zero", vehicle.ToFraction(0), 0, 30, ""},
		{"fraction negative", vehicle.ToFraction(-0.2), 0, 30, "InvalidArgumentError"},
		{"fraction above one", vehicle.ToFraction(1.5), 0, 30, "InvalidArgumentError"},
		{"fraction NaN", vehicle.ToFraction(math.NaN()), 0, 30, "InvalidArgumentError"},
		{"litres within room", vehicle.ByLitres(20), 20, 50, ""},
		{"litres exactly room", vehicle.ByLitres(70), 70, 100, ""},
		{"litres zero", vehicle.ByLitres(0), 0, 30, ""},
		{"litres overflow", vehicle.ByLitres(80), 0, 30, "CapacityExceededError"},
		{"litres negative", vehicle.ByLitres(-5), 0, 30, "InvalidArgumentError"},
		{"litres infinite", vehicle.ByLitres(math.Inf(1)), 0, 30, "InvalidArgumentError"},
		{"full", vehicle.ToFull(), 70, 100, ""},
		{"both modes", vehicle.FillRequest{TargetFraction: ptr(0.5), Litres: ptr(10)}, 0, 30, "InvalidRequestError"},
		{"both modes with bad values", vehicle.FillRequest{TargetFraction: ptr(-1), Litres: ptr(-1)}, 0, 30, "InvalidRequestError"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			tank, err := vehicle.NewTank(vehicle.CapacityOf(100), 30, vehicle.FillPolicyStandard)
			require.NoError(t, err)

			// Act
			added, err := tank.Fill(tt.request)

			// Assert
			if tt.wantKind == "" {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Equal(t, tt.wantKind, helpers.ErrorKind(err))
			}
			assert.InDelta(t, tt.wantAdded, added, 1e-9)
			assert.InDelta(t, tt.wantFuel, tank.Fuel(), 1e-9)
		})
	}
}

func TestTank_FillOverflowReportsRoom(t *testing.T) {
	tank, err := vehicle.NewTank(vehicle.CapacityOf(100), 30, vehicle.FillPolicyStandard)
	require.NoError(t, err)

	_, err = tank.Fill(vehicle.ByLitres(80))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not sufficient tank capacity")
}

func TestTank_FillToFullIsIdempotent(t *testing.T) {
	tank, err := vehicle.NewTank(vehicle.CapacityOf(60), 15, vehicle.FillPolicyStandard)
	require.NoError(t, err)

	added, err := tank.Fill(vehicle.ToFull())
	require.NoError(t, err)
	assert.Equal(t, 45.0, added)
	assert.True(t, tank.IsFull())

	added, err = tank.Fill(vehicle.ToFull())
	require.NoError(t, err)
	assert.Equal(t, 0.0, added)
	assert.Equal(t, 60.0, tank.Fuel())
}

func TestTank_UnknownCapacityRejectsEveryMode(t *testing.T) {
	requests := []vehicle.FillRequest{
		vehicle.ToFull(),
		vehicle.ToFraction(0.5),
		vehicle.ByLitres(10),
		{TargetFraction: ptr(0.5), Litres: ptr(10)},
	}

	for _, req := range requests {
		tank, err := vehicle.NewTank(vehicle.UnknownCapacity, 0, vehicle.FillPolicyStandard)
		require.NoError(t, err)

		_, err = tank.Fill(req)

		require.Error(t, err)
		assert.Equal(t, "UnknownCapacityError", helpers.ErrorKind(err), "mode %s", req.Mode())
	}
}

func TestTank_UnavailablePolicyRejectsEveryRequest(t *testing.T) {
	requests := []vehicle.FillRequest{
		vehicle.ToFull(),
		vehicle.ToFraction(0.5),
		vehicle.ToFraction(7),
		vehicle.ByLitres(10),
		vehicle.ByLitres(-10),
		{TargetFraction: ptr(0.5), Litres: ptr(10)},
	}

	for _, req := range requests {
		tank, err := vehicle.NewTank(vehicle.CapacityOf(80), 10, vehicle.FillPolicyUnavailable)
		require.NoError(t, err)

		added, err := tank.Fill(req)

		require.Error(t, err)
		assert.Equal(t, "FuelUnavailableError", helpers.ErrorKind(err), "mode %s", req.Mode())
		assert.Equal(t, "diesel fuel not available due to environmental reasons", err.Error())
		assert.Equal(t, 0.0, added)
		assert.Equal(t, 10.0, tank.Fuel())
	}

	unknown, err := vehicle.NewTank(vehicle.UnknownCapacity, 0, vehicle.FillPolicyUnavailable)
	require.NoError(t, err)
	_, err = unknown.Fill(vehicle.ToFull())
	assert.Equal(t, "FuelUnavailableError", helpers.ErrorKind(err))
}

func TestTank_String(t *testing.T) {
	tank, err := vehicle.NewTank(vehicle.CapacityOf(40), 10, vehicle.FillPolicyStandard)
	require.NoError(t, err)
	assert.Equal(t, "Tank(10/40)", tank.String())

	unknown, err := vehicle.NewTank(vehicle.UnknownCapacity, 0, vehicle.FillPolicyStandard)
	require.NoError(t, err)
	assert.Equal(t, "Tank(0/unknown)", unknown.String())
}

func TestCapacityFromPtr(t *testing.T) {
	assert.Equal(t, vehicle.UnknownCapacity, vehicle.CapacityFromPtr(nil))

	c := vehicle.CapacityFromPtr(ptr(35))
	litres, known := c.Litres()
	assert.True(t, known)
	assert.True(t, c.IsKnown())
	assert.Equal(t, 35.0, litres)
}
