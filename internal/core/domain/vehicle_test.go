package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVehicles_Catalog(t *testing.T) {
	vehicles := Vehicles()

	require.Len(t, vehicles, 3)
	assert.Equal(t, Vehicle{Class: VehicleVan, Name: "Van", CapacityKg: 1000, RatePerKm: 30, SpeedKmh: 60, EfficiencyKmPerL: 12}, vehicles[0])
	assert.Equal(t, Vehicle{Class: VehicleTruck, Name: "Truck", CapacityKg: 5000, RatePerKm: 40, SpeedKmh: 50, EfficiencyKmPerL: 6}, vehicles[1])
	assert.Equal(t, Vehicle{Class: VehicleLorry, Name: "Lorry", CapacityKg: 10000, RatePerKm: 80, SpeedKmh: 45, EfficiencyKmPerL: 4}, vehicles[2])
}

func TestVehicles_ReturnsCopy(t *testing.T) {
	vehicles := Vehicles()
	vehicles[0].CapacityKg = 1

	v, err := VehicleVan.Vehicle()
	require.NoError(t, err)
	assert.Equal(t, 1000.0, v.CapacityKg)
}

func TestVehicleClass_IsValid(t *testing.T) {
	assert.True(t, VehicleVan.IsValid())
	assert.True(t, VehicleTruck.IsValid())
	assert.True(t, VehicleLorry.IsValid())
	assert.False(t, VehicleClass(-1).IsValid())
	assert.False(t, VehicleClass(3).IsValid())
}

func TestVehicleClass_Vehicle_Unknown(t *testing.T) {
	_, err := VehicleClass(7).Vehicle()

	assert.ErrorIs(t, err, ErrUnknownVehicle)
}

func TestVehicleClass_String(t *testing.T) {
	assert.Equal(t, "Van", VehicleVan.String())
	assert.Equal(t, "Truck", VehicleTruck.String())
	assert.Equal(t, "Lorry", VehicleLorry.String())
	assert.Equal(t, "Unknown", VehicleClass(9).String())
}

func TestParseVehicleClass(t *testing.T) {
	tests := []struct {
		input string
		want  VehicleClass
	}{
		{"Van", VehicleVan},
		{"truck", VehicleTruck},
		{" LORRY ", VehicleLorry},
		{"1", VehicleVan},
		{"2", VehicleTruck},
		{"3", VehicleLorry},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseVehicleClass(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseVehicleClass_Unknown(t *testing.T) {
	for _, input := range []string{"", "bike", "0", "4"} {
		_, err := ParseVehicleClass(input)
		assert.ErrorIs(t, err, ErrUnknownVehicle, input)
	}
}
