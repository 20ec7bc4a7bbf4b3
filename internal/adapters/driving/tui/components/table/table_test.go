package table

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/fleetbook/internal/core/domain"
)

func TestDistances(t *testing.T) {
	dt := domain.DistanceTable{
		Cities: []string{"Colombo", "Kandy"},
		Cells: [][]string{
			{"0.00", "115.00"},
			{"115.00", "0.00"},
		},
	}

	out := Distances(nil, dt)

	assert.Contains(t, out, "1. Colombo")
	assert.Contains(t, out, "2. Kandy")
	assert.Contains(t, out, "115.00")
}

func TestDistances_Unset(t *testing.T) {
	dt := domain.DistanceTable{
		Cities: []string{"Colombo", "Kandy"},
		Cells:  [][]string{{"0.00", "-"}, {"-", "0.00"}},
	}

	assert.Contains(t, Distances(nil, dt), "-")
}

func TestDeliveries(t *testing.T) {
	van, err := domain.VehicleVan.Vehicle()
	assert.NoError(t, err)
	d := domain.Delivery{
		Source:      0,
		Destination: 3,
		Vehicle:     domain.VehicleVan,
		WeightKg:    500,
		DistanceKm:  115,
		Quote:       domain.Price(115, van, 500),
	}

	out := Deliveries(nil, []string{"Colombo", "Kandy"}, []domain.Delivery{d})

	assert.Contains(t, out, "Colombo")
	assert.Contains(t, out, "#4")
	assert.Contains(t, out, "Van")
	assert.Contains(t, out, "7498.96")
	assert.Contains(t, out, "905.62")
	assert.Contains(t, out, "1.92")
}
