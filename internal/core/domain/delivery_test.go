package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// colomboKandy returns a two-city network 115 km apart.
func colomboKandy(t *testing.T) *Network {
	t.Helper()
	n := newTestNetwork(t, "Colombo", "Kandy")
	_, err := n.SetDistance(0, 1, 115)
	require.NoError(t, err)
	return n
}

func TestNewDelivery_WorkedExample(t *testing.T) {
	n := colomboKandy(t)

	d, err := NewDelivery(n, DeliveryRequest{Source: 0, Destination: 1, Vehicle: VehicleVan, WeightKg: 500})

	require.NoError(t, err)
	assert.Equal(t, 0, d.Source)
	assert.Equal(t, 1, d.Destination)
	assert.Equal(t, VehicleVan, d.Vehicle)
	assert.Equal(t, 500.0, d.WeightKg)
	assert.Equal(t, 115.0, d.DistanceKm)
	assert.InDelta(t, 3622.5, d.BaseCost, 1e-9)
	assert.Equal(t, "7498.96", FormatAmount(d.CustomerCharge))
}

func TestNewDelivery_Validation(t *testing.T) {
	n := newTestNetwork(t, "Colombo", "Kandy", "Galle")
	_, err := n.SetDistance(0, 1, 115)
	require.NoError(t, err)

	tests := []struct {
		name string
		req  DeliveryRequest
		want error
	}{
		{"same city", DeliveryRequest{Source: 1, Destination: 1, Vehicle: VehicleVan}, ErrInvalidCities},
		{"source out of range", DeliveryRequest{Source: 3, Destination: 1, Vehicle: VehicleVan}, ErrInvalidCities},
		{"destination negative", DeliveryRequest{Source: 0, Destination: -1, Vehicle: VehicleVan}, ErrInvalidCities},
		{"unknown vehicle", DeliveryRequest{Source: 0, Destination: 1, Vehicle: VehicleClass(5)}, ErrUnknownVehicle},
		{"negative weight", DeliveryRequest{Source: 0, Destination: 1, Vehicle: VehicleVan, WeightKg: -1}, ErrInvalidValue},
		{"over capacity", DeliveryRequest{Source: 0, Destination: 1, Vehicle: VehicleVan, WeightKg: 1000.01}, ErrCapacityViolation},
		{"missing route", DeliveryRequest{Source: 0, Destination: 2, Vehicle: VehicleLorry, WeightKg: 10}, ErrMissingRoute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewDelivery(n, tt.req)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestNewDelivery_CapacityBoundary(t *testing.T) {
	n := colomboKandy(t)

	for _, v := range Vehicles() {
		_, err := NewDelivery(n, DeliveryRequest{Source: 0, Destination: 1, Vehicle: v.Class, WeightKg: v.CapacityKg})
		assert.NoError(t, err, v.Name)

		_, err = NewDelivery(n, DeliveryRequest{Source: 0, Destination: 1, Vehicle: v.Class, WeightKg: v.CapacityKg + 1})
		assert.ErrorIs(t, err, ErrCapacityViolation, v.Name)
	}
}

func TestNewDelivery_ZeroDistanceIsMissingRoute(t *testing.T) {
	n := newTestNetwork(t, "A", "B")
	_, err := n.SetDistance(0, 1, 0)
	require.NoError(t, err)

	_, err = NewDelivery(n, DeliveryRequest{Source: 0, Destination: 1, Vehicle: VehicleVan, WeightKg: 1})

	assert.ErrorIs(t, err, ErrMissingRoute)
}

func TestLedger_Append(t *testing.T) {
	l := NewLedger()

	require.NoError(t, l.Append(Delivery{Source: 0, Destination: 1}))

	assert.Equal(t, 1, l.Len())
	assert.Equal(t, []Delivery{{Source: 0, Destination: 1}}, l.Deliveries())
}

func TestLedger_Append_Full(t *testing.T) {
	l := NewLedger()
	for i := 0; i < MaxDeliveries; i++ {
		require.NoError(t, l.Append(Delivery{}))
	}

	err := l.Append(Delivery{})

	assert.ErrorIs(t, err, ErrLedgerFull)
	assert.Equal(t, MaxDeliveries, l.Len())
}

func TestLedger_Deliveries_ReturnsCopy(t *testing.T) {
	l := NewLedger()
	require.NoError(t, l.Append(Delivery{WeightKg: 10}))

	records := l.Deliveries()
	records[0].WeightKg = 99

	assert.Equal(t, 10.0, l.Deliveries()[0].WeightKg)
}

func TestLedger_ReferencesAndShift(t *testing.T) {
	l := NewLedger()
	require.NoError(t, l.Append(Delivery{Source: 0, Destination: 3}))
	require.NoError(t, l.Append(Delivery{Source: 4, Destination: 2}))

	assert.True(t, l.References(0))
	assert.True(t, l.References(2))
	assert.False(t, l.References(1))

	l.ShiftAfterRemoval(1)

	records := l.Deliveries()
	assert.Equal(t, 0, records[0].Source)
	assert.Equal(t, 2, records[0].Destination)
	assert.Equal(t, 3, records[1].Source)
	assert.Equal(t, 1, records[1].Destination)
}

func TestLedger_Summary_Empty(t *testing.T) {
	s := NewLedger().Summary()

	assert.Equal(t, 0, s.Count)
	assert.Equal(t, 0.0, s.TotalDistance)
	assert.Equal(t, 0.0, s.TotalRevenue)
	assert.Equal(t, 0.0, s.TotalProfit)
	assert.Equal(t, 0.0, s.AverageTime)
	assert.Equal(t, 0.0, s.LongestDistance)
	assert.Equal(t, 0.0, s.ShortestDistance)
	assert.Empty(t, s.ByVehicle)
}

func TestLedger_Summary(t *testing.T) {
	l := NewLedger()
	require.NoError(t, l.Append(Delivery{
		Vehicle: VehicleVan, DistanceKm: 100,
		Quote: Quote{CustomerCharge: 1000, Profit: 100, EstimatedTime: 2},
	}))
	require.NoError(t, l.Append(Delivery{
		Vehicle: VehicleLorry, DistanceKm: 50,
		Quote: Quote{CustomerCharge: 500, Profit: 40, EstimatedTime: 1},
	}))
	require.NoError(t, l.Append(Delivery{
		Vehicle: VehicleVan, DistanceKm: 30,
		Quote: Quote{CustomerCharge: 300, Profit: 10, EstimatedTime: 3},
	}))

	s := l.Summary()

	assert.Equal(t, 3, s.Count)
	assert.InDelta(t, 180.0, s.TotalDistance, 1e-9)
	assert.InDelta(t, 1800.0, s.TotalRevenue, 1e-9)
	assert.InDelta(t, 150.0, s.TotalProfit, 1e-9)
	assert.InDelta(t, 2.0, s.AverageTime, 1e-9)
	assert.Equal(t, 100.0, s.LongestDistance)
	assert.Equal(t, 30.0, s.ShortestDistance)
	assert.Equal(t, 2, s.ByVehicle[VehicleVan])
	assert.Equal(t, 1, s.ByVehicle[VehicleLorry])
	assert.Equal(t, 0, s.ByVehicle[VehicleTruck])
}

func TestRestoreLedger(t *testing.T) {
	l, err := RestoreLedger([]Delivery{{Vehicle: VehicleTruck}})
	require.NoError(t, err)
	assert.Equal(t, 1, l.Len())

	_, err = RestoreLedger(make([]Delivery, MaxDeliveries+1))
	assert.ErrorIs(t, err, ErrLedgerFull)

	_, err = RestoreLedger([]Delivery{{Vehicle: VehicleClass(3)}})
	assert.ErrorIs(t, err, ErrUnknownVehicle)
}

func TestNewWorkspace(t *testing.T) {
	ws := NewWorkspace()

	require.NotNil(t, ws.Network)
	require.NotNil(t, ws.Ledger)
	assert.Equal(t, 0, ws.Network.Count())
	assert.Equal(t, 0, ws.Ledger.Len())
}
