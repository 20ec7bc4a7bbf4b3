package mcp

import (
	"context"

	"github.com/custodia-labs/fleetbook/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/fleetbook/internal/core/domain"
	"github.com/custodia-labs/fleetbook/internal/core/ports/driving"
	"github.com/custodia-labs/fleetbook/internal/core/services"
)

// mockNetworkService is a mock implementation of driving.NetworkService.
type mockNetworkService struct {
	cities []domain.City
	table  domain.DistanceTable
	err    error
}

func (m *mockNetworkService) AddCity(_ context.Context, _ string) (domain.City, error) {
	return domain.City{}, m.err
}

func (m *mockNetworkService) RenameCity(_ context.Context, _ int, _ string) error {
	return m.err
}

func (m *mockNetworkService) RemoveCity(_ context.Context, _ int) (domain.City, error) {
	return domain.City{}, m.err
}

func (m *mockNetworkService) ListCities(_ context.Context) ([]domain.City, error) {
	return m.cities, m.err
}

func (m *mockNetworkService) SetDistance(_ context.Context, _, _ int, _ float64) (bool, error) {
	return false, m.err
}

func (m *mockNetworkService) GetDistance(_ context.Context, _, _ int) (float64, bool, error) {
	return 0, false, m.err
}

func (m *mockNetworkService) DistanceTable(_ context.Context) (domain.DistanceTable, error) {
	return m.table, m.err
}

// mockDeliveryService is a mock implementation of driving.DeliveryService.
type mockDeliveryService struct {
	delivery   domain.Delivery
	deliveries []domain.Delivery
	summary    domain.Summary
	err        error
}

func (m *mockDeliveryService) Estimate(_ context.Context, _ domain.DeliveryRequest) (domain.Delivery, error) {
	return m.delivery, m.err
}

func (m *mockDeliveryService) QuoteAndRecord(_ context.Context, _ domain.DeliveryRequest) (domain.Delivery, error) {
	return m.delivery, m.err
}

func (m *mockDeliveryService) List(_ context.Context) ([]domain.Delivery, error) {
	return m.deliveries, m.err
}

func (m *mockDeliveryService) Summary(_ context.Context) (domain.Summary, error) {
	return m.summary, m.err
}

func (m *mockDeliveryService) Vehicles() []domain.Vehicle {
	return domain.Vehicles()
}

// mockDataService is a mock implementation of driving.DataService.
type mockDataService struct {
	loads   int
	saves   int
	loadErr error
	saveErr error
}

func (m *mockDataService) Load(_ context.Context) (*driving.LoadReport, error) {
	m.loads++
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return &driving.LoadReport{}, nil
}

func (m *mockDataService) Save(_ context.Context) error {
	m.saves++
	return m.saveErr
}

func (m *mockDataService) LoadRoutes(ctx context.Context) (*driving.LoadReport, error) {
	return m.Load(ctx)
}

func (m *mockDataService) LoadDeliveries(ctx context.Context) (*driving.LoadReport, error) {
	return m.Load(ctx)
}

func (m *mockDataService) SaveRoutes(ctx context.Context) error {
	return m.Save(ctx)
}

func (m *mockDataService) SaveDeliveries(ctx context.Context) error {
	return m.Save(ctx)
}

func (m *mockDataService) Dirty() bool {
	return false
}

func (m *mockDataService) Locations() (routes, deliveries string) {
	return ":memory:", ":memory:"
}

// newRealPorts wires real services over in-memory stores with Colombo
// and Kandy 115 km apart and Galle unconnected.
func newRealPorts(ctx context.Context) (*Ports, error) {
	session := services.NewSession(nil)
	network := services.NewNetworkService(session)
	for _, name := range []string{"Colombo", "Kandy", "Galle"} {
		if _, err := network.AddCity(ctx, name); err != nil {
			return nil, err
		}
	}
	if _, err := network.SetDistance(ctx, 0, 1, 115); err != nil {
		return nil, err
	}
	return &Ports{
		Network:  network,
		Delivery: services.NewDeliveryService(session),
		Data:     services.NewDataService(session, memory.NewRouteStore(), memory.NewDeliveryStore()),
	}, nil
}
