package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/fleetbook/internal/core/domain"
	"github.com/custodia-labs/fleetbook/internal/core/ports/driving"
	"github.com/custodia-labs/fleetbook/internal/logger"
)

// Ensure NetworkService implements the interface.
var _ driving.NetworkService = (*NetworkService)(nil)

// NetworkService maintains the city registry and distance matrix.
type NetworkService struct {
	session *Session
}

// NewNetworkService creates a new network service over session.
func NewNetworkService(session *Session) *NetworkService {
	return &NetworkService{session: session}
}

// AddCity appends a city to the registry.
func (s *NetworkService) AddCity(_ context.Context, name string) (domain.City, error) {
	var city domain.City
	err := s.session.write(func(ws *domain.Workspace) (part, error) {
		var err error
		if city, err = ws.Network.AddCity(name); err != nil {
			return noPart, err
		}
		return routesPart, nil
	})
	if err != nil {
		return domain.City{}, err
	}
	logger.Debug("added city %s", city)
	return city, nil
}

// RenameCity changes the name of the city at index.
func (s *NetworkService) RenameCity(_ context.Context, index int, name string) error {
	err := s.session.write(func(ws *domain.Workspace) (part, error) {
		if err := ws.Network.RenameCity(index, name); err != nil {
			return noPart, err
		}
		return routesPart, nil
	})
	if err != nil {
		return err
	}
	logger.Debug("renamed city %d to %s", index, name)
	return nil
}

// RemoveCity deletes the city at index. Removal is refused while recorded
// deliveries reference the city; records pointing at later cities are
// re-indexed along with the registry.
func (s *NetworkService) RemoveCity(_ context.Context, index int) (domain.City, error) {
	var removed domain.City
	err := s.session.write(func(ws *domain.Workspace) (part, error) {
		city, err := ws.Network.City(index)
		if err != nil {
			return noPart, fmt.Errorf("remove city: %w", err)
		}
		if ws.Ledger.References(index) {
			return noPart, fmt.Errorf("remove city %q: %w", city.Name, domain.ErrCityInUse)
		}
		if removed, err = ws.Network.RemoveCity(index); err != nil {
			return noPart, err
		}
		if ws.Ledger.Len() == 0 {
			return routesPart, nil
		}
		ws.Ledger.ShiftAfterRemoval(index)
		return allParts, nil
	})
	if err != nil {
		return domain.City{}, err
	}
	logger.Debug("removed city %s", removed)
	return removed, nil
}

// ListCities returns the registry in index order.
func (s *NetworkService) ListCities(_ context.Context) ([]domain.City, error) {
	var cities []domain.City
	err := s.session.read(func(ws *domain.Workspace) error {
		cities = ws.Network.Cities()
		return nil
	})
	return cities, err
}

// SetDistance records a distance in both directions.
func (s *NetworkService) SetDistance(_ context.Context, i, j int, km float64) (bool, error) {
	var applied bool
	err := s.session.write(func(ws *domain.Workspace) (part, error) {
		var err error
		if applied, err = ws.Network.SetDistance(i, j, km); err != nil || !applied {
			return noPart, err
		}
		return routesPart, nil
	})
	if err != nil {
		return false, err
	}
	if applied {
		logger.Debug("set distance %d <-> %d = %s km", i, j, domain.FormatAmount(km))
	}
	return applied, nil
}

// GetDistance returns the distance between i and j.
func (s *NetworkService) GetDistance(_ context.Context, i, j int) (float64, bool, error) {
	var (
		km  float64
		set bool
	)
	err := s.session.read(func(ws *domain.Workspace) error {
		var err error
		km, set, err = ws.Network.Distance(i, j)
		return err
	})
	return km, set, err
}

// DistanceTable returns a text projection of the matrix.
func (s *NetworkService) DistanceTable(_ context.Context) (domain.DistanceTable, error) {
	var table domain.DistanceTable
	err := s.session.read(func(ws *domain.Workspace) error {
		table = ws.Network.DistanceTable()
		return nil
	})
	return table, err
}
