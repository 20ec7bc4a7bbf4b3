package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/custodia-labs/fleetbook/internal/core/domain"
	"github.com/custodia-labs/fleetbook/internal/core/ports/driven"
	"github.com/custodia-labs/fleetbook/internal/core/ports/driving"
	"github.com/custodia-labs/fleetbook/internal/logger"
)

// Ensure DataService implements the interface.
var _ driving.DataService = (*DataService)(nil)

// DataService moves the workspace between the session and its stores.
// A corrupt store never aborts a load: the affected collection is reset
// to empty and the reset is reported.
type DataService struct {
	session    *Session
	routes     driven.RouteStore
	deliveries driven.DeliveryStore
}

// NewDataService creates a new data service.
func NewDataService(session *Session, routes driven.RouteStore, deliveries driven.DeliveryStore) *DataService {
	return &DataService{
		session:    session,
		routes:     routes,
		deliveries: deliveries,
	}
}

// Load replaces the workspace with the contents of both stores. Both
// stores are read before anything is replaced, so a failed read leaves
// the workspace and its unsaved changes untouched.
func (s *DataService) Load(ctx context.Context) (*driving.LoadReport, error) {
	network, routesReset, err := s.readRoutes(ctx)
	if err != nil {
		return nil, err
	}
	ledger, deliveriesReset, err := s.readDeliveries(ctx)
	if err != nil {
		return nil, err
	}

	s.session.mu.Lock()
	s.session.ws.Network = network
	s.session.ws.Ledger = ledger
	s.session.dirty = noPart
	s.session.mu.Unlock()

	logger.Info("loaded %d cities and %d deliveries", network.Count(), ledger.Len())
	return &driving.LoadReport{
		Cities:          network.Count(),
		Deliveries:      ledger.Len(),
		RoutesReset:     routesReset,
		DeliveriesReset: deliveriesReset,
	}, nil
}

// LoadRoutes replaces the city registry and distance matrix. Unsaved
// deliveries stay unsaved.
func (s *DataService) LoadRoutes(ctx context.Context) (*driving.LoadReport, error) {
	network, reset, err := s.readRoutes(ctx)
	if err != nil {
		return nil, err
	}

	s.session.mu.Lock()
	s.session.ws.Network = network
	s.session.dirty &^= routesPart
	deliveries := s.session.ws.Ledger.Len()
	s.session.mu.Unlock()

	return &driving.LoadReport{Cities: network.Count(), Deliveries: deliveries, RoutesReset: reset}, nil
}

// LoadDeliveries replaces the delivery ledger. Unsaved cities and
// distances stay unsaved.
func (s *DataService) LoadDeliveries(ctx context.Context) (*driving.LoadReport, error) {
	ledger, reset, err := s.readDeliveries(ctx)
	if err != nil {
		return nil, err
	}

	s.session.mu.Lock()
	s.session.ws.Ledger = ledger
	s.session.dirty &^= deliveriesPart
	cities := s.session.ws.Network.Count()
	s.session.mu.Unlock()

	return &driving.LoadReport{Cities: cities, Deliveries: ledger.Len(), DeliveriesReset: reset}, nil
}

// readRoutes loads the route store, replacing a corrupt one with an
// empty network.
func (s *DataService) readRoutes(ctx context.Context) (network *domain.Network, reset bool, err error) {
	if s.routes == nil {
		return nil, false, domain.ErrNotImplemented
	}
	network, err = s.routes.Load(ctx)
	if err != nil {
		if !errors.Is(err, domain.ErrCorruptStore) {
			return nil, false, fmt.Errorf("load routes: %w", err)
		}
		logger.Warn("route store %s is corrupt, starting with no cities: %v", s.routes.Location(), err)
		network, reset = nil, true
	}
	if network == nil {
		network = domain.NewNetwork()
	}
	logger.Debug("read %d cities from %s", network.Count(), s.routes.Location())
	return network, reset, nil
}

// readDeliveries loads the delivery store, replacing a corrupt one with
// an empty ledger.
func (s *DataService) readDeliveries(ctx context.Context) (ledger *domain.Ledger, reset bool, err error) {
	if s.deliveries == nil {
		return nil, false, domain.ErrNotImplemented
	}
	ledger, err = s.deliveries.Load(ctx)
	if err != nil {
		if !errors.Is(err, domain.ErrCorruptStore) {
			return nil, false, fmt.Errorf("load deliveries: %w", err)
		}
		logger.Warn("delivery store %s is corrupt, starting with an empty ledger: %v", s.deliveries.Location(), err)
		ledger, reset = nil, true
	}
	if ledger == nil {
		ledger = domain.NewLedger()
	}
	logger.Debug("read %d deliveries from %s", ledger.Len(), s.deliveries.Location())
	return ledger, reset, nil
}

// Save writes both collections to their stores. A collection that was
// written stays clean even when the other one fails.
func (s *DataService) Save(ctx context.Context) error {
	if err := s.SaveRoutes(ctx); err != nil {
		return err
	}
	if err := s.SaveDeliveries(ctx); err != nil {
		return err
	}
	logger.Info("saved data to %s and %s", s.routes.Location(), s.deliveries.Location())
	return nil
}

// SaveRoutes writes the city registry and distance matrix.
func (s *DataService) SaveRoutes(ctx context.Context) error {
	if s.routes == nil {
		return domain.ErrNotImplemented
	}
	s.session.mu.RLock()
	snapshot := s.session.ws.Network.Clone()
	s.session.mu.RUnlock()

	if err := s.routes.Save(ctx, snapshot); err != nil {
		return fmt.Errorf("save routes: %w", err)
	}
	s.session.clean(routesPart)
	return nil
}

// SaveDeliveries writes the delivery ledger.
func (s *DataService) SaveDeliveries(ctx context.Context) error {
	if s.deliveries == nil {
		return domain.ErrNotImplemented
	}
	s.session.mu.RLock()
	snapshot := s.session.ws.Ledger.Clone()
	s.session.mu.RUnlock()

	if err := s.deliveries.Save(ctx, snapshot); err != nil {
		return fmt.Errorf("save deliveries: %w", err)
	}
	s.session.clean(deliveriesPart)
	return nil
}

// Dirty reports unsaved changes.
func (s *DataService) Dirty() bool {
	return s.session.Dirty()
}

// Locations returns where the stores keep their data.
func (s *DataService) Locations() (routes, deliveries string) {
	if s.routes != nil {
		routes = s.routes.Location()
	}
	if s.deliveries != nil {
		deliveries = s.deliveries.Location()
	}
	return routes, deliveries
}
