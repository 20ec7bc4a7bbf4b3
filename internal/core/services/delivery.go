package services

import (
	"context"

	"github.com/custodia-labs/fleetbook/internal/core/domain"
	"github.com/custodia-labs/fleetbook/internal/core/ports/driving"
	"github.com/custodia-labs/fleetbook/internal/logger"
)

// Ensure DeliveryService implements the interface.
var _ driving.DeliveryService = (*DeliveryService)(nil)

// DeliveryService prices deliveries and keeps the ledger.
type DeliveryService struct {
	session *Session
}

// NewDeliveryService creates a new delivery service over session.
func NewDeliveryService(session *Session) *DeliveryService {
	return &DeliveryService{session: session}
}

// Estimate prices a request without recording it.
func (s *DeliveryService) Estimate(_ context.Context, req domain.DeliveryRequest) (domain.Delivery, error) {
	var d domain.Delivery
	err := s.session.read(func(ws *domain.Workspace) error {
		var err error
		d, err = domain.NewDelivery(ws.Network, req)
		return err
	})
	return d, err
}

// QuoteAndRecord prices a request and appends it to the ledger. A full
// ledger is reported only after the request itself has been validated.
func (s *DeliveryService) QuoteAndRecord(_ context.Context, req domain.DeliveryRequest) (domain.Delivery, error) {
	var d domain.Delivery
	err := s.session.write(func(ws *domain.Workspace) (part, error) {
		var err error
		if d, err = domain.NewDelivery(ws.Network, req); err != nil {
			return noPart, err
		}
		if err := ws.Ledger.Append(d); err != nil {
			return noPart, err
		}
		return deliveriesPart, nil
	})
	if err != nil {
		return domain.Delivery{}, err
	}
	logger.Debug("recorded delivery %d -> %d by %s, charge %s",
		d.Source, d.Destination, d.Vehicle, domain.FormatAmount(d.CustomerCharge))
	return d, nil
}

// List returns the recorded deliveries in order.
func (s *DeliveryService) List(_ context.Context) ([]domain.Delivery, error) {
	var out []domain.Delivery
	err := s.session.read(func(ws *domain.Workspace) error {
		out = ws.Ledger.Deliveries()
		return nil
	})
	return out, err
}

// Summary aggregates the ledger.
func (s *DeliveryService) Summary(_ context.Context) (domain.Summary, error) {
	var sum domain.Summary
	err := s.session.read(func(ws *domain.Workspace) error {
		sum = ws.Ledger.Summary()
		return nil
	})
	return sum, err
}

// Vehicles returns the fixed vehicle catalog.
func (s *DeliveryService) Vehicles() []domain.Vehicle {
	return domain.Vehicles()
}
