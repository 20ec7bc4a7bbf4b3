package memory

import (
	"context"
	"sync"

	"github.com/custodia-labs/fleetbook/internal/core/domain"
	"github.com/custodia-labs/fleetbook/internal/core/ports/driven"
)

// Ensure DeliveryStore implements the interface.
var _ driven.DeliveryStore = (*DeliveryStore)(nil)

// DeliveryStore is an in-memory implementation of driven.DeliveryStore.
type DeliveryStore struct {
	mu     sync.RWMutex
	ledger *domain.Ledger
}

// NewDeliveryStore creates a new, empty in-memory delivery store.
func NewDeliveryStore() *DeliveryStore {
	return &DeliveryStore{}
}

// Load returns a copy of the saved ledger, or an empty one.
func (s *DeliveryStore) Load(_ context.Context) (*domain.Ledger, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.ledger == nil {
		return domain.NewLedger(), nil
	}
	return s.ledger.Clone(), nil
}

// Save keeps a copy of l.
func (s *DeliveryStore) Save(_ context.Context, l *domain.Ledger) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if l == nil {
		s.ledger = nil
		return nil
	}
	s.ledger = l.Clone()
	return nil
}

// Location returns a marker for the in-memory store.
func (s *DeliveryStore) Location() string {
	return ":memory:"
}
