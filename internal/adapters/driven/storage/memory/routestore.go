package memory

import (
	"context"
	"sync"

	"github.com/custodia-labs/fleetbook/internal/core/domain"
	"github.com/custodia-labs/fleetbook/internal/core/ports/driven"
)

// Ensure RouteStore implements the interface.
var _ driven.RouteStore = (*RouteStore)(nil)

// RouteStore is an in-memory implementation of driven.RouteStore.
// It keeps a private copy of the last saved network.
type RouteStore struct {
	mu      sync.RWMutex
	network *domain.Network
}

// NewRouteStore creates a new, empty in-memory route store.
func NewRouteStore() *RouteStore {
	return &RouteStore{}
}

// Load returns a copy of the saved network, or an empty one.
func (s *RouteStore) Load(_ context.Context) (*domain.Network, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.network == nil {
		return domain.NewNetwork(), nil
	}
	return s.network.Clone(), nil
}

// Save keeps a copy of n.
func (s *RouteStore) Save(_ context.Context, n *domain.Network) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if n == nil {
		s.network = nil
		return nil
	}
	s.network = n.Clone()
	return nil
}

// Location returns a marker for the in-memory store.
func (s *RouteStore) Location() string {
	return ":memory:"
}
