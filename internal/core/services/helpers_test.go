package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/fleetbook/internal/core/domain"
)

// newTestSession returns a session with the named cities and no distances.
func newTestSession(t *testing.T, names ...string) *Session {
	t.Helper()
	ws := domain.NewWorkspace()
	for _, name := range names {
		_, err := ws.Network.AddCity(name)
		require.NoError(t, err)
	}
	return NewSession(ws)
}

// stubRouteStore returns fixed results.
type stubRouteStore struct {
	network *domain.Network
	err     error
	saved   *domain.Network
}

func (s *stubRouteStore) Load(_ context.Context) (*domain.Network, error) {
	return s.network, s.err
}

func (s *stubRouteStore) Save(_ context.Context, n *domain.Network) error {
	s.saved = n
	return s.err
}

func (s *stubRouteStore) Location() string { return "stub-routes" }

// stubDeliveryStore returns fixed results.
type stubDeliveryStore struct {
	ledger *domain.Ledger
	err    error
	saved  *domain.Ledger
}

func (s *stubDeliveryStore) Load(_ context.Context) (*domain.Ledger, error) {
	return s.ledger, s.err
}

func (s *stubDeliveryStore) Save(_ context.Context, l *domain.Ledger) error {
	s.saved = l
	return s.err
}

func (s *stubDeliveryStore) Location() string { return "stub-deliveries" }
