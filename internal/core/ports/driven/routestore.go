package driven

import (
	"context"

	"github.com/custodia-labs/fleetbook/internal/core/domain"
)

// RouteStore persists the city registry and distance matrix as one unit.
type RouteStore interface {
	// Load reads the stored network. A store that does not exist yet
	// yields an empty network and no error. A store that cannot be read
	// yields an empty network and an error wrapping domain.ErrCorruptStore.
	Load(ctx context.Context) (*domain.Network, error)

	// Save replaces the stored network with n.
	Save(ctx context.Context, n *domain.Network) error

	// Location describes where the store lives, for display.
	Location() string
}
