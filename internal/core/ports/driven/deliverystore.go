package driven

import (
	"context"

	"github.com/custodia-labs/fleetbook/internal/core/domain"
)

// DeliveryStore persists the delivery ledger.
type DeliveryStore interface {
	// Load reads the stored ledger. Missing and corrupt stores behave as
	// described on RouteStore.Load.
	Load(ctx context.Context) (*domain.Ledger, error)

	// Save replaces the stored ledger with l.
	Save(ctx context.Context, l *domain.Ledger) error

	// Location describes where the store lives, for display.
	Location() string
}
