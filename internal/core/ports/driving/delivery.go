package driving

import (
	"context"

	"github.com/custodia-labs/fleetbook/internal/core/domain"
)

// DeliveryService prices deliveries and keeps the ledger.
type DeliveryService interface {
	// Estimate prices a request without recording it.
	Estimate(ctx context.Context, req domain.DeliveryRequest) (domain.Delivery, error)

	// QuoteAndRecord prices a request and appends it to the ledger.
	QuoteAndRecord(ctx context.Context, req domain.DeliveryRequest) (domain.Delivery, error)

	// List returns the recorded deliveries in order.
	List(ctx context.Context) ([]domain.Delivery, error)

	// Summary aggregates the ledger.
	Summary(ctx context.Context) (domain.Summary, error)

	// Vehicles returns the fixed vehicle catalog.
	Vehicles() []domain.Vehicle
}
