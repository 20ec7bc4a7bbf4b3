package driving

import "context"

// LoadReport describes the outcome of a load.
type LoadReport struct {
	// Cities is the number of cities now in the registry.
	Cities int

	// Deliveries is the number of records now in the ledger.
	Deliveries int

	// RoutesReset is true when the route store was corrupt and the
	// registry was reset to empty.
	RoutesReset bool

	// DeliveriesReset is true when the delivery store was corrupt and the
	// ledger was reset to empty.
	DeliveriesReset bool
}

// DataService moves the workspace to and from its stores.
// The route and delivery stores load and save independently.
type DataService interface {
	// Load reads both stores into the workspace.
	Load(ctx context.Context) (*LoadReport, error)

	// Save writes both stores from the workspace.
	Save(ctx context.Context) error

	// LoadRoutes replaces the network with the stored one. Unsaved
	// ledger changes stay pending.
	LoadRoutes(ctx context.Context) (*LoadReport, error)

	// LoadDeliveries replaces the ledger with the stored one. Unsaved
	// network changes stay pending.
	LoadDeliveries(ctx context.Context) (*LoadReport, error)

	// SaveRoutes writes the network.
	SaveRoutes(ctx context.Context) error

	// SaveDeliveries writes the ledger.
	SaveDeliveries(ctx context.Context) error

	// Dirty reports whether the workspace changed since the last load or save.
	Dirty() bool

	// Locations returns the route and delivery store locations.
	Locations() (routes, deliveries string)
}
