package mcp

import (
	"github.com/custodia-labs/fleetbook/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Network reads cities and distances.
	Network driving.NetworkService

	// Delivery prices and records deliveries.
	Delivery driving.DeliveryService

	// Data loads the stores at start and saves after each recorded
	// delivery. Optional; without it nothing is persisted.
	Data driving.DataService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Network == nil {
		return ErrMissingNetworkService
	}
	if p.Delivery == nil {
		return ErrMissingDeliveryService
	}
	return nil
}
