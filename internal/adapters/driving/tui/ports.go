// Package tui provides the interactive menu for fleetbook.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/fleetbook/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Network manages cities and distances.
	Network driving.NetworkService

	// Delivery prices and records deliveries.
	Delivery driving.DeliveryService

	// Data saves and loads the stores.
	Data driving.DataService

	// Settings manages application settings. Optional.
	Settings driving.SettingsService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(
	network driving.NetworkService,
	delivery driving.DeliveryService,
	data driving.DataService,
	settings driving.SettingsService,
) *Ports {
	return &Ports{
		Network:  network,
		Delivery: delivery,
		Data:     data,
		Settings: settings,
	}
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil {
		return ErrInvalidPorts
	}
	if p.Network == nil {
		return ErrMissingNetworkService
	}
	if p.Delivery == nil {
		return ErrMissingDeliveryService
	}
	if p.Data == nil {
		return ErrMissingDataService
	}
	return nil
}
