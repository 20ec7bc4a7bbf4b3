// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/fleetbook/internal/core/domain"
	"github.com/custodia-labs/fleetbook/internal/core/ports/driving"
)

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewMenu is the main navigation menu.
	ViewMenu ViewType = iota
	// ViewCities is city management.
	ViewCities
	// ViewDistances is distance management.
	ViewDistances
	// ViewDelivery prices and records a delivery.
	ViewDelivery
	// ViewReports summarises the ledger.
	ViewReports
	// ViewSettings is the settings configuration view.
	ViewSettings
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewMenu:
		return "menu"
	case ViewCities:
		return "cities"
	case ViewDistances:
		return "distances"
	case ViewDelivery:
		return "delivery"
	case ViewReports:
		return "reports"
	case ViewSettings:
		return "settings"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}

// SaveRequested asks the app to write both stores.
type SaveRequested struct{}

// LoadRequested asks the app to reload both stores.
type LoadRequested struct{}

// DataSaved signals a save finished.
type DataSaved struct {
	Err error
}

// DataLoaded signals a load finished.
type DataLoaded struct {
	Report *driving.LoadReport
	Err    error
}

// CitiesLoaded carries the city registry.
type CitiesLoaded struct {
	Cities []domain.City
	Err    error
}

// CityChanged signals a city was added, renamed or removed.
type CityChanged struct {
	Message string
	Err     error
}

// DistancesLoaded carries the distance table.
type DistancesLoaded struct {
	Table domain.DistanceTable
	Err   error
}

// DistanceSet signals a distance update finished.
type DistanceSet struct {
	Message string
	Err     error
}

// QuotePriced carries a priced delivery. Recorded is true once it is in
// the ledger.
type QuotePriced struct {
	Delivery domain.Delivery
	Recorded bool
	Err      error
}

// ReportLoaded carries the ledger summary and records.
type ReportLoaded struct {
	Summary    domain.Summary
	Deliveries []domain.Delivery
	Cities     []domain.City
	Err        error
}

// SettingsLoaded carries the application settings.
type SettingsLoaded struct {
	Settings *domain.AppSettings
	Err      error
}

// SettingsSaved signals a setting was stored.
type SettingsSaved struct {
	Key string
	Err error
}
