package driving

import (
	"context"

	"github.com/custodia-labs/fleetbook/internal/core/domain"
)

// NetworkService maintains the city registry and distance matrix.
type NetworkService interface {
	// AddCity appends a city to the registry.
	AddCity(ctx context.Context, name string) (domain.City, error)

	// RenameCity changes the name of the city at index.
	RenameCity(ctx context.Context, index int, name string) error

	// RemoveCity deletes the city at index and compacts the matrix.
	// Returns domain.ErrCityInUse if recorded deliveries reference it.
	RemoveCity(ctx context.Context, index int) (domain.City, error)

	// ListCities returns the registry in index order.
	ListCities(ctx context.Context) ([]domain.City, error)

	// SetDistance records a distance in both directions. applied is
	// false when i == j, which leaves the matrix unchanged.
	SetDistance(ctx context.Context, i, j int, km float64) (applied bool, err error)

	// GetDistance returns the distance between i and j; set is false
	// when none is recorded.
	GetDistance(ctx context.Context, i, j int) (km float64, set bool, err error)

	// DistanceTable returns a text projection of the matrix.
	DistanceTable(ctx context.Context) (domain.DistanceTable, error)
}
