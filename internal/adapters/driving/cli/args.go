package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/custodia-labs/fleetbook/internal/core/domain"
)

// parseCityIndex converts a 1-based index argument to the 0-based index
// the services expect.
func parseCityIndex(arg string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil || n < 1 {
		return 0, fmt.Errorf("invalid city number %q: %w", arg, domain.ErrIndexOutOfRange)
	}
	return n - 1, nil
}

// parseAmount parses a non-negative decimal argument.
func parseAmount(what, arg string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(arg), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", what, arg, domain.ErrInvalidValue)
	}
	return v, nil
}

// cityNames returns the registry names for labelling output.
func cityNames(ctx context.Context) (domain.CityNames, error) {
	cities, err := networkService.ListCities(ctx)
	if err != nil {
		return nil, err
	}
	names := make(domain.CityNames, len(cities))
	for i, c := range cities {
		names[i] = c.Name
	}
	return names, nil
}
