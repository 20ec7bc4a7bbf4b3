package domain

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// Registry limits.
const (
	// MaxCities is the number of cities the registry can hold.
	MaxCities = 30

	// MaxCityNameLen is the longest accepted city name, in bytes.
	MaxCityNameLen = 49
)

// City is a registry entry. Index is its 0-based position in the
// registry and changes when an earlier city is removed.
type City struct {
	Index int
	Name  string
}

// DisplayIndex returns the 1-based number shown to operators.
func (c City) DisplayIndex() int {
	return c.Index + 1
}

// String returns "N. Name" using the display index.
func (c City) String() string {
	return fmt.Sprintf("%d. %s", c.DisplayIndex(), c.Name)
}

// CityNames is the registry's names in index order.
type CityNames []string

// NameOr returns the name at index, or "#N" with the display number when
// index is not in the registry.
func (c CityNames) NameOr(index int) string {
	if index >= 0 && index < len(c) {
		return c[index]
	}
	return "#" + strconv.Itoa(index+1)
}

// ValidateCityName checks that name is a single non-empty token no longer
// than MaxCityNameLen.
func ValidateCityName(name string) error {
	if name == "" {
		return fmt.Errorf("empty name: %w", ErrInvalidCityName)
	}
	if len(name) > MaxCityNameLen {
		return fmt.Errorf("name longer than %d characters: %w", MaxCityNameLen, ErrInvalidCityName)
	}
	if strings.IndexFunc(name, unicode.IsSpace) >= 0 {
		return fmt.Errorf("name %q contains whitespace: %w", name, ErrInvalidCityName)
	}
	return nil
}
