package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestErrors_Existence tests that all error variables exist and are not nil
func TestErrors_Existence(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"ErrInvalidInput", ErrInvalidInput},
		{"ErrNotImplemented", ErrNotImplemented},
		{"ErrIndexOutOfRange", ErrIndexOutOfRange},
		{"ErrCapacityExceeded", ErrCapacityExceeded},
		{"ErrInvalidCityName", ErrInvalidCityName},
		{"ErrInvalidValue", ErrInvalidValue},
		{"ErrCityInUse", ErrCityInUse},
		{"ErrInvalidCities", ErrInvalidCities},
		{"ErrUnknownVehicle", ErrUnknownVehicle},
		{"ErrCapacityViolation", ErrCapacityViolation},
		{"ErrMissingRoute", ErrMissingRoute},
		{"ErrLedgerFull", ErrLedgerFull},
		{"ErrCorruptStore", ErrCorruptStore},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.err)
			assert.NotEmpty(t, tt.err.Error())
		})
	}
}

func TestErrors_Distinct(t *testing.T) {
	assert.False(t, errors.Is(ErrCapacityExceeded, ErrLedgerFull))
	assert.False(t, errors.Is(ErrCapacityViolation, ErrCapacityExceeded))
	assert.False(t, errors.Is(ErrInvalidCities, ErrIndexOutOfRange))
}

func TestErrors_Wrapped(t *testing.T) {
	err := fmt.Errorf("remove city 3: %w", ErrCityInUse)

	assert.True(t, errors.Is(err, ErrCityInUse))
	assert.Equal(t, "remove city 3: city is referenced by recorded deliveries", err.Error())
}
