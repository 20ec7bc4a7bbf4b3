package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrors_AreDistinct(t *testing.T) {
	errs := []error{
		ErrMissingNetworkService,
		ErrMissingDeliveryService,
		ErrMissingDataService,
		ErrInvalidPorts,
	}

	seen := make(map[string]bool)
	for _, err := range errs {
		msg := err.Error()
		assert.False(t, seen[msg], "duplicate error message: %s", msg)
		seen[msg] = true
	}
}

func TestErrMissingNetworkService_Message(t *testing.T) {
	assert.Contains(t, ErrMissingNetworkService.Error(), "network service")
}

func TestErrMissingDeliveryService_Message(t *testing.T) {
	assert.Contains(t, ErrMissingDeliveryService.Error(), "delivery service")
}

func TestErrMissingDataService_Message(t *testing.T) {
	assert.Contains(t, ErrMissingDataService.Error(), "data service")
}

func TestErrInvalidPorts_Message(t *testing.T) {
	assert.Contains(t, ErrInvalidPorts.Error(), "invalid ports")
}
