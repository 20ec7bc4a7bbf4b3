package tui

import "errors"

// ErrMissingNetworkService is returned when the network service is not provided.
var ErrMissingNetworkService = errors.New("tui: network service is required")

// ErrMissingDeliveryService is returned when the delivery service is not provided.
var ErrMissingDeliveryService = errors.New("tui: delivery service is required")

// ErrMissingDataService is returned when the data service is not provided.
var ErrMissingDataService = errors.New("tui: data service is required")

// ErrInvalidPorts is returned when ports validation fails.
var ErrInvalidPorts = errors.New("tui: invalid ports configuration")
