package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotImplemented indicates a required adapter has not been wired.
	ErrNotImplemented = errors.New("not implemented")

	// City Registry and Distance Matrix Errors.

	// ErrIndexOutOfRange indicates a city index outside the current registry.
	ErrIndexOutOfRange = errors.New("city index out of range")

	// ErrCapacityExceeded indicates the city registry already holds MaxCities entries.
	ErrCapacityExceeded = errors.New("city capacity exceeded")

	// ErrInvalidCityName indicates an empty, over-long or whitespace-bearing city name.
	ErrInvalidCityName = errors.New("invalid city name")

	// ErrInvalidValue indicates a negative or non-finite numeric input.
	ErrInvalidValue = errors.New("invalid value")

	// ErrCityInUse indicates a city cannot be removed because recorded deliveries reference it.
	ErrCityInUse = errors.New("city is referenced by recorded deliveries")

	// Delivery Errors.

	// ErrInvalidCities indicates delivery endpoints that are equal or out of range.
	ErrInvalidCities = errors.New("invalid source or destination city")

	// ErrUnknownVehicle indicates a vehicle class outside the fixed catalog.
	ErrUnknownVehicle = errors.New("unknown vehicle class")

	// ErrCapacityViolation indicates a delivery weight above the vehicle's capacity.
	ErrCapacityViolation = errors.New("weight exceeds vehicle capacity")

	// ErrMissingRoute indicates no distance is set between the chosen cities.
	ErrMissingRoute = errors.New("no distance set between cities")

	// ErrLedgerFull indicates the ledger already holds MaxDeliveries records.
	ErrLedgerFull = errors.New("delivery ledger is full")

	// Persistence Errors.

	// ErrCorruptStore indicates a persisted store whose header or body could not be read.
	// Loaders recover from it by resetting the affected collection to empty.
	ErrCorruptStore = errors.New("corrupt store")
)
