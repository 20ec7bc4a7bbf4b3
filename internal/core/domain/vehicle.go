package domain

import (
	"fmt"
	"strings"
)

// VehicleClass identifies one of the fixed vehicle classes.
// The numeric value is the class's position in the catalog and is what
// the delivery store persists.
type VehicleClass int

// Available vehicle classes.
const (
	VehicleVan VehicleClass = iota
	VehicleTruck
	VehicleLorry
)

// Vehicle describes the operating figures of a vehicle class.
type Vehicle struct {
	// Class is the catalog position of this vehicle.
	Class VehicleClass

	// Name is the display name ("Van", "Truck", "Lorry").
	Name string

	// CapacityKg is the maximum load weight in kilograms.
	CapacityKg float64

	// RatePerKm is the base rate charged per kilometre.
	RatePerKm float64

	// SpeedKmh is the average travel speed in kilometres per hour.
	SpeedKmh float64

	// EfficiencyKmPerL is the fuel efficiency in kilometres per litre.
	EfficiencyKmPerL float64
}

var catalog = [...]Vehicle{
	{Class: VehicleVan, Name: "Van", CapacityKg: 1000, RatePerKm: 30.0, SpeedKmh: 60, EfficiencyKmPerL: 12},
	{Class: VehicleTruck, Name: "Truck", CapacityKg: 5000, RatePerKm: 40.0, SpeedKmh: 50, EfficiencyKmPerL: 6},
	{Class: VehicleLorry, Name: "Lorry", CapacityKg: 10000, RatePerKm: 80.0, SpeedKmh: 45, EfficiencyKmPerL: 4},
}

// Vehicles returns the fixed vehicle catalog in class order.
func Vehicles() []Vehicle {
	out := make([]Vehicle, len(catalog))
	copy(out, catalog[:])
	return out
}

// IsValid returns true if the class is part of the catalog.
func (c VehicleClass) IsValid() bool {
	return c >= 0 && int(c) < len(catalog)
}

// Vehicle returns the catalog entry for the class.
func (c VehicleClass) Vehicle() (Vehicle, error) {
	if !c.IsValid() {
		return Vehicle{}, fmt.Errorf("vehicle class %d: %w", int(c), ErrUnknownVehicle)
	}
	return catalog[c], nil
}

// String returns the display name of the class.
func (c VehicleClass) String() string {
	if !c.IsValid() {
		return unknownDescription
	}
	return catalog[c].Name
}

// ParseVehicleClass resolves a class from its name (case-insensitive)
// or from its 1-based menu number ("1" = Van).
func ParseVehicleClass(s string) (VehicleClass, error) {
	s = strings.TrimSpace(s)
	for _, v := range catalog {
		if strings.EqualFold(v.Name, s) {
			return v.Class, nil
		}
	}
	for _, v := range catalog {
		if s == fmt.Sprint(int(v.Class)+1) {
			return v.Class, nil
		}
	}
	return 0, fmt.Errorf("parse vehicle %q: %w", s, ErrUnknownVehicle)
}
