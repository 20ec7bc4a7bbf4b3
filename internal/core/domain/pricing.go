package domain

import "strconv"

// Pricing constants.
const (
	// FuelPrice is the price of one litre of fuel.
	FuelPrice = 310.0

	// ProfitMargin is the share of the base cost added as profit.
	// Fuel is passed through at cost and carries no margin.
	ProfitMargin = 0.25

	// weightSurchargeKg is the weight at which the base cost doubles (1% per 100 kg).
	weightSurchargeKg = 10000.0
)

// Quote holds every figure derived for a route, vehicle and weight.
// Values are full precision; round only for display or persistence.
type Quote struct {
	BaseCost        float64
	FuelUsed        float64
	FuelCost        float64
	OperationalCost float64
	Profit          float64
	CustomerCharge  float64
	EstimatedTime   float64
}

// BaseCost returns distance * rate * (1 + weight/10000).
func BaseCost(distance, rate, weight float64) float64 {
	return distance * rate * (1 + weight/weightSurchargeKg)
}

// FuelUsed returns the litres needed to cover distance, or 0 for a
// non-positive efficiency.
func FuelUsed(distance, efficiency float64) float64 {
	if efficiency <= 0 {
		return 0
	}
	return distance / efficiency
}

// FuelCost returns the cost of the given litres at FuelPrice.
func FuelCost(fuelUsed float64) float64 {
	return fuelUsed * FuelPrice
}

// EstimatedTime returns travel hours for distance at speed, or 0 for a
// non-positive speed.
func EstimatedTime(distance, speed float64) float64 {
	if speed <= 0 {
		return 0
	}
	return distance / speed
}

// Profit returns the margin earned on a base cost.
func Profit(baseCost float64) float64 {
	return baseCost * ProfitMargin
}

// OperationalCost is the cost before profit: base cost plus fuel cost.
func OperationalCost(baseCost, fuelCost float64) float64 {
	return baseCost + fuelCost
}

// CustomerCharge is the amount billed: base cost, fuel cost and profit.
func CustomerCharge(baseCost, fuelCost, profit float64) float64 {
	return baseCost + fuelCost + profit
}

// Price computes the full quote for moving weight kilograms over distance
// kilometres with vehicle v.
func Price(distance float64, v Vehicle, weight float64) Quote {
	base := BaseCost(distance, v.RatePerKm, weight)
	fuel := FuelUsed(distance, v.EfficiencyKmPerL)
	fuelCost := FuelCost(fuel)
	profit := Profit(base)

	return Quote{
		BaseCost:        base,
		FuelUsed:        fuel,
		FuelCost:        fuelCost,
		OperationalCost: OperationalCost(base, fuelCost),
		Profit:          profit,
		CustomerCharge:  CustomerCharge(base, fuelCost, profit),
		EstimatedTime:   EstimatedTime(distance, v.SpeedKmh),
	}
}

// FormatAmount renders a value with two decimals. It is the only place
// figures are rounded.
func FormatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
