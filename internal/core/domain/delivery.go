package domain

import (
	"fmt"
	"math"
)

// MaxDeliveries is the number of records the ledger can hold.
const MaxDeliveries = 50

// DeliveryRequest carries the operator's inputs for a new delivery.
type DeliveryRequest struct {
	Source      int
	Destination int
	Vehicle     VehicleClass
	WeightKg    float64
}

// Delivery is an immutable, fully priced delivery record.
type Delivery struct {
	Source      int
	Destination int
	Vehicle     VehicleClass
	WeightKg    float64
	DistanceKm  float64

	Quote
}

// NewDelivery validates req against the network and prices it.
// Checks run in this order: endpoints, vehicle class, weight sign,
// vehicle capacity, route presence.
func NewDelivery(n *Network, req DeliveryRequest) (Delivery, error) {
	if req.Source == req.Destination ||
		n.checkIndex(req.Source) != nil || n.checkIndex(req.Destination) != nil {
		return Delivery{}, fmt.Errorf("delivery %d -> %d: %w", req.Source, req.Destination, ErrInvalidCities)
	}

	v, err := req.Vehicle.Vehicle()
	if err != nil {
		return Delivery{}, fmt.Errorf("delivery: %w", err)
	}

	if req.WeightKg < 0 || math.IsNaN(req.WeightKg) || math.IsInf(req.WeightKg, 0) {
		return Delivery{}, fmt.Errorf("delivery weight %v: %w", req.WeightKg, ErrInvalidValue)
	}
	if req.WeightKg > v.CapacityKg {
		return Delivery{}, fmt.Errorf("delivery weight %v kg on %s (max %v kg): %w",
			req.WeightKg, v.Name, v.CapacityKg, ErrCapacityViolation)
	}

	km, set, err := n.Distance(req.Source, req.Destination)
	if err != nil {
		return Delivery{}, fmt.Errorf("delivery: %w", err)
	}
	if !set || km <= 0 {
		return Delivery{}, fmt.Errorf("delivery %d -> %d: %w", req.Source, req.Destination, ErrMissingRoute)
	}

	return Delivery{
		Source:      req.Source,
		Destination: req.Destination,
		Vehicle:     req.Vehicle,
		WeightKg:    req.WeightKg,
		DistanceKm:  km,
		Quote:       Price(km, v, req.WeightKg),
	}, nil
}

// Ledger is the append-only log of recorded deliveries.
type Ledger struct {
	deliveries []Delivery
}

// NewLedger returns an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{}
}

// RestoreLedger rebuilds a ledger from persisted records.
func RestoreLedger(deliveries []Delivery) (*Ledger, error) {
	if len(deliveries) > MaxDeliveries {
		return nil, fmt.Errorf("restore ledger: %d records: %w", len(deliveries), ErrLedgerFull)
	}
	for i := range deliveries {
		if !deliveries[i].Vehicle.IsValid() {
			return nil, fmt.Errorf("restore ledger: record %d: %w", i, ErrUnknownVehicle)
		}
	}
	l := &Ledger{deliveries: make([]Delivery, len(deliveries))}
	copy(l.deliveries, deliveries)
	return l, nil
}

// Len returns the number of recorded deliveries.
func (l *Ledger) Len() int {
	return len(l.deliveries)
}

// Deliveries returns a copy of the records in the order they were added.
func (l *Ledger) Deliveries() []Delivery {
	out := make([]Delivery, len(l.deliveries))
	copy(out, l.deliveries)
	return out
}

// Clone returns an independent copy of the ledger.
func (l *Ledger) Clone() *Ledger {
	return &Ledger{deliveries: l.Deliveries()}
}

// Append records d at the end of the ledger.
func (l *Ledger) Append(d Delivery) error {
	if len(l.deliveries) >= MaxDeliveries {
		return fmt.Errorf("append delivery: %w", ErrLedgerFull)
	}
	l.deliveries = append(l.deliveries, d)
	return nil
}

// References reports whether any record starts or ends at city.
func (l *Ledger) References(city int) bool {
	for i := range l.deliveries {
		if l.deliveries[i].Source == city || l.deliveries[i].Destination == city {
			return true
		}
	}
	return false
}

// ShiftAfterRemoval moves every city index above removed down by one so
// records keep pointing at the same cities once removed leaves the
// registry. Callers must first make sure no record references removed.
func (l *Ledger) ShiftAfterRemoval(removed int) {
	for i := range l.deliveries {
		d := &l.deliveries[i]
		if d.Source > removed {
			d.Source--
		}
		if d.Destination > removed {
			d.Destination--
		}
	}
}

// Summary aggregates the ledger for reporting.
type Summary struct {
	Count            int
	TotalDistance    float64
	TotalRevenue     float64
	TotalProfit      float64
	AverageTime      float64
	LongestDistance  float64
	ShortestDistance float64
	ByVehicle        map[VehicleClass]int
}

// Summary computes totals over the ledger. An empty ledger yields zeros.
func (l *Ledger) Summary() Summary {
	s := Summary{ByVehicle: make(map[VehicleClass]int)}
	if len(l.deliveries) == 0 {
		return s
	}

	var totalTime float64
	s.ShortestDistance = math.Inf(1)
	for i := range l.deliveries {
		d := &l.deliveries[i]
		s.Count++
		s.TotalDistance += d.DistanceKm
		s.TotalRevenue += d.CustomerCharge
		s.TotalProfit += d.Profit
		totalTime += d.EstimatedTime
		s.LongestDistance = math.Max(s.LongestDistance, d.DistanceKm)
		s.ShortestDistance = math.Min(s.ShortestDistance, d.DistanceKm)
		s.ByVehicle[d.Vehicle]++
	}
	s.AverageTime = totalTime / float64(s.Count)

	return s
}
