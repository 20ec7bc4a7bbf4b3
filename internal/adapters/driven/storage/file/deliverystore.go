package file

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/custodia-labs/fleetbook/internal/core/domain"
	"github.com/custodia-labs/fleetbook/internal/core/ports/driven"
)

// Ensure DeliveryStore implements the interface.
var _ driven.DeliveryStore = (*DeliveryStore)(nil)

// deliveryFields is the number of values on a delivery line.
const deliveryFields = 12

// DeliveryStore keeps the delivery ledger in one text file.
type DeliveryStore struct {
	mu   sync.Mutex
	path string
}

// NewDeliveryStore creates a delivery store backed by the file at path.
func NewDeliveryStore(path string) *DeliveryStore {
	return &DeliveryStore{path: path}
}

// Load reads the ledger from disk.
func (s *DeliveryStore) Load(_ context.Context) (*domain.Ledger, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := openStore(s.path)
	if err != nil {
		return domain.NewLedger(), err
	}
	if f == nil {
		return domain.NewLedger(), nil
	}
	defer f.Close()

	l, err := parseDeliveries(newLineReader(f))
	if err != nil {
		return domain.NewLedger(), fmt.Errorf("%s: %w", s.path, err)
	}
	return l, nil
}

func parseDeliveries(r *lineReader) (*domain.Ledger, error) {
	count, err := r.header(domain.MaxDeliveries)
	if err != nil {
		return nil, err
	}

	records := make([]domain.Delivery, count)
	for i := range records {
		v, err := r.floats(deliveryFields)
		if err != nil {
			return nil, err
		}
		for k := 0; k < 3; k++ {
			if v[k] != float64(int(v[k])) || v[k] < 0 {
				return nil, corruptf("line %d: field %d must be a non-negative integer", r.line, k+1)
			}
		}
		records[i] = domain.Delivery{
			Source:      int(v[0]),
			Destination: int(v[1]),
			Vehicle:     domain.VehicleClass(int(v[2])),
			WeightKg:    v[3],
			DistanceKm:  v[4],
			Quote: domain.Quote{
				BaseCost:        v[5],
				FuelUsed:        v[6],
				FuelCost:        v[7],
				OperationalCost: v[8],
				Profit:          v[9],
				CustomerCharge:  v[10],
				EstimatedTime:   v[11],
			},
		}
	}

	l, err := domain.RestoreLedger(records)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrCorruptStore, err)
	}
	return l, nil
}

// Save overwrites the file with l.
func (s *DeliveryStore) Save(_ context.Context, l *domain.Ledger) error {
	if l == nil {
		l = domain.NewLedger()
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%d\n", l.Len())
	for _, d := range l.Deliveries() {
		fmt.Fprintf(&b, "%d %d %d", d.Source, d.Destination, int(d.Vehicle))
		for _, v := range []float64{
			d.WeightKg, d.DistanceKm, d.BaseCost, d.FuelUsed, d.FuelCost,
			d.OperationalCost, d.Profit, d.CustomerCharge, d.EstimatedTime,
		} {
			b.WriteByte(' ')
			b.WriteString(domain.FormatAmount(v))
		}
		b.WriteByte('\n')
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return writeStore(s.path, []byte(b.String()))
}

// Location returns the file path.
func (s *DeliveryStore) Location() string {
	return s.path
}
