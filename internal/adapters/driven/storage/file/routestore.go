package file

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/custodia-labs/fleetbook/internal/core/domain"
	"github.com/custodia-labs/fleetbook/internal/core/ports/driven"
)

// Ensure RouteStore implements the interface.
var _ driven.RouteStore = (*RouteStore)(nil)

// RouteStore keeps the city registry and distance matrix in one text file.
type RouteStore struct {
	mu   sync.Mutex
	path string
}

// NewRouteStore creates a route store backed by the file at path.
func NewRouteStore(path string) *RouteStore {
	return &RouteStore{path: path}
}

// Load reads the network from disk.
func (s *RouteStore) Load(_ context.Context) (*domain.Network, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := openStore(s.path)
	if err != nil {
		return domain.NewNetwork(), err
	}
	if f == nil {
		return domain.NewNetwork(), nil
	}
	defer f.Close()

	n, err := parseRoutes(newLineReader(f))
	if err != nil {
		return domain.NewNetwork(), fmt.Errorf("%s: %w", s.path, err)
	}
	return n, nil
}

func parseRoutes(r *lineReader) (*domain.Network, error) {
	count, err := r.header(domain.MaxCities)
	if err != nil {
		return nil, err
	}

	names := make([]string, count)
	for i := range names {
		if names[i], err = r.next(); err != nil {
			return nil, err
		}
	}

	matrix := make([][]float64, count)
	for i := range matrix {
		if matrix[i], err = r.floats(count); err != nil {
			return nil, err
		}
	}

	n, err := domain.RestoreNetwork(names, matrix)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrCorruptStore, err)
	}
	return n, nil
}

// Save overwrites the file with n.
func (s *RouteStore) Save(_ context.Context, n *domain.Network) error {
	if n == nil {
		n = domain.NewNetwork()
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%d\n", n.Count())
	for _, name := range n.Names() {
		b.WriteString(name)
		b.WriteByte('\n')
	}
	for _, row := range n.Matrix() {
		cells := make([]string, len(row))
		for j, v := range row {
			cells[j] = domain.FormatAmount(v)
		}
		b.WriteString(strings.Join(cells, " "))
		b.WriteByte('\n')
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return writeStore(s.path, []byte(b.String()))
}

// Location returns the file path.
func (s *RouteStore) Location() string {
	return s.path
}
