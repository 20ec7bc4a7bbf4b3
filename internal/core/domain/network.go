package domain

import (
	"fmt"
	"math"
)

// UnsetDistance marks a city pair with no known distance.
const UnsetDistance = -1.0

// Network is the city registry together with its distance matrix.
// Both are kept in one aggregate so that removing a city and compacting
// the matrix happen in a single call.
//
// Invariants: len(dist) == len(names), every row has len(names) cells,
// dist[i][i] == 0, dist[i][j] == dist[j][i], and unset pairs hold
// UnsetDistance.
type Network struct {
	names []string
	dist  [][]float64
}

// NewNetwork returns an empty network.
func NewNetwork() *Network {
	return &Network{}
}

// RestoreNetwork rebuilds a network from persisted names and matrix rows.
// Negative cells are normalised to UnsetDistance and the diagonal to 0.
// A matrix that is not square over the names or not symmetric is rejected.
func RestoreNetwork(names []string, matrix [][]float64) (*Network, error) {
	if len(names) > MaxCities {
		return nil, fmt.Errorf("restore network: %d cities: %w", len(names), ErrCapacityExceeded)
	}
	if len(matrix) != len(names) {
		return nil, fmt.Errorf("restore network: %d rows for %d cities: %w", len(matrix), len(names), ErrInvalidInput)
	}

	n := &Network{
		names: make([]string, len(names)),
		dist:  make([][]float64, len(names)),
	}
	copy(n.names, names)

	for i, name := range names {
		if err := ValidateCityName(name); err != nil {
			return nil, fmt.Errorf("restore network: city %d: %w", i, err)
		}
		if len(matrix[i]) != len(names) {
			return nil, fmt.Errorf("restore network: row %d has %d cells: %w", i, len(matrix[i]), ErrInvalidInput)
		}
		n.dist[i] = make([]float64, len(names))
		for j, km := range matrix[i] {
			switch {
			case i == j:
				km = 0
			case km < 0:
				km = UnsetDistance
			case math.IsNaN(km) || math.IsInf(km, 0):
				return nil, fmt.Errorf("restore network: cell %d,%d: %w", i, j, ErrInvalidValue)
			}
			n.dist[i][j] = km
		}
	}

	for i := range n.dist {
		for j := i + 1; j < len(n.dist); j++ {
			if n.dist[i][j] != n.dist[j][i] {
				return nil, fmt.Errorf("restore network: cells %d,%d and %d,%d differ: %w", i, j, j, i, ErrInvalidInput)
			}
		}
	}

	return n, nil
}

// Count returns the number of registered cities.
func (n *Network) Count() int {
	return len(n.names)
}

// Cities returns the registry in index order.
func (n *Network) Cities() []City {
	out := make([]City, len(n.names))
	for i, name := range n.names {
		out[i] = City{Index: i, Name: name}
	}
	return out
}

// City returns the city at index.
func (n *Network) City(index int) (City, error) {
	if err := n.checkIndex(index); err != nil {
		return City{}, err
	}
	return City{Index: index, Name: n.names[index]}, nil
}

// Names returns a copy of the city names in index order.
func (n *Network) Names() []string {
	out := make([]string, len(n.names))
	copy(out, n.names)
	return out
}

// Matrix returns a copy of the distance matrix.
func (n *Network) Matrix() [][]float64 {
	out := make([][]float64, len(n.dist))
	for i, row := range n.dist {
		out[i] = make([]float64, len(row))
		copy(out[i], row)
	}
	return out
}

// Clone returns a deep copy of the network.
func (n *Network) Clone() *Network {
	return &Network{names: n.Names(), dist: n.Matrix()}
}

// AddCity appends a city. Duplicate names are allowed.
func (n *Network) AddCity(name string) (City, error) {
	if len(n.names) >= MaxCities {
		return City{}, fmt.Errorf("add city %q: %w", name, ErrCapacityExceeded)
	}
	if err := ValidateCityName(name); err != nil {
		return City{}, fmt.Errorf("add city: %w", err)
	}

	for i := range n.dist {
		n.dist[i] = append(n.dist[i], UnsetDistance)
	}
	row := make([]float64, len(n.names)+1)
	for j := range row {
		row[j] = UnsetDistance
	}
	row[len(n.names)] = 0

	n.names = append(n.names, name)
	n.dist = append(n.dist, row)

	return City{Index: len(n.names) - 1, Name: name}, nil
}

// RenameCity overwrites the name at index. Distances are unaffected.
func (n *Network) RenameCity(index int, name string) error {
	if err := n.checkIndex(index); err != nil {
		return fmt.Errorf("rename city: %w", err)
	}
	if err := ValidateCityName(name); err != nil {
		return fmt.Errorf("rename city: %w", err)
	}
	n.names[index] = name
	return nil
}

// RemoveCity deletes the city at index together with its matrix row and
// column. Later cities shift down by one.
func (n *Network) RemoveCity(index int) (City, error) {
	if err := n.checkIndex(index); err != nil {
		return City{}, fmt.Errorf("remove city: %w", err)
	}
	removed := City{Index: index, Name: n.names[index]}

	n.names = append(n.names[:index], n.names[index+1:]...)
	n.dist = append(n.dist[:index], n.dist[index+1:]...)
	for i, row := range n.dist {
		n.dist[i] = append(row[:index], row[index+1:]...)
	}

	return removed, nil
}

// SetDistance records km between cities i and j in both directions.
// Setting a city's distance to itself changes nothing and reports
// applied == false, whatever km is.
func (n *Network) SetDistance(i, j int, km float64) (applied bool, err error) {
	if err := n.checkIndex(i); err != nil {
		return false, fmt.Errorf("set distance: %w", err)
	}
	if err := n.checkIndex(j); err != nil {
		return false, fmt.Errorf("set distance: %w", err)
	}
	if i == j {
		return false, nil
	}
	if km < 0 || math.IsNaN(km) || math.IsInf(km, 0) {
		return false, fmt.Errorf("set distance %v: %w", km, ErrInvalidValue)
	}

	n.dist[i][j] = km
	n.dist[j][i] = km
	return true, nil
}

// Distance returns the distance between i and j. set is false when the
// pair has no distance recorded.
func (n *Network) Distance(i, j int) (km float64, set bool, err error) {
	if err := n.checkIndex(i); err != nil {
		return 0, false, fmt.Errorf("get distance: %w", err)
	}
	if err := n.checkIndex(j); err != nil {
		return 0, false, fmt.Errorf("get distance: %w", err)
	}
	km = n.dist[i][j]
	if km < 0 {
		return 0, false, nil
	}
	return km, true, nil
}

// DistanceTable is a text projection of the matrix.
type DistanceTable struct {
	// Cities holds the row and column headers.
	Cities []string

	// Cells holds one row per city; "-" marks an unset pair.
	Cells [][]string
}

// DistanceTable renders the matrix with two-decimal cells.
func (n *Network) DistanceTable() DistanceTable {
	t := DistanceTable{
		Cities: n.Names(),
		Cells:  make([][]string, len(n.dist)),
	}
	for i, row := range n.dist {
		t.Cells[i] = make([]string, len(row))
		for j, km := range row {
			if km < 0 {
				t.Cells[i][j] = "-"
				continue
			}
			t.Cells[i][j] = FormatAmount(km)
		}
	}
	return t
}

func (n *Network) checkIndex(index int) error {
	if index < 0 || index >= len(n.names) {
		return fmt.Errorf("index %d not in [0, %d): %w", index, len(n.names), ErrIndexOutOfRange)
	}
	return nil
}
