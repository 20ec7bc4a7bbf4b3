// Package domain defines the core business entities for fleetbook.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Network: the city registry and its symmetric distance matrix
//   - Vehicle: one of the three fixed vehicle classes
//   - Delivery: an immutable, fully priced delivery record
//   - Ledger: the capacity-bounded log of deliveries
//   - Workspace: the process-wide state handed between services
//
// The pricing formulas live here as pure functions so every adapter
// prices a route the same way.
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
