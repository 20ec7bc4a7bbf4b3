// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// The network, delivery and data services share one Session, which owns
// the domain.Workspace and serialises access to it.
//
// Services are pure Go with no CGO or external dependencies.
package services
