// Package driving defines interfaces that external actors (TUI, CLI, MCP)
// use to interact with core services. These are the "driving" ports in
// hexagonal architecture terminology - they drive the application.
//
// All city indices crossing these interfaces are 0-based. Converting
// from the 1-based numbers shown to operators is the caller's job.
//
// Implementations of these interfaces live in internal/core/services.
package driving
