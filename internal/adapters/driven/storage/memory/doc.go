// Package memory provides in-memory implementations of the driven store
// ports. They back tests and --in-memory sessions, where nothing is
// written to disk.
package memory
