// Package file provides the TOML-backed configuration store.
//
// Settings live in ~/.fleetbook/config.toml unless another directory is
// given. Keys are exposed in dot notation ("storage.data_dir") and are
// written back as TOML tables.
package file
