package memory

import (
	"sync"

	"github.com/custodia-labs/fleetbook/internal/core/ports/driven"
)

// Ensure ConfigStore implements the interface.
var _ driven.ConfigStore = (*ConfigStore)(nil)

// ConfigStore keeps settings in a map. Nothing is read from or written
// to disk.
type ConfigStore struct {
	mu     sync.RWMutex
	values map[string]any
}

// NewConfigStore creates an empty store, so every setting reads as its
// default.
func NewConfigStore() *ConfigStore {
	return NewConfigStoreFrom(nil)
}

// NewConfigStoreFrom creates a store seeded with a copy of values, keyed
// the way the TOML store flattens them ("session.autosave").
func NewConfigStoreFrom(values map[string]any) *ConfigStore {
	s := &ConfigStore{values: make(map[string]any, len(values))}
	for k, v := range values {
		s.values[k] = v
	}
	return s
}

// Get returns the raw value under key.
func (s *ConfigStore) Get(key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	val, ok := s.values[key]
	return val, ok
}

// GetString returns the value under key, or "" when it is missing or not
// a string.
func (s *ConfigStore) GetString(key string) string {
	return lookup[string](s, key)
}

// GetBool returns the value under key, or false when it is missing or not
// a bool.
func (s *ConfigStore) GetBool(key string) bool {
	return lookup[bool](s, key)
}

func lookup[T any](s *ConfigStore, key string) T {
	var zero T
	val, ok := s.Get(key)
	if !ok {
		return zero
	}
	if typed, ok := val.(T); ok {
		return typed
	}
	return zero
}

// Set replaces the value under key.
func (s *ConfigStore) Set(key string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}

// Load is a no-op.
func (s *ConfigStore) Load() error {
	return nil
}

// Path returns the in-memory marker shared with the other memory stores.
func (s *ConfigStore) Path() string {
	return ":memory:"
}
