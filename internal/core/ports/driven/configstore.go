package driven

// ConfigStore holds application settings under flattened dot keys such
// as "storage.data_dir" or "session.autosave".
type ConfigStore interface {
	// Get returns the raw value and whether the key is present.
	Get(key string) (any, bool)

	// GetString returns "" for a missing or non-string value.
	GetString(key string) string

	// GetBool returns false for a missing or non-bool value.
	GetBool(key string) bool

	// Set stores value under key. Persistent implementations write
	// through before returning.
	Set(key string, value any) error

	// Load rereads the backing storage.
	Load() error

	// Path locates the backing storage for messages.
	Path() string
}
