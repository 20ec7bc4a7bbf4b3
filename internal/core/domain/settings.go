package domain

import "path/filepath"

const unknownDescription = "Unknown"

// Default store file names, relative to the data directory.
const (
	DefaultRoutesFile     = "routes.txt"
	DefaultDeliveriesFile = "deliveries.txt"
)

// StorageSettings locates the flat-file stores.
type StorageSettings struct {
	// DataDir is the directory holding both store files.
	// Empty means the application config directory.
	DataDir string

	// RoutesFile is the city and distance store file name.
	RoutesFile string

	// DeliveriesFile is the delivery ledger store file name.
	DeliveriesFile string
}

// RoutesPath returns the full path of the route store.
func (s StorageSettings) RoutesPath() string {
	return filepath.Join(s.DataDir, s.RoutesFile)
}

// DeliveriesPath returns the full path of the delivery store.
func (s StorageSettings) DeliveriesPath() string {
	return filepath.Join(s.DataDir, s.DeliveriesFile)
}

// SessionSettings controls persistence around a session.
type SessionSettings struct {
	// AutoLoad loads both stores when the application starts.
	AutoLoad bool

	// AutoSave saves both stores after a session that changed data.
	AutoSave bool
}

// AppSettings holds all application settings.
type AppSettings struct {
	// Storage holds store file locations.
	Storage StorageSettings

	// Session holds load/save behaviour.
	Session SessionSettings
}

// DefaultAppSettings returns the settings used when nothing is configured.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Storage: StorageSettings{
			RoutesFile:     DefaultRoutesFile,
			DeliveriesFile: DefaultDeliveriesFile,
		},
		Session: SessionSettings{
			AutoLoad: true,
			AutoSave: true,
		},
	}
}
