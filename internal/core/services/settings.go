package services

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/custodia-labs/fleetbook/internal/core/domain"
	"github.com/custodia-labs/fleetbook/internal/core/ports/driven"
	"github.com/custodia-labs/fleetbook/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyDataDir        = "storage.data_dir"
	keyRoutesFile     = "storage.routes_file"
	keyDeliveriesFile = "storage.deliveries_file"
	keyAutoLoad       = "session.autoload"
	keyAutoSave       = "session.autosave"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	if s.configStore == nil {
		return nil, domain.ErrNotImplemented
	}
	defaults := domain.DefaultAppSettings()

	return &domain.AppSettings{
		Storage: domain.StorageSettings{
			DataDir:        s.configStore.GetString(keyDataDir), // empty means the config directory
			RoutesFile:     s.getString(keyRoutesFile, defaults.Storage.RoutesFile),
			DeliveriesFile: s.getString(keyDeliveriesFile, defaults.Storage.DeliveriesFile),
		},
		Session: domain.SessionSettings{
			AutoLoad: s.getBool(keyAutoLoad, defaults.Session.AutoLoad),
			AutoSave: s.getBool(keyAutoSave, defaults.Session.AutoSave),
		},
	}, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if s.configStore == nil {
		return domain.ErrNotImplemented
	}
	if settings == nil {
		return fmt.Errorf("save settings: %w", domain.ErrInvalidInput)
	}
	if err := s.configStore.Set(keyDataDir, settings.Storage.DataDir); err != nil {
		return fmt.Errorf("save data_dir: %w", err)
	}
	if err := s.configStore.Set(keyRoutesFile, settings.Storage.RoutesFile); err != nil {
		return fmt.Errorf("save routes_file: %w", err)
	}
	if err := s.configStore.Set(keyDeliveriesFile, settings.Storage.DeliveriesFile); err != nil {
		return fmt.Errorf("save deliveries_file: %w", err)
	}
	if err := s.configStore.Set(keyAutoLoad, settings.Session.AutoLoad); err != nil {
		return fmt.Errorf("save autoload: %w", err)
	}
	if err := s.configStore.Set(keyAutoSave, settings.Session.AutoSave); err != nil {
		return fmt.Errorf("save autosave: %w", err)
	}
	return nil
}

// Set updates a single setting from its text form.
func (s *SettingsService) Set(key, value string) error {
	if s.configStore == nil {
		return domain.ErrNotImplemented
	}
	switch key {
	case keyDataDir:
		return s.configStore.Set(key, strings.TrimSpace(value))
	case keyRoutesFile, keyDeliveriesFile:
		name := strings.TrimSpace(value)
		if name == "" || strings.ContainsAny(name, `/\`) {
			return fmt.Errorf("%s must be a plain file name: %w", key, domain.ErrInvalidInput)
		}
		return s.configStore.Set(key, name)
	case keyAutoLoad, keyAutoSave:
		b, err := strconv.ParseBool(strings.TrimSpace(value))
		if err != nil {
			return fmt.Errorf("%s must be true or false: %w", key, domain.ErrInvalidInput)
		}
		return s.configStore.Set(key, b)
	default:
		return fmt.Errorf("unknown setting %q: %w", key, domain.ErrInvalidInput)
	}
}

// Keys returns the settable keys in display order.
func (s *SettingsService) Keys() []string {
	return []string{keyDataDir, keyRoutesFile, keyDeliveriesFile, keyAutoLoad, keyAutoSave}
}

// GetDefaults returns the default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

func (s *SettingsService) getString(key, defaultVal string) string {
	if v := s.configStore.GetString(key); v != "" {
		return v
	}
	return defaultVal
}

// getBool falls back to defaultVal only when the key is absent, so an
// explicit false survives.
func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	if _, ok := s.configStore.Get(key); !ok {
		return defaultVal
	}
	return s.configStore.GetBool(key)
}
