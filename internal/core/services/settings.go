package services

import (
	"fmt"
	"strings"

	"github.com/custodia-labs/restcall-cli/internal/core/domain"
	"github.com/custodia-labs/restcall-cli/internal/core/ports/driven"
	"github.com/custodia-labs/restcall-cli/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyInsecure  = "insecure"
	keyTimeout   = "timeout"
	keyTokenPath = "auth.token_path"
)

// SettingsService manages tool configuration on top of the config store.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current settings, falling back to defaults for anything
// unset in the store.
func (s *SettingsService) Get() (domain.Settings, error) {
	settings := domain.DefaultSettings()

	if _, ok := s.configStore.Get(keyInsecure); ok {
		settings.Insecure = s.configStore.GetBool(keyInsecure)
	}
	if _, ok := s.configStore.Get(keyTimeout); ok {
		settings.Timeout = s.configStore.GetInt(keyTimeout)
	}
	if _, ok := s.configStore.Get(keyTokenPath); ok {
		settings.TokenPath = s.configStore.GetString(keyTokenPath)
	}

	return settings, nil
}

// SetInsecure toggles TLS certificate verification.
func (s *SettingsService) SetInsecure(insecure bool) error {
	if err := s.configStore.Set(keyInsecure, insecure); err != nil {
		return fmt.Errorf("save insecure: %w", err)
	}
	return nil
}

// SetTimeout sets the per-request timeout in seconds.
func (s *SettingsService) SetTimeout(seconds int) error {
	if seconds < 1 {
		return fmt.Errorf("timeout must be at least 1 second, got %d", seconds)
	}
	if err := s.configStore.Set(keyTimeout, seconds); err != nil {
		return fmt.Errorf("save timeout: %w", err)
	}
	return nil
}

// SetTokenPath sets the token endpoint path.
func (s *SettingsService) SetTokenPath(path string) error {
	if !strings.HasPrefix(path, "/") {
		return fmt.Errorf("%w: %q does not start with \"/\"", domain.ErrInvalidPath, path)
	}
	if err := s.configStore.Set(keyTokenPath, path); err != nil {
		return fmt.Errorf("save token path: %w", err)
	}
	return nil
}

// Path returns the settings file location.
func (s *SettingsService) Path() string {
	return s.configStore.Path()
}
