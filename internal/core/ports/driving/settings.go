package driving

import "github.com/custodia-labs/restcall-cli/internal/core/domain"

// SettingsService manages tool configuration.
type SettingsService interface {
	// Get retrieves current settings, falling back to defaults for
	// anything unset.
	Get() (domain.Settings, error)

	// SetInsecure toggles TLS certificate verification.
	SetInsecure(insecure bool) error

	// SetTimeout sets the per-request timeout in seconds.
	// Rejects values below 1.
	SetTimeout(seconds int) error

	// SetTokenPath sets the token endpoint path. The path must start
	// with "/".
	SetTokenPath(path string) error

	// Path returns the settings file location.
	Path() string
}
