package domain

// Default tool configuration values.
const (
	// DefaultTimeoutSeconds bounds each request unless configured otherwise.
	DefaultTimeoutSeconds = 30

	// DefaultTokenPath is the token endpoint path on the target host.
	DefaultTokenPath = "/auth/token"
)

// Settings holds tool configuration, as opposed to the session credential.
// Settings survive a credential purge.
type Settings struct {
	// Insecure disables TLS certificate verification for every request.
	Insecure bool

	// Timeout is the per-request timeout in seconds.
	Timeout int

	// TokenPath is the path of the token endpoint on the target host.
	TokenPath string
}

// DefaultSettings returns the default tool configuration.
func DefaultSettings() Settings {
	return Settings{
		Insecure:  false,
		Timeout:   DefaultTimeoutSeconds,
		TokenPath: DefaultTokenPath,
	}
}
