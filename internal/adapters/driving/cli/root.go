// Package cli implements the restcall command-line interface.
package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/restcall-cli/internal/adapters/driven/auth"
	configfile "github.com/custodia-labs/restcall-cli/internal/adapters/driven/config/file"
	credenv "github.com/custodia-labs/restcall-cli/internal/adapters/driven/credentials/env"
	credfile "github.com/custodia-labs/restcall-cli/internal/adapters/driven/credentials/file"
	"github.com/custodia-labs/restcall-cli/internal/adapters/driven/transport"
	"github.com/custodia-labs/restcall-cli/internal/core/ports/driving"
	"github.com/custodia-labs/restcall-cli/internal/core/services"
	"github.com/custodia-labs/restcall-cli/internal/logger"
)

// envPrefix is the prefix of the credential environment variables.
const envPrefix = "RESTCALL_"

// version is set at build time via ldflags.
var version = "dev"

// Services used by the commands. Execute wires the production adapters;
// tests substitute fakes.
var (
	credentialsService driving.CredentialsService
	callService        driving.CallService
	settingsService    driving.SettingsService
)

// Root persistent flags.
var (
	verbosity   int
	insecureTLS bool
)

// wireDefaults defers production wiring until after flag parsing, so flag
// and config values can shape the transport. Tests leave it unset and run
// rootCmd against injected fakes.
var wireDefaults bool

var rootCmd = &cobra.Command{
	Use:   "restcall",
	Short: "Authenticated HTTP calls against a REST API",
	Long: `restcall authenticates against a REST API and issues authenticated
HTTP requests with the stored session credential.

Credentials resolve from the RESTCALL_HOST, RESTCALL_PORT and
RESTCALL_ACCESS_TOKEN environment variables first, then from the credential
file under ~/.restcall. A 401 response purges the stored credential;
authenticate again to continue.`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		logger.SetLevel(verbosity)
		if wireDefaults {
			return initServices()
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().CountVarP(
		&verbosity, "verbose", "v", "Verbose mode. Can be used multiple times to increase verbosity.")
	rootCmd.PersistentFlags().BoolVarP(
		&insecureTLS, "insecure", "k", false, "Skip TLS certificate verification")
}

// Execute runs the CLI with the production adapters wired in. The returned
// error has already been reported by cobra; callers only exit on it.
func Execute() error {
	wireDefaults = true
	return rootCmd.Execute()
}

// initServices builds the production adapters and the services on top of
// them. Runs after flag parsing so the transport honours --insecure and the
// configured timeout.
func initServices() error {
	configStore, err := configfile.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("open config store: %w", err)
	}
	settingsService = services.NewSettingsService(configStore)

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}
	if insecureTLS {
		settings.Insecure = true
	}

	transportCfg := transport.Config{
		Insecure: settings.Insecure,
		Timeout:  time.Duration(settings.Timeout) * time.Second,
	}

	credentialPath, err := credfile.DefaultPath()
	if err != nil {
		return fmt.Errorf("locate credential file: %w", err)
	}

	credentialsService = services.NewCredentialsService(
		auth.NewPasswordAuthenticator(settings.TokenPath, transport.NewHTTPClient(transportCfg)),
		credenv.NewSource(envPrefix),
		credfile.NewStore(credentialPath),
	)
	callService = services.NewCallService(auth.BearerApplier{}, transport.NewClient(transportCfg))

	return nil
}

// effectiveInsecure reports whether TLS verification is disabled for this
// invocation, by flag or by configuration. Best effort: a missing or
// unreadable settings service means verification stays on.
func effectiveInsecure() bool {
	if insecureTLS {
		return true
	}
	if settingsService == nil {
		return false
	}
	settings, err := settingsService.Get()
	if err != nil {
		return false
	}
	return settings.Insecure
}
