// Package driving defines interfaces that external actors (the CLI) use
// to interact with core services. These are the "driving" ports in hexagonal
// architecture terminology - they drive the application.
//
// Required interfaces:
//   - CredentialsService: session credential lifecycle
//   - CallService: authenticated request construction and dispatch
//   - SettingsService: tool configuration
//
// Implementations of these interfaces live in internal/core/services.
package driving
