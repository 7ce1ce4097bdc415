// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - Authenticator: Exchanges username/password for an access token
//   - CredentialApplier: Stamps the access token onto request headers
//   - Dispatcher: Sends a constructed request over the wire
//   - CredentialStore: Credential file persistence
//   - CredentialSource: Read-only credential restoration (environment)
//   - ConfigStore: Application configuration
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
