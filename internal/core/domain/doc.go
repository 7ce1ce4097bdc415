// Package domain defines the core business entities for restcall.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Credential: host/port/username/password prior to authentication
//   - AuthenticatedCredential: host/port/access-token after authentication
//   - Method: the HTTP methods the caller accepts
//   - Response: the decoded outcome of a dispatched request
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
