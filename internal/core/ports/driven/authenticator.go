package driven

import (
	"context"

	"github.com/custodia-labs/restcall-cli/internal/core/domain"
)

// Authenticator exchanges an unauthenticated credential for an opaque
// access token. The actual network call lives in the adapter; the core
// invokes it exactly once per login and never retries.
//
// Implementations must not log the username or password.
type Authenticator interface {
	// Authenticate performs the token exchange against the credential's
	// host and port.
	Authenticate(ctx context.Context, cred domain.Credential) (string, error)
}
