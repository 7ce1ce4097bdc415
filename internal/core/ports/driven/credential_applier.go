package driven

import (
	"github.com/custodia-labs/restcall-cli/internal/core/domain"
)

// CredentialApplier stamps an access token onto outbound request headers.
// The caller passes a private copy of the user's headers, so implementations
// may mutate and return the input map. Appliers affect headers only, never
// the request body.
//
// Implementations must not log the token at info level or above.
type CredentialApplier interface {
	// ApplyCredential returns the headers with authentication applied.
	// A nil map is accepted and treated as empty.
	ApplyCredential(cred *domain.AuthenticatedCredential, headers map[string]string) map[string]string
}
