package driving

import (
	"context"
	"io"

	"github.com/custodia-labs/restcall-cli/internal/core/domain"
)

// CredentialsService manages the session credential lifecycle: the
// unauthenticated-to-authenticated transition, persistence, and resolution.
type CredentialsService interface {
	// Login exchanges username/password for an authenticated credential.
	// Authenticator failures wrap domain.ErrAuthentication and are not
	// retried.
	Login(ctx context.Context, cred domain.Credential) (*domain.AuthenticatedCredential, error)

	// Save persists the credential to the credential file, creating the
	// parent directory when needed.
	Save(cred *domain.AuthenticatedCredential) error

	// Resolve locates the active credential: environment variables first,
	// then the credential file, with a purge hook attached that deletes
	// the file. Fails with domain.ErrNotAuthenticated when neither source
	// is available.
	Resolve() (*domain.AuthenticatedCredential, error)

	// PrintExports writes the credential as shell export lines in host,
	// port, access_token order.
	PrintExports(w io.Writer, cred *domain.AuthenticatedCredential) error

	// StorePath returns the credential file path used by Save and Resolve.
	StorePath() string
}
