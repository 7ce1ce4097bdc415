package driven

import (
	"io"

	"github.com/custodia-labs/restcall-cli/internal/core/domain"
)

// CredentialSource restores a credential from a read-only location such as
// the process environment. Sources take precedence over the CredentialStore
// at resolution time.
type CredentialSource interface {
	// Load restores the credential. A missing variable fails with
	// *domain.MissingFieldError, which resolution treats as "not present
	// here" and falls through to the store.
	Load() (*domain.AuthenticatedCredential, error)

	// PrintExports writes the credential as shell export lines, one per
	// field, in host, port, access_token order.
	PrintExports(w io.Writer, cred *domain.AuthenticatedCredential) error
}
