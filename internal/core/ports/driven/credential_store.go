package driven

import (
	"github.com/custodia-labs/restcall-cli/internal/core/domain"
)

// CredentialStore persists the authenticated credential between CLI
// invocations. The file backend is the authoritative fallback when the
// environment provides nothing.
type CredentialStore interface {
	// Write persists the credential with owner-only permissions. With
	// mkdir, missing parent directories are created first; without it, a
	// missing parent surfaces as the underlying path error.
	Write(cred *domain.AuthenticatedCredential, mkdir bool) error

	// Load restores the persisted credential with no purge hook attached.
	// A missing file fails with an error wrapping fs.ErrNotExist; a
	// document without host, port or access_token fails with
	// *domain.MissingFieldError.
	Load() (*domain.AuthenticatedCredential, error)

	// Clear removes the persisted credential. A missing file is a no-op,
	// which makes Clear safe as a purge hook.
	Clear() error

	// Path returns the credential file path.
	Path() string
}
