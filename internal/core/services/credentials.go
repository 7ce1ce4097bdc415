package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/custodia-labs/restcall-cli/internal/core/domain"
	"github.com/custodia-labs/restcall-cli/internal/core/ports/driven"
	"github.com/custodia-labs/restcall-cli/internal/core/ports/driving"
	"github.com/custodia-labs/restcall-cli/internal/logger"
)

// Ensure CredentialsService implements the interface.
var _ driving.CredentialsService = (*CredentialsService)(nil)

// CredentialsService manages the session credential lifecycle.
type CredentialsService struct {
	authenticator driven.Authenticator
	env           driven.CredentialSource
	file          driven.CredentialStore
}

// NewCredentialsService creates a new credentials service.
func NewCredentialsService(
	authenticator driven.Authenticator,
	env driven.CredentialSource,
	file driven.CredentialStore,
) *CredentialsService {
	return &CredentialsService{
		authenticator: authenticator,
		env:           env,
		file:          file,
	}
}

// Login exchanges username/password for an authenticated credential.
// The authenticator is invoked exactly once; failures wrap
// domain.ErrAuthentication and are not retried.
func (s *CredentialsService) Login(ctx context.Context, cred domain.Credential) (*domain.AuthenticatedCredential, error) {
	logger.Debug("Requesting access token from %s:%d", cred.Host, cred.Port)

	token, err := s.authenticator.Authenticate(ctx, cred)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrAuthentication, err)
	}

	logger.Info("Authenticated against %s:%d", cred.Host, cred.Port)
	return domain.NewAuthenticatedCredential(cred.Host, cred.Port, token), nil
}

// Save persists the credential to the credential file, creating the parent
// directory when needed.
func (s *CredentialsService) Save(cred *domain.AuthenticatedCredential) error {
	if err := s.file.Write(cred, true); err != nil {
		return fmt.Errorf("write credential file: %w", err)
	}
	logger.Info("Credential written to %s", s.file.Path())
	return nil
}

// Resolve locates the active credential.
//
// The environment is tried first; when any of its variables is missing, the
// miss is not an error and resolution falls through to the credential file.
// A file-sourced credential carries a purge hook that deletes the file.
// When both sources are present the environment wins entirely, with no
// field-by-field merging.
func (s *CredentialsService) Resolve() (*domain.AuthenticatedCredential, error) {
	cred, err := s.env.Load()
	if err == nil {
		logger.Debug("Credential resolved from environment")
		return cred, nil
	}

	var missing *domain.MissingFieldError
	if !errors.As(err, &missing) {
		// Present but unusable (e.g. non-integer port) surfaces as-is.
		return nil, err
	}
	logger.Debug("Environment credential incomplete (%s), trying %s", missing.Field, s.file.Path())

	cred, err = s.file.Load()
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, domain.ErrNotAuthenticated
		}
		return nil, err
	}

	logger.Debug("Credential resolved from %s", s.file.Path())
	return cred.OnPurge(s.file.Clear), nil
}

// PrintExports writes the credential as shell export lines.
func (s *CredentialsService) PrintExports(w io.Writer, cred *domain.AuthenticatedCredential) error {
	return s.env.PrintExports(w, cred)
}

// StorePath returns the credential file path used by Save and Resolve.
func (s *CredentialsService) StorePath() string {
	return s.file.Path()
}
