// Package file persists the session credential as a TOML document with
// owner-only permissions.
package file

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/custodia-labs/restcall-cli/internal/core/domain"
	"github.com/custodia-labs/restcall-cli/internal/core/ports/driven"
	"github.com/custodia-labs/restcall-cli/internal/logger"
)

// Ensure Store implements the interface.
var _ driven.CredentialStore = (*Store)(nil)

// Store is a file-based implementation of driven.CredentialStore using TOML.
type Store struct {
	path string
}

// document is the on-disk shape of the credential file. Pointer fields
// distinguish an absent key from a zero value when loading.
type document struct {
	Host        *string `toml:"host"`
	Port        *int64  `toml:"port"`
	AccessToken *string `toml:"access_token"`
}

// DefaultPath returns the credential file path inside the user's restcall
// directory (~/.restcall/credentials.toml).
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".restcall", "credentials.toml"), nil
}

// NewStore creates a credential store backed by the given file path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Write persists the credential. With mkdir, missing parent directories are
// created first; without it, a missing parent surfaces as the underlying
// path error. The file is written with owner read/write permissions only,
// best-effort on platforms without POSIX permission bits.
func (s *Store) Write(cred *domain.AuthenticatedCredential, mkdir bool) error {
	host := cred.Host()
	port := int64(cred.Port())
	token := cred.AccessToken()

	data, err := toml.Marshal(document{Host: &host, Port: &port, AccessToken: &token})
	if err != nil {
		return fmt.Errorf("encode credential: %w", err)
	}

	if mkdir {
		if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
			return err
		}
	}

	logger.Debug("Writing credential file %s", s.path)

	// Write with restricted permissions
	return os.WriteFile(s.path, data, 0600)
}

// Load restores the persisted credential. A missing file fails with the
// read error (wrapping fs.ErrNotExist); a document missing host, port or
// access_token fails with *domain.MissingFieldError.
func (s *Store) Load() (*domain.AuthenticatedCredential, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read credential file: %w", err)
	}

	var doc document
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse credential file: %w", err)
	}

	switch {
	case doc.Host == nil:
		return nil, &domain.MissingFieldError{Field: "host", Source: s.path}
	case doc.Port == nil:
		return nil, &domain.MissingFieldError{Field: "port", Source: s.path}
	case doc.AccessToken == nil:
		return nil, &domain.MissingFieldError{Field: "access_token", Source: s.path}
	}

	return domain.NewAuthenticatedCredential(*doc.Host, int(*doc.Port), *doc.AccessToken), nil
}

// Clear removes the credential file. A missing file is a no-op, which makes
// Clear safe as a purge hook.
func (s *Store) Clear() error {
	logger.Debug("Removing credential file %s", s.path)

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// Path returns the credential file path.
func (s *Store) Path() string {
	return s.path
}
