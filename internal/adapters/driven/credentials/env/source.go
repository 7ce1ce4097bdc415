// Package env restores the session credential from process environment
// variables and renders it as shell export lines.
package env

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/custodia-labs/restcall-cli/internal/core/domain"
	"github.com/custodia-labs/restcall-cli/internal/core/ports/driven"
	"github.com/custodia-labs/restcall-cli/internal/logger"
)

// Ensure Source implements the interface.
var _ driven.CredentialSource = (*Source)(nil)

// Variable name suffixes appended to the prefix.
const (
	suffixHost        = "HOST"
	suffixPort        = "PORT"
	suffixAccessToken = "ACCESS_TOKEN"
)

// Source is an environment-variable implementation of
// driven.CredentialSource. With prefix "RESTCALL_" it reads RESTCALL_HOST,
// RESTCALL_PORT and RESTCALL_ACCESS_TOKEN.
type Source struct {
	prefix string
}

// NewSource creates an environment credential source. The prefix is
// upper-cased; it must not contain whitespace, which is the caller's
// responsibility to guarantee.
func NewSource(prefix string) *Source {
	return &Source{prefix: strings.ToUpper(prefix)}
}

// Load restores the credential from the three environment variables.
// Any absent variable fails with *domain.MissingFieldError; a port value
// that is not an integer fails with domain.ErrInvalidPort.
func (s *Source) Load() (*domain.AuthenticatedCredential, error) {
	host, err := s.lookup(suffixHost, "host")
	if err != nil {
		return nil, err
	}
	portValue, err := s.lookup(suffixPort, "port")
	if err != nil {
		return nil, err
	}
	token, err := s.lookup(suffixAccessToken, "access_token")
	if err != nil {
		return nil, err
	}

	port, err := strconv.Atoi(portValue)
	if err != nil {
		return nil, fmt.Errorf("%w: %s=%q is not an integer",
			domain.ErrInvalidPort, s.prefix+suffixPort, portValue)
	}

	logger.Debug("Credential read from %s* environment variables", s.prefix)
	return domain.NewAuthenticatedCredential(host, port, token), nil
}

// PrintExports writes the credential as three export lines, in host, port,
// access_token order, suitable for eval in a shell.
func (s *Source) PrintExports(w io.Writer, cred *domain.AuthenticatedCredential) error {
	lines := []string{
		fmt.Sprintf("export %s%s=%s", s.prefix, suffixHost, cred.Host()),
		fmt.Sprintf("export %s%s=%d", s.prefix, suffixPort, cred.Port()),
		fmt.Sprintf("export %s%s=%s", s.prefix, suffixAccessToken, cred.AccessToken()),
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func (s *Source) lookup(suffix, field string) (string, error) {
	name := s.prefix + suffix
	value, ok := os.LookupEnv(name)
	if !ok {
		return "", &domain.MissingFieldError{Field: field, Source: "environment variable " + name}
	}
	return value, nil
}
