// Package auth provides the authentication adapters: the password-grant
// token exchange and the bearer-token credential applier.
package auth

import (
	"context"
	"fmt"
	"net/http"

	"golang.org/x/oauth2"

	"github.com/custodia-labs/restcall-cli/internal/core/domain"
	"github.com/custodia-labs/restcall-cli/internal/core/ports/driven"
	"github.com/custodia-labs/restcall-cli/internal/logger"
)

// Ensure PasswordAuthenticator implements the Authenticator interface.
var _ driven.Authenticator = (*PasswordAuthenticator)(nil)

// PasswordAuthenticator exchanges username/password for an access token
// using the OAuth2 resource-owner password grant against the credential's
// own host and port.
type PasswordAuthenticator struct {
	tokenPath string
	client    *http.Client
}

// NewPasswordAuthenticator creates a password-grant authenticator.
// tokenPath defaults to domain.DefaultTokenPath when empty; client may be
// nil to use the oauth2 package's default transport.
func NewPasswordAuthenticator(tokenPath string, client *http.Client) *PasswordAuthenticator {
	if tokenPath == "" {
		tokenPath = domain.DefaultTokenPath
	}
	return &PasswordAuthenticator{
		tokenPath: tokenPath,
		client:    client,
	}
}

// Authenticate performs the token exchange. The username and password are
// sent to the token endpoint and never logged.
func (a *PasswordAuthenticator) Authenticate(ctx context.Context, cred domain.Credential) (string, error) {
	conf := &oauth2.Config{
		Endpoint: oauth2.Endpoint{
			TokenURL:  fmt.Sprintf("https://%s:%d%s", cred.Host, cred.Port, a.tokenPath),
			AuthStyle: oauth2.AuthStyleInParams,
		},
	}
	logger.Debug("Token endpoint: %s", conf.Endpoint.TokenURL)

	if a.client != nil {
		ctx = context.WithValue(ctx, oauth2.HTTPClient, a.client)
	}

	token, err := conf.PasswordCredentialsToken(ctx, cred.Username, cred.Password)
	if err != nil {
		return "", fmt.Errorf("token request: %w", err)
	}
	if token.AccessToken == "" {
		return "", fmt.Errorf("token endpoint returned an empty access token")
	}
	return token.AccessToken, nil
}
