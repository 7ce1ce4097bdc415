package auth

import (
	"github.com/custodia-labs/restcall-cli/internal/core/domain"
	"github.com/custodia-labs/restcall-cli/internal/core/ports/driven"
	"github.com/custodia-labs/restcall-cli/internal/logger"
)

// Ensure BearerApplier implements the CredentialApplier interface.
var _ driven.CredentialApplier = (*BearerApplier)(nil)

// BearerApplier stamps the access token onto request headers as an
// Authorization bearer header. It affects headers only, never the body.
type BearerApplier struct{}

// ApplyCredential adds the Authorization header. The token itself is kept
// out of the log output at every level.
func (BearerApplier) ApplyCredential(cred *domain.AuthenticatedCredential, headers map[string]string) map[string]string {
	if headers == nil {
		headers = make(map[string]string)
	}
	headers["Authorization"] = "Bearer " + cred.AccessToken()
	logger.Debug("Authorization header applied for %s", cred.BaseURL())
	return headers
}
