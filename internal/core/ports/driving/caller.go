package driving

import (
	"context"

	"github.com/custodia-labs/restcall-cli/internal/core/domain"
)

// CallService builds authenticated requests on behalf of external actors.
type CallService interface {
	// NewRequest constructs a request bound to the credential: the method
	// is case-normalized, the path must start with "/", headers are
	// deep-copied and stamped with the credential, and body (when non-nil)
	// is encoded as JSON. The returned request is immutable.
	NewRequest(cred *domain.AuthenticatedCredential, method, path string, headers map[string]string, body any) (Request, error)
}

// Request is a prepared authenticated HTTP request. Its derived values
// (URL, headers, encoded body) are fixed at construction.
type Request interface {
	// Method returns the normalized HTTP method.
	Method() domain.Method

	// URL returns the absolute https URL the request targets.
	URL() string

	// Headers returns a copy of the headers the request carries,
	// credential already applied.
	Headers() map[string]string

	// Body returns the JSON-encoded request body, or nil.
	Body() []byte

	// Invoke dispatches the request. Any response status other than
	// 200 OK returns *domain.HTTPResponseError; transport failures
	// return their own errors.
	Invoke(ctx context.Context) (*domain.Response, error)

	// CurlCommand renders the request as an equivalent curl invocation
	// for diagnostics. It never dispatches anything.
	CurlCommand(insecure bool) []string
}
