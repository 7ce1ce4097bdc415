package driven

import (
	"context"

	"github.com/custodia-labs/restcall-cli/internal/core/domain"
)

// Dispatcher sends a constructed request over the wire.
type Dispatcher interface {
	// Send issues the request and returns the response with its body fully
	// read. Transport failures (DNS, TLS, timeout) are returned as errors;
	// HTTP-level outcomes are returned as a Response regardless of status,
	// leaving the status judgement to the core.
	Send(ctx context.Context, method domain.Method, url string,
		headers map[string]string, body []byte) (*domain.Response, error)
}
