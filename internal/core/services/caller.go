package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/custodia-labs/restcall-cli/internal/core/domain"
	"github.com/custodia-labs/restcall-cli/internal/core/ports/driven"
	"github.com/custodia-labs/restcall-cli/internal/core/ports/driving"
	"github.com/custodia-labs/restcall-cli/internal/logger"
)

// Ensure the call pipeline satisfies the driving ports.
var (
	_ driving.CallService = (*CallService)(nil)
	_ driving.Request     = (*Request)(nil)
)

// CallService implements the driving port by constructing a Caller per
// resolved credential. The applier and dispatcher are fixed at wiring time;
// the credential arrives with each request.
type CallService struct {
	applier    driven.CredentialApplier
	dispatcher driven.Dispatcher
}

// NewCallService creates the call service.
func NewCallService(applier driven.CredentialApplier, dispatcher driven.Dispatcher) *CallService {
	return &CallService{
		applier:    applier,
		dispatcher: dispatcher,
	}
}

// NewRequest builds a request bound to the credential.
func (s *CallService) NewRequest(cred *domain.AuthenticatedCredential, method, path string, headers map[string]string, body any) (driving.Request, error) {
	return NewCaller(cred, s.applier, s.dispatcher).Request(method, path, headers, body)
}

// Caller issues authenticated requests against the credential's target API.
// The credential applier and dispatcher are injected capabilities, which
// keeps the request pipeline testable with substitutable fakes.
type Caller struct {
	credential *domain.AuthenticatedCredential
	applier    driven.CredentialApplier
	dispatcher driven.Dispatcher
}

// NewCaller creates a caller bound to one authenticated credential for the
// duration of the CLI invocation.
func NewCaller(
	credential *domain.AuthenticatedCredential,
	applier driven.CredentialApplier,
	dispatcher driven.Dispatcher,
) *Caller {
	return &Caller{
		credential: credential,
		applier:    applier,
		dispatcher: dispatcher,
	}
}

// Request constructs an outbound request bound to this caller.
//
// The method is case-normalised and must be one of GET, POST, PUT, PATCH or
// DELETE; the path must start with "/". The URL, applied headers and encoded
// body are all computed here, once: headers are copied before the credential
// applier runs and the body is JSON-encoded immediately, so later mutation
// of the caller's inputs cannot affect the built request.
func (c *Caller) Request(method, path string, headers map[string]string, body any) (*Request, error) {
	m, err := domain.ParseMethod(method)
	if err != nil {
		return nil, err
	}
	if !strings.HasPrefix(path, "/") {
		return nil, fmt.Errorf("%w: %q does not start with \"/\"", domain.ErrInvalidPath, path)
	}

	applied := c.applier.ApplyCredential(c.credential, copyHeaders(headers))

	var encoded []byte
	if body != nil {
		encoded, err = json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
	}

	return &Request{
		method:     m,
		url:        c.credential.BaseURL() + path,
		headers:    applied,
		body:       encoded,
		dispatcher: c.dispatcher,
	}, nil
}

// Request is a fully-built outbound request. Everything derived (URL,
// applied headers, encoded body) is fixed at construction and reused by
// Invoke and CurlCommand alike.
type Request struct {
	method     domain.Method
	url        string
	headers    map[string]string
	body       []byte
	dispatcher driven.Dispatcher
}

// Method returns the normalised HTTP method.
func (r *Request) Method() domain.Method {
	return r.method
}

// URL returns the composed https://{host}:{port}{path} target.
func (r *Request) URL() string {
	return r.url
}

// Headers returns a copy of the applied headers.
func (r *Request) Headers() map[string]string {
	return copyHeaders(r.headers)
}

// Body returns the JSON-encoded request body, or nil when the request has
// no body.
func (r *Request) Body() []byte {
	return r.body
}

// Invoke dispatches the request. Any status other than 200 OK fails with
// *domain.HTTPResponseError carrying the status, reason and body text;
// other 2xx statuses and redirects are errors too.
func (r *Request) Invoke(ctx context.Context) (*domain.Response, error) {
	logger.Info("%s %s", r.method, r.url)

	resp, err := r.dispatcher.Send(ctx, r.method, r.url, r.headers, r.body)
	if err != nil {
		return nil, err
	}

	logger.Debug("Response status %d %s (%d bytes)", resp.StatusCode, resp.Reason, len(resp.Body))
	if resp.StatusCode != http.StatusOK {
		return nil, &domain.HTTPResponseError{
			StatusCode: resp.StatusCode,
			Reason:     resp.Reason,
			Body:       resp.Text(),
		}
	}
	return resp, nil
}

// CurlCommand renders the request as an equivalent curl invocation for
// diagnostics. It is purely derived from the built request and never
// touches the network. Header flags appear in sorted key order so the
// output is deterministic.
func (r *Request) CurlCommand(insecure bool) []string {
	args := []string{"curl"}
	if insecure {
		args = append(args, "--insecure")
	}
	args = append(args, "-X", r.method.String(), r.url)

	keys := make([]string, 0, len(r.headers))
	for k := range r.headers {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		args = append(args, "-H", fmt.Sprintf("%s: %s", k, r.headers[k]))
	}

	if r.body != nil {
		args = append(args, "-H", "Content-Type: application/json", "--data", string(r.body))
	}
	return args
}

// copyHeaders duplicates a header map, treating nil as empty.
func copyHeaders(headers map[string]string) map[string]string {
	copied := make(map[string]string, len(headers))
	for k, v := range headers {
		copied[k] = v
	}
	return copied
}
