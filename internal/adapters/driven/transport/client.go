// Package transport provides the HTTP dispatch adapter that carries
// requests to the remote API.
package transport

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/custodia-labs/restcall-cli/internal/core/domain"
	"github.com/custodia-labs/restcall-cli/internal/core/ports/driven"
	"github.com/custodia-labs/restcall-cli/internal/logger"
)

// Ensure Client implements the Dispatcher interface.
var _ driven.Dispatcher = (*Client)(nil)

// DefaultTimeout bounds each request when no timeout is configured.
const DefaultTimeout = 30 * time.Second

// Config holds configuration for the HTTP dispatch client.
type Config struct {
	// Insecure disables TLS certificate verification.
	Insecure bool

	// Timeout is the per-request timeout (default: 30s).
	Timeout time.Duration
}

// Client dispatches requests over HTTPS and maps the results into domain
// responses. HTTP status codes are not interpreted here; every completed
// exchange produces a Response.
type Client struct {
	client *http.Client
}

// NewClient creates an HTTP dispatch client.
func NewClient(cfg Config) *Client {
	return &Client{client: NewHTTPClient(cfg)}
}

// NewHTTPClient builds an http.Client honouring the transport config. The
// authenticator shares it so login and calls get the same TLS behaviour.
func NewHTTPClient(cfg Config) *http.Client {
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}

	tr := http.DefaultTransport.(*http.Transport).Clone()
	if cfg.Insecure {
		//nolint:gosec // G402: Operator opt-in for endpoints with self-signed certificates.
		tr.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
	}

	return &http.Client{
		Timeout:   cfg.Timeout,
		Transport: tr,
	}
}

// Send performs the HTTP exchange. Transport failures return an error;
// any completed exchange returns a Response regardless of status code.
func (c *Client) Send(ctx context.Context, method domain.Method, url string, headers map[string]string, body []byte) (*domain.Response, error) {
	var reader io.Reader = http.NoBody
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method.String(), url, reader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	logger.Debug("Dispatching %s %s", method, url)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	logger.Debug("Received %s from %s %s", resp.Status, method, url)

	return &domain.Response{
		StatusCode: resp.StatusCode,
		Reason:     reasonPhrase(resp),
		Header:     resp.Header,
		Body:       respBody,
	}, nil
}

// reasonPhrase extracts the textual part of the status line, falling back
// to the standard text for the code when the server sent none.
func reasonPhrase(resp *http.Response) string {
	prefix := strconv.Itoa(resp.StatusCode) + " "
	if strings.HasPrefix(resp.Status, prefix) {
		return strings.TrimPrefix(resp.Status, prefix)
	}
	if text := http.StatusText(resp.StatusCode); text != "" {
		return text
	}
	return resp.Status
}
