package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent credential and request failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotAuthenticated indicates no usable credential was found in the
	// environment or the credential file.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrAuthentication indicates the authenticator rejected the login.
	ErrAuthentication = errors.New("authentication failed")

	// ErrInvalidPath indicates a request path without a leading slash.
	ErrInvalidPath = errors.New("invalid path")

	// ErrInvalidMethod indicates an HTTP method outside the supported set.
	ErrInvalidMethod = errors.New("invalid method")

	// ErrInvalidPort indicates a port outside 1-65535, or a port value in
	// the environment that is not an integer.
	ErrInvalidPort = errors.New("invalid port")
)

// MissingFieldError indicates a persisted credential missing one of its
// required fields (host, port, access_token). Source names where the
// credential was read from: the file path or the environment variable.
type MissingFieldError struct {
	Field  string
	Source string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("credential field %q missing from %s", e.Field, e.Source)
}

// HTTPResponseError represents a response with any status other than 200 OK.
// Redirects and 2xx statuses other than 200 are errors too.
type HTTPResponseError struct {
	StatusCode int
	Reason     string
	Body       string
}

func (e *HTTPResponseError) Error() string {
	return fmt.Sprintf("HTTP error %d: %s", e.StatusCode, e.Reason)
}

// IsUnauthorized checks if the error is a 401 response, the one condition
// that triggers a credential purge.
func IsUnauthorized(err error) bool {
	var respErr *HTTPResponseError
	if errors.As(err, &respErr) {
		return respErr.StatusCode == 401
	}
	return false
}
