package domain

import (
	"fmt"
	"strings"
)

// Method identifies an HTTP method accepted by the caller.
type Method string

const (
	// MethodGet retrieves a resource.
	MethodGet Method = "GET"
	// MethodPost creates a resource.
	MethodPost Method = "POST"
	// MethodPut replaces a resource.
	MethodPut Method = "PUT"
	// MethodPatch partially updates a resource.
	MethodPatch Method = "PATCH"
	// MethodDelete removes a resource.
	MethodDelete Method = "DELETE"
)

// AllMethods returns the methods the caller accepts.
func AllMethods() []Method {
	return []Method{MethodGet, MethodPost, MethodPut, MethodPatch, MethodDelete}
}

// ParseMethod normalises a method name to uppercase and validates it.
// Anything outside the supported set fails with ErrInvalidMethod.
func ParseMethod(s string) (Method, error) {
	m := Method(strings.ToUpper(s))
	for _, known := range AllMethods() {
		if m == known {
			return m, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidMethod, s)
}

func (m Method) String() string {
	return string(m)
}
