package domain

import (
	"encoding/json"
	"mime"
	"net/http"
)

// Response is the outcome of a dispatched request. The body is fully read
// before the response is handed to the core; nothing here holds a network
// resource.
type Response struct {
	// StatusCode is the numeric HTTP status (200, 404, ...).
	StatusCode int
	// Reason is the status text sent by the server ("OK", "Not Found", ...).
	Reason string
	// Header holds the response headers.
	Header http.Header
	// Body is the raw response body.
	Body []byte
}

// ContentType returns the media type of the response body, without
// parameters such as charset. Returns "" when the header is absent or
// malformed.
func (r *Response) ContentType() string {
	ct := r.Header.Get("Content-Type")
	if ct == "" {
		return ""
	}
	mediaType, _, err := mime.ParseMediaType(ct)
	if err != nil {
		return ""
	}
	return mediaType
}

// IsJSON reports whether the response body is declared as JSON.
func (r *Response) IsJSON() bool {
	return r.ContentType() == "application/json"
}

// JSON decodes the response body into v.
func (r *Response) JSON(v any) error {
	return json.Unmarshal(r.Body, v)
}

// Text returns the response body as a string.
func (r *Response) Text() string {
	return string(r.Body)
}
