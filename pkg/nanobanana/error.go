package nanobanana

import (
	"errors"
	"fmt"
)

// Error represents a Gemini API error response.
type Error struct {
	// Code is the numeric error code from the response body.
	Code int `json:"code"`

	// Message is the human-readable error message.
	Message string `json:"message"`

	// Status is the canonical status string, e.g. "INVALID_ARGUMENT".
	Status string `json:"status"`

	// HTTPStatus is the HTTP status code.
	HTTPStatus int `json:"-"`

	// Body is the raw error response body, kept for diagnostics.
	Body []byte `json:"-"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Status != "" {
		return fmt.Sprintf("nanobanana: %s (code=%d, status=%s)", e.Message, e.Code, e.Status)
	}
	return fmt.Sprintf("nanobanana: %s (http=%d)", e.Message, e.HTTPStatus)
}

// IsInvalidAPIKey returns true if the API rejected the key.
func (e *Error) IsInvalidAPIKey() bool {
	return e.HTTPStatus == 401 || e.HTTPStatus == 403 ||
		e.Status == "UNAUTHENTICATED" || e.Status == "PERMISSION_DENIED"
}

// IsRateLimit returns true if this is a rate limit or quota error.
func (e *Error) IsRateLimit() bool {
	return e.HTTPStatus == 429 || e.Status == "RESOURCE_EXHAUSTED"
}

// IsInvalidRequest returns true if the request itself was rejected.
func (e *Error) IsInvalidRequest() bool {
	return e.HTTPStatus == 400 || e.Status == "INVALID_ARGUMENT"
}

// IsServerError returns true if this is a server-side error.
func (e *Error) IsServerError() bool {
	return e.HTTPStatus >= 500 || e.Status == "INTERNAL" || e.Status == "UNAVAILABLE"
}

// AsError extracts *Error from an error.
//
// Example:
//
//	if e, ok := nanobanana.AsError(err); ok {
//	    if e.IsRateLimit() {
//	        // Back off
//	    }
//	}
func AsError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// ProtocolError reports a structurally unexpected API response, such as a
// 200 with no candidates or inline data that does not decode.
type ProtocolError struct {
	// Message describes what was missing or malformed.
	Message string

	// Raw is the full response body for diagnosis.
	Raw []byte
}

// Error implements the error interface.
func (e *ProtocolError) Error() string {
	return "nanobanana: " + e.Message
}

// AsProtocolError extracts *ProtocolError from an error.
func AsProtocolError(err error) (*ProtocolError, bool) {
	var e *ProtocolError
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}
