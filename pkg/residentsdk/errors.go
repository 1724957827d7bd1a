package residentsdk

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/commonhall/commonhall/pkg/httpx"
)

// ============================================================================
// Service error codes
// ============================================================================

// Stable error codes the community service emits. Clients branch on these,
// never on the human-readable description.
const (
	ErrorCodeInvalidRequest = "invalid_request" // validation failure
	ErrorCodeNotFound       = "not_found"       // dangling reference
	ErrorCodeConflict       = "conflict"        // invalid state transition or duplicate
	ErrorCodeNotVerified    = "not_verified"    // caller has no approved residency
	ErrorCodeWrongBuilding  = "wrong_building"  // caller verified for a different building
	ErrorCodeInvalidToken   = "invalid_token"
	ErrorCodeForbidden      = "insufficient_scope"
	ErrorCodeServerError    = "server_error"
	ErrorCodeUpstreamError  = "upstream_error" // storage/identity dependency failure, retryable
)

// ============================================================================
// APIError - typed error response
// ============================================================================

// APIError is the service's standard error envelope. It implements the error
// interface and is shared by the server (to write responses) and the SDK
// client (to surface them).
type APIError struct {
	// StatusCode is the HTTP status code for this error
	StatusCode int `json:"-"`

	// Code is the stable error code (e.g., "not_verified", "conflict")
	Code string `json:"error"`

	// Description is a human-readable description of the error
	Description string `json:"error_description"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Description)
}

// WriteError writes this APIError to an HTTP response writer.
func (e *APIError) WriteError(w http.ResponseWriter) {
	httpx.NoCache(w)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(e.StatusCode)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"error":             e.Code,
		"error_description": e.Description,
	})
}

// ============================================================================
// Predefined errors
// ============================================================================

var (
	// ErrInvalidRequest is returned when the request is missing a required
	// field, carries an empty value, or is otherwise malformed.
	ErrInvalidRequest = &APIError{
		StatusCode:  http.StatusBadRequest,
		Code:        ErrorCodeInvalidRequest,
		Description: "the request is malformed or missing required parameters",
	}

	// ErrNotFound is returned when a referenced building, post, or request
	// does not exist.
	ErrNotFound = &APIError{
		StatusCode:  http.StatusNotFound,
		Code:        ErrorCodeNotFound,
		Description: "the referenced resource does not exist",
	}

	// ErrConflict is returned on invalid state transitions: a second pending
	// verification request, reviewing an already-decided request, or a
	// duplicate building registration.
	ErrConflict = &APIError{
		StatusCode:  http.StatusConflict,
		Code:        ErrorCodeConflict,
		Description: "the operation conflicts with the current state",
	}

	// ErrNotVerified is returned when the caller has no approved residency
	// and attempts a gated content operation.
	ErrNotVerified = &APIError{
		StatusCode:  http.StatusForbidden,
		Code:        ErrorCodeNotVerified,
		Description: "residency verification required",
	}

	// ErrWrongBuilding is returned when the caller is verified for a
	// different building than the content they addressed.
	ErrWrongBuilding = &APIError{
		StatusCode:  http.StatusForbidden,
		Code:        ErrorCodeWrongBuilding,
		Description: "content belongs to a different building",
	}

	// ErrServerError is returned on unexpected internal failures.
	ErrServerError = &APIError{
		StatusCode:  http.StatusInternalServerError,
		Code:        ErrorCodeServerError,
		Description: "internal server error",
	}

	// ErrUpstreamError is returned when a storage or identity dependency
	// failed; callers may retry.
	ErrUpstreamError = &APIError{
		StatusCode:  http.StatusServiceUnavailable,
		Code:        ErrorCodeUpstreamError,
		Description: "a dependency is unavailable, retry later",
	}
)

// parseErrorResponse decodes an error body into an *APIError, falling back to
// a generic error when the body isn't our envelope.
func parseErrorResponse(resp *http.Response, body []byte) error {
	var apiErr APIError
	if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Code != "" {
		apiErr.StatusCode = resp.StatusCode
		return &apiErr
	}
	return &APIError{
		StatusCode:  resp.StatusCode,
		Code:        ErrorCodeServerError,
		Description: fmt.Sprintf("unexpected status %d", resp.StatusCode),
	}
}
