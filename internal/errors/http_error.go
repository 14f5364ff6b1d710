package errors

import "net/http"

// HTTPError represents an error with an associated HTTP status code.
type HTTPError struct {
	Code    int
	Message string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTPError with the given code and message.
func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{
		Code:    code,
		Message: message,
	}
}

// Helper for common errors
var (
	// Validation is a client-caused rejection (bad phone, bad date/time).
	Validation = func(msg string) *HTTPError { return NewHTTPError(http.StatusBadRequest, msg) }
	// Upstream means the system of record rejected the operation or is
	// unreachable. Distinct from validation so the caller can retry later.
	Upstream = func(msg string) *HTTPError { return NewHTTPError(http.StatusBadGateway, msg) }
	Internal = func(msg string) *HTTPError { return NewHTTPError(http.StatusInternalServerError, msg) }
)
