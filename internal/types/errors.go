package types

import (
	"errors"
	"fmt"
	"net/http"
)

// ------------------------------
// Shared Errors
// ------------------------------

// APIError is returned when the marketplace responds with a non-2xx status.
// Message carries the server's "error" field when the body decoded as JSON,
// or the synthetic "HTTP <status>" fallback otherwise. Transport failures and
// decode failures on success responses are NOT wrapped in APIError; they
// propagate as whatever error the transport or decoder raised.
type APIError struct {
	Message    string
	StatusCode int
}

func (e *APIError) Error() string {
	return fmt.Sprintf("marketplace: %s (status %d)", e.Message, e.StatusCode)
}

// AsAPIError unwraps err to an *APIError if one is in the chain.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// IsNotFound reports whether err is an APIError with status 404.
func IsNotFound(err error) bool {
	apiErr, ok := AsAPIError(err)
	return ok && apiErr.StatusCode == http.StatusNotFound
}
