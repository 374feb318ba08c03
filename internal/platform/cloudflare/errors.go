package cloudflare

import (
	"errors"
	"fmt"
	"net/http"
)

// APIError is returned when the API reports success=false or a non-2xx status.
// Message is the first error message reported by the API.
type APIError struct {
	Operation  string
	StatusCode int
	Code       int
	Message    string
}

func (e *APIError) Error() string {
	if e.Code != 0 {
		return fmt.Sprintf("cloudflare %s: %s (code %d)", e.Operation, e.Message, e.Code)
	}
	return fmt.Sprintf("cloudflare %s: %s", e.Operation, e.Message)
}

// RateLimited reports whether the API rejected the call with 429.
func (e *APIError) RateLimited() bool {
	return e.StatusCode == http.StatusTooManyRequests
}

func newAPIError(operation string, status int, errs []apiError) *APIError {
	apiErr := &APIError{Operation: operation, StatusCode: status}
	if len(errs) > 0 {
		apiErr.Code = errs[0].Code
		apiErr.Message = errs[0].Message
	}
	if apiErr.Message == "" {
		apiErr.Message = fmt.Sprintf("request failed with status %d", status)
	}
	return apiErr
}

// IsAPIError reports whether err carries an APIError and returns it.
func IsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
