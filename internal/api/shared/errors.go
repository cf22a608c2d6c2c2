package shared

import "net/http"

// HTTPError is an error that already knows the status it should produce.
type HTTPError struct {
	Status  int
	Message string
}

// Error implements the error interface for HTTPError.
func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates an HTTPError, defaulting the message to the status text.
func NewHTTPError(status int, message string) *HTTPError {
	if message == "" {
		message = http.StatusText(status)
	}
	return &HTTPError{Status: status, Message: message}
}
