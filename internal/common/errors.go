// File: internal/common/errors.go
package common

import (
	"errors"
	"fmt"
	"net/http"
)

// APIError is the wire shape for every error response the API produces:
// a status code plus a single {"error": "..."} body. The messages are part
// of the public contract consumed by the web and mobile clients.
type APIError struct {
	StatusCode int    `json:"-"`
	Message    string `json:"error"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("APIError: StatusCode=%d, Message=%s", e.StatusCode, e.Message)
}

func NewAPIError(statusCode int, message string) *APIError {
	return &APIError{StatusCode: statusCode, Message: message}
}

var (
	ErrUnauthorized       = NewAPIError(http.StatusUnauthorized, "Unauthorized")
	ErrForbidden          = NewAPIError(http.StatusForbidden, "Forbidden")
	ErrNotFound           = NewAPIError(http.StatusNotFound, "Not found")
	ErrTaskNotFound       = NewAPIError(http.StatusNotFound, "Task not found")
	ErrTaskFieldsRequired = NewAPIError(http.StatusBadRequest, "Text, type, and period are required")
	ErrLogoutFailed       = NewAPIError(http.StatusInternalServerError, "Failed to log out")
	ErrInternalServer     = NewAPIError(http.StatusInternalServerError, "An unexpected error occurred on the server.")
)

func IsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
