package apperrors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrUnauthenticated indicates the backend rejected the stored API token.
var ErrUnauthenticated = errors.New("backend rejected credentials")

// APIError is a non-2xx response from the backend. FieldErrors carries the
// structured per-field messages DRF puts in the body, when the body could be
// decoded; pages surface a known field's message verbatim and fall back to
// their own generic message otherwise.
type APIError struct {
	StatusCode  int
	FieldErrors map[string][]string
	Detail      string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("backend returned %d: %s", e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("backend returned %d", e.StatusCode)
}

// Field returns the first message reported for the named field, if any.
func (e *APIError) Field(name string) (string, bool) {
	msgs, ok := e.FieldErrors[name]
	if !ok || len(msgs) == 0 {
		return "", false
	}
	return strings.TrimSpace(msgs[0]), true
}
