package utils

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorKind classifies service failures independent of their source.
type ErrorKind string

const (
	KindNotAuthenticated ErrorKind = "not_authenticated"
	KindNotAuthorized    ErrorKind = "not_authorized"
	KindNotFound         ErrorKind = "not_found"
	KindValidation       ErrorKind = "validation_failure"
	KindTransient        ErrorKind = "transient"
)

// APIError is a typed service error carrying a kind and a user-facing
// message. The wrapped cause, if any, stays out of the response body.
type APIError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *APIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *APIError) Unwrap() error { return e.Err }

// NewAPIError builds an APIError of the given kind.
func NewAPIError(kind ErrorKind, message string) *APIError {
	return &APIError{Kind: kind, Message: message}
}

// WrapAPIError builds an APIError wrapping an underlying cause.
func WrapAPIError(kind ErrorKind, message string, err error) *APIError {
	return &APIError{Kind: kind, Message: message, Err: err}
}

// KindOf extracts the error kind, defaulting to KindTransient for
// untyped errors (any other network/storage failure).
func KindOf(err error) ErrorKind {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}
	return KindTransient
}

// StatusForKind maps an error kind to its HTTP status code.
func StatusForKind(kind ErrorKind) int {
	switch kind {
	case KindNotAuthenticated:
		return http.StatusUnauthorized
	case KindNotAuthorized:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindValidation:
		return http.StatusBadRequest
	default:
		return http.StatusServiceUnavailable
	}
}
