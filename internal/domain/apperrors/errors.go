// Package apperrors defines the application error taxonomy: every failure a
// handler can surface is a tagged kind with a fixed HTTP status, not a class
// hierarchy.
package apperrors

import (
	"fmt"
	"net/http"
)

type Kind string

const (
	KindUnauthenticated Kind = "unauthenticated"
	KindForbidden       Kind = "forbidden"
	KindNotFound        Kind = "not_found"
	KindInvalidInput    Kind = "invalid_input"
	KindConflict        Kind = "conflict"
	KindQuotaExceeded   Kind = "quota_exceeded"
	KindInternal        Kind = "internal"
)

type Error struct {
	Kind       Kind
	HTTPStatus int
	Message    string
	Details    string
}

func (e *Error) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Kind, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func newError(kind Kind, status int, message string) *Error {
	return &Error{Kind: kind, HTTPStatus: status, Message: message}
}

func Unauthenticated(message string) *Error {
	return newError(KindUnauthenticated, http.StatusUnauthorized, message)
}

func Forbidden(message string) *Error {
	return newError(KindForbidden, http.StatusForbidden, message)
}

func NotFound(message string) *Error {
	return newError(KindNotFound, http.StatusNotFound, message)
}

func InvalidInput(message string) *Error {
	return newError(KindInvalidInput, http.StatusBadRequest, message)
}

func Conflict(message string) *Error {
	return newError(KindConflict, http.StatusConflict, message)
}

func QuotaExceeded(message string) *Error {
	return newError(KindQuotaExceeded, http.StatusTooManyRequests, message)
}

func Internal(message string) *Error {
	return newError(KindInternal, http.StatusInternalServerError, message)
}

// WithDetails returns a copy carrying extra context for the response body.
func (e *Error) WithDetails(details string) *Error {
	clone := *e
	clone.Details = details
	return &clone
}

// Body is the JSON response body for the error, ready for c.JSON.
func (e *Error) Body() map[string]any {
	body := map[string]any{"error": e.Message, "kind": string(e.Kind)}
	if e.Details != "" {
		body["details"] = e.Details
	}
	return body
}
