// Package apperr defines the authentication error taxonomy. Every
// failure the service can surface carries a kind and the HTTP status it
// maps to, so transport code never has to guess.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind identifies a failure category. Each kind maps to exactly one
// HTTP status.
type Kind int

const (
	KindUnexpected Kind = iota
	KindEmailFormat
	KindWeakPassword
	KindWeakName
	KindUserAlreadyExists
	KindInvalidCredentials
	KindUserNotFound
	KindDatabaseOperation
)

// Error is a tagged error carrying (kind, message, status). Low-level
// causes are wrapped and reachable via errors.Unwrap but never included
// in the client-facing message.
type Error struct {
	Kind    Kind
	Status  int
	Message string
	cause   error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.cause
}

// Is lets errors.Is match two taxonomy errors by kind, so callers can
// compare against a constructor result without caring about the
// formatted message.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e.Kind == t.Kind
}

func EmailFormat(email string) *Error {
	return &Error{
		Kind:    KindEmailFormat,
		Status:  http.StatusBadRequest,
		Message: fmt.Sprintf("Invalid email format: %s", email),
	}
}

func WeakPassword() *Error {
	return &Error{
		Kind:    KindWeakPassword,
		Status:  http.StatusBadRequest,
		Message: "Password must be at least 6 characters long",
	}
}

func WeakName() *Error {
	return &Error{
		Kind:    KindWeakName,
		Status:  http.StatusBadRequest,
		Message: "Name must be at least 6 characters long",
	}
}

func UserAlreadyExists(email string) *Error {
	return &Error{
		Kind:    KindUserAlreadyExists,
		Status:  http.StatusConflict,
		Message: fmt.Sprintf("User with email %s already exists", email),
	}
}

func InvalidCredentials() *Error {
	return &Error{
		Kind:    KindInvalidCredentials,
		Status:  http.StatusUnauthorized,
		Message: "Invalid email or password",
	}
}

func UserNotFound(id string) *Error {
	return &Error{
		Kind:    KindUserNotFound,
		Status:  http.StatusNotFound,
		Message: fmt.Sprintf("User with ID %s not found", id),
	}
}

// DatabaseOperation wraps a persistence fault. The operation name is
// all the client sees; the driver error stays wrapped.
func DatabaseOperation(operation string, cause error) *Error {
	return &Error{
		Kind:    KindDatabaseOperation,
		Status:  http.StatusInternalServerError,
		Message: fmt.Sprintf("Database operation failed: %s", operation),
		cause:   cause,
	}
}

func Unexpected(cause error) *Error {
	return &Error{
		Kind:    KindUnexpected,
		Status:  http.StatusInternalServerError,
		Message: "Internal server error",
		cause:   cause,
	}
}

// IsKind reports whether err is a taxonomy error of the given kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}

// StatusOf returns the HTTP status for err, or 500 for anything outside
// the taxonomy.
func StatusOf(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.Status
	}
	return http.StatusInternalServerError
}
