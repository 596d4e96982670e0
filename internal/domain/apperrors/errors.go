// Package apperrors defines the error kinds surfaced by the auth and todo flows.
package apperrors

import "errors"

// Kind classifies a failure for the caller.
type Kind string

const (
	KindUnknown         Kind = "UNKNOWN"
	KindConflict        Kind = "CONFLICT"
	KindUnauthenticated Kind = "UNAUTHENTICATED"
	KindNotFound        Kind = "NOT_FOUND"
	KindForbidden       Kind = "FORBIDDEN"
	// KindInvalid marks malformed input.
	KindInvalid Kind = "INVALID"
)

// Error is a classified error with an optional cause.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

// Unwrap returns the underlying cause for error chain traversal.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is an *Error of the same kind.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Kind == t.Kind
	}
	return false
}

// New creates a classified error.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap creates a classified error around a cause.
func Wrap(kind Kind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, Cause: cause}
}

// KindOf returns the kind of the first *Error in err's chain, or KindUnknown.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindUnknown
}

// Sentinels for errors.Is checks.
var (
	ErrConflict        = New(KindConflict, "conflict")
	ErrUnauthenticated = New(KindUnauthenticated, "unauthenticated")
	ErrNotFound        = New(KindNotFound, "not found")
	ErrForbidden       = New(KindForbidden, "forbidden")
	ErrInvalid         = New(KindInvalid, "invalid input")
)
