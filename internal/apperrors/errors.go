// Package apperrors defines the error kinds returned across service boundaries.
//
// Services return *Error values carrying a Kind and a short, client-safe
// message. The HTTP layer maps kinds to status codes; nothing below it knows
// about HTTP.
//
//	if apperrors.IsKind(err, apperrors.KindNotFound) { ... }
//	if errors.Is(err, apperrors.ErrConflict) { ... }
package apperrors

import (
	"errors"
	"fmt"
)

// Kind classifies a service error.
type Kind string

const (
	KindInternal     Kind = "internal"
	KindConflict     Kind = "conflict"      // duplicate unique field
	KindNotFound     Kind = "not_found"     // referenced entity absent
	KindUnauthorized Kind = "unauthorized"  // wrong actor, or invalid/expired/missing token
	KindBadRequest   Kind = "bad_request"   // bad credentials at login
	KindValidation   Kind = "validation"    // malformed input
)

// Sentinels usable with errors.Is; an *Error matches the sentinel of its kind.
var (
	ErrConflict     = errors.New("conflict")
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("unauthorized")
	ErrBadRequest   = errors.New("bad request")
	ErrValidation   = errors.New("validation failed")
)

var sentinels = map[Kind]error{
	KindConflict:     ErrConflict,
	KindNotFound:     ErrNotFound,
	KindUnauthorized: ErrUnauthorized,
	KindBadRequest:   ErrBadRequest,
	KindValidation:   ErrValidation,
}

// Error is a classified error with a message that is safe to show to clients.
type Error struct {
	Kind    Kind
	Message string
	Err     error // underlying cause, never shown to clients
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel for this error's kind.
func (e *Error) Is(target error) bool {
	s, ok := sentinels[e.Kind]
	return ok && s == target
}

func newError(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Conflict(message string) *Error     { return newError(KindConflict, message) }
func NotFound(message string) *Error     { return newError(KindNotFound, message) }
func Unauthorized(message string) *Error { return newError(KindUnauthorized, message) }
func BadRequest(message string) *Error   { return newError(KindBadRequest, message) }
func Validation(message string) *Error   { return newError(KindValidation, message) }

// Internal wraps an unexpected failure. The message is generic;
// the cause stays in Err for logging.
func Internal(err error) *Error {
	return &Error{Kind: KindInternal, Message: "internal server error", Err: err}
}

// Wrap attaches a cause to an existing classified error.
func (e *Error) Wrap(err error) *Error {
	return &Error{Kind: e.Kind, Message: e.Message, Err: err}
}

// KindOf returns the kind of err, or KindInternal for unclassified errors.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// IsKind reports whether err is classified as kind.
func IsKind(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

// MessageOf returns the client-safe message of err.
func MessageOf(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return "internal server error"
}
