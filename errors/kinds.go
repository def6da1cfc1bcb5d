// api/errors/kinds.go
package errors

import (
	"context"
	"errors"
	"fmt"
)

// Kinds every service error belongs to. Entity errors below wrap exactly one of them.
var (
	ErrNotFound           = errors.New("not found")
	ErrConflict           = errors.New("conflict")
	ErrValidation         = errors.New("validation error")
	ErrInvalidState       = errors.New("invalid state")
	ErrOutOfOrder         = errors.New("out of order")
	ErrStorageUnavailable = errors.New("storage unavailable")
	ErrTimeout            = errors.New("timeout")

	ErrUnauthorized      = errors.New("unauthorized")
	ErrInternalServer    = errors.New("internal server error")
	ErrInvalidPagination = errors.New("invalid pagination parameters")
)

var kinds = []error{
	ErrNotFound,
	ErrConflict,
	ErrValidation,
	ErrInvalidState,
	ErrOutOfOrder,
	ErrStorageUnavailable,
	ErrTimeout,
	ErrUnauthorized,
	ErrInvalidPagination,
}

// Error carries a kind, a human readable message and an optional cause.
type Error struct {
	Kind    error
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() []error {
	if e.Err != nil {
		return []error{e.Kind, e.Err}
	}
	return []error{e.Kind}
}

func New(kind error, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Newf(kind error, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap attaches a cause to a kind. Context deadline errors always become ErrTimeout.
func Wrap(kind error, err error, message string) *Error {
	if errors.Is(err, context.DeadlineExceeded) {
		kind = ErrTimeout
	}
	return &Error{Kind: kind, Message: message, Err: err}
}

// Validation is shorthand for a ValidationError with a formatted message.
func Validation(format string, args ...interface{}) *Error {
	return Newf(ErrValidation, format, args...)
}

// KindOf returns the kind err belongs to, or ErrInternalServer.
func KindOf(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return ErrTimeout
	}
	for _, k := range kinds {
		if errors.Is(err, k) {
			return k
		}
	}
	return ErrInternalServer
}

// KindName is the wire name of a kind.
func KindName(kind error) string {
	switch kind {
	case ErrNotFound:
		return "NotFound"
	case ErrConflict:
		return "Conflict"
	case ErrValidation:
		return "ValidationError"
	case ErrInvalidState:
		return "InvalidState"
	case ErrOutOfOrder:
		return "OutOfOrder"
	case ErrStorageUnavailable:
		return "StorageUnavailable"
	case ErrTimeout:
		return "Timeout"
	case ErrUnauthorized:
		return "Unauthorized"
	case ErrInvalidPagination:
		return "ValidationError"
	default:
		return "Internal"
	}
}
