// internal/pkg/apperror/errors.go
package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an application error
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindNotFound
	KindUnauthorized
	KindConflict
	KindStorage
	KindDuplicateOrderNumber
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindUnauthorized:
		return "unauthorized"
	case KindConflict:
		return "conflict"
	case KindStorage:
		return "storage"
	case KindDuplicateOrderNumber:
		return "duplicate_order_number"
	default:
		return "internal"
	}
}

// Error is the error type returned by domain services.
// Message is safe to show to clients; Err carries the underlying cause.
type Error struct {
	Kind    Kind
	Message string
	Fields  map[string]string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches another *Error of the same kind, so errors.Is(err, ErrDuplicateOrderNumber) works
// through wrapping.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && (t.Message == "" || t.Message == e.Message)
}

// ErrDuplicateOrderNumber is returned when an order number collides with an existing one
var ErrDuplicateOrderNumber = &Error{Kind: KindDuplicateOrderNumber, Message: "order number already exists"}

// Validation creates a validation error with a readable reason
func Validation(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

// ValidationFields creates a validation error carrying per-field reasons
func ValidationFields(message string, fields map[string]string) *Error {
	return &Error{Kind: KindValidation, Message: message, Fields: fields}
}

// NotFound creates a not found error for a resource
func NotFound(resource string) *Error {
	return &Error{Kind: KindNotFound, Message: resource + " not found"}
}

// Unauthorized creates an unauthorized error
func Unauthorized(message string) *Error {
	return &Error{Kind: KindUnauthorized, Message: message}
}

// Conflict creates a conflict error
func Conflict(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

// Storage wraps a persistence failure. The cause is kept for logs only.
func Storage(op string, err error) *Error {
	return &Error{Kind: KindStorage, Message: "failed to " + op, Err: err}
}

// KindOf returns the kind of err, or KindInternal for foreign errors
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// IsKind reports whether err is an application error of the given kind
func IsKind(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

// HTTPStatus maps err to an HTTP status code
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindConflict, KindDuplicateOrderNumber:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// PublicMessage returns the message that may be sent to clients
func PublicMessage(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) && appErr.Kind != KindInternal && appErr.Kind != KindStorage {
		return appErr.Message
	}
	return "Internal server error"
}
