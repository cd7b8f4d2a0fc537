package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a failure into the response class the API exposes.
type Kind int

const (
	KindValidation Kind = iota // 400, field errors
	KindUnauthorized           // 401
	KindNotFound               // 404
	KindConflict               // 400, domain conflict such as a duplicate like
	KindInternal               // 500
)

// FieldError is one field/message pair inside a validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error is the single error type services return to handlers.
// Fields is populated only for KindValidation.
type Error struct {
	Kind    Kind
	Message string
	Fields  []FieldError
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.cause }

// Status maps the error kind to an HTTP status code.
func (e *Error) Status() int {
	switch e.Kind {
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindNotFound:
		return http.StatusNotFound
	case KindValidation, KindConflict:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func Validation(fields []FieldError) *Error {
	return &Error{Kind: KindValidation, Message: "validation failed", Fields: fields}
}

func Unauthorized(msg string) *Error {
	return &Error{Kind: KindUnauthorized, Message: msg}
}

func NotFound(msg string) *Error {
	return &Error{Kind: KindNotFound, Message: msg}
}

func Conflict(msg string) *Error {
	return &Error{Kind: KindConflict, Message: msg}
}

func Internal(cause error) *Error {
	return &Error{Kind: KindInternal, Message: "server error", cause: cause}
}

// From extracts an *Error, wrapping anything unexpected as internal so
// storage-layer detail never reaches a response body.
func From(err error) *Error {
	var ae *Error
	if errors.As(err, &ae) {
		return ae
	}
	return Internal(err)
}
