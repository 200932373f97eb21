// Package apperr defines the tagged error kinds the central error boundary
// matches on. Handlers wrap store and gateway failures into an *Error instead
// of letting untyped errors (or error-name string matching) decide the
// response.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

type Kind int

const (
	KindNotFound Kind = iota + 1
	KindTypeMismatch
	KindUnauthorized
	KindForbidden
	KindValidation
	KindBadRequest
	KindPaymentGateway
	KindInternal
)

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// Status maps each kind to its HTTP status. The default arm keeps the
// boundary total even if a new kind is added without a mapping.
func (e *Error) Status() int {
	switch e.Kind {
	case KindNotFound:
		return http.StatusNotFound
	case KindTypeMismatch:
		return http.StatusInternalServerError
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindValidation:
		return http.StatusUnprocessableEntity
	case KindBadRequest:
		return http.StatusBadRequest
	case KindPaymentGateway:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// PublicMessage is what gets rendered to the client. Internal detail stays in
// Err and only reaches the logs.
func (e *Error) PublicMessage() string {
	switch e.Kind {
	case KindNotFound:
		return "Page not found"
	case KindTypeMismatch, KindInternal:
		return "Something Went Wrong Internally"
	case KindPaymentGateway:
		return "payment gateway unavailable"
	default:
		return e.Message
	}
}

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

func NotFound(message string) *Error     { return New(KindNotFound, message) }
func Validation(message string) *Error   { return New(KindValidation, message) }
func Unauthorized(message string) *Error { return New(KindUnauthorized, message) }

// As extracts an *Error from an error chain.
func As(err error) (*Error, bool) {
	var e *Error
	ok := errors.As(err, &e)
	return e, ok
}
