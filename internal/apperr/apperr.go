// Package apperr carries the error taxonomy the API layer maps to HTTP
// status codes: NotFound, Conflict, Unauthorized, Forbidden, BadRequest.
package apperr

import "errors"

type Kind int

const (
	Internal Kind = iota
	NotFound
	Conflict
	Unauthorized
	Forbidden
	BadRequest
)

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "internal error"
}

func (e *Error) Unwrap() error { return e.Err }

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// KindOf extracts the kind from err, or Internal for plain errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Internal
}
