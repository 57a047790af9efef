package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies a failure for the HTTP boundary.
type Kind int

const (
	Internal Kind = iota
	Validation
	Auth
	Forbidden
	NotFound
	// State covers requests that are well-formed but arrive in the wrong
	// lifecycle state: attendance window closed, poll no longer active,
	// option from another poll.
	State
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

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

func Validationf(format string, args ...any) *Error {
	return &Error{Kind: Validation, Message: fmt.Sprintf(format, args...)}
}

func NotFoundf(format string, args ...any) *Error {
	return &Error{Kind: NotFound, Message: fmt.Sprintf(format, args...)}
}

func Statef(format string, args ...any) *Error {
	return &Error{Kind: State, Message: fmt.Sprintf(format, args...)}
}

func Authf(format string, args ...any) *Error {
	return &Error{Kind: Auth, Message: fmt.Sprintf(format, args...)}
}

// KindOf extracts the Kind from err, defaulting to Internal for anything
// that is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Internal
}

// MessageOf returns the client-safe message for err. Internal failures are
// masked; their details stay in the server log.
func MessageOf(err error) string {
	var e *Error
	if errors.As(err, &e) && e.Kind != Internal {
		return e.Message
	}
	return "Internal server error"
}
