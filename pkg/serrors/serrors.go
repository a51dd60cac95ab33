// Package serrors implements semantic errors: a small set of kinds describing
// what went wrong from the caller's point of view, attached to an optional
// cause and a human readable message. Kinds travel through fmt.Errorf("%w")
// wrapping and are matched with errors.Is / errors.As.
package serrors

import (
	"errors"
	"fmt"
)

// Kind is a semantic error category. Only NewKind produces values.
type Kind interface {
	error
	isKind()
}

type kind struct{ name string }

func (k kind) Error() string { return k.name }
func (k kind) isKind()       {}

// NewKind declares a new semantic kind.
func NewKind(name string) Kind { return kind{name: name} }

// Kinds understood by the transport layer. See HTTPStatus.
var (
	ErrNotFound     = NewKind("NOT_FOUND")
	ErrUnauthorized = NewKind("UNAUTHORIZED")
	ErrForbidden    = NewKind("FORBIDDEN")
	ErrBadRequest   = NewKind("BAD_REQUEST")
	ErrConflict     = NewKind("CONFLICT")
	ErrInternal     = NewKind("INTERNAL")
	ErrTimeout      = NewKind("TIMEOUT")
	ErrUnavailable  = NewKind("UNAVAILABLE")
	ErrRateLimited  = NewKind("RATE_LIMITED")
)

// Error carries a kind, an optional cause and an optional message.
//
// errors.Is and errors.As match both the kind and anything in the cause chain.
// The message is what clients see; the cause is only logged.
type Error struct {
	kind Kind
	err  error
	msg  string
}

// With returns an error of kind k with a formatted message and no cause.
func With(k Kind, msgFmt string, args ...any) *Error {
	return &Error{kind: k, msg: fmt.Sprintf(msgFmt, args...)}
}

// Wrap returns an error of kind k wrapping err with a formatted message.
func Wrap(k Kind, err error, msgFmt string, args ...any) *Error {
	return &Error{kind: k, err: err, msg: fmt.Sprintf(msgFmt, args...)}
}

// KindOnly returns a bare error of kind k.
func KindOnly(k Kind) *Error { return &Error{kind: k} }

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}

	switch {
	case e.msg != "" && e.err != nil:
		return e.msg + ": " + e.err.Error()
	case e.msg != "":
		return e.msg
	case e.err != nil:
		return e.err.Error()
	case e.kind != nil:
		return e.kind.Error()
	}

	return "unknown error"
}

func (e *Error) Unwrap() error { return e.err }

func (e *Error) Is(target error) bool {
	if e == nil || target == nil {
		return e == nil && target == nil
	}

	return (e.kind != nil && errors.Is(e.kind, target)) ||
		(e.err != nil && errors.Is(e.err, target))
}

func (e *Error) As(target any) bool {
	if e == nil || target == nil {
		return false
	}

	return (e.kind != nil && errors.As(e.kind, target)) ||
		(e.err != nil && errors.As(e.err, target))
}

// Kind returns the semantic kind, possibly nil.
func (e *Error) Kind() Kind { return e.kind }

// Message returns the client facing message.
func (e *Error) Message() string { return e.msg }

// Cause returns the wrapped error, possibly nil.
func (e *Error) Cause() error { return e.err }
