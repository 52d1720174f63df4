// Package errors provides a small error type whose chained Wrap method
// lets sentinel errors carry situation-specific messages without
// fmt.Errorf("%w", ...) at every call site.
package errors

import (
	stderr "errors"
)

var _ error = New("")

// New returns an Error with the given message and no cause.
func New(msg string) *Error {
	return &Error{msg: msg}
}

// Error is a message plus an optional wrapped cause. It plays well
// with the standard errors.Is/errors.As chain walking.
type Error struct {
	msg string
	err error
}

// Error returns the message.
func (e *Error) Error() string {
	return e.msg
}

// Unwrap returns the wrapped cause, if any.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.err
}

// Wrap records err as the cause and returns the receiver, so sentinel
// matching (errors.Is against the cause) keeps working on the result.
func (e *Error) Wrap(err error) *Error {
	e.err = err
	return e
}

// Is matches on identity of the error itself or its direct cause.
func (e *Error) Is(target error) bool {
	return e == target || e.err == target
}

// Is reports whether any error in err's chain matches target
// (a shortcut to the standard library).
func Is(err, target error) bool {
	return stderr.Is(err, target)
}

// As finds the first error in err's chain matching target
// (a shortcut to the standard library).
func As(err error, target interface{}) bool {
	return stderr.As(err, target)
}
