// Released under an MIT license. See LICENSE.

// Package rterr provides the single error kind raised while reading,
// parsing or evaluating.
package rterr

import (
	"fmt"
)

// T (rterr) is a runtime error with a human-readable message.
type T struct {
	msg string
}

type rterr = T

// New creates a new rterr with a formatted message.
func New(format string, a ...interface{}) *rterr {
	return &rterr{msg: fmt.Sprintf(format, a...)}
}

// Error returns the message for the rterr e.
func (e *rterr) Error() string {
	return e.msg
}

// Raise panics with a new rterr. Errors unwind to the nearest Catch.
func Raise(format string, a ...interface{}) {
	panic(New(format, a...))
}

// Catch is deferred by entry points to turn a raised rterr into an error.
// Anything else that was raised is not ours to handle and is re-raised.
func Catch(err *error) {
	r := recover()
	if r == nil {
		return
	}

	e, ok := r.(*rterr)
	if !ok {
		panic(r)
	}

	*err = e
}
