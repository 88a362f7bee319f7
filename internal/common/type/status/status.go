// Released under an MIT license. See LICENSE.

// Package status provides the termination signal produced by (exit).
package status

import (
	"fmt"

	"github.com/michaelmacinnis/ratscheme/internal/common/interface/cell"
	"github.com/michaelmacinnis/ratscheme/internal/common/interface/literal"
)

const name = "terminate"

// T (status) asks the driver to stop with an exit code.
type T struct {
	code int
}

type status = T

// New creates a new status with the exit code c.
func New(code int) cell.I {
	return &status{code: code}
}

// Code returns the exit code for the status s.
func (s *status) Code() int {
	return s.code
}

// Equal returns true if c is the same status as s.
func (s *status) Equal(c cell.I) bool {
	return Is(c) && s == To(c)
}

// Literal returns the literal representation of the status s.
func (s *status) Literal() string {
	return "#<" + name + ">"
}

// Name returns the type name for the status s.
func (s *status) Name() string {
	return name
}

// String returns the text of the status s.
func (s *status) String() string {
	return fmt.Sprintf("#<%s %d>", name, s.code)
}

// Is returns true if c is a status.
func Is(c cell.I) bool {
	_, ok := c.(*status)

	return ok
}

// To returns a status if c is a status; Otherwise it panics.
func To(c cell.I) *status {
	if t, ok := c.(*status); ok {
		return t
	}

	panic("not a " + name)
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t status

	// The status type is a cell.
	_ = cell.I(&t)

	// The status type has a literal representation.
	_ = literal.I(&t)

	// The status type is a stringer.
	_ = fmt.Stringer(&t)
}
