// Released under an MIT license. See LICENSE.

// Package closure provides user-defined procedures.
package closure

import (
	"github.com/michaelmacinnis/ratscheme/internal/common"
	"github.com/michaelmacinnis/ratscheme/internal/common/interface/cell"
	"github.com/michaelmacinnis/ratscheme/internal/common/interface/literal"
	"github.com/michaelmacinnis/ratscheme/internal/common/interface/scope"
	"github.com/michaelmacinnis/ratscheme/internal/expr"
)

const name = "procedure"

// T (closure) is a procedure body paired with the scope it was created in.
type T struct {
	body   expr.I
	params []string
	scope  scope.I
}

type closure = T

// New creates a new closure. The scope s is captured by reference.
func New(params []string, body expr.I, s scope.I) cell.I {
	return &closure{
		body:   body,
		params: params,
		scope:  s,
	}
}

// Body returns the body of the closure c.
func (c *closure) Body() expr.I {
	return c.body
}

// Equal returns true if v is the same closure as c.
func (c *closure) Equal(v cell.I) bool {
	return Is(v) && c == To(v)
}

// Literal returns the literal representation of the closure c.
func (c *closure) Literal() string {
	return "#<" + name + ">"
}

// Name returns the type name for the closure c.
func (c *closure) Name() string {
	return name
}

// Params returns the parameter names of the closure c.
func (c *closure) Params() []string {
	return c.params
}

// Scope returns the scope captured by the closure c.
func (c *closure) Scope() scope.I {
	return c.scope
}

// String returns the text of the closure c.
func (c *closure) String() string {
	return c.Literal()
}

// Is returns true if c is a closure.
func Is(c cell.I) bool {
	_, ok := c.(*closure)

	return ok
}

// To returns a closure if c is a closure; Otherwise it panics.
func To(c cell.I) *closure {
	if t, ok := c.(*closure); ok {
		return t
	}

	panic("not a " + name)
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t closure

	// The closure type is a cell.
	_ = cell.I(&t)

	// The closure type has a literal representation.
	_ = literal.I(&t)

	// The closure type is a stringer.
	_ = common.Stringer(&t)
}
