// Released under an MIT license. See LICENSE.

// Package primitive provides built-in operators as first-class procedures.
package primitive

import (
	"github.com/michaelmacinnis/ratscheme/internal/common"
	"github.com/michaelmacinnis/ratscheme/internal/common/interface/cell"
	"github.com/michaelmacinnis/ratscheme/internal/common/interface/literal"
	"github.com/michaelmacinnis/ratscheme/internal/common/table"
)

const name = "procedure"

// T (primitive) wraps a primitive operator.
type T struct {
	*table.Primitive
}

type primitive = T

// New creates a new primitive procedure for p.
func New(p *table.Primitive) cell.I {
	return &primitive{p}
}

// Equal returns true if c is a primitive for the same operator.
func (p *primitive) Equal(c cell.I) bool {
	return Is(c) && p.Code == To(c).Code
}

// Literal returns the literal representation of the primitive p.
func (p *primitive) Literal() string {
	return "#<primitive " + p.Primitive.Name() + ">"
}

// Name returns the type name for the primitive p.
func (p *primitive) Name() string {
	return name
}

// String returns the text of the primitive p.
func (p *primitive) String() string {
	return p.Literal()
}

// Is returns true if c is a primitive.
func Is(c cell.I) bool {
	_, ok := c.(*primitive)

	return ok
}

// To returns a primitive if c is a primitive; Otherwise it panics.
func To(c cell.I) *primitive {
	if t, ok := c.(*primitive); ok {
		return t
	}

	panic("not a " + name)
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t primitive

	// The primitive type is a cell.
	_ = cell.I(&t)

	// The primitive type has a literal representation.
	_ = literal.I(&t)

	// The primitive type is a stringer.
	_ = common.Stringer(&t)
}
