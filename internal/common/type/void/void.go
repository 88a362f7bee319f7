// Released under an MIT license. See LICENSE.

// Package void provides the value of side-effecting forms.
package void

import (
	"github.com/michaelmacinnis/ratscheme/internal/common"
	"github.com/michaelmacinnis/ratscheme/internal/common/interface/cell"
	"github.com/michaelmacinnis/ratscheme/internal/common/interface/literal"
)

const name = "void"

// T (void) has a single value, Void.
type T struct{}

type void = T

// Void is the only void value.
var Void cell.I = &void{} //nolint:gochecknoglobals

// Equal returns true if c is also Void.
func (v *void) Equal(c cell.I) bool {
	return c == Void
}

// Literal returns the literal representation of Void.
func (v *void) Literal() string {
	return "#<void>"
}

// Name returns the type name for Void.
func (v *void) Name() string {
	return name
}

// String returns the text of Void.
func (v *void) String() string {
	return v.Literal()
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t void

	// The void type is a cell.
	_ = cell.I(&t)

	// The void type has a literal representation.
	_ = literal.I(&t)

	// The void type is a stringer.
	_ = common.Stringer(&t)
}
