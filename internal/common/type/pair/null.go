// Released under an MIT license. See LICENSE.

package pair

import (
	"github.com/michaelmacinnis/ratscheme/internal/common/interface/cell"
)

type null struct{}

// Equal returns true if c is also the empty list.
func (n *null) Equal(c cell.I) bool {
	return c == Null
}

// Literal returns the literal representation of the empty list.
func (n *null) Literal() string {
	return "()"
}

// Name returns the type name for the empty list.
func (n *null) Name() string {
	return "null"
}

// String returns the text of the empty list.
func (n *null) String() string {
	return n.Literal()
}
