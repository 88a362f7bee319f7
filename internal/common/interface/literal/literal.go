// Released under an MIT license. See LICENSE.

// Package literal defines the interface for values with a canonical textual form.
package literal

import (
	"github.com/michaelmacinnis/ratscheme/internal/common/interface/cell"
)

// I (literal) is any type that can be written in canonical form.
type I interface {
	Literal() string
}

// String returns the canonical textual form for a cell.
func String(c cell.I) string {
	if c == nil {
		return "#<nil>"
	}

	l, ok := c.(I)
	if !ok {
		return "#<" + c.Name() + ">"
	}

	return l.Literal()
}
