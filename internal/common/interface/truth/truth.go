// Released under an MIT license. See LICENSE.

// Package truth defines the interface for values with a truth value.
package truth

import (
	"github.com/michaelmacinnis/ratscheme/internal/common/interface/cell"
)

// I (truth) is anything that has its own notion of true or false.
type I interface {
	Bool() bool
}

// Value returns the truth value for a cell. Only values implementing I
// can be false; everything else, including 0 and (), is true.
func Value(c cell.I) bool {
	b, ok := c.(I)
	if !ok {
		return true
	}

	return b.Bool()
}
