// Released under an MIT license. See LICENSE.

// Package integer converts a cell to an int32 value, if possible.
package integer

import (
	"github.com/michaelmacinnis/ratscheme/internal/common/interface/cell"
	"github.com/michaelmacinnis/ratscheme/internal/common/rterr"
)

// I (integer) is anything with an exact integer value.
type I interface {
	Int() int32
}

// Value returns the int32 value for a cell, if possible.
// Rationals, even those with a denominator of one, are not integers.
func Value(label string, c cell.I) int32 {
	i, ok := c.(I)
	if !ok {
		rterr.Raise("%s: expected an integer, got %s", label, c.Name())
	}

	return i.Int()
}
