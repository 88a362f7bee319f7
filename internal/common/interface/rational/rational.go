// Released under an MIT license. See LICENSE.

// Package rational defines the interface for exact numeric types.
package rational

import (
	"github.com/michaelmacinnis/ratscheme/internal/common/interface/cell"
	"github.com/michaelmacinnis/ratscheme/internal/common/rterr"
)

// I (rational) is anything that can be treated as an exact number.
// The denominator is always positive.
type I interface {
	Fraction() (num, den int64)
}

type rational = I

// Is returns true if c can be used in a numeric context.
func Is(c cell.I) bool {
	_, ok := c.(rational)

	return ok
}

// Number returns the numerator and denominator for a cell, if possible.
// The label identifies the operation in the error raised otherwise.
func Number(label string, c cell.I) (num, den int64) {
	r, ok := c.(rational)
	if !ok {
		rterr.Raise("%s: expected a number, got %s", label, c.Name())
	}

	return r.Fraction()
}
