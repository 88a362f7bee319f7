// Released under an MIT license. See LICENSE.

// Package scope defines the interface for lexical environments.
package scope

import (
	"github.com/michaelmacinnis/ratscheme/internal/common/interface/cell"
	"github.com/michaelmacinnis/ratscheme/internal/common/interface/reference"
)

// I (scope) is a chain of frames mapping names to mutable cells.
type I interface {
	cell.I

	// Define binds k to a fresh cell holding v in the innermost frame.
	Define(k string, v cell.I) reference.I

	// Extend returns a new, empty frame in front of the current one.
	Extend() I

	// Lookup finds the innermost cell bound to k, or nil.
	Lookup(k string) reference.I

	// Modify overwrites the innermost cell bound to k. It never creates
	// a binding and reports whether one was found.
	Modify(k string, v cell.I) bool
}

type scope = I

// Is returns true if c is a scope.
func Is(c cell.I) bool {
	_, ok := c.(scope)

	return ok
}
