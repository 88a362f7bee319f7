// Released under an MIT license. See LICENSE.

// Package cell defines the interface for all runtime values.
package cell

// I (cell) is the basic unit of storage.
//
// Equal reports identity in the sense of eq?: integers, booleans, symbols,
// the empty list and void compare by value; everything else by reference.
type I interface {
	Equal(c I) bool
	Name() string
}
