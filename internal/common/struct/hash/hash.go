// Released under an MIT license. See LICENSE.

// Package hash provides a single frame's mapping of names to slots.
package hash

import (
	"github.com/michaelmacinnis/ratscheme/internal/common/interface/cell"
	"github.com/michaelmacinnis/ratscheme/internal/common/interface/reference"
	"github.com/michaelmacinnis/ratscheme/internal/common/struct/slot"
)

// T (hash) maps names to references.
type T struct {
	m map[string]reference.I
}

type hash = T

// New creates a new hash.
func New() *hash {
	return &hash{m: map[string]reference.I{}}
}

// Get retrieves the reference associated with the name k in the hash h.
func (h *hash) Get(k string) reference.I {
	if h == nil {
		return nil
	}

	return h.m[k]
}

// Set associates the name k with a fresh slot holding v in the hash h.
// An existing association is replaced, not overwritten, so anything still
// holding the old slot keeps its value.
func (h *hash) Set(k string, v cell.I) reference.I {
	r := slot.New(v)
	h.m[k] = r

	return r
}
