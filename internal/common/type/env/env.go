// Released under an MIT license. See LICENSE.

// Package env provides the lexical environment type.
package env

import (
	"github.com/michaelmacinnis/ratscheme/internal/common/interface/cell"
	"github.com/michaelmacinnis/ratscheme/internal/common/interface/reference"
	"github.com/michaelmacinnis/ratscheme/internal/common/interface/scope"
	"github.com/michaelmacinnis/ratscheme/internal/common/struct/hash"
)

const name = "environment"

// T (env) is one frame of names bound to slots plus the frame it extends.
// Extending never touches the enclosing frames, so anything that captured
// an env keeps seeing exactly the frames it captured.
type T struct {
	previous scope.I
	*frame
}

type env = T

// We alias hash.T to frame so that when embedded it is easy to refer to
// it by name. Embedding frame also lets us access its methods directly.
type frame = hash.T

// New creates a new env in front of previous, which may be nil.
func New(previous scope.I) scope.I {
	return &env{
		previous: previous,
		frame:    hash.New(),
	}
}

// Define binds the name k to a fresh slot holding v in the innermost frame.
func (e *env) Define(k string, v cell.I) reference.I {
	return e.Set(k, v)
}

// Equal returns true if c is the same env as e.
func (e *env) Equal(c cell.I) bool {
	return Is(c) && e == To(c)
}

// Extend creates a new, empty frame in front of e.
func (e *env) Extend() scope.I {
	return New(e)
}

// Lookup retrieves the reference associated with the name k in the env e.
func (e *env) Lookup(k string) reference.I {
	var s scope.I = e

	for s != nil {
		f := To(s)
		if r := f.Get(k); r != nil {
			return r
		}

		s = f.previous
	}

	return nil
}

// Modify overwrites the value bound to k, wherever it is in the chain.
func (e *env) Modify(k string, v cell.I) bool {
	r := e.Lookup(k)
	if r == nil {
		return false
	}

	r.Set(v)

	return true
}

// Name returns the type name for the env e.
func (e *env) Name() string {
	return name
}

// Is returns true if c is an env.
func Is(c cell.I) bool {
	_, ok := c.(*env)

	return ok
}

// To returns an env if c is an env; Otherwise it panics.
func To(c cell.I) *env {
	if t, ok := c.(*env); ok {
		return t
	}

	panic("not an " + name)
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t env

	// The env type is a cell.
	_ = cell.I(&t)

	// The env type is a scope.
	_ = scope.I(&t)
}
