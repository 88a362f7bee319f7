// Released under an MIT license. See LICENSE.

// Package table provides the fixed lookup tables for reserved words and
// primitive names. A table is built once per interpreter and shared,
// read-only, by the parser and the evaluator.
package table

import (
	"github.com/michaelmacinnis/ratscheme/internal/common/op"
)

// Form identifies a special form.
type Form int

// Special forms.
const (
	None Form = iota

	And
	Begin
	Cond
	Define
	If
	Lambda
	Let
	Letrec
	Or
	Quote
	Set
)

// Variadic marks a primitive with no upper bound on its argument count.
const Variadic = -1

// Primitive describes a primitive operator.
type Primitive struct {
	Code op.Code
	Min  int // Fewest arguments accepted.
	Max  int // Most arguments accepted, or Variadic.
}

// Fixed returns true if p accepts exactly one number of arguments.
func (p *Primitive) Fixed() bool {
	return p.Min == p.Max
}

// Name returns the name p is bound to.
func (p *Primitive) Name() string {
	return p.Code.String()
}

// T (table) holds the reserved word and primitive tables.
type T struct {
	primitives map[string]*Primitive
	reserved   map[string]Form
}

type table = T

// New builds the tables.
func New() *table {
	t := &table{
		primitives: map[string]*Primitive{},
		reserved: map[string]Form{
			"and":    And,
			"begin":  Begin,
			"cond":   Cond,
			"define": Define,
			"if":     If,
			"lambda": Lambda,
			"let":    Let,
			"letrec": Letrec,
			"or":     Or,
			"quote":  Quote,
			"set!":   Set,
		},
	}

	fixed := func(c op.Code, n int) {
		t.primitives[c.String()] = &Primitive{Code: c, Min: n, Max: n}
	}

	ranged := func(c op.Code, min, max int) {
		t.primitives[c.String()] = &Primitive{Code: c, Min: min, Max: max}
	}

	ranged(op.Add, 0, Variadic)
	ranged(op.Sub, 1, Variadic)
	ranged(op.Mul, 0, Variadic)
	ranged(op.Div, 1, Variadic)
	fixed(op.Modulo, 2)
	fixed(op.Expt, 2)

	for _, c := range []op.Code{op.Lt, op.Le, op.NumEq, op.Ge, op.Gt} {
		ranged(c, 0, Variadic)
	}

	fixed(op.Eq, 2)
	fixed(op.Not, 1)

	fixed(op.Cons, 2)
	fixed(op.Car, 1)
	fixed(op.Cdr, 1)
	fixed(op.SetCar, 2)
	fixed(op.SetCdr, 2)
	ranged(op.List, 0, Variadic)

	for _, c := range []op.Code{
		op.IsBoolean, op.IsList, op.IsNull, op.IsNumber,
		op.IsPair, op.IsProcedure, op.IsString, op.IsSymbol,
	} {
		fixed(c, 1)
	}

	fixed(op.Display, 1)
	ranged(op.Exit, 0, 1)
	fixed(op.Void, 0)

	return t
}

// IsPrimitive returns true if name is a primitive.
func (t *table) IsPrimitive(name string) bool {
	_, ok := t.primitives[name]

	return ok
}

// IsReserved returns true if name is a reserved word.
func (t *table) IsReserved(name string) bool {
	_, ok := t.reserved[name]

	return ok
}

// Primitive returns the primitive bound to name, or nil.
func (t *table) Primitive(name string) *Primitive {
	return t.primitives[name]
}

// Reserved returns the special form for name, or None.
func (t *table) Reserved(name string) Form {
	return t.reserved[name]
}
