// Released under an MIT license. See LICENSE.

// Package expr provides the typed expression tree built by the parser and
// walked by the evaluator. Nodes are immutable once built and may be
// evaluated any number of times.
package expr

import (
	"github.com/michaelmacinnis/ratscheme/internal/common/op"
	"github.com/michaelmacinnis/ratscheme/internal/reader/syntax"
)

// I (expr) is a node in the expression tree. The set of nodes is closed.
type I interface {
	expr()
}

type node struct{}

func (node) expr() {}

// Boolean is the literal #t or #f.
type Boolean struct {
	node
	Value bool
}

// Exit produces the terminate value. Status is nil for a zero status.
type Exit struct {
	node
	Status I
}

// Fixnum is an integer literal.
type Fixnum struct {
	node
	Value int32
}

// Rational is a rational literal as written.
type Rational struct {
	node
	Num int32
	Den int32
}

// String is a string literal.
type String struct {
	node
	Value string
}

// Void is the void literal.
type Void struct {
	node
}

// Var is a variable reference, resolved at evaluation time.
type Var struct {
	node
	Name string
}

// Unary applies a one argument primitive.
type Unary struct {
	node
	Op  op.Code
	Arg I
}

// Binary applies a two argument primitive.
type Binary struct {
	node
	Op    op.Code
	Left  I
	Right I
}

// Variadic applies a primitive to any number of arguments.
type Variadic struct {
	node
	Op   op.Code
	Args []I
}

// And evaluates Args until one is #f.
type And struct {
	node
	Args []I
}

// Or evaluates Args until one is not #f.
type Or struct {
	node
	Args []I
}

// Begin evaluates Body in order.
type Begin struct {
	node
	Body []I
}

// Clause is one clause of a cond. Test is nil for an else clause.
type Clause struct {
	Test I
	Body []I
}

// Cond evaluates the body of the first clause whose test is not #f.
type Cond struct {
	node
	Clauses []Clause
}

// If selects Then unless Test is #f.
type If struct {
	node
	Test I
	Then I
	Else I
}

// Quote converts Datum to a value when evaluated.
type Quote struct {
	node
	Datum syntax.I
}

// Lambda creates a closure.
type Lambda struct {
	node
	Params []string
	Body   I
}

// Define binds Name in the current frame.
type Define struct {
	node
	Name  string
	Value I
}

// Binding is one name and initializer of a let or letrec.
type Binding struct {
	Name  string
	Value I
}

// Let evaluates Bindings in the enclosing scope and Body in a new frame.
type Let struct {
	node
	Bindings []Binding
	Body     I
}

// Letrec evaluates Bindings and Body in a new frame that holds every name.
type Letrec struct {
	node
	Bindings []Binding
	Body     I
}

// Set overwrites an existing binding.
type Set struct {
	node
	Name  string
	Value I
}

// Apply calls the procedure Operator evaluates to.
type Apply struct {
	node
	Operator I
	Args     []I
}

// Sequence returns the single expression in body or wraps body in a Begin.
func Sequence(body []I) I {
	if len(body) == 1 {
		return body[0]
	}

	return &Begin{Body: body}
}
