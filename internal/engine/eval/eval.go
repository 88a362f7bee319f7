// Released under an MIT license. See LICENSE.

// Package eval evaluates expression trees.
package eval

import (
	"fmt"
	"io"

	"github.com/michaelmacinnis/ratscheme/internal/common/interface/cell"
	"github.com/michaelmacinnis/ratscheme/internal/common/interface/literal"
	"github.com/michaelmacinnis/ratscheme/internal/common/interface/scope"
	"github.com/michaelmacinnis/ratscheme/internal/common/interface/truth"
	"github.com/michaelmacinnis/ratscheme/internal/common/op"
	"github.com/michaelmacinnis/ratscheme/internal/common/rterr"
	"github.com/michaelmacinnis/ratscheme/internal/common/table"
	"github.com/michaelmacinnis/ratscheme/internal/common/type/boolean"
	"github.com/michaelmacinnis/ratscheme/internal/common/type/closure"
	"github.com/michaelmacinnis/ratscheme/internal/common/type/fixnum"
	"github.com/michaelmacinnis/ratscheme/internal/common/type/primitive"
	"github.com/michaelmacinnis/ratscheme/internal/common/type/ratnum"
	"github.com/michaelmacinnis/ratscheme/internal/common/type/str"
	"github.com/michaelmacinnis/ratscheme/internal/common/type/void"
	"github.com/michaelmacinnis/ratscheme/internal/common/validate"
	"github.com/michaelmacinnis/ratscheme/internal/engine/commands"
	"github.com/michaelmacinnis/ratscheme/internal/expr"
)

// T (eval) holds the primitive implementations and the table shared with
// the parser.
type T struct {
	functions  map[op.Code]func([]cell.I) cell.I
	primitives map[op.Code]cell.I
	table      *table.T
}

type eval = T

// New creates a new evaluator. Output from display is written to out.
func New(t *table.T, out io.Writer) *T {
	return &eval{
		functions:  commands.Functions(out),
		primitives: map[op.Code]cell.I{},
		table:      t,
	}
}

// Evaluate evaluates e in the scope s.
func (e *eval) Evaluate(x expr.I, s scope.I) (v cell.I, err error) {
	defer rterr.Catch(&err)

	return e.eval(x, s), nil
}

func (e *eval) eval(x expr.I, s scope.I) cell.I {
	switch x := x.(type) {
	case *expr.Boolean:
		return boolean.Bool(x.Value)
	case *expr.Exit:
		if x.Status == nil {
			return e.call(op.Exit)
		}

		return e.call(op.Exit, e.eval(x.Status, s))
	case *expr.Fixnum:
		return fixnum.New(x.Value)
	case *expr.Rational:
		return ratnum.New(int64(x.Num), int64(x.Den))
	case *expr.String:
		return str.New(x.Value)
	case *expr.Void:
		return void.Void

	case *expr.Var:
		return e.variable(x.Name, s)

	case *expr.Unary:
		return e.call(x.Op, e.eval(x.Arg, s))
	case *expr.Binary:
		left := e.eval(x.Left, s)

		return e.call(x.Op, left, e.eval(x.Right, s))
	case *expr.Variadic:
		return e.call(x.Op, e.list(x.Args, s)...)

	case *expr.And:
		return e.and(x, s)
	case *expr.Begin:
		return e.sequence(x.Body, s)
	case *expr.Cond:
		return e.cond(x, s)
	case *expr.If:
		if !truth.Value(e.eval(x.Test, s)) {
			return e.eval(x.Else, s)
		}

		return e.eval(x.Then, s)
	case *expr.Or:
		return e.or(x, s)
	case *expr.Quote:
		return quote(x.Datum)

	case *expr.Define:
		return e.define(x, s)
	case *expr.Lambda:
		return closure.New(x.Params, x.Body, s)
	case *expr.Let:
		return e.let(x, s)
	case *expr.Letrec:
		return e.letrec(x, s)
	case *expr.Set:
		return e.set(x, s)

	case *expr.Apply:
		return e.apply(x, s)
	}

	panic(fmt.Sprintf("unexpected expression %T", x))
}

func (e *eval) call(code op.Code, args ...cell.I) cell.I {
	return e.functions[code](args)
}

func (e *eval) list(xs []expr.I, s scope.I) []cell.I {
	args := make([]cell.I, len(xs))
	for i, x := range xs {
		args[i] = e.eval(x, s)
	}

	return args
}

func (e *eval) sequence(body []expr.I, s scope.I) cell.I {
	v := void.Void
	for _, x := range body {
		v = e.eval(x, s)
	}

	return v
}

// Procedures.

func (e *eval) apply(x *expr.Apply, s scope.I) cell.I {
	f := e.eval(x.Operator, s)
	if !closure.Is(f) && !primitive.Is(f) {
		rterr.Raise("not a procedure: %s", literal.String(f))
	}

	args := e.list(x.Args, s)

	if primitive.Is(f) {
		p := primitive.To(f)

		validate.Arity(p.Primitive.Name(), len(args), p.Min, p.Max)

		return e.call(p.Code, args...)
	}

	c := closure.To(f)

	params := c.Params()
	if len(args) != len(params) {
		rterr.Raise(
			"procedure: expected %s, passed %d",
			validate.Count(len(params), "argument", "s"), len(args),
		)
	}

	frame := c.Scope().Extend()
	for i, name := range params {
		frame.Define(name, args[i])
	}

	return e.eval(c.Body(), frame)
}

// Numeric text is never a name. Unbound primitive names become procedures.
func (e *eval) variable(name string, s scope.I) cell.I {
	if fixnum.Numeral(name) {
		n, err := fixnum.Parse(name)
		if err != nil {
			rterr.Raise("integer out of range: %s", name)
		}

		return fixnum.New(n)
	}

	if num, den, ok := ratnum.Parse(name); ok {
		return ratnum.New(int64(num), int64(den))
	}

	validate.Identifier(name)

	if r := s.Lookup(name); r != nil {
		return r.Get()
	}

	if p := e.table.Primitive(name); p != nil {
		v, ok := e.primitives[p.Code]
		if !ok {
			v = primitive.New(p)
			e.primitives[p.Code] = v
		}

		return v
	}

	rterr.Raise("undefined variable: %s", name)

	return nil
}
