// Released under an MIT license. See LICENSE.

package eval

import (
	"github.com/michaelmacinnis/ratscheme/internal/common/interface/cell"
	"github.com/michaelmacinnis/ratscheme/internal/common/interface/scope"
	"github.com/michaelmacinnis/ratscheme/internal/common/interface/truth"
	"github.com/michaelmacinnis/ratscheme/internal/common/rterr"
	"github.com/michaelmacinnis/ratscheme/internal/common/type/boolean"
	"github.com/michaelmacinnis/ratscheme/internal/common/type/void"
	"github.com/michaelmacinnis/ratscheme/internal/common/validate"
	"github.com/michaelmacinnis/ratscheme/internal/expr"
)

func (e *eval) and(x *expr.And, s scope.I) cell.I {
	var v cell.I = boolean.True

	for _, arg := range x.Args {
		v = e.eval(arg, s)
		if !truth.Value(v) {
			return v
		}
	}

	return v
}

// A clause with no body returns the value of its test.
func (e *eval) cond(x *expr.Cond, s scope.I) cell.I {
	for _, c := range x.Clauses {
		if c.Test == nil {
			return e.sequence(c.Body, s)
		}

		v := e.eval(c.Test, s)
		if !truth.Value(v) {
			continue
		}

		if len(c.Body) == 0 {
			return v
		}

		return e.sequence(c.Body, s)
	}

	return void.Void
}

// The name is bound before the value is evaluated so that a procedure
// can refer to itself.
func (e *eval) define(x *expr.Define, s scope.I) cell.I {
	if e.table.IsReserved(x.Name) || e.table.IsPrimitive(x.Name) {
		rterr.Raise("define: cannot redefine %s", x.Name)
	}

	validate.Identifier(x.Name)

	r := s.Define(x.Name, void.Void)

	r.Set(e.eval(x.Value, s))

	return void.Void
}

func (e *eval) let(x *expr.Let, s scope.I) cell.I {
	values := make([]cell.I, len(x.Bindings))

	for i, b := range x.Bindings {
		validate.Identifier(b.Name)

		values[i] = e.eval(b.Value, s)
	}

	frame := s.Extend()
	for i, b := range x.Bindings {
		frame.Define(b.Name, values[i])
	}

	return e.eval(x.Body, frame)
}

func (e *eval) letrec(x *expr.Letrec, s scope.I) cell.I {
	for _, b := range x.Bindings {
		validate.Identifier(b.Name)
	}

	frame := s.Extend()
	for _, b := range x.Bindings {
		frame.Define(b.Name, void.Void)
	}

	for _, b := range x.Bindings {
		frame.Modify(b.Name, e.eval(b.Value, frame))
	}

	return e.eval(x.Body, frame)
}

func (e *eval) or(x *expr.Or, s scope.I) cell.I {
	for _, arg := range x.Args {
		v := e.eval(arg, s)
		if truth.Value(v) {
			return v
		}
	}

	return boolean.False
}

func (e *eval) set(x *expr.Set, s scope.I) cell.I {
	validate.Identifier(x.Name)

	if s.Lookup(x.Name) == nil {
		rterr.Raise("set!: undefined variable: %s", x.Name)
	}

	s.Modify(x.Name, e.eval(x.Value, s))

	return void.Void
}
