// Released under an MIT license. See LICENSE.

package parse

import (
	"github.com/michaelmacinnis/ratscheme/internal/common/rterr"
	"github.com/michaelmacinnis/ratscheme/internal/common/table"
	"github.com/michaelmacinnis/ratscheme/internal/common/validate"
	"github.com/michaelmacinnis/ratscheme/internal/expr"
	"github.com/michaelmacinnis/ratscheme/internal/reader/syntax"
)

func (p *parse) form(f table.Form, name string, args []syntax.I) expr.I {
	switch f {
	case table.And:
		return &expr.And{Args: p.exprs(args)}
	case table.Begin:
		return &expr.Begin{Body: p.exprs(args)}
	case table.Cond:
		return p.cond(args)
	case table.Define:
		return p.define(args)
	case table.If:
		return p.ifForm(args)
	case table.Lambda:
		return p.lambda(args)
	case table.Let:
		return &expr.Let{Bindings: p.bindings(name, args), Body: p.body(name, args[1:])}
	case table.Letrec:
		return &expr.Letrec{Bindings: p.bindings(name, args), Body: p.body(name, args[1:])}
	case table.Or:
		return &expr.Or{Args: p.exprs(args)}
	case table.Quote:
		return quote(args)
	case table.Set:
		validate.Arity(name, len(args), 2, 2)

		return &expr.Set{Name: symbol(name, args[0]), Value: p.expr(args[1])}
	}

	rterr.Raise("unknown reserved word: %s", name)

	return nil
}

// (let ((name init) ...) body ...)
func (p *parse) bindings(label string, args []syntax.I) []expr.Binding {
	if len(args) == 0 {
		rterr.Raise("%s: missing bindings", label)
	}

	l, ok := args[0].(*syntax.List)
	if !ok {
		rterr.Raise("%s: expected a list of bindings, got %s", label, args[0].String())
	}

	bindings := make([]expr.Binding, len(l.Items))

	for i, item := range l.Items {
		b, ok := item.(*syntax.List)
		if !ok || len(b.Items) != 2 {
			rterr.Raise("%s: malformed binding %s", label, item.String())
		}

		bindings[i] = expr.Binding{
			Name:  symbol(label, b.Items[0]),
			Value: p.expr(b.Items[1]),
		}
	}

	return bindings
}

func (p *parse) body(label string, stx []syntax.I) expr.I {
	if len(stx) == 0 {
		rterr.Raise("%s: missing body", label)
	}

	return expr.Sequence(p.exprs(stx))
}

// (cond (test body ...) ... (else body ...))
func (p *parse) cond(args []syntax.I) expr.I {
	clauses := make([]expr.Clause, len(args))

	for i, arg := range args {
		l, ok := arg.(*syntax.List)
		if !ok || len(l.Items) == 0 {
			rterr.Raise("cond: malformed clause %s", arg.String())
		}

		if syntax.IsSymbol(l.Items[0], "else") {
			if len(l.Items) == 1 {
				rterr.Raise("cond: else clause has no body")
			}

			clauses[i] = expr.Clause{Body: p.exprs(l.Items[1:])}

			continue
		}

		clauses[i] = expr.Clause{
			Test: p.expr(l.Items[0]),
			Body: p.exprs(l.Items[1:]),
		}
	}

	return &expr.Cond{Clauses: clauses}
}

// (define name value) or (define (name params ...) body ...)
func (p *parse) define(args []syntax.I) expr.I {
	if len(args) == 0 {
		rterr.Raise("define: missing name")
	}

	if l, ok := args[0].(*syntax.List); ok {
		if len(l.Items) == 0 {
			rterr.Raise("define: missing name")
		}

		return &expr.Define{
			Name: symbol("define", l.Items[0]),
			Value: &expr.Lambda{
				Params: params("define", l.Items[1:]),
				Body:   p.body("define", args[1:]),
			},
		}
	}

	validate.Arity("define", len(args), 2, 2)

	return &expr.Define{Name: symbol("define", args[0]), Value: p.expr(args[1])}
}

// (if test then [else])
func (p *parse) ifForm(args []syntax.I) expr.I {
	validate.Arity("if", len(args), 2, 3)

	e := &expr.If{
		Test: p.expr(args[0]),
		Then: p.expr(args[1]),
		Else: &expr.Void{},
	}

	if len(args) == 3 {
		e.Else = p.expr(args[2])
	}

	return e
}

// (lambda (params ...) body ...)
func (p *parse) lambda(args []syntax.I) expr.I {
	if len(args) == 0 {
		rterr.Raise("lambda: missing parameter list")
	}

	l, ok := args[0].(*syntax.List)
	if !ok {
		rterr.Raise("lambda: expected a parameter list, got %s", args[0].String())
	}

	return &expr.Lambda{
		Params: params("lambda", l.Items),
		Body:   p.body("lambda", args[1:]),
	}
}

func params(label string, stx []syntax.I) []string {
	names := make([]string, len(stx))

	for i, s := range stx {
		names[i] = symbol(label, s)
		if names[i] == syntax.Dot {
			rterr.Raise("%s: rest parameters are not supported", label)
		}
	}

	return names
}

// (quote datum)
func quote(args []syntax.I) expr.I {
	validate.Arity("quote", len(args), 1, 1)

	dots(args[0])

	return &expr.Quote{Datum: args[0]}
}

func dots(stx syntax.I) {
	l, ok := stx.(*syntax.List)
	if !ok {
		return
	}

	if _, _, ok := l.Split(); !ok {
		rterr.Raise("quote: misplaced dot in %s", l.String())
	}

	for _, item := range l.Items {
		dots(item)
	}
}
