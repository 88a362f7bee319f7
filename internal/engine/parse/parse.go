// Released under an MIT license. See LICENSE.

// Package parse translates syntax trees into expression trees.
package parse

import (
	"github.com/michaelmacinnis/ratscheme/internal/common/interface/scope"
	"github.com/michaelmacinnis/ratscheme/internal/common/op"
	"github.com/michaelmacinnis/ratscheme/internal/common/rterr"
	"github.com/michaelmacinnis/ratscheme/internal/common/table"
	"github.com/michaelmacinnis/ratscheme/internal/common/validate"
	"github.com/michaelmacinnis/ratscheme/internal/expr"
	"github.com/michaelmacinnis/ratscheme/internal/reader/syntax"
)

// T (parse) resolves special forms and primitives using its table.
type T struct {
	table *table.T
}

type parse = T

// New creates a new parser that resolves names using t.
func New(t *table.T) *T {
	return &parse{table: t}
}

// Parse translates the syntax tree stx into an expression tree. The scope
// s is the scope the expression will be evaluated in. Translation does
// not depend on it or change it.
func (p *parse) Parse(stx syntax.I, s scope.I) (e expr.I, err error) {
	defer rterr.Catch(&err)

	return p.expr(stx), nil
}

func (p *parse) expr(stx syntax.I) expr.I {
	switch stx := stx.(type) {
	case *syntax.Boolean:
		return &expr.Boolean{Value: stx.Value}
	case *syntax.Integer:
		return &expr.Fixnum{Value: stx.Value}
	case *syntax.List:
		return p.list(stx)
	case *syntax.Rational:
		return &expr.Rational{Num: stx.Num, Den: stx.Den}
	case *syntax.String:
		return &expr.String{Value: stx.Value}
	case *syntax.Symbol:
		return &expr.Var{Name: stx.Name}
	}

	panic("unexpected syntax " + stx.String())
}

func (p *parse) exprs(stx []syntax.I) []expr.I {
	e := make([]expr.I, len(stx))
	for i, s := range stx {
		e[i] = p.expr(s)
	}

	return e
}

func (p *parse) list(l *syntax.List) expr.I {
	if len(l.Items) == 0 {
		return &expr.Quote{Datum: l}
	}

	head, args := l.Items[0], l.Items[1:]

	y, ok := head.(*syntax.Symbol)
	if !ok {
		return &expr.Apply{Operator: p.expr(head), Args: p.exprs(args)}
	}

	if f := p.table.Reserved(y.Name); f != table.None {
		return p.form(f, y.Name, args)
	}

	if prim := p.table.Primitive(y.Name); prim != nil {
		return p.primitive(prim, args)
	}

	return &expr.Apply{Operator: &expr.Var{Name: y.Name}, Args: p.exprs(args)}
}

func (p *parse) primitive(prim *table.Primitive, args []syntax.I) expr.I {
	validate.Arity(prim.Name(), len(args), prim.Min, prim.Max)

	e := p.exprs(args)

	switch {
	case prim.Code == op.Exit:
		x := &expr.Exit{}
		if len(e) == 1 {
			x.Status = e[0]
		}

		return x
	case prim.Code == op.Void:
		return &expr.Void{}
	case prim.Fixed() && prim.Min == 1:
		return &expr.Unary{Op: prim.Code, Arg: e[0]}
	case prim.Fixed() && prim.Min == 2:
		return &expr.Binary{Op: prim.Code, Left: e[0], Right: e[1]}
	}

	return &expr.Variadic{Op: prim.Code, Args: e}
}

func symbol(label string, stx syntax.I) string {
	y, ok := stx.(*syntax.Symbol)
	if !ok {
		rterr.Raise("%s: expected a symbol, got %s", label, stx.String())
	}

	return y.Name
}
