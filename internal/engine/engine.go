// Released under an MIT license. See LICENSE.

// Package engine provides an evaluator for source text.
package engine

import (
	"io"

	"github.com/michaelmacinnis/ratscheme/internal/common/interface/cell"
	"github.com/michaelmacinnis/ratscheme/internal/common/interface/scope"
	"github.com/michaelmacinnis/ratscheme/internal/common/table"
	"github.com/michaelmacinnis/ratscheme/internal/common/type/env"
	"github.com/michaelmacinnis/ratscheme/internal/common/type/status"
	"github.com/michaelmacinnis/ratscheme/internal/engine/eval"
	"github.com/michaelmacinnis/ratscheme/internal/engine/parse"
	"github.com/michaelmacinnis/ratscheme/internal/reader"
	"github.com/michaelmacinnis/ratscheme/internal/reader/syntax"
)

// T (engine) is a facade in front of the machinery for evaluating code.
type T struct {
	eval  *eval.T
	parse *parse.T
	scope scope.I
}

type engine = T

// New creates a new engine with an empty global scope. Output from
// display is written to out.
func New(out io.Writer) *T {
	t := table.New()

	return &engine{
		eval:  eval.New(t, out),
		parse: parse.New(t),
		scope: env.New(nil),
	}
}

// Evaluate parses and evaluates stx in the global scope.
func (e *engine) Evaluate(stx syntax.I) (cell.I, error) {
	x, err := e.parse.Parse(stx, e.scope)
	if err != nil {
		return nil, err
	}

	return e.eval.Evaluate(x, e.scope)
}

// Run reads text with r and evaluates each complete datum in turn.
// Each value is passed to emit and each error to fail. Evaluation stops
// at the first terminate value, which is returned.
func (e *engine) Run(
	r *reader.T, text string, emit func(cell.I), fail func(error),
) *status.T {
	data, rerr := r.Scan(text)

	for _, d := range data {
		v, err := e.Evaluate(d)

		switch {
		case err != nil:
			fail(err)
		case status.Is(v):
			r.Reset()

			return status.To(v)
		default:
			emit(v)
		}
	}

	if rerr != nil {
		fail(rerr)
	}

	return nil
}

// Scope returns the global scope.
func (e *engine) Scope() scope.I {
	return e.scope
}
