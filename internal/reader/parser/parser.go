// Released under an MIT license. See LICENSE.

// Package parser provides a recursive descent parser for S-expressions.
package parser

import (
	"github.com/michaelmacinnis/ratscheme/internal/adapted"
	"github.com/michaelmacinnis/ratscheme/internal/common/rterr"
	"github.com/michaelmacinnis/ratscheme/internal/common/struct/token"
	"github.com/michaelmacinnis/ratscheme/internal/common/type/fixnum"
	"github.com/michaelmacinnis/ratscheme/internal/common/type/ratnum"
	"github.com/michaelmacinnis/ratscheme/internal/reader/syntax"
)

// T holds the state of the parser.
type T struct {
	emit func(syntax.I)  // Function to call to emit a parsed datum.
	item func() *token.T // Function to call to get another token.

	index  int        // Index of the next token in tokens.
	tokens []*token.T // Tokens for the datum being parsed, so far.
}

// New creates a new parser.
// It connects a producer of tokens with a consumer of syntax trees.
func New(emit func(syntax.I), item func() *token.T) *T {
	return &T{emit: emit, item: item}
}

// Parse consumes tokens and emits syntax trees until there are no more
// tokens. Tokens for an incomplete datum are kept until more arrive.
// On error all pending tokens are discarded.
func (p *T) Parse() (err error) {
	defer func() {
		if err != nil {
			p.Reset()
		}
	}()

	defer rterr.Catch(&err)

	for t := p.item(); t != nil; t = p.item() {
		p.tokens = append(p.tokens, t)
	}

	for len(p.tokens) > 0 {
		p.index = 0

		s := p.datum()
		if s == nil {
			break
		}

		p.tokens = p.tokens[p.index:]

		p.emit(s)
	}

	return nil
}

// Pending returns true if the parser holds the tokens of an incomplete datum.
func (p *T) Pending() bool {
	return len(p.tokens) > 0
}

// Reset discards any pending tokens.
func (p *T) Reset() {
	p.index = 0
	p.tokens = nil
}

// datum returns nil if the tokens run out before the datum is complete.
func (p *T) datum() syntax.I {
	t := p.next()
	if t == nil {
		return nil
	}

	at := syntax.NewAt(t.Source())

	switch t.Class() {
	case '(':
		return p.list(at)

	case ')':
		rterr.Raise("%s: unexpected ')'", t.Source())

	case '\'':
		d := p.datum()
		if d == nil {
			return nil
		}

		return &syntax.List{
			At:    at,
			Items: []syntax.I{&syntax.Symbol{At: at, Name: "quote"}, d},
		}

	case token.Boolean:
		v := t.Value()

		return &syntax.Boolean{At: at, Value: v == "#t" || v == "#true"}

	case token.String:
		v := t.Value()

		s, err := adapted.ActualBytes(v[1 : len(v)-1])
		if err != nil {
			rterr.Raise("%s: invalid string literal %s", t.Source(), v)
		}

		return &syntax.String{At: at, Value: s}

	default:
		return atom(at, t.Value())
	}

	return nil
}

func (p *T) list(at syntax.At) syntax.I {
	l := &syntax.List{At: at}

	for {
		t := p.peek()
		if t == nil {
			return nil
		}

		if t.Is(')') {
			p.next()

			return l
		}

		s := p.datum()
		if s == nil {
			return nil
		}

		l.Items = append(l.Items, s)
	}
}

func (p *T) next() *token.T {
	t := p.peek()
	if t != nil {
		p.index++
	}

	return t
}

func (p *T) peek() *token.T {
	if p.index >= len(p.tokens) {
		return nil
	}

	return p.tokens[p.index]
}

func atom(at syntax.At, v string) syntax.I {
	if n, err := fixnum.Parse(v); err == nil {
		return &syntax.Integer{At: at, Value: n}
	}

	if num, den, ok := ratnum.Parse(v); ok {
		return &syntax.Rational{At: at, Num: num, Den: den}
	}

	return &syntax.Symbol{At: at, Name: v}
}
