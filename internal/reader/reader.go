// Released under an MIT license. See LICENSE.

// Package reader turns source text into syntax trees.
package reader

import (
	"github.com/michaelmacinnis/ratscheme/internal/reader/lexer"
	"github.com/michaelmacinnis/ratscheme/internal/reader/parser"
	"github.com/michaelmacinnis/ratscheme/internal/reader/syntax"
)

// T (reader) encapsulates the lexer and parser.
type T struct {
	data []syntax.I
	p    *parser.T
	s    *lexer.T
}

type reader = T

// New creates a new reader for name.
func New(name string) *T {
	r := &T{s: lexer.New(name)}

	r.p = parser.New(func(s syntax.I) {
		r.data = append(r.data, s)
	}, r.s.Token)

	return r
}

// Pending returns true if the reader holds the start of an incomplete datum.
func (r *reader) Pending() bool {
	return r.s.Partial() || r.p.Pending()
}

// Reset discards any incomplete datum.
func (r *reader) Reset() {
	r.s.Reset()
	r.p.Reset()
}

// Scan reads text and returns every datum it completes. If scan encounters
// an error it returns the data completed before the error and the error.
// Any incomplete datum is discarded on error.
func (r *reader) Scan(text string) ([]syntax.I, error) {
	r.s.Scan(text)

	err := r.p.Parse()
	if err != nil {
		r.s.Reset()
	}

	data := r.data
	r.data = nil

	return data, err
}
