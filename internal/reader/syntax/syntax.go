// Released under an MIT license. See LICENSE.

// Package syntax provides the generic S-expression tree produced by the
// reader and consumed, read-only, by the expression parser.
package syntax

import (
	"strconv"
	"strings"

	"github.com/michaelmacinnis/ratscheme/internal/adapted"
	"github.com/michaelmacinnis/ratscheme/internal/common/struct/loc"
)

// I (syntax) is a node in the tree.
type I interface {
	Source() *loc.T
	String() string

	syntax()
}

// At records where a node was read.
type At struct {
	source *loc.T
}

// Source returns the location the node was read from, if known.
func (a At) Source() *loc.T {
	return a.source
}

func (At) syntax() {}

// Boolean is #t or #f.
type Boolean struct {
	At
	Value bool
}

// Integer is an exact integer literal.
type Integer struct {
	At
	Value int32
}

// List is a parenthesized sequence. A dotted tail is represented by a
// "." Symbol immediately before the last element.
type List struct {
	At
	Items []I
}

// Rational is an exact rational literal as written, not reduced.
type Rational struct {
	At
	Num int32
	Den int32
}

// String is a string literal with escapes already decoded.
type String struct {
	At
	Value string
}

// Symbol is an identifier, or any atom that is not another literal.
type Symbol struct {
	At
	Name string
}

// Dot is the name of the symbol that marks a dotted tail.
const Dot = "."

// NewAt returns an At for the location source.
func NewAt(source *loc.T) At {
	return At{source: source}
}

// IsSymbol returns true if s is a Symbol named name.
func IsSymbol(s I, name string) bool {
	y, ok := s.(*Symbol)

	return ok && y.Name == name
}

func (b *Boolean) String() string {
	if b.Value {
		return "#t"
	}

	return "#f"
}

func (i *Integer) String() string {
	return strconv.FormatInt(int64(i.Value), 10)
}

func (l *List) String() string {
	s := make([]string, len(l.Items))
	for i, item := range l.Items {
		s[i] = item.String()
	}

	return "(" + strings.Join(s, " ") + ")"
}

func (r *Rational) String() string {
	return strconv.FormatInt(int64(r.Num), 10) + "/" + strconv.FormatInt(int64(r.Den), 10)
}

func (s *String) String() string {
	return adapted.CanonicalString(s.Value)
}

func (s *Symbol) String() string {
	return s.Name
}

// Split returns the items of l before any dotted tail and the tail, or nil
// if there is no dotted tail. It returns false if a dot appears anywhere
// but immediately before the last of three or more items.
func (l *List) Split() ([]I, I, bool) {
	n := len(l.Items)

	dots := 0
	for _, item := range l.Items {
		if IsSymbol(item, Dot) {
			dots++
		}
	}

	switch {
	case dots == 0:
		return l.Items, nil, true
	case dots == 1 && n >= 3 && IsSymbol(l.Items[n-2], Dot):
		return l.Items[:n-2], l.Items[n-1], true
	}

	return nil, nil, false
}
