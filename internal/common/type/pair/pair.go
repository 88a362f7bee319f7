// Released under an MIT license. See LICENSE.

// Package pair provides the cons cell type and the empty list.
package pair

import (
	"strings"

	"github.com/michaelmacinnis/ratscheme/internal/common"
	"github.com/michaelmacinnis/ratscheme/internal/common/interface/cell"
	"github.com/michaelmacinnis/ratscheme/internal/common/interface/literal"
	"github.com/michaelmacinnis/ratscheme/internal/common/rterr"
)

const name = "pair"

//nolint:gochecknoglobals
var (
	// Null is the empty list. It is also used to mark the end of a list.
	Null cell.I = &null{}
)

// T (pair) is a cons cell. Pairs are shared and mutable; a chain of
// pairs may be circular.
type T struct {
	car cell.I
	cdr cell.I
}

type pair = T

// Equal returns true if c is the same pair as p.
func (p *pair) Equal(c cell.I) bool {
	return Is(c) && p == To(c)
}

// Literal returns the literal representation of the pair p.
// A pair reached again while it is still being written prints as "...".
func (p *pair) Literal() string {
	var b strings.Builder

	write(&b, p, map[*pair]bool{})

	return b.String()
}

// Name returns the name for a pair type.
func (p *pair) Name() string {
	return name
}

// String returns the text representation of the pair p.
func (p *pair) String() string {
	return p.Literal()
}

// Functions specific to pair.

// Car returns the car/head/first member of the pair c.
// If c is not a pair, this function raises an error.
func Car(c cell.I) cell.I {
	return To(c).car
}

// Cdr returns the cdr/tail/rest member of the pair c.
// If c is not a pair, this function raises an error.
func Cdr(c cell.I) cell.I {
	return To(c).cdr
}

// Cons conses h and t together to form a new pair.
func Cons(h, t cell.I) cell.I {
	return &pair{car: h, cdr: t}
}

// Is returns true if c is a pair. The empty list is not a pair.
func Is(c cell.I) bool {
	_, ok := c.(*pair)

	return ok
}

// SetCar sets the car/head/first of the pair c to value.
// If c is not a pair, this function raises an error.
func SetCar(c, value cell.I) {
	To(c).car = value
}

// SetCdr sets the cdr/tail/rest of the pair c to value.
// If c is not a pair, this function raises an error.
func SetCdr(c, value cell.I) {
	To(c).cdr = value
}

// To returns a pair if c is a pair; Otherwise it raises an error.
func To(c cell.I) *pair {
	if t, ok := c.(*pair); ok {
		return t
	}

	rterr.Raise("expected a pair, got %s", c.Name())

	return nil
}

func element(b *strings.Builder, c cell.I, active map[*pair]bool) {
	p, ok := c.(*pair)
	if !ok {
		b.WriteString(literal.String(c))

		return
	}

	if active[p] {
		b.WriteString("...")

		return
	}

	write(b, p, active)
}

func write(b *strings.Builder, p *pair, active map[*pair]bool) {
	var spine []*pair

	defer func() {
		for _, s := range spine {
			delete(active, s)
		}
	}()

	b.WriteByte('(')

	for {
		active[p] = true
		spine = append(spine, p)

		element(b, p.car, active)

		next, ok := p.cdr.(*pair)
		if !ok {
			if p.cdr != Null {
				b.WriteString(" . ")
				element(b, p.cdr, active)
			}

			break
		}

		if active[next] {
			b.WriteString(" . ...")

			break
		}

		b.WriteByte(' ')

		p = next
	}

	b.WriteByte(')')
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t pair

	// The pair type is a cell.
	_ = cell.I(&t)

	// The pair type has a literal representation.
	_ = literal.I(&t)

	// The pair type is a stringer.
	_ = common.Stringer(&t)
}
