// Released under an MIT license. See LICENSE.

// Package fixnum provides the exact 32-bit integer type.
package fixnum

import (
	"strconv"

	"github.com/michaelmacinnis/ratscheme/internal/common"
	"github.com/michaelmacinnis/ratscheme/internal/common/interface/cell"
	"github.com/michaelmacinnis/ratscheme/internal/common/interface/integer"
	"github.com/michaelmacinnis/ratscheme/internal/common/interface/literal"
	"github.com/michaelmacinnis/ratscheme/internal/common/interface/rational"
)

const name = "integer"

// T (fixnum) wraps Go's int32 type.
type T int32

type fixnum = T

// New creates a new fixnum cell.
func New(n int32) cell.I {
	i := fixnum(n)

	return &i
}

// Equal returns true if c is a fixnum with the same value.
func (i *fixnum) Equal(c cell.I) bool {
	return Is(c) && i.Int() == To(c).Int()
}

// Fraction returns the fixnum i as i/1.
func (i *fixnum) Fraction() (num, den int64) {
	return int64(*i), 1
}

// Int returns the value of the fixnum i.
func (i *fixnum) Int() int32 {
	return int32(*i)
}

// Literal returns the literal representation of the fixnum i.
func (i *fixnum) Literal() string {
	return i.String()
}

// Name returns the type name for the fixnum i.
func (i *fixnum) Name() string {
	return name
}

// String returns the text of the fixnum i.
func (i *fixnum) String() string {
	return strconv.FormatInt(int64(*i), 10)
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t fixnum

	// The fixnum type is a cell.
	_ = cell.I(&t)

	// The fixnum type has an integer value.
	_ = integer.I(&t)

	// The fixnum type has a literal representation.
	_ = literal.I(&t)

	// The fixnum type is a rational.
	_ = rational.I(&t)

	// The fixnum type is a stringer.
	_ = common.Stringer(&t)
}
