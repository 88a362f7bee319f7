// Released under an MIT license. See LICENSE.

// Package ratnum provides the exact rational number type.
package ratnum

import (
	"math"
	"strconv"

	"github.com/michaelmacinnis/ratscheme/internal/common"
	"github.com/michaelmacinnis/ratscheme/internal/common/interface/cell"
	"github.com/michaelmacinnis/ratscheme/internal/common/interface/literal"
	"github.com/michaelmacinnis/ratscheme/internal/common/interface/rational"
	"github.com/michaelmacinnis/ratscheme/internal/common/rterr"
	"github.com/michaelmacinnis/ratscheme/internal/common/type/fixnum"
)

const name = "rational"

// T (ratnum) is a fraction in lowest terms with a positive denominator.
type T struct {
	num int32
	den int32
}

type ratnum = T

// New creates a ratnum from num/den, reduced to lowest terms. The result
// is a ratnum even if the denominator reduces to one.
func New(num, den int64) cell.I {
	num, den = reduce(name, num, den)

	return &ratnum{num: int32(num), den: int32(den)}
}

// Exact creates the exact number num/den. If the denominator reduces to
// one the result is a fixnum. The label names the operation in any error.
func Exact(label string, num, den int64) cell.I {
	num, den = reduce(label, num, den)
	if den == 1 {
		return fixnum.New(int32(num))
	}

	return &ratnum{num: int32(num), den: int32(den)}
}

// Equal returns true if c is the same ratnum as r.
func (r *ratnum) Equal(c cell.I) bool {
	return Is(c) && r == To(c)
}

// Fraction returns the numerator and denominator of the ratnum r.
func (r *ratnum) Fraction() (num, den int64) {
	return int64(r.num), int64(r.den)
}

// Literal returns the literal representation of the ratnum r.
func (r *ratnum) Literal() string {
	return r.String()
}

// Name returns the type name for the ratnum r.
func (r *ratnum) Name() string {
	return name
}

// String returns the text of the ratnum r.
func (r *ratnum) String() string {
	s := strconv.FormatInt(int64(r.num), 10)
	if r.den == 1 {
		return s
	}

	return s + "/" + strconv.FormatInt(int64(r.den), 10)
}

// Fits returns true if n can be represented in 32 bits.
func Fits(n int64) bool {
	return n >= math.MinInt32 && n <= math.MaxInt32
}

func gcd(a, b int64) int64 {
	if a < 0 {
		a = -a
	}

	if b < 0 {
		b = -b
	}

	for b != 0 {
		a, b = b, a%b
	}

	return a
}

func reduce(label string, num, den int64) (int64, int64) {
	if den == 0 {
		rterr.Raise("%s: division by zero", label)
	}

	if den < 0 {
		num, den = -num, -den
	}

	if g := gcd(num, den); g > 1 {
		num /= g
		den /= g
	}

	if !Fits(num) || !Fits(den) {
		rterr.Raise("%s: integer overflow", label)
	}

	return num, den
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t ratnum

	// The ratnum type is a cell.
	_ = cell.I(&t)

	// The ratnum type has a literal representation.
	_ = literal.I(&t)

	// The ratnum type is a rational.
	_ = rational.I(&t)

	// The ratnum type is a stringer.
	_ = common.Stringer(&t)
}
