// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/michaelmacinnis/ratscheme/internal/common/interface/cell"
	"github.com/michaelmacinnis/ratscheme/internal/common/interface/integer"
	"github.com/michaelmacinnis/ratscheme/internal/common/rterr"
	"github.com/michaelmacinnis/ratscheme/internal/common/type/boolean"
	"github.com/michaelmacinnis/ratscheme/internal/common/type/fixnum"
	"github.com/michaelmacinnis/ratscheme/internal/common/type/ratnum"
)

func expt(args []cell.I) cell.I {
	base := int64(integer.Value("expt", args[0]))
	exponent := integer.Value("expt", args[1])

	switch {
	case exponent < 0:
		rterr.Raise("expt: negative exponent %d", exponent)
	case base == 0 && exponent == 0:
		rterr.Raise("expt: 0 to the power 0 is undefined")
	}

	product := func(a, b int64) int64 {
		p := a * b
		if !ratnum.Fits(p) {
			rterr.Raise("expt: integer overflow")
		}

		return p
	}

	result := int64(1)

	for exponent > 0 {
		if exponent&1 == 1 {
			result = product(result, base)
		}

		exponent >>= 1

		if exponent > 0 {
			base = product(base, base)
		}
	}

	return fixnum.New(int32(result))
}

// Only integers are numbers.
func isNumber(args []cell.I) cell.I {
	return boolean.Bool(fixnum.Is(args[0]))
}

// Remainder truncates toward zero. The result has the dividend's sign.
func modulo(args []cell.I) cell.I {
	dividend := integer.Value("modulo", args[0])
	divisor := integer.Value("modulo", args[1])

	if divisor == 0 {
		rterr.Raise("modulo: division by zero")
	}

	return fixnum.New(dividend % divisor)
}
