// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/michaelmacinnis/ratscheme/internal/common/interface/cell"
	"github.com/michaelmacinnis/ratscheme/internal/common/interface/rational"
	"github.com/michaelmacinnis/ratscheme/internal/common/rterr"
	"github.com/michaelmacinnis/ratscheme/internal/common/type/fixnum"
	"github.com/michaelmacinnis/ratscheme/internal/common/type/ratnum"
)

// Numerators and denominators are 32-bit values with positive denominators
// so every cross product below fits in 64 bits.

func add(args []cell.I) cell.I {
	return fold("+", fixnum.New(0), args, func(an, ad, bn, bd int64) cell.I {
		return ratnum.Exact("+", an*bd+bn*ad, ad*bd)
	})
}

func div(args []cell.I) cell.I {
	if len(args) == 1 {
		args = []cell.I{fixnum.New(1), args[0]}
	}

	return fold("/", args[0], args[1:], func(an, ad, bn, bd int64) cell.I {
		if bn == 0 {
			rterr.Raise("/: division by zero")
		}

		return ratnum.Exact("/", an*bd, ad*bn)
	})
}

func mul(args []cell.I) cell.I {
	return fold("*", fixnum.New(1), args, func(an, ad, bn, bd int64) cell.I {
		return ratnum.Exact("*", an*bn, ad*bd)
	})
}

func sub(args []cell.I) cell.I {
	if len(args) == 1 {
		args = []cell.I{fixnum.New(0), args[0]}
	}

	return fold("-", args[0], args[1:], func(an, ad, bn, bd int64) cell.I {
		return ratnum.Exact("-", an*bd-bn*ad, ad*bd)
	})
}

func fold(
	label string, acc cell.I, args []cell.I,
	f func(an, ad, bn, bd int64) cell.I,
) cell.I {
	an, ad := rational.Number(label, acc)

	for _, arg := range args {
		bn, bd := rational.Number(label, arg)

		acc = f(an, ad, bn, bd)

		an, ad = rational.Number(label, acc)
	}

	return acc
}
