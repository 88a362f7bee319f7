// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/michaelmacinnis/ratscheme/internal/common/interface/cell"
	"github.com/michaelmacinnis/ratscheme/internal/common/interface/literal"
	"github.com/michaelmacinnis/ratscheme/internal/common/rterr"
	"github.com/michaelmacinnis/ratscheme/internal/common/type/boolean"
	"github.com/michaelmacinnis/ratscheme/internal/common/type/pair"
	"github.com/michaelmacinnis/ratscheme/internal/common/type/void"
)

func car(args []cell.I) cell.I {
	return pair.Car(expectPair("car", args[0]))
}

func cdr(args []cell.I) cell.I {
	return pair.Cdr(expectPair("cdr", args[0]))
}

func cons(args []cell.I) cell.I {
	return pair.Cons(args[0], args[1])
}

func isNull(args []cell.I) cell.I {
	return boolean.Bool(args[0] == pair.Null)
}

func isPair(args []cell.I) cell.I {
	return boolean.Bool(pair.Is(args[0]))
}

func setCar(args []cell.I) cell.I {
	pair.SetCar(expectPair("set-car!", args[0]), args[1])

	return void.Void
}

func setCdr(args []cell.I) cell.I {
	pair.SetCdr(expectPair("set-cdr!", args[0]), args[1])

	return void.Void
}

func expectPair(label string, c cell.I) cell.I {
	if !pair.Is(c) {
		rterr.Raise("%s: not a pair: %s", label, literal.String(c))
	}

	return c
}
