// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/michaelmacinnis/ratscheme/internal/common/interface/cell"
	"github.com/michaelmacinnis/ratscheme/internal/common/interface/rational"
	"github.com/michaelmacinnis/ratscheme/internal/common/type/boolean"
)

func ge(args []cell.I) cell.I {
	return compare(">=", args, func(c int) bool { return c >= 0 })
}

func gt(args []cell.I) cell.I {
	return compare(">", args, func(c int) bool { return c > 0 })
}

func le(args []cell.I) cell.I {
	return compare("<=", args, func(c int) bool { return c <= 0 })
}

func lt(args []cell.I) cell.I {
	return compare("<", args, func(c int) bool { return c < 0 })
}

func numEq(args []cell.I) cell.I {
	return compare("=", args, func(c int) bool { return c == 0 })
}

// Every adjacent pair must satisfy ok. Stops at the first pair that doesn't.
func compare(label string, args []cell.I, ok func(int) bool) cell.I {
	if len(args) == 0 {
		return boolean.True
	}

	an, ad := rational.Number(label, args[0])

	for _, arg := range args[1:] {
		bn, bd := rational.Number(label, arg)

		if !ok(cmp(an*bd, bn*ad)) {
			return boolean.False
		}

		an, ad = bn, bd
	}

	return boolean.True
}

func cmp(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}

	return 0
}
