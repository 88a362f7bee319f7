// Released under an MIT license. See LICENSE.

package commands

import (
	"fmt"
	"io"

	"github.com/michaelmacinnis/ratscheme/internal/common"
	"github.com/michaelmacinnis/ratscheme/internal/common/interface/cell"
	"github.com/michaelmacinnis/ratscheme/internal/common/interface/integer"
	"github.com/michaelmacinnis/ratscheme/internal/common/interface/literal"
	"github.com/michaelmacinnis/ratscheme/internal/common/rterr"
	"github.com/michaelmacinnis/ratscheme/internal/common/type/boolean"
	"github.com/michaelmacinnis/ratscheme/internal/common/type/closure"
	"github.com/michaelmacinnis/ratscheme/internal/common/type/primitive"
	"github.com/michaelmacinnis/ratscheme/internal/common/type/status"
	"github.com/michaelmacinnis/ratscheme/internal/common/type/str"
	"github.com/michaelmacinnis/ratscheme/internal/common/type/void"
)

// Strings are written verbatim. Everything else in its literal form.
func display(out io.Writer) func([]cell.I) cell.I {
	return func(args []cell.I) cell.I {
		v := args[0]
		if str.Is(v) {
			fmt.Fprint(out, common.String(v))
		} else {
			fmt.Fprint(out, literal.String(v))
		}

		return void.Void
	}
}

// Values compare by value for integers, booleans, symbols, () and void.
// Everything else is compared by identity.
func eq(args []cell.I) cell.I {
	return boolean.Bool(args[0].Equal(args[1]))
}

// Exit statuses are limited to what a process can report.
func exit(args []cell.I) cell.I {
	code := 0
	if len(args) == 1 {
		code = int(integer.Value("exit", args[0]))
	}

	if code < 0 || code > 255 {
		rterr.Raise("exit: status %d is not in the range 0 to 255", code)
	}

	return status.New(code)
}

func isProcedure(args []cell.I) cell.I {
	return boolean.Bool(closure.Is(args[0]) || primitive.Is(args[0]))
}

func makeVoid(args []cell.I) cell.I {
	return void.Void
}
