// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/michaelmacinnis/ratscheme/internal/common/interface/cell"
	"github.com/michaelmacinnis/ratscheme/internal/common/type/boolean"
)

func isBoolean(args []cell.I) cell.I {
	return boolean.Bool(boolean.Is(args[0]))
}
