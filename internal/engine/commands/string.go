// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/michaelmacinnis/ratscheme/internal/common/interface/cell"
	"github.com/michaelmacinnis/ratscheme/internal/common/type/boolean"
	"github.com/michaelmacinnis/ratscheme/internal/common/type/str"
)

func isString(args []cell.I) cell.I {
	return boolean.Bool(str.Is(args[0]))
}
