// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/michaelmacinnis/ratscheme/internal/common/interface/cell"
	"github.com/michaelmacinnis/ratscheme/internal/common/type/boolean"
	"github.com/michaelmacinnis/ratscheme/internal/common/type/list"
)

func isList(args []cell.I) cell.I {
	return boolean.Bool(list.IsProper(args[0]))
}

func makeList(args []cell.I) cell.I {
	return list.New(args...)
}
