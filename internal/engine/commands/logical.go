// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/michaelmacinnis/ratscheme/internal/common/interface/cell"
	"github.com/michaelmacinnis/ratscheme/internal/common/type/boolean"
)

// Only #f negates to #t.
func not(args []cell.I) cell.I {
	return boolean.Bool(boolean.IsFalse(args[0]))
}
