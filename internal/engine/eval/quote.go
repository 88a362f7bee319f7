// Released under an MIT license. See LICENSE.

package eval

import (
	"github.com/michaelmacinnis/ratscheme/internal/common/interface/cell"
	"github.com/michaelmacinnis/ratscheme/internal/common/rterr"
	"github.com/michaelmacinnis/ratscheme/internal/common/type/boolean"
	"github.com/michaelmacinnis/ratscheme/internal/common/type/fixnum"
	"github.com/michaelmacinnis/ratscheme/internal/common/type/pair"
	"github.com/michaelmacinnis/ratscheme/internal/common/type/ratnum"
	"github.com/michaelmacinnis/ratscheme/internal/common/type/str"
	"github.com/michaelmacinnis/ratscheme/internal/common/type/sym"
	"github.com/michaelmacinnis/ratscheme/internal/reader/syntax"
)

// Each evaluation builds fresh pairs.
func quote(stx syntax.I) cell.I {
	switch stx := stx.(type) {
	case *syntax.Boolean:
		return boolean.Bool(stx.Value)
	case *syntax.Integer:
		return fixnum.New(stx.Value)
	case *syntax.List:
		items, tail, ok := stx.Split()
		if !ok {
			rterr.Raise("quote: misplaced dot in %s", stx.String())
		}

		v := pair.Null
		if tail != nil {
			v = quote(tail)
		}

		for i := len(items) - 1; i >= 0; i-- {
			v = pair.Cons(quote(items[i]), v)
		}

		return v
	case *syntax.Rational:
		return ratnum.New(int64(stx.Num), int64(stx.Den))
	case *syntax.String:
		return str.New(stx.Value)
	case *syntax.Symbol:
		return sym.New(stx.Name)
	}

	panic("unexpected syntax " + stx.String())
}
