// Released under an MIT license. See LICENSE.

// Package list provides common list operations. A list is not a true type.
// Lists are more of a type by convention. They are composed of cons cells.
package list

import (
	"github.com/michaelmacinnis/ratscheme/internal/common/interface/cell"
	"github.com/michaelmacinnis/ratscheme/internal/common/type/pair"
)

// IsProper returns true if c is the empty list or a chain of pairs ending
// in the empty list. A circular chain is not a proper list.
func IsProper(c cell.I) bool {
	slow, fast := c, c

	for {
		if fast == pair.Null {
			return true
		}

		if !pair.Is(fast) {
			return false
		}

		fast = pair.Cdr(fast)
		if fast == pair.Null {
			return true
		}

		if !pair.Is(fast) {
			return false
		}

		fast = pair.Cdr(fast)
		slow = pair.Cdr(slow)

		if fast == slow {
			return false
		}
	}
}

// New creates a new list composed of all of the elements in elements.
func New(elements ...cell.I) cell.I {
	return Improper(pair.Null, elements...)
}

// Improper creates a list of elements terminated by tail instead of the
// empty list.
func Improper(tail cell.I, elements ...cell.I) cell.I {
	l := tail

	for i := len(elements) - 1; i >= 0; i-- {
		l = pair.Cons(elements[i], l)
	}

	return l
}
