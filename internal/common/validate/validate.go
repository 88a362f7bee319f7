// Released under an MIT license. See LICENSE.

// Package validate checks argument counts and names.
package validate

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/michaelmacinnis/ratscheme/internal/common/rterr"
)

// Arity raises an error if n is not between min and max (inclusive).
// A negative max means there is no upper bound.
func Arity(label string, n, min, max int) {
	if n >= min && (max < 0 || n <= max) {
		return
	}

	var expected string

	switch {
	case max < 0:
		expected = "at least " + Count(min, "argument", "s")
	case min == max:
		expected = Count(min, "argument", "s")
	default:
		expected = fmt.Sprintf("%d to %d arguments", min, max)
	}

	rterr.Raise("%s: expected %s, passed %d", label, expected, n)
}

// Count returns n followed by label, pluralized with p when n != 1.
func Count(n int, label string, p string) string {
	if n == 1 {
		p = ""
	}

	return fmt.Sprintf("%d %s%s", n, label, p)
}

// Identifier raises an error if s cannot name a variable. A name must be
// non-empty, must not start with a digit, '.' or '@', and must not contain
// whitespace or any of # ' " `.
func Identifier(s string) {
	if s == "" {
		rterr.Raise("invalid identifier: empty name")
	}

	first := rune(s[0])
	if unicode.IsDigit(first) || first == '.' || first == '@' {
		rterr.Raise("invalid identifier %q: cannot start with %q", s, first)
	}

	if i := strings.IndexFunc(s, forbidden); i >= 0 {
		r := []rune(s[i:])[0]
		rterr.Raise("invalid identifier %q: cannot contain %q", s, r)
	}
}

func forbidden(r rune) bool {
	return r == '#' || r == '\'' || r == '"' || r == '`' || unicode.IsSpace(r)
}
