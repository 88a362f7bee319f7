// Released under an MIT license. See LICENSE.

package ratnum

import (
	"strings"

	"github.com/michaelmacinnis/ratscheme/internal/common/type/fixnum"
)

// Parse splits s of the form n/d into its numerator and denominator.
// Both parts must be 32-bit numerals and the denominator must not be zero.
func Parse(s string) (num, den int32, ok bool) {
	n, d, found := strings.Cut(s, "/")
	if !found || strings.Contains(d, "/") {
		return 0, 0, false
	}

	num, err := fixnum.Parse(n)
	if err != nil {
		return 0, 0, false
	}

	den, err = fixnum.Parse(d)
	if err != nil || den == 0 {
		return 0, 0, false
	}

	return num, den, true
}
