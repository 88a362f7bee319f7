// Released under an MIT license. See LICENSE.

package fixnum

import (
	"strconv"
)

// Numeral returns true if s is an optional sign followed by one or more
// decimal digits.
func Numeral(s string) bool {
	if s != "" && (s[0] == '+' || s[0] == '-') {
		s = s[1:]
	}

	if s == "" {
		return false
	}

	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}

	return true
}

// Parse converts the numeral s to an int32. It returns an error if s is
// not a numeral or is out of range.
func Parse(s string) (int32, error) {
	if !Numeral(s) {
		return 0, strconv.ErrSyntax
	}

	n, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, err
	}

	return int32(n), nil
}
