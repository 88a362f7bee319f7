// Use of code in this package is governed by Go's BSD-style license.

// Package adapted contains functions adapted from Go's standard library.
//
// The escapes recognized are those of Scheme string literals: \a \b \t \n
// \r \" \\ \|, \xHH; for any Unicode scalar value, and a backslash at the
// end of a line, which removes the line break and the whitespace around it.
//
//nolint:gomnd,nakedret,nlreturn,wsl
package adapted

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// ActualBytes converts any escape-sequence in s to the bytes they
// represent and returns the resulting sequence of actual bytes.
func ActualBytes(s string) (string, error) {
	var b strings.Builder

	b.Grow(len(s))

	for len(s) > 0 {
		c, skip, ss, err := unquote(s)
		if err != nil {
			return "", err
		}

		s = ss

		if !skip {
			b.WriteRune(c)
		}
	}

	return b.String(), nil
}

// CanonicalString returns s as a double-quoted string literal that
// ActualBytes will convert back to s. Bytes that are not valid UTF-8 are
// written as U+FFFD.
func CanonicalString(s string) string {
	var b strings.Builder

	b.Grow(len(s) + 2)
	b.WriteByte('"')

	for _, r := range s {
		switch r {
		case '\a':
			b.WriteString(`\a`)
		case '\b':
			b.WriteString(`\b`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		default:
			if r < ' ' || r == 0x7f {
				b.WriteString(`\x`)
				b.WriteString(strconv.FormatInt(int64(r), 16))
				b.WriteByte(';')
			} else {
				b.WriteRune(r)
			}
		}
	}

	b.WriteByte('"')

	return b.String()
}

func unhex(b byte) (v rune, ok bool) {
	c := rune(b)
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return
}

// unquote decodes the first character of s. When skip is true the
// sequence consumed was a line continuation and produces no character.
func unquote(s string) (value rune, skip bool, tail string, err error) {
	// easy cases
	if len(s) == 0 {
		err = strconv.ErrSyntax
		return
	}
	switch c := s[0]; {
	case c >= utf8.RuneSelf:
		r, size := utf8.DecodeRuneInString(s)
		return r, false, s[size:], nil
	case c != '\\':
		return rune(s[0]), false, s[1:], nil
	}

	// hard case: c is backslash
	if len(s) <= 1 {
		err = strconv.ErrSyntax
		return
	}
	c := s[1]
	s = s[2:]

	switch c {
	case 'a':
		value = '\a'
	case 'b':
		value = '\b'
	case 'n':
		value = '\n'
	case 'r':
		value = '\r'
	case 't':
		value = '\t'
	case '"', '\\', '|':
		value = rune(c)
	case 'x':
		end := strings.IndexByte(s, ';')
		if end < 1 || end > 6 {
			err = strconv.ErrSyntax
			return
		}
		var v rune
		for j := 0; j < end; j++ {
			x, ok := unhex(s[j])
			if !ok {
				err = strconv.ErrSyntax
				return
			}
			v = v<<4 | x
		}
		if !utf8.ValidRune(v) {
			err = strconv.ErrSyntax
			return
		}
		value = v
		s = s[end+1:]
	case ' ', '\t', '\r', '\n':
		var ok bool
		if s, ok = continuation(c, s); !ok {
			err = strconv.ErrSyntax
			return
		}
		skip = true
	default:
		err = strconv.ErrSyntax
		return
	}
	tail = s
	return
}

// continuation consumes the rest of a line continuation that began with
// c. It fails if no line break follows the intraline whitespace.
func continuation(c byte, s string) (string, bool) {
	switch c {
	case '\n':
	case '\r':
		s = strings.TrimPrefix(s, "\n")
	default:
		s = strings.TrimLeft(s, " \t")
		switch {
		case strings.HasPrefix(s, "\r\n"):
			s = s[2:]
		case strings.HasPrefix(s, "\n"), strings.HasPrefix(s, "\r"):
			s = s[1:]
		default:
			return s, false
		}
	}

	return strings.TrimLeft(s, " \t"), true
}
