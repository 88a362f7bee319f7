// Released under an MIT license. See LICENSE.

// Package lexer provides a lexical scanner for S-expressions.
//
// The lexer adapts the state function approach used by Go's text/template
// lexer and described in detail in Rob Pike's talk "Lexical Scanning in Go".
// See https://talks.golang.org/2011/lex.slide for more information.
package lexer

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/michaelmacinnis/ratscheme/internal/common/struct/loc"
	"github.com/michaelmacinnis/ratscheme/internal/common/struct/token"
)

// T holds the state of the scanner.
type T struct {
	bytes string   // Buffer being scanned.
	first int      // Index of the current token's first byte.
	index int      // Index of the current byte.
	queue []string // Buffers waiting to be scanned.
	state action   // Current action.

	source loc.T // Location of the current byte.
	start  loc.T // Location of the current token's first byte.

	tokens []*token.T
}

// New creates a new T. Label can be a file name or other identifier.
func New(label string) *T {
	l := &T{
		source: loc.T{
			Char: 1,
			Line: 1,
			Name: label,
		},
	}

	l.start = l.source
	l.state = skipWhitespace

	return l
}

// Partial returns true if the lexer is holding the start of a token that
// needs more text to complete, such as an unterminated string.
func (l *T) Partial() bool {
	return l.first < len(l.bytes)
}

// Reset discards all buffered text and any partial token.
// Source locations continue from the end of the discarded text.
func (l *T) Reset() {
	l.gather()

	for l.next() != eof {
	}

	l.bytes = ""
	l.first = 0
	l.index = 0
	l.state = skipWhitespace
	l.start = l.source
	l.tokens = nil
}

// Scan passes a text buffer to the lexer for scanning.
// If a buffer is currently being scanned, the new buffer will
// be appended to the list of buffers waiting to be scanned.
func (l *T) Scan(text string) {
	l.queue = append(l.queue, text)
}

// Text is used to return the text corresponding to the current token.
func (l *T) Text() string {
	return l.bytes[l.first:l.index]
}

// Token returns the next scanned token, or nil if no token is available.
func (l *T) Token() *token.T {
	for len(l.tokens) == 0 {
		l.gather()

		state := l.state(l)
		if state == nil {
			return nil
		}

		l.state = state
	}

	t := l.tokens[0]
	l.tokens = l.tokens[1:]

	return t
}

// An action returns the next action or nil if it needs more text.
// An action that returns nil is called again once more text arrives.
type action func(*T) action

const eof = -1

func (l *T) emit(c token.Class, v string) {
	source := l.start

	l.tokens = append(l.tokens, token.New(c, v, &source))
	l.skip()
}

func (l *T) gather() {
	if len(l.queue) == 0 {
		return
	}

	l.bytes = l.bytes[l.first:] + strings.Join(l.queue, "")
	l.queue = nil
	l.index -= l.first
	l.first = 0
}

func (l *T) next() rune {
	r, w := l.peek()
	if w == 0 {
		return r
	}

	if r == '\n' {
		l.source.Line++
		l.source.Char = 1
	} else {
		l.source.Char++
	}

	l.index += w

	return r
}

func (l *T) peek() (rune, int) {
	if l.index >= len(l.bytes) {
		return eof, 0
	}

	return utf8.DecodeRuneInString(l.bytes[l.index:])
}

func (l *T) rewind() {
	l.index = l.first
	l.source = l.start
}

func (l *T) skip() {
	l.first = l.index
	l.start = l.source
}

func delimiter(r rune) bool {
	return unicode.IsSpace(r) || strings.ContainsRune(`()";'`, r)
}

// T states.

func scanAtom(l *T) action {
	for {
		r, _ := l.peek()
		if r == eof || delimiter(r) {
			break
		}

		l.next()
	}

	text := l.Text()

	switch text {
	case "#t", "#f", "#true", "#false":
		l.emit(token.Boolean, text)
	default:
		l.emit(token.Symbol, text)
	}

	return skipWhitespace
}

func scanString(l *T) action {
	l.rewind()
	l.next() // Opening quote.

	for {
		switch l.next() {
		case eof:
			l.rewind()

			return nil
		case '\\':
			if l.next() == eof {
				l.rewind()

				return nil
			}
		case '"':
			l.emit(token.String, l.Text())

			return skipWhitespace
		}
	}
}

func scanToken(l *T) action {
	r := l.next()

	switch r {
	case '(', ')', '\'':
		l.emit(token.Class(r), string(r))

		return skipWhitespace
	case '"':
		return scanString
	}

	return scanAtom
}

func skipComment(l *T) action {
	for {
		switch l.next() {
		case eof:
			l.skip()

			return nil
		case '\n':
			l.skip()

			return skipWhitespace
		}
	}
}

func skipWhitespace(l *T) action {
	for {
		r, _ := l.peek()

		switch {
		case r == eof:
			l.skip()

			return nil
		case r == ';':
			return skipComment
		case unicode.IsSpace(r):
			l.next()
		default:
			l.skip()

			return scanToken
		}
	}
}
