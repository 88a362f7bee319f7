// Released under an MIT license. See LICENSE.

/*
Ratscheme is an interpreter for a small Scheme-like language with exact
32-bit integer and rational arithmetic.

	(define (fact n) (if (= n 0) 1 (* n (fact (- n 1)))))
	(fact 5)
	(+ 1/2 1/3)
	(display '(1 2 . 3))

Ratscheme is released under an MIT-style license.
*/
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/michaelmacinnis/ratscheme/internal/common/interface/cell"
	"github.com/michaelmacinnis/ratscheme/internal/common/interface/literal"
	"github.com/michaelmacinnis/ratscheme/internal/common/type/void"
	"github.com/michaelmacinnis/ratscheme/internal/engine"
	"github.com/michaelmacinnis/ratscheme/internal/reader"
	"github.com/michaelmacinnis/ratscheme/internal/system/options"
	"github.com/michaelmacinnis/ratscheme/internal/ui"
)

func main() {
	o := options.Parse()

	e := engine.New(os.Stdout)

	emit := func(v cell.I) {
		if o.Interactive && !o.Quiet && v != void.Void {
			fmt.Println(literal.String(v))
		}
	}

	if o.Interactive {
		os.Exit(ui.Run(e, o.Name, emit, report(os.Stderr, nil)))
	}

	text, err := source(o)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	os.Exit(run(e, o.Name, text, emit, os.Stderr))
}

func report(w io.Writer, failed *bool) func(error) {
	return func(err error) {
		if failed != nil {
			*failed = true
		}

		fmt.Fprintf(w, "error: %v\n", err)
	}
}

// The status is the one passed to exit, if any, or 1 if there were errors.
func run(e *engine.T, name, text string, emit func(cell.I), stderr io.Writer) int {
	failed := false
	fail := report(stderr, &failed)

	r := reader.New(name)

	if s := e.Run(r, text+"\n", emit, fail); s != nil {
		return s.Code()
	}

	if r.Pending() {
		fail(fmt.Errorf("%s: unexpected end of input", name))
	}

	if failed {
		return 1
	}

	return 0
}

func source(o *options.T) (string, error) {
	if o.Command != "" {
		return o.Command, nil
	}

	var (
		b   []byte
		err error
	)

	if o.Script != "" {
		b, err = os.ReadFile(o.Script)
	} else {
		b, err = io.ReadAll(os.Stdin)
	}

	return string(b), err
}
