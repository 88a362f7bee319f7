// Released under an MIT license. See LICENSE.

// Package options parses the command line.
package options

import (
	"os"

	"github.com/docopt/docopt-go"
	"github.com/mattn/go-isatty"
)

// Version is the ratscheme version.
const Version = "0.1.0"

// T (options) holds the parsed command-line options.
type T struct {
	Command     string // Text to evaluate, if any.
	Interactive bool   // Prompt for input and echo results.
	Name        string // Label used in error locations.
	Quiet       bool   // Suppress echoing results.
	Script      string // Path to a script, if any.
}

//nolint:gochecknoglobals
var usage = `ratscheme

Usage:
  ratscheme [-q] SCRIPT
  ratscheme [-q] -c COMMAND
  ratscheme [-iq]
  ratscheme -h
  ratscheme -v

Arguments:
  SCRIPT  Path to a script.

Options:
  -c, --command=COMMAND  Evaluate the specified text.
  -i, --interactive      Invert interactive mode.
  -q, --quiet            Do not echo results.
  -h, --help             Display this help.
  -v, --version          Print ratscheme version.

If ratscheme's stdin is a TTY, and ratscheme was invoked with no script or
command, it reads from stdin and interactive mode is enabled. Otherwise, it
is disabled.
`

// Parse parses the process arguments.
func Parse() *T {
	return parse(os.Args[1:], isatty.IsTerminal(os.Stdin.Fd()))
}

func parse(argv []string, terminal bool) *T {
	parser := &docopt.Parser{
		HelpHandler: docopt.PrintHelpAndExit,
	}

	opts, err := parser.ParseArgs(usage, argv, Version)
	if err != nil {
		// Error in the usage doc. This should never happen.
		panic(err.Error())
	}

	o := &T{Name: "stdin"}

	o.Command, _ = opts.String("--command")
	if o.Command != "" {
		o.Name = "command"
	}

	o.Script, _ = opts.String("SCRIPT")
	if o.Script != "" {
		o.Name = o.Script
	} else if o.Command == "" && terminal {
		o.Interactive = true
	}

	invertInteractive, _ := opts.Bool("--interactive")
	o.Interactive = o.Interactive != invertInteractive

	o.Quiet, _ = opts.Bool("--quiet")

	return o
}
