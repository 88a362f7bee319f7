// Released under an MIT license. See LICENSE.

// Package ui provides an interactive command-line interface.
package ui

import (
	"os"

	"github.com/michaelmacinnis/ratscheme/internal/common/interface/cell"
	"github.com/michaelmacinnis/ratscheme/internal/common/type/status"
	"github.com/michaelmacinnis/ratscheme/internal/reader"
	"github.com/michaelmacinnis/ratscheme/internal/system/history"
	"github.com/peterh/liner"
)

// Evaluator is the interface for things that evaluate text as it is read.
type Evaluator interface {
	Run(r *reader.T, text string, emit func(cell.I), fail func(error)) *status.T
}

// Run prompts for lines and sends them to the Evaluator until end of input
// or a terminate value. It returns the exit status.
func Run(e Evaluator, name string, emit func(cell.I), fail func(error)) int {
	cooked, err := liner.TerminalMode()
	if err != nil {
		println(err.Error())

		return 1
	}

	cli := liner.NewLiner()
	defer cli.Close()

	uncooked, err := liner.TerminalMode()
	if err != nil {
		println(err.Error())

		return 1
	}

	path := history.Path()
	if err := history.Load(path, cli.ReadHistory); err != nil {
		println(err.Error())
	}

	defer func() {
		if err := history.Save(path, cli.WriteHistory); err != nil {
			println(err.Error())
		}
	}()

	cli.SetCtrlCAborts(true)

	r := reader.New(name)

	for {
		prompt := "> "
		if r.Pending() {
			prompt = "... "
		}

		if err := uncooked.ApplyMode(); err != nil {
			println(err.Error())

			return 1
		}

		line, err := cli.Prompt(prompt)

		if merr := cooked.ApplyMode(); merr != nil {
			println(merr.Error())

			return 1
		}

		switch err {
		case nil:
			if line != "" {
				cli.AppendHistory(line)
			}
		case liner.ErrPromptAborted:
			r.Reset()

			continue
		default:
			os.Stdout.Write([]byte("\n")) //nolint:errcheck

			return 0
		}

		if s := e.Run(r, line+"\n", emit, fail); s != nil {
			return s.Code()
		}
	}
}
