package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/michaelmacinnis/ratscheme/internal/common/interface/cell"
	"github.com/michaelmacinnis/ratscheme/internal/engine"
)

func TestExamples(t *testing.T) {
	for _, tc := range []struct {
		script string
		output string
		status int
	}{
		{"fact.scm", "3628800\n", 0},
		{"rationals.scm", "25/12\n1\n", 0},
		{"counter.scm", "(3 4)\neven\n", 3},
	} {
		b, err := os.ReadFile(filepath.Join("examples", tc.script))
		if err != nil {
			t.Fatalf("%s: %v", tc.script, err)
		}

		output, stderr, status := check(tc.script, string(b))

		if stderr != "" {
			t.Errorf("%s: unexpected errors: %s", tc.script, stderr)
		}

		if output != tc.output {
			t.Errorf("%s: expected output %q, got %q", tc.script, tc.output, output)
		}

		if status != tc.status {
			t.Errorf("%s: expected status %d, got %d", tc.script, tc.status, status)
		}
	}
}

func TestErrorStatus(t *testing.T) {
	output, stderr, status := check("test", "(display 1) (car '()) (display 2)")

	if output != "12" {
		t.Fatalf("Expected evaluation to continue after an error, got %q", output)
	}

	if !strings.HasPrefix(stderr, "error: car: not a pair") {
		t.Fatalf("Unexpected error output %q", stderr)
	}

	if status != 1 {
		t.Fatalf("Expected status 1, got %d", status)
	}
}

func TestExitOverridesErrors(t *testing.T) {
	_, _, status := check("test", "(car '()) (exit 0)")

	if status != 0 {
		t.Fatalf("Expected status 0, got %d", status)
	}
}

func TestUnexpectedEnd(t *testing.T) {
	_, stderr, status := check("test", "(display 1")

	if !strings.Contains(stderr, "unexpected end of input") || status != 1 {
		t.Fatalf("Expected an unexpected end of input error, got %q (%d)", stderr, status)
	}
}

func check(name, text string) (string, string, int) {
	var stdout, stderr bytes.Buffer

	status := run(engine.New(&stdout), name, text, func(cell.I) {}, &stderr)

	return stdout.String(), stderr.String(), status
}
