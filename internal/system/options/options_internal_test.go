package options

import (
	"strings"
	"testing"
)

func TestCommand(t *testing.T) {
	o := parse([]string{"-c", "(display 1)"}, true)

	if o.Command != "(display 1)" || o.Interactive || o.Name != "command" {
		t.Fatalf("Unexpected options %+v", o)
	}
}

func TestInteractive(t *testing.T) {
	if o := parse(nil, true); !o.Interactive || o.Quiet {
		t.Fatalf("Expected interactive mode on a terminal, got %+v", o)
	}

	if o := parse(nil, false); o.Interactive {
		t.Fatalf("Expected non-interactive mode without a terminal, got %+v", o)
	}

	if o := parse([]string{"-i"}, true); o.Interactive {
		t.Fatalf("Expected -i to disable interactive mode, got %+v", o)
	}

	if o := parse([]string{"-iq"}, false); !o.Interactive || !o.Quiet {
		t.Fatalf("Expected -iq to enable quiet interactive mode, got %+v", o)
	}
}

func TestScript(t *testing.T) {
	o := parse([]string{"-q", "fact.scm"}, true)

	if o.Script != "fact.scm" || o.Interactive || !o.Quiet || o.Name != "fact.scm" {
		t.Fatalf("Unexpected options %+v", o)
	}
}

func TestUsage(t *testing.T) {
	if strings.Contains(usage, "-s") {
		t.Fatal("Usage lists an option that is never read")
	}

	o := parse([]string{"-q"}, false)
	if o.Script != "" || o.Command != "" || o.Name != "stdin" || !o.Quiet {
		t.Fatalf("Expected quiet stdin mode, got %+v", o)
	}
}
