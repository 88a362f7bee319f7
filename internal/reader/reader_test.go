package reader

import (
	"testing"
)

func TestScanComplete(t *testing.T) {
	r := New("test")

	data, err := r.Scan("(+ 1 2) 'x\n")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if len(data) != 2 {
		t.Fatalf("Expected 2 data, got %d", len(data))
	}

	if r.Pending() {
		t.Fatalf("Expected nothing pending")
	}
}

func TestScanContinues(t *testing.T) {
	r := New("test")

	for _, line := range []string{"(display\n", "\"two\n"} {
		data, err := r.Scan(line)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}

		if len(data) != 0 {
			t.Fatalf("Unexpected datum: %v", data)
		}

		if !r.Pending() {
			t.Fatalf("Expected pending input after %q", line)
		}
	}

	data, err := r.Scan("lines\")\n")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if len(data) != 1 || data[0].String() != `(display "two\nlines")` {
		t.Fatalf("Expected the completed datum, got %v", data)
	}

	if r.Pending() {
		t.Fatalf("Expected nothing pending")
	}
}

func TestScanError(t *testing.T) {
	r := New("test")

	data, err := r.Scan("1 ) (2\n")
	if err == nil {
		t.Fatalf("Expected an error")
	}

	if len(data) != 1 || data[0].String() != "1" {
		t.Fatalf("Expected the datum before the error, got %v", data)
	}

	if r.Pending() {
		t.Fatalf("Expected the incomplete datum to be discarded")
	}

	data, err = r.Scan("3\n")
	if err != nil || len(data) != 1 || data[0].String() != "3" {
		t.Fatalf("Expected the reader to recover, got %v, %v", data, err)
	}
}

func TestReset(t *testing.T) {
	r := New("test")

	if _, err := r.Scan("(a (b\n"); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if !r.Pending() {
		t.Fatalf("Expected pending input")
	}

	r.Reset()

	if r.Pending() {
		t.Fatalf("Expected nothing pending after reset")
	}
}
