package table

import (
	"testing"

	"github.com/michaelmacinnis/ratscheme/internal/common/op"
)

func TestEveryOperatorIsBound(t *testing.T) {
	tbl := New()

	n := 0
	for c := op.Invalid + 1; c.String() != op.Invalid.String(); c++ {
		n++

		p := tbl.Primitive(c.String())
		if p == nil {
			t.Fatalf("%s is not in the primitive table", c)
		}

		if p.Code != c {
			t.Fatalf("%s is bound to %s", c, p.Code)
		}
	}

	if n != len(tbl.primitives) {
		t.Fatalf("expected %d primitives, found %d operators", len(tbl.primitives), n)
	}
}

func TestTablesAreDisjoint(t *testing.T) {
	tbl := New()

	for name := range tbl.reserved {
		if tbl.IsPrimitive(name) {
			t.Fatalf("%s is both reserved and primitive", name)
		}
	}
}

func TestArity(t *testing.T) {
	tbl := New()

	for _, tc := range []struct {
		name     string
		min, max int
	}{
		{"+", 0, Variadic},
		{"-", 1, Variadic},
		{"/", 1, Variadic},
		{"car", 1, 1},
		{"cons", 2, 2},
		{"exit", 0, 1},
		{"void", 0, 0},
	} {
		p := tbl.Primitive(tc.name)
		if p.Min != tc.min || p.Max != tc.max {
			t.Errorf("%s: expected arity %d..%d, got %d..%d", tc.name, tc.min, tc.max, p.Min, p.Max)
		}
	}

	if tbl.Reserved("letrec") != Letrec || tbl.Reserved("car") != None {
		t.Fatal("unexpected reserved word lookup")
	}
}
