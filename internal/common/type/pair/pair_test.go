package pair

import (
	"testing"

	"github.com/michaelmacinnis/ratscheme/internal/common/rterr"
	"github.com/michaelmacinnis/ratscheme/internal/common/type/fixnum"
	"github.com/michaelmacinnis/ratscheme/internal/common/type/str"
	"github.com/michaelmacinnis/ratscheme/internal/common/type/sym"
)

func TestLiteral(t *testing.T) {
	one, two, three := fixnum.New(1), fixnum.New(2), fixnum.New(3)

	for _, tc := range []struct {
		c    *T
		want string
	}{
		{To(Cons(one, Null)), "(1)"},
		{To(Cons(one, two)), "(1 . 2)"},
		{To(Cons(one, Cons(two, Cons(three, Null)))), "(1 2 3)"},
		{To(Cons(one, Cons(two, three))), "(1 2 . 3)"},
		{To(Cons(Cons(one, Null), Cons(Null, Null))), "((1) ())"},
		{To(Cons(str.New("a b"), Cons(sym.New("c"), Null))), `("a b" c)`},
	} {
		if got := tc.c.Literal(); got != tc.want {
			t.Errorf("expected %s, got %s", tc.want, got)
		}
	}
}

func TestCircularLiteral(t *testing.T) {
	c := Cons(fixnum.New(1), Null)
	SetCdr(c, c)

	if got := To(c).Literal(); got != "(1 . ...)" {
		t.Fatalf("expected (1 . ...), got %s", got)
	}

	d := Cons(Null, Null)
	SetCar(d, d)

	if got := To(d).Literal(); got != "(...)" {
		t.Fatalf("expected (...), got %s", got)
	}
}

func TestSharedIsNotCircular(t *testing.T) {
	shared := Cons(fixnum.New(1), Null)
	c := Cons(shared, Cons(shared, Null))

	if got := To(c).Literal(); got != "((1) (1))" {
		t.Fatalf("expected ((1) (1)), got %s", got)
	}
}

func TestNullIsNotAPair(t *testing.T) {
	if Is(Null) {
		t.Fatal("the empty list is not a pair")
	}

	err := func() (err error) {
		defer rterr.Catch(&err)

		Car(Null)

		return nil
	}()

	if err == nil {
		t.Fatal("expected an error taking the car of ()")
	}
}

func TestIdentity(t *testing.T) {
	a := Cons(fixnum.New(1), Null)
	b := Cons(fixnum.New(1), Null)

	if a.Equal(b) {
		t.Fatal("distinct pairs must not be equal")
	}

	if !a.Equal(a) || !Null.Equal(Null) {
		t.Fatal("a value must be equal to itself")
	}
}
