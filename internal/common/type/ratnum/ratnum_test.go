package ratnum

import (
	"math"
	"testing"

	"github.com/michaelmacinnis/ratscheme/internal/common/rterr"
	"github.com/michaelmacinnis/ratscheme/internal/common/type/fixnum"
)

func TestNewReduces(t *testing.T) {
	for _, tc := range []struct {
		num, den int64
		text     string
	}{
		{1, 2, "1/2"},
		{2, 4, "1/2"},
		{-2, 4, "-1/2"},
		{2, -4, "-1/2"},
		{-2, -4, "1/2"},
		{0, 5, "0"},
		{4, 2, "2"},
	} {
		r := New(tc.num, tc.den)
		if !Is(r) {
			t.Fatalf("%d/%d: expected a ratnum, got %s", tc.num, tc.den, r.Name())
		}

		if s := To(r).String(); s != tc.text {
			t.Errorf("%d/%d: expected %s, got %s", tc.num, tc.den, tc.text, s)
		}

		if _, den := To(r).Fraction(); den <= 0 {
			t.Errorf("%d/%d: denominator is not positive", tc.num, tc.den)
		}
	}
}

func TestExactCollapses(t *testing.T) {
	if c := Exact("/", 6, 3); !fixnum.Is(c) || fixnum.To(c).Int() != 2 {
		t.Fatalf("expected integer 2, got %v", c)
	}

	if c := Exact("/", 6, 4); !Is(c) || To(c).String() != "3/2" {
		t.Fatalf("expected 3/2, got %v", c)
	}
}

func TestZeroDenominator(t *testing.T) {
	err := func() (err error) {
		defer rterr.Catch(&err)

		New(1, 0)

		return nil
	}()

	if err == nil {
		t.Fatal("expected an error for a zero denominator")
	}
}

func TestOverflow(t *testing.T) {
	err := func() (err error) {
		defer rterr.Catch(&err)

		Exact("+", math.MaxInt32+1, 1)

		return nil
	}()

	if err == nil || err.Error() != "+: integer overflow" {
		t.Fatalf("expected +: integer overflow, got %v", err)
	}
}

func TestParse(t *testing.T) {
	for _, tc := range []struct {
		text     string
		num, den int32
	}{
		{"1/2", 1, 2},
		{"-3/4", -3, 4},
		{"+6/-8", 6, -8},
	} {
		num, den, ok := Parse(tc.text)
		if !ok {
			t.Fatalf("%s: expected a rational", tc.text)
		}

		if num != tc.num || den != tc.den {
			t.Errorf("%s: expected %d/%d, got %d/%d", tc.text, tc.num, tc.den, num, den)
		}
	}

	for _, s := range []string{"1/0", "1", "1/2/3", "/2", "1/", "a/b", "1/99999999999"} {
		if _, _, ok := Parse(s); ok {
			t.Errorf("%s: expected not a rational", s)
		}
	}
}
