package fixnum

import "testing"

func TestNumeral(t *testing.T) {
	for s, expected := range map[string]bool{
		"0":    true,
		"123":  true,
		"+7":   true,
		"-42":  true,
		"":     false,
		"+":    false,
		"-":    false,
		"1a":   false,
		"1.5":  false,
		"1/2":  false,
		"--1":  false,
		"a123": false,
	} {
		if actual := Numeral(s); actual != expected {
			t.Errorf("%q: expected %v, got %v", s, expected, actual)
		}
	}
}

func TestParse(t *testing.T) {
	for s, expected := range map[string]int32{
		"0":           0,
		"+7":          7,
		"-42":         -42,
		"2147483647":  2147483647,
		"-2147483648": -2147483648,
	} {
		actual, err := Parse(s)
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", s, err)
		}

		if actual != expected {
			t.Errorf("%q: expected %d, got %d", s, expected, actual)
		}
	}

	for _, s := range []string{"2147483648", "-2147483649", "x", "1/2"} {
		if _, err := Parse(s); err == nil {
			t.Errorf("%q: expected an error", s)
		}
	}
}
