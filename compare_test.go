package tuple

import "testing"

var compareTests = []struct {
	a, b N3[string]
	want int
}{{
	a:    New3("a", "b", "c"),
	b:    New3("a", "b", "c"),
	want: 0,
}, {
	a:    New3("a", "b", "c"),
	b:    New3("a", "b", "d"),
	want: -1,
}, {
	a:    New3("a", "c", "a"),
	b:    New3("a", "b", "z"),
	want: 1,
}, {
	a:    New3("b", "a", "a"),
	b:    New3("a", "z", "z"),
	want: 1,
}, {
	a:    New3("", "", ""),
	b:    New3("", "", "a"),
	want: -1,
}}

func TestCompare(t *testing.T) {
	for _, test := range compareTests {
		t.Run("", func(t *testing.T) {
			got := Compare3(test.a, test.b)
			if got != test.want {
				t.Fatalf("got %v want %v", got, test.want)
			}
		})
	}
}

func TestLess(t *testing.T) {
	if !Less2(New2(1, 2), New2(1, 3)) {
		t.Fatalf("expected (1, 2) < (1, 3)")
	}
	if Less2(New2(2, 0), New2(1, 9)) {
		t.Fatalf("expected (2, 0) >= (1, 9)")
	}
}

func TestCompareFunc(t *testing.T) {
	// Compare ints by absolute value.
	abs := func(x int) int {
		if x < 0 {
			return -x
		}
		return x
	}
	got := CompareFunc2(New2(-3, 1), New2(3, -2), func(x, y int) int {
		return abs(x) - abs(y)
	})
	if got >= 0 {
		t.Fatalf("got %v want negative", got)
	}
}

func TestEqualFunc(t *testing.T) {
	eq := func(x int, y string) bool {
		return string(rune('0'+x)) == y
	}
	if !EqualFunc3(New3(1, 2, 3), New3("1", "2", "3"), eq) {
		t.Fatalf("expected tuples to match")
	}
	if EqualFunc3(New3(1, 2, 3), New3("1", "2", "4"), eq) {
		t.Fatalf("expected tuples not to match")
	}
}
