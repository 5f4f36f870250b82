package tuple

import (
	"strconv"
	"testing"

	"github.com/go-quicktest/qt"
)

func TestZip(t *testing.T) {
	a := New3(1, 2, 3)
	b := New3(2, 4, 6)
	qt.Assert(t, qt.Equals(Zip3(a, b), New3(
		Pair[int, int]{1, 2},
		Pair[int, int]{2, 4},
		Pair[int, int]{3, 6},
	)))
}

func TestZipHeterogeneous(t *testing.T) {
	a := New2(1, "b")
	b := New2(3.5, 'd')
	qt.Assert(t, qt.Equals(Zip2(a, b), New2(
		Pair[int, float64]{1, 3.5},
		Pair[string, rune]{"b", 'd'},
	)))
}

func TestUnzipRoundTrip(t *testing.T) {
	a := New3(1, "two", 3.5)
	b := New3('x', true, byte(9))
	first, second := Unzip3(Zip3(a, b))
	qt.Assert(t, qt.Equals(first, a))
	qt.Assert(t, qt.Equals(second, b))
}

func TestZipWith(t *testing.T) {
	a := New3(1, 2, 3)
	b := New3(2, 4, 6)
	add := func(x, y int) int { return x + y }
	qt.Assert(t, qt.Equals(ZipWith3(a, b, add), New3(3, 6, 9)))
}

func TestZipWithMixedTypes(t *testing.T) {
	a := New2("x", "y")
	b := New2(1, 2)
	r := ZipWith2(a, b, func(s string, n int) string {
		return s + strconv.Itoa(n)
	})
	qt.Assert(t, qt.Equals(r, New2("x1", "y2")))
}

func TestApply(t *testing.T) {
	v := New4(1, 2, 3, 4)
	qt.Assert(t, qt.Equals(Apply4(v, func(x int) int { return x + 2 }), New4(3, 4, 5, 6)))
}

func TestApplyChangesElementType(t *testing.T) {
	v := New3(1, 2, 3)
	qt.Assert(t, qt.Equals(Apply3(v, strconv.Itoa), New3("1", "2", "3")))
}

func TestForEachOrder(t *testing.T) {
	var got []int
	ForEach4(New4(1, 2, 3, 4), func(x int) {
		got = append(got, x)
	})
	qt.Assert(t, qt.DeepEquals(got, []int{1, 2, 3, 4}))
}

func TestRForEachOrder(t *testing.T) {
	var got []int
	RForEach4(New4(1, 2, 3, 4), func(x int) {
		got = append(got, x)
	})
	qt.Assert(t, qt.DeepEquals(got, []int{4, 3, 2, 1}))
}

// Side effects on the elements themselves go through a tied tuple:
// each handle writes back to the underlying array.
func TestForEachMutatesThroughRefs(t *testing.T) {
	a := [4]int{1, 2, 3, 4}
	index := 0
	f := func(r Ref[int]) {
		index++
		r.Set(r.Get() + index)
	}

	ForEach4(TieArray4(&a), f)
	qt.Assert(t, qt.Equals(a, [4]int{2, 4, 6, 8}))

	a = [4]int{1, 2, 3, 4}
	index = 0
	RForEach4(TieArray4(&a), f)
	qt.Assert(t, qt.Equals(a, [4]int{5, 5, 5, 5}))
}

func TestForward(t *testing.T) {
	v := New3(1, 2, 3)
	sum := Forward3(v, func(x, y, z int) int { return x + y + z })
	qt.Assert(t, qt.Equals(sum, 6))
}

// Forward with a constructor function builds an arbitrary aggregate
// from a tuple's elements.
func TestForwardAsFactory(t *testing.T) {
	type size struct {
		w, h int
	}
	v := New2(800, 600)
	s := Forward2(v, func(w, h int) size { return size{w, h} })
	qt.Assert(t, qt.Equals(s, size{800, 600}))
}

func TestForwardEmpty(t *testing.T) {
	qt.Assert(t, qt.Equals(Forward0(New0(), func() int { return 42 }), 42))
}
