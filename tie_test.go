package tuple

import (
	"testing"

	"github.com/go-quicktest/qt"
)

func TestRef(t *testing.T) {
	x := 1
	r := NewRef(&x)
	qt.Assert(t, qt.Equals(r.Get(), 1))
	r.Set(2)
	qt.Assert(t, qt.Equals(x, 2))
	x = 3
	qt.Assert(t, qt.Equals(r.Get(), 3))
	qt.Assert(t, qt.Equals(r.Ptr(), &x))
}

func TestTie(t *testing.T) {
	x, y := 1, "a"
	v := Tie2(&x, &y)
	qt.Assert(t, qt.Equals(Deref2(v), New2(1, "a")))

	// Writes through the tuple are visible in the variables.
	v.A.Set(2)
	v.B.Set("b")
	qt.Assert(t, qt.Equals(x, 2))
	qt.Assert(t, qt.Equals(y, "b"))

	// Writes to the variables are visible through the tuple.
	x = 3
	qt.Assert(t, qt.Equals(Deref2(v), New2(3, "b")))
}

func TestTieArray(t *testing.T) {
	a := [3]int{1, 2, 3}
	v := TieArray3(&a)
	qt.Assert(t, qt.Equals(Deref3(v), New3(1, 2, 3)))
	a[1] = 20
	qt.Assert(t, qt.Equals(Deref3(v), New3(1, 20, 3)))
}

func TestAssign(t *testing.T) {
	var x, y, z int
	Assign3(Tie3(&x, &y, &z), New3(1, 2, 3))
	qt.Assert(t, qt.Equals(New3(x, y, z), New3(1, 2, 3)))
}

// Destructured locals and a tied array observe the same memory: the
// array is copied into the locals through their handles, and later
// writes to the locals are seen when the local tuple is re-read.
func TestTieAliasing(t *testing.T) {
	array := [4]int{10, 11, 12, 13}
	var a, b, c, d int
	locals := Tie4(&a, &b, &c, &d)

	Assign4(locals, Deref4(TieArray4(&array)))
	qt.Assert(t, qt.Equals(New4(a, b, c, d), New4(10, 11, 12, 13)))

	b = 43
	c = 89
	qt.Assert(t, qt.Equals(Deref4(locals), New4(10, 43, 89, 13)))
}

// A tied tuple concatenated with an owning tuple keeps aliasing its
// referents: mutating the array afterwards changes what the combined
// tuple reads.
func TestConcatKeepsAliasing(t *testing.T) {
	array := [4]int{4, 5, 6, 7}
	owned := New3(1, 2, 3)
	r := Concat_3_4(owned, TieArray4(&array))

	for i := range array {
		array[i] += 2
	}
	qt.Assert(t, qt.Equals(Concat_3_4(New3(r.A, r.B, r.C), Deref4(New4(r.D, r.E, r.F, r.G))),
		New7(1, 2, 3, 6, 7, 8, 9)))
}
