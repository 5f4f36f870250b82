package tuple

import (
	"testing"

	"github.com/go-quicktest/qt"
)

func TestNewAndFieldAccess(t *testing.T) {
	v := New3(1, "two", 3.5)
	qt.Assert(t, qt.Equals(v.A, 1))
	qt.Assert(t, qt.Equals(v.B, "two"))
	qt.Assert(t, qt.Equals(v.C, 3.5))
	qt.Assert(t, qt.Equals(v.Len(), 3))
}

func TestFieldAssignment(t *testing.T) {
	v := New4(0, 1, 2, 3)
	v.C = 42
	qt.Assert(t, qt.Equals(v, New4(0, 1, 42, 3)))
}

func TestZeroValue(t *testing.T) {
	var v T2[int, string]
	qt.Assert(t, qt.Equals(v, New2(0, "")))
}

func TestLen(t *testing.T) {
	qt.Assert(t, qt.Equals(New0().Len(), 0))
	qt.Assert(t, qt.Equals(New1(1).Len(), 1))
	qt.Assert(t, qt.Equals(New8(1, 2, 3, 4, 5, 6, 7, 8).Len(), 8))
}

func TestString(t *testing.T) {
	qt.Assert(t, qt.Equals(New0().String(), "()"))
	qt.Assert(t, qt.Equals(New1(1).String(), "(1)"))
	qt.Assert(t, qt.Equals(New3(1, "two", 3.5).String(), "(1, two, 3.5)"))
}

func TestNativeEquality(t *testing.T) {
	qt.Assert(t, qt.IsTrue(New2(1, "a") == New2(1, "a")))
	qt.Assert(t, qt.IsFalse(New2(1, "a") == New2(2, "a")))
}

func TestEqual(t *testing.T) {
	qt.Assert(t, qt.IsTrue(Equal(New3(1, 2, 3), New3(1, 2, 3))))
	qt.Assert(t, qt.IsFalse(Equal(New3(1, 2, 3), New3(1, 2, 4))))

	// Tuples of different arity are never equal, whatever they hold,
	// and comparing them must compile.
	qt.Assert(t, qt.IsFalse(Equal(New2(1, 2), New3(1, 2, 3))))
	qt.Assert(t, qt.IsFalse(Equal(New0(), New1(0))))

	// Same arity, different element types.
	qt.Assert(t, qt.IsFalse(Equal(New2(1, 2), New2("1", "2"))))
}

func TestPairAccessors(t *testing.T) {
	p := Pair[int, string]{1, "one"}
	qt.Assert(t, qt.Equals(p.First(), 1))
	qt.Assert(t, qt.Equals(p.Second(), "one"))
	qt.Assert(t, qt.Equals(p, New2(1, "one")))
}

func TestFromArrayToArray(t *testing.T) {
	a := [4]string{"w", "x", "y", "z"}
	v := FromArray4(a)
	qt.Assert(t, qt.Equals(v, New4("w", "x", "y", "z")))
	qt.Assert(t, qt.Equals(ToArray4(v), a))
}
