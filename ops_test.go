package tuple

import (
	"testing"

	"github.com/go-quicktest/qt"
)

func TestHeadLast(t *testing.T) {
	v := New4(1, "b", 3.5, 'd')
	qt.Assert(t, qt.Equals(Head4(v), 1))
	qt.Assert(t, qt.Equals(Last4(v), 'd'))
	qt.Assert(t, qt.Equals(Head1(New1("only")), "only"))
	qt.Assert(t, qt.Equals(Last1(New1("only")), "only"))
}

func TestTailInit(t *testing.T) {
	v := New4(1, "b", 3.5, 'd')
	qt.Assert(t, qt.Equals(Tail4(v), New3("b", 3.5, 'd')))
	qt.Assert(t, qt.Equals(Init4(v), New3(1, "b", 3.5)))
	qt.Assert(t, qt.Equals(Tail1(New1(1)), New0()))
	qt.Assert(t, qt.Equals(Init1(New1(1)), New0()))
}

func TestReverse(t *testing.T) {
	qt.Assert(t, qt.Equals(Reverse3(New3(1, "b", 3.5)), New3(3.5, "b", 1)))
	qt.Assert(t, qt.Equals(Reverse1(New1(1)), New1(1)))
	qt.Assert(t, qt.Equals(Reverse0(New0()), New0()))
}

func TestReverseTwiceIsIdentity(t *testing.T) {
	v := New4(1, "b", 3.5, 'd')
	qt.Assert(t, qt.Equals(Reverse4(Reverse4(v)), v))
}

func TestAppendPrepend(t *testing.T) {
	v := New2(1, "b")
	qt.Assert(t, qt.Equals(Append2(v, 3.5), New3(1, "b", 3.5)))
	qt.Assert(t, qt.Equals(Prepend2(v, 3.5), New3(3.5, 1, "b")))
	qt.Assert(t, qt.Equals(Append0(New0(), 1), New1(1)))
	qt.Assert(t, qt.Equals(Prepend0(New0(), 1), New1(1)))
}

// Tail/Init undo Prepend/Append for any tuple, including the empty one.
func TestAppendRoundTrip(t *testing.T) {
	v := New3(1, "b", 3.5)
	qt.Assert(t, qt.Equals(Tail4(Prepend3(v, 'x')), v))
	qt.Assert(t, qt.Equals(Init4(Append3(v, 'x')), v))
	qt.Assert(t, qt.Equals(Tail1(Prepend0(New0(), 'x')), New0()))
	qt.Assert(t, qt.Equals(Init1(Append0(New0(), 'x')), New0()))
}

func TestConcat(t *testing.T) {
	a := New4(1, 2, 3, 4)
	b := New3(5, 6, 7)
	r := Concat_4_3(a, b)
	qt.Assert(t, qt.Equals(r, New7(1, 2, 3, 4, 5, 6, 7)))
	qt.Assert(t, qt.Equals(r.Len(), a.Len()+b.Len()))
}

func TestConcatEmpty(t *testing.T) {
	v := New3(1, "b", 3.5)
	qt.Assert(t, qt.Equals(Concat_0_3(New0(), v), v))
	qt.Assert(t, qt.Equals(Concat_3_0(v, New0()), v))
	qt.Assert(t, qt.Equals(Concat_0_0(New0(), New0()), New0()))
}

func TestConcatMixedTypes(t *testing.T) {
	r := Concat_2_2(New2(1, "b"), New2(3.5, 'd'))
	qt.Assert(t, qt.Equals(r, New4(1, "b", 3.5, 'd')))
}
