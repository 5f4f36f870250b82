package tuple

import (
	"testing"

	"github.com/go-quicktest/qt"
)

// ipow returns a raised to the power b.
func ipow(a, b int) int {
	r := 1
	for i := 0; i < b; i++ {
		r *= a
	}
	return r
}

func add(x, y int) int { return x + y }

func TestFoldl(t *testing.T) {
	qt.Assert(t, qt.Equals(Foldl5(New5(1, 2, 3, 4, 5), add, 0), 15))
	qt.Assert(t, qt.Equals(Foldl0(New0(), add, 7), 7))
}

// Left and right folds associate differently: with pow,
// (2^3)^2 = 64 but 2^(3^2) = 512.
func TestFoldAssociativity(t *testing.T) {
	v := New3(2, 3, 2)
	qt.Assert(t, qt.Equals(Foldl1_3(v, ipow), 64))
	qt.Assert(t, qt.Equals(Foldr1_3(v, ipow), 512))
}

func TestFoldrWithBase(t *testing.T) {
	// f(1, f(2, f(3, 0))) with subtraction: 1-(2-(3-0)) = 2.
	sub := func(x, y int) int { return x - y }
	qt.Assert(t, qt.Equals(Foldr3(New3(1, 2, 3), sub, 0), 2))
}

func TestFoldChangesAccumulatorType(t *testing.T) {
	v := New3(1, 2, 3)
	got := Foldl3(v, func(acc string, x int) string {
		return acc + string(rune('0'+x))
	}, "=")
	qt.Assert(t, qt.Equals(got, "=123"))
}

func TestScanSeedless(t *testing.T) {
	v := New3(2, 3, 2)
	qt.Assert(t, qt.Equals(Scanl1_3(v, ipow), New3(2, 8, 64)))
	qt.Assert(t, qt.Equals(Scanr1_3(v, ipow), New3(512, 9, 2)))
}

// A scan with a base keeps the seed, so the result has one more
// element than the input.
func TestScanWithBase(t *testing.T) {
	v := New3(1, 2, 3)
	qt.Assert(t, qt.Equals(Scanl3(v, add, 0), New4(0, 1, 3, 6)))
	qt.Assert(t, qt.Equals(Scanr3(v, add, 0), New4(6, 5, 3, 0)))
	qt.Assert(t, qt.Equals(Scanl0(New0(), add, 9), New1(9)))
}

// The last element of a left scan is the left fold, and the first
// element of a right scan is the right fold.
func TestScanFoldAgreement(t *testing.T) {
	v := New4(2, 2, 2, 2)
	qt.Assert(t, qt.Equals(Last4(Scanl1_4(v, ipow)), Foldl1_4(v, ipow)))
	qt.Assert(t, qt.Equals(Head4(Scanr1_4(v, ipow)), Foldr1_4(v, ipow)))
}
