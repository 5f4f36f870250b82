package geometry

import (
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestAdd(t *testing.T) {
	c := qt.New(t)
	c.Assert(Add(Point{1, 2, 3}, Point{4, 5, 6}), qt.Equals, Point{5, 7, 9})
}

func TestSub(t *testing.T) {
	c := qt.New(t)
	c.Assert(Sub(Point{4, 5, 6}, Point{1, 2, 3}), qt.Equals, Point{3, 3, 3})
}

func TestScale(t *testing.T) {
	c := qt.New(t)
	c.Assert(Scale(Point{1, 2, 3}, 2), qt.Equals, Point{2, 4, 6})
}

func TestDot(t *testing.T) {
	c := qt.New(t)
	c.Assert(Dot(Point{1, 2, 3}, Point{4, 5, 6}), qt.Equals, 32.0)
}

func TestCross(t *testing.T) {
	c := qt.New(t)
	c.Assert(Cross(Point{1, 0, 0}, Point{0, 1, 0}), qt.Equals, Point{0, 0, 1})
	c.Assert(Cross(Point{0, 1, 0}, Point{1, 0, 0}), qt.Equals, Point{0, 0, -1})
}

func TestLength(t *testing.T) {
	c := qt.New(t)
	c.Assert(Length(Point{3, 4, 0}), qt.Equals, 5.0)
}

func TestNormalize(t *testing.T) {
	c := qt.New(t)
	c.Assert(Normalize(Point{2, 0, 0}), qt.Equals, Point{1, 0, 0})
	c.Assert(Normalize(Point{0, 0, 8}), qt.Equals, Point{0, 0, 1})
}

func TestDistance(t *testing.T) {
	c := qt.New(t)
	c.Assert(Distance(Point{1, 1, 1}, Point{4, 5, 1}), qt.Equals, 5.0)
}
