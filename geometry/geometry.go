// Package geometry demonstrates point-free vector arithmetic over the
// tuple package: a point's coordinates form a tuple, and the vector
// operations are tuple combinators.
package geometry

import (
	"math"

	"github.com/rogpeppe/tuple"
)

// Point is a point in three-dimensional space.
type Point struct {
	X, Y, Z float64
}

func add(x, y float64) float64 { return x + y }
func mul(x, y float64) float64 { return x * y }

// coords returns the coordinates of p as a tuple.
func (p Point) coords() tuple.N3[float64] {
	return tuple.New3(p.X, p.Y, p.Z)
}

// fromCoords builds a Point from a coordinate tuple by forwarding the
// elements to a constructor.
func fromCoords(t tuple.N3[float64]) Point {
	return tuple.Forward3(t, func(x, y, z float64) Point {
		return Point{x, y, z}
	})
}

// Add returns the vector sum of p and q.
func Add(p, q Point) Point {
	return fromCoords(tuple.ZipWith3(p.coords(), q.coords(), add))
}

// Sub returns the vector difference p - q.
func Sub(p, q Point) Point {
	return fromCoords(tuple.ZipWith3(p.coords(), q.coords(), func(x, y float64) float64 {
		return x - y
	}))
}

// Scale returns p scaled by k.
func Scale(p Point, k float64) Point {
	return fromCoords(tuple.Apply3(p.coords(), func(v float64) float64 {
		return v * k
	}))
}

// Dot returns the dot product of p and q.
func Dot(p, q Point) float64 {
	return tuple.Foldl1_3(tuple.ZipWith3(p.coords(), q.coords(), mul), add)
}

// Cross returns the cross product of p and q.
func Cross(p, q Point) Point {
	return Point{
		p.Y*q.Z - p.Z*q.Y,
		p.Z*q.X - p.X*q.Z,
		p.X*q.Y - p.Y*q.X,
	}
}

// Length returns the euclidean length of p.
func Length(p Point) float64 {
	return math.Sqrt(Dot(p, p))
}

// Normalize returns the unit vector in p's direction.
func Normalize(p Point) Point {
	return Scale(p, 1/Length(p))
}

// Distance returns the euclidean distance between p and q.
func Distance(p, q Point) float64 {
	return math.Sqrt(tuple.Foldl1_3(
		tuple.ZipWith3(p.coords(), q.coords(), func(x, y float64) float64 {
			return (y - x) * (y - x)
		}),
		add,
	))
}
