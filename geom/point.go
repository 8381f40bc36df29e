package geom

import (
	"fmt"
	"math"

	"github.com/golang/geo/r2"
	"golang.org/x/exp/constraints"
)

// Real is the scalar constraint for every geom type and function.
type Real interface {
	constraints.Float
}

// Point is an ordered pair of coordinates. It is a value type with no
// identity beyond its coordinates.
type Point[T Real] struct {
	X, Y T
}

// Pt is shorthand for Point[T]{X: x, Y: y}.
func Pt[T Real](x, y T) Point[T] {
	return Point[T]{X: x, Y: y}
}

// Add returns p+q.
func (p Point[T]) Add(q Point[T]) Point[T] { return Point[T]{X: p.X + q.X, Y: p.Y + q.Y} }

// Sub returns p-q.
func (p Point[T]) Sub(q Point[T]) Point[T] { return Point[T]{X: p.X - q.X, Y: p.Y - q.Y} }

// Scale returns p·s.
func (p Point[T]) Scale(s T) Point[T] { return Point[T]{X: p.X * s, Y: p.Y * s} }

// Mid returns the midpoint of the segment pq.
func (p Point[T]) Mid(q Point[T]) Point[T] {
	return Point[T]{X: (p.X + q.X) / 2, Y: (p.Y + q.Y) / 2}
}

// Dot returns the dot product of p and q seen as vectors.
func (p Point[T]) Dot(q Point[T]) T { return p.X*q.X + p.Y*q.Y }

// Cross returns the z-component of the cross product p×q.
func (p Point[T]) Cross(q Point[T]) T { return p.X*q.Y - p.Y*q.X }

// Norm returns the Euclidean length of p seen as a vector.
func (p Point[T]) Norm() T { return T(math.Hypot(float64(p.X), float64(p.Y))) }

// DistSq returns the squared Euclidean distance between p and q.
func (p Point[T]) DistSq(q Point[T]) T {
	dx, dy := p.X-q.X, p.Y-q.Y
	return dx*dx + dy*dy
}

// Dist returns the Euclidean distance between p and q.
func (p Point[T]) Dist(q Point[T]) T { return p.Sub(q).Norm() }

// widen converts p to float64 coordinates.
func widen[T Real](p Point[T]) Point[float64] {
	return Point[float64]{X: float64(p.X), Y: float64(p.Y)}
}

// String implements fmt.Stringer.
func (p Point[T]) String() string {
	return fmt.Sprintf("(%g, %g)", float64(p.X), float64(p.Y))
}

// R2 converts p to a github.com/golang/geo/r2 point.
func (p Point[T]) R2() r2.Point {
	return r2.Point{X: float64(p.X), Y: float64(p.Y)}
}

// FromR2 converts an r2 point into a Point[float64].
func FromR2(p r2.Point) Point[float64] {
	return Point[float64]{X: p.X, Y: p.Y}
}

// FromR2Slice converts a slice of r2 points. The result never aliases ps.
// Complexity: O(n).
func FromR2Slice(ps []r2.Point) []Point[float64] {
	out := make([]Point[float64], len(ps))
	for i := range ps {
		out[i] = FromR2(ps[i])
	}
	return out
}
