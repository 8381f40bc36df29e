package enclosing

import (
	"github.com/golang/geo/r2"

	"github.com/katalvlaran/enclosing/geom"
	"github.com/katalvlaran/enclosing/welzl"
)

// Shape is anything that can hand its defining points to the resolver.
type Shape[T geom.Real] interface {
	Points() []geom.Point[T]
}

// Of returns the smallest circle enclosing every point of s.
func Of[T geom.Real](s Shape[T], opts ...welzl.Option) (geom.Circle[T], error) {
	return welzl.NewResolver(s.Points(), opts...).Resolve()
}

// OfK returns the smallest circle enclosing k of the points of s.
// Panics on negative k.
func OfK[T geom.Real](s Shape[T], k int, opts ...welzl.Option) (geom.Circle[T], error) {
	return welzl.NewResolver(s.Points(), opts...).WithSmallestPoints(k).Resolve()
}

// PointSet is an arbitrary point collection.
type PointSet[T geom.Real] []geom.Point[T]

// Points returns the collection itself; the resolver copies it.
func (s PointSet[T]) Points() []geom.Point[T] { return s }

// Enclosing returns the minimal circle enclosing the whole set.
func (s PointSet[T]) Enclosing(opts ...welzl.Option) (geom.Circle[T], error) {
	return Of[T](s, opts...)
}

// EnclosingK returns the minimal circle enclosing k points of the set.
func (s PointSet[T]) EnclosingK(k int, opts ...welzl.Option) (geom.Circle[T], error) {
	return OfK[T](s, k, opts...)
}

// Line is the segment from S to E.
type Line[T geom.Real] struct {
	S, E geom.Point[T]
}

// Points returns the two endpoints.
func (l Line[T]) Points() []geom.Point[T] { return []geom.Point[T]{l.S, l.E} }

// Enclosing returns the circle having the segment as diameter.
func (l Line[T]) Enclosing(opts ...welzl.Option) (geom.Circle[T], error) {
	return Of[T](l, opts...)
}

// EnclosingK returns the minimal circle enclosing k of the endpoints.
func (l Line[T]) EnclosingK(k int, opts ...welzl.Option) (geom.Circle[T], error) {
	return OfK[T](l, k, opts...)
}

// Triangle is the triangle ABC.
type Triangle[T geom.Real] struct {
	A, B, C geom.Point[T]
}

// Points returns the three vertices.
func (t Triangle[T]) Points() []geom.Point[T] { return []geom.Point[T]{t.A, t.B, t.C} }

// Enclosing returns the minimal enclosing circle: the circumcircle for an
// acute or right triangle, the longest side as diameter for an obtuse one.
func (t Triangle[T]) Enclosing(opts ...welzl.Option) (geom.Circle[T], error) {
	return Of[T](t, opts...)
}

// EnclosingK returns the minimal circle enclosing k of the vertices.
func (t Triangle[T]) EnclosingK(k int, opts ...welzl.Option) (geom.Circle[T], error) {
	return OfK[T](t, k, opts...)
}

// Square is the axis-aligned square with lower-left corner (X, Y) and side
// length Side.
type Square[T geom.Real] struct {
	X, Y, Side T
}

// Points returns the four corners counter-clockwise from (X, Y).
func (q Square[T]) Points() []geom.Point[T] {
	return []geom.Point[T]{
		{X: q.X, Y: q.Y},
		{X: q.X + q.Side, Y: q.Y},
		{X: q.X + q.Side, Y: q.Y + q.Side},
		{X: q.X, Y: q.Y + q.Side},
	}
}

// Enclosing returns the circumscribed circle of the square.
func (q Square[T]) Enclosing(opts ...welzl.Option) (geom.Circle[T], error) {
	return Of[T](q, opts...)
}

// EnclosingK returns the minimal circle enclosing k of the corners.
func (q Square[T]) EnclosingK(k int, opts ...welzl.Option) (geom.Circle[T], error) {
	return OfK[T](q, k, opts...)
}

// Rect adapts an r2.Rect (float64 only).
type Rect struct {
	r2.Rect
}

// RectFromPoints returns the smallest Rect containing every point of ps.
func RectFromPoints(ps ...geom.Point[float64]) Rect {
	rs := make([]r2.Point, len(ps))
	for i := range ps {
		rs[i] = ps[i].R2()
	}
	return Rect{Rect: r2.RectFromPoints(rs...)}
}

// Points returns the four vertices, counter-clockwise from the lower left.
// An empty rectangle has no points.
func (r Rect) Points() []geom.Point[float64] {
	if r.IsEmpty() {
		return nil
	}
	v := r.Vertices()
	return geom.FromR2Slice(v[:])
}

// Enclosing returns the circumscribed circle of the rectangle.
func (r Rect) Enclosing(opts ...welzl.Option) (geom.Circle[float64], error) {
	return Of[float64](r, opts...)
}

// EnclosingK returns the minimal circle enclosing k of the vertices.
func (r Rect) EnclosingK(k int, opts ...welzl.Option) (geom.Circle[float64], error) {
	return OfK[float64](r, k, opts...)
}
