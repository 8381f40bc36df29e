package geom

import (
	"fmt"
	"math"
)

// DefaultEps is the relative tolerance used by Circle.Contains.
// A point p is inside c iff |p-c| ≤ r + DefaultEps·max(1, r).
const DefaultEps = 1e-9

// collinearEps bounds |cross(b-a, c-a)| relative to |b-a|²+|c-a|² below which
// a triple is treated as collinear by FromThreePoints.
const collinearEps = 1e-12

// Circle is a center point and a non-negative radius.
// The zero value is the degenerate circle at the origin with radius 0.
type Circle[T Real] struct {
	Center Point[T]
	Radius T
}

// FromPoint returns the zero-radius circle at p.
func FromPoint[T Real](p Point[T]) Circle[T] {
	return Circle[T]{Center: p}
}

// FromTwoPoints returns the circle having segment ab as its diameter.
func FromTwoPoints[T Real](a, b Point[T]) Circle[T] {
	return Circle[T]{Center: a.Mid(b), Radius: a.Dist(b) / 2}
}

// FromThreePoints returns the circumcircle of the triangle abc.
//
// Degenerate input:
//   - all three points coincide → zero-radius circle at a;
//   - collinear (or two coincident) points → the circle over the two
//     mutually farthest points as diameter, which still passes through
//     those two points and contains the third.
//
// Complexity: O(1).
func FromThreePoints[T Real](a, b, c Point[T]) Circle[T] {
	// Work in float64 relative to a to keep cancellation small for float32.
	ab := widen(b).Sub(widen(a))
	ac := widen(c).Sub(widen(a))
	bl, cl := ab.Dot(ab), ac.Dot(ac)
	d := 2 * ab.Cross(ac)

	if bl+cl == 0 {
		return FromPoint(a)
	}
	if math.Abs(d) <= 2*collinearEps*(bl+cl) {
		return farthestPairCircle(a, b, c)
	}

	// Offset of the center from a: (ac·|ab|² - ab·|ac|²) rotated by -90°, over d.
	v := ac.Scale(bl).Sub(ab.Scale(cl))
	center := a.Add(Point[T]{X: T(v.Y / d), Y: T(-v.X / d)})

	// Radius is the largest of the three distances so that all three
	// defining points pass Contains even after rounding.
	r := center.Dist(a)
	if rb := center.Dist(b); rb > r {
		r = rb
	}
	if rc := center.Dist(c); rc > r {
		r = rc
	}

	return Circle[T]{Center: center, Radius: r}
}

// farthestPairCircle picks the longest of the three segments as diameter.
func farthestPairCircle[T Real](a, b, c Point[T]) Circle[T] {
	ab, ac, bc := a.DistSq(b), a.DistSq(c), b.DistSq(c)
	switch {
	case ab >= ac && ab >= bc:
		return FromTwoPoints(a, b)
	case ac >= bc:
		return FromTwoPoints(a, c)
	default:
		return FromTwoPoints(b, c)
	}
}

// Contains reports whether p lies inside or on c, using DefaultEps.
func (c Circle[T]) Contains(p Point[T]) bool {
	return c.ContainsEps(p, DefaultEps)
}

// ContainsEps reports whether |p-center| ≤ r + eps·max(1, r).
// eps ≤ 0 means an exact (non-strict) comparison.
func (c Circle[T]) ContainsEps(p Point[T], eps float64) bool {
	r := float64(c.Radius)
	d := float64(c.Center.Dist(p))
	if eps <= 0 {
		return d <= r
	}
	return d <= r+eps*math.Max(1, r)
}

// ContainsAll reports whether every point of ps is inside or on c.
// Complexity: O(n).
func (c Circle[T]) ContainsAll(ps []Point[T], eps float64) bool {
	for i := range ps {
		if !c.ContainsEps(ps[i], eps) {
			return false
		}
	}
	return true
}

// OnBoundary reports whether p lies on the circle within eps·max(1, r).
func (c Circle[T]) OnBoundary(p Point[T], eps float64) bool {
	r := float64(c.Radius)
	d := float64(c.Center.Dist(p))
	return math.Abs(d-r) <= eps*math.Max(1, r)
}

// String implements fmt.Stringer.
func (c Circle[T]) String() string {
	return fmt.Sprintf("Circle{center=%s, r=%g}", c.Center, float64(c.Radius))
}
