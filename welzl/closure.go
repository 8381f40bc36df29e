package welzl

import "github.com/katalvlaran/enclosing/geom"

// supportLimit is the largest support set a planar circle can need.
const supportLimit = 3

// circleOf returns the circle determined by a support set of 1–3 points
// (point / diameter / circumcircle). Supports never exceed supportLimit.
// ok is false for an empty set, which determines no circle.
func circleOf[T geom.Real](support []geom.Point[T]) (c geom.Circle[T], ok bool) {
	switch len(support) {
	case 0:
		return geom.Circle[T]{}, false
	case 1:
		return geom.FromPoint(support[0]), true
	case 2:
		return geom.FromTwoPoints(support[0], support[1]), true
	default:
		return geom.FromThreePoints(support[0], support[1], support[2]), true
	}
}

// Closure returns the smallest circle containing every point of ps, using a
// static incremental sweep over a fixed list:
//
//  1. Start from the circle of ps[0] alone.
//  2. For each ps[i] outside the current circle, ps[i] must be on the circle
//     enclosing ps[0..i]: reseed as the circle of ps[i] and re-scan the
//     earlier points.
//  3. For each earlier ps[j] still outside, reseed on the diameter
//     ps[i]–ps[j]; every ps[l] (l<j) outside that forces the circumcircle
//     of ps[i], ps[j], ps[l].
//
// The result contains all of ps (within eps) and has one, two or three of
// them on its boundary. An empty ps yields the zero Circle.
//
// Complexity: O(n) expected for a random order, O(n³) worst case.
func Closure[T geom.Real](ps []geom.Point[T], eps float64) geom.Circle[T] {
	if len(ps) == 0 {
		return geom.Circle[T]{}
	}

	c := geom.FromPoint(ps[0])
	for i := 1; i < len(ps); i++ {
		if c.ContainsEps(ps[i], eps) {
			continue
		}
		c = geom.FromPoint(ps[i])
		for j := 0; j < i; j++ {
			if c.ContainsEps(ps[j], eps) {
				continue
			}
			c = geom.FromTwoPoints(ps[i], ps[j])
			for l := 0; l < j; l++ {
				if c.ContainsEps(ps[l], eps) {
					continue
				}
				c = geom.FromThreePoints(ps[i], ps[j], ps[l])
			}
		}
	}

	return c
}
