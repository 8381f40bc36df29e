// Package geom provides the planar primitives consumed by the enclosing-circle
// resolver: points, circles, and the closed-form circle constructors.
//
// 🚀 What is inside?
//
//	• Real     — numeric constraint (float32 / float64) parameterizing all types
//	• Point[T] — immutable coordinate pair with the usual vector helpers
//	• Circle[T] — center + non-negative radius, inclusive containment test
//	• FromPoint / FromTwoPoints / FromThreePoints — the unique circle
//	  determined by a support set of 1, 2 or 3 points
//
// Numeric policy:
//
//   - Containment is non-strict: a point on the circle is inside.
//     Comparisons use a relative tolerance (DefaultEps) scaled by max(1, r).
//   - FromThreePoints never yields NaN/Inf: a collinear or coincident triple
//     degrades to the circle over its two farthest points as diameter.
//
// Interop:
//
//	Point[float64] converts to and from github.com/golang/geo/r2.Point
//	via Point.R2 and FromR2.
//
// Complexity: every operation in this package is O(1) (ContainsAll is O(n)).
package geom
