// Package enclosing computes minimal enclosing circles — the smallest circle
// containing a finite set of points in the plane — with a Welzl-style
// recursive resolver, and the k-generalized query: the smallest circle
// enclosing k points chosen from the input.
//
// 🚀 What is inside?
//
//	A small, zero-global-state library organized under two subpackages:
//		• geom/  — Point, Circle, Real and the closed-form circle constructors
//		• welzl/ — the resolver: explicit-stack recursion, boundary-closure
//		           sweep, k-enclosing search, options and errors
//
//	This root package adapts concrete shapes to the resolver:
//		PointSet → all its points     Line     → its 2 endpoints
//		Triangle → its 3 vertices     Square   → its 4 corners
//		Rect     → its 4 vertices (github.com/golang/geo/r2)
//
// ✨ Guarantees:
//
//   - Enclosing() contains every point (inclusive, within geom.DefaultEps)
//     and is minimal.
//   - EnclosingK(k) is the smallest circle enclosing some k of the points;
//     k greater than the number of points fails with welzl.ErrInsufficient.
//   - Deterministic by default: the one-time input shuffle uses a fixed seed.
//   - Pure Go, no logging, no panics on user input.
//
// Quick example:
//
//	tri := enclosing.Triangle[float64]{A: geom.Pt(0., 0.), B: geom.Pt(1., 0.), C: geom.Pt(0., 1.)}
//	c, err := tri.Enclosing()
//	// c.Center == (0.5, 0.5), c.Radius == √2/2
//
//	go get github.com/katalvlaran/enclosing
package enclosing
