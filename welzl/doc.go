// Package welzl resolves minimal enclosing circles with a Welzl-style
// recursive search over a support ("boundary") set.
//
// 🚀 What does it solve?
//
//	• All points (default): the smallest circle containing every input point.
//	• k points (WithSmallestPoints): the smallest circle containing some k of
//	  the input points, exact over all k-subsets.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/enclosing/welzl"
//
//	c, err := welzl.NewResolver(points).Resolve()
//	c3, err := welzl.NewResolver(points, welzl.WithSeed(7)).
//		WithSmallestPoints(3).
//		Resolve()
//
// Building blocks:
//
//   - Resolver — owns a private copy of the points plus the boundary stack;
//     the recursion runs on an explicit work stack (no call-stack depth limit).
//   - Closure  — static incremental sweep: minimal circle of a fixed list;
//     also gives the k query its first bound.
//   - Options  — tolerance, deterministic shuffle, duplicate removal.
//
// Errors:
//
//   - ErrInsufficient (*InsufficientError) — fewer points than k, or k == 0.
//
// Performance:
//
//   - All points: O(n) expected (shuffled input), O(n) memory.
//   - k points:   O(n³) candidate supports, each counted in O(n) only when
//     smaller than the best circle so far.
package welzl
