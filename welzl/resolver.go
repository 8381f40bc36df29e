// Package welzl — recursive resolver (explicit work stack).
//
// Resolver owns two stacks: the remaining points and the boundary (support)
// points. The recursion of Welzl's algorithm is run on an explicit stack of
// frames; each frame pops one point p and resumes in one of two stages:
//
//	without — the sub-problem that ignores p has been solved;
//	with    — the sub-problem that forces p onto the boundary has been solved.
//
// Every frame returns p to the remaining stack before it is discarded, and
// every boundary push is matched by a pop, so sibling branches always observe
// the stacks exactly as their parent left them. The "without p" branch is
// always completed before the "with p" branch is entered.
//
// Two queries share this machinery:
//
//  1. All points (k == n, the default). Classical Welzl: a branch stops when
//     the boundary holds min(k, 3) points or no points remain, and the circle
//     comes from the boundary in closed form. The "with p" branch runs only if
//     the circle of the "without p" branch does not contain p.
//  2. k points (k < n). The boundary is a candidate support: every set of
//     one, two or three points is pushed exactly once, and its circle (point,
//     diameter or circumcircle) is counted against all points. The smallest
//     candidate containing at least k points wins. The minimal circle of any
//     k-subset is fixed by at most three of its points, so this is the exact
//     minimum. The best circle so far, seeded by the closure of the first k
//     points, bounds the walk: a candidate that is not smaller is neither
//     counted nor extended, since a circle through a support set is never
//     smaller than the circle of any of its pairs.
//
// Complexity:
//   - All points: O(n) expected with the default shuffle; stack depth O(n).
//   - k points:   O(n³) candidates, each counted in O(n) only when it beats
//     the best circle so far. Memory O(n).
package welzl

import "github.com/katalvlaran/enclosing/geom"

// stage is the resume point of a frame.
type stage uint8

const (
	stageEnter   stage = iota // frame not started yet
	stageWithout              // child solved without p
	stageWith                 // child solved with p on the boundary
)

// frame is one activation of the recursive step.
type frame[T geom.Real] struct {
	p     geom.Point[T]
	stage stage
}

// Resolver computes the smallest circle enclosing a point collection
// (or k points of it). Build one per query with NewResolver.
type Resolver[T geom.Real] struct {
	points   []geom.Point[T] // remaining points; the top of the stack is the last element
	boundary []geom.Point[T] // support (all points) or candidate support (k points)
	circle   geom.Circle[T]  // current circle; the incumbent during the k search
	valid    bool            // circle is defined (false for an empty boundary / no incumbent)
	k        int             // target support size
	eps      float64         // containment tolerance
}

// NewResolver copies points into a new Resolver targeting all of them
// (k = number of points after WithDistinct, if given). The shuffle, when
// enabled, is applied to the private copy here.
//
// Complexity: O(n) time and memory.
func NewResolver[T geom.Real](points []geom.Point[T], opts ...Option) *Resolver[T] {
	cfg := newOptions(opts...)

	var owned []geom.Point[T]
	if cfg.Distinct {
		owned = distinct(points)
	} else {
		owned = make([]geom.Point[T], len(points))
		copy(owned, points)
	}

	if cfg.Shuffle {
		rng := cfg.Rand
		if rng == nil {
			rng = rngFromSeed(cfg.Seed)
		}
		shufflePoints(owned, rng)
	}

	return &Resolver[T]{
		points:   owned,
		boundary: make([]geom.Point[T], 0, supportLimit),
		k:        len(owned),
		eps:      cfg.Eps,
	}
}

// WithSmallestPoints sets the target support size k: Resolve will return the
// smallest circle enclosing k of the points. Panics on negative k.
func (r *Resolver[T]) WithSmallestPoints(k int) *Resolver[T] {
	if k < 0 {
		panic("welzl: WithSmallestPoints(k<0)")
	}
	r.k = k
	return r
}

// Len returns the number of points the resolver owns.
func (r *Resolver[T]) Len() int { return len(r.points) }

// K returns the target support size.
func (r *Resolver[T]) K() int { return r.k }

// Resolve runs the query.
//
// Errors:
//   - *InsufficientError{Require: k, Points: n} if n < k.
//   - *InsufficientError{Require: 1, Points: 0} if k == 0 (an empty input
//     on the all-points query): no point, no circle.
//
// The stacks are restored on return, so calling Resolve again yields the
// same circle.
func (r *Resolver[T]) Resolve() (geom.Circle[T], error) {
	n := len(r.points)
	if n < r.k {
		return geom.Circle[T]{}, insufficient(r.k, n)
	}
	if r.k == 0 {
		return geom.Circle[T]{}, insufficient(1, 0)
	}

	r.circle, r.valid = geom.Circle[T]{}, false
	if r.k == n {
		r.solveAll()
	} else {
		r.solveK()
	}

	return r.circle, nil
}

// contains is the containment test against the current circle.
// An undefined circle contains nothing.
func (r *Resolver[T]) contains(p geom.Point[T]) bool {
	return r.valid && r.circle.ContainsEps(p, r.eps)
}

func (r *Resolver[T]) popPoint() geom.Point[T] {
	last := len(r.points) - 1
	p := r.points[last]
	r.points = r.points[:last]
	return p
}

// solveAll is classical Welzl on the explicit stack.
func (r *Resolver[T]) solveAll() {
	limit := min(r.k, supportLimit)
	stack := make([]frame[T], 1, len(r.points)+1)

	for len(stack) > 0 {
		top := len(stack) - 1
		switch stack[top].stage {
		case stageEnter:
			if len(r.boundary) == limit || len(r.points) == 0 {
				r.circle, r.valid = circleOf(r.boundary)
				stack = stack[:top]
				continue
			}
			stack[top].p = r.popPoint()
			stack[top].stage = stageWithout
			stack = append(stack, frame[T]{})

		case stageWithout:
			p := stack[top].p
			if r.contains(p) {
				r.points = append(r.points, p)
				stack = stack[:top]
				continue
			}
			// p is outside: it belongs to the support of this sub-problem.
			r.boundary = append(r.boundary, p)
			stack[top].stage = stageWith
			stack = append(stack, frame[T]{})

		case stageWith:
			r.boundary = r.boundary[:len(r.boundary)-1]
			r.points = append(r.points, stack[top].p)
			stack = stack[:top]
		}
	}
}

// solveK walks candidate supports of up to three points on the explicit
// stack, keeping the smallest circle that holds k points in r.circle.
func (r *Resolver[T]) solveK() {
	all := make([]geom.Point[T], len(r.points))
	copy(all, r.points)

	// Any k points give a feasible first bound.
	r.circle, r.valid = Closure(all[:r.k], r.eps), true

	stack := make([]frame[T], 1, len(r.points)+1)

	for len(stack) > 0 {
		top := len(stack) - 1
		switch stack[top].stage {
		case stageEnter:
			if len(r.boundary) == supportLimit || len(r.points) == 0 {
				stack = stack[:top]
				continue
			}
			stack[top].p = r.popPoint()
			stack[top].stage = stageWithout
			stack = append(stack, frame[T]{})

		case stageWithout:
			p := stack[top].p
			r.boundary = append(r.boundary, p)
			c, _ := circleOf(r.boundary)
			if c.Radius >= r.circle.Radius {
				// Supersets of this support are no smaller either.
				r.boundary = r.boundary[:len(r.boundary)-1]
				r.points = append(r.points, p)
				stack = stack[:top]
				continue
			}
			if holdsK(c, all, r.k, r.eps) {
				r.circle = c
			}
			stack[top].stage = stageWith
			stack = append(stack, frame[T]{})

		case stageWith:
			r.boundary = r.boundary[:len(r.boundary)-1]
			r.points = append(r.points, stack[top].p)
			stack = stack[:top]
		}
	}
}

// holdsK reports whether c contains at least k points of ps. It stops as
// soon as the answer is known.
func holdsK[T geom.Real](c geom.Circle[T], ps []geom.Point[T], k int, eps float64) bool {
	need := k
	for i := range ps {
		if c.ContainsEps(ps[i], eps) {
			need--
			if need == 0 {
				return true
			}
		} else if len(ps)-i-1 < need {
			return false
		}
	}
	return false
}

// distinct returns a fresh slice without exact duplicates, first occurrence
// first.
func distinct[T geom.Real](points []geom.Point[T]) []geom.Point[T] {
	seen := make(map[geom.Point[T]]struct{}, len(points))
	out := make([]geom.Point[T], 0, len(points))
	for _, p := range points {
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out
}
