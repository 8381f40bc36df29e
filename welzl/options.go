// SPDX-License-Identifier: MIT
// Package welzl: functional options.
//
// Contract:
//   • Options are functional (type Option func(*Options)), applied in order;
//     later options override earlier ones.
//   • Option constructors VALIDATE and PANIC on meaningless inputs
//     (negative eps, nil RNG). The resolver itself never panics.
//   • Determinism is explicit: the shuffle stream comes from WithSeed or
//     WithRand; the default seed is fixed (see rng.go).

package welzl

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/enclosing/geom"
)

// Options configures a Resolver:
//
//   - Eps:      relative containment tolerance (see geom.Circle.ContainsEps)
//   - Shuffle:  randomize the point order once before resolving, keeping the
//     expected O(n) bound of the all-points query; when false the points are
//     consumed last-to-first (input order reversed)
//   - Seed:     shuffle seed; 0 means defaultRNGSeed
//   - Rand:     explicit shuffle source; overrides Seed when non-nil
//   - Distinct: drop exact duplicate points before resolving
type Options struct {
	Eps      float64
	Shuffle  bool
	Seed     int64
	Rand     *rand.Rand
	Distinct bool
}

// Option mutates Options before the resolver is built.
type Option func(*Options)

// DefaultOptions returns the defaults used by NewResolver:
//
//   - Eps:      geom.DefaultEps
//   - Shuffle:  true, seeded with defaultRNGSeed (reproducible)
//   - Distinct: false (duplicates count as separate points)
func DefaultOptions() Options {
	return Options{
		Eps:     geom.DefaultEps,
		Shuffle: true,
	}
}

// WithEps sets the containment tolerance. Zero means exact comparisons.
// Panics on negative or NaN eps.
func WithEps(eps float64) Option {
	if eps < 0 || math.IsNaN(eps) {
		panic("welzl: WithEps(eps<0 or NaN)")
	}
	return func(o *Options) {
		o.Eps = eps
	}
}

// WithSeed enables shuffling with a deterministic seed.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Shuffle = true
		o.Seed = seed
		o.Rand = nil
	}
}

// WithRand enables shuffling with the caller's RNG. Panics on nil.
// The RNG is consumed during NewResolver; do not share it across goroutines.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("welzl: WithRand(nil)")
	}
	return func(o *Options) {
		o.Shuffle = true
		o.Rand = r
	}
}

// WithoutShuffle keeps the caller's order: points are taken from the end of
// the input first. Correct, but adversarial orders lose the expected O(n) bound.
func WithoutShuffle() Option {
	return func(o *Options) {
		o.Shuffle = false
	}
}

// WithDistinct removes exact duplicate points (first occurrence wins) before
// resolving, so k counts distinct locations.
func WithDistinct() Option {
	return func(o *Options) {
		o.Distinct = true
	}
}

func newOptions(opts ...Option) Options {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
