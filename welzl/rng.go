// Package welzl - RNG utilities for the one-time input shuffle.
//
// Goals:
//   - Determinism: same seed ⇒ identical permutation, hence identical support
//     selection, across runs and platforms.
//   - Encapsulation: a single RNG factory; no time-based sources anywhere.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. A *rand.Rand passed via WithRand
//     must not be shared with other goroutines while NewResolver runs.
package welzl

import (
	"math/rand"

	"github.com/katalvlaran/enclosing/geom"
)

// defaultRNGSeed is the fixed seed used when callers pass seed==0.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ defaultRNGSeed; otherwise the seed verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}
	return rand.New(rand.NewSource(s))
}

// shufflePoints performs an in-place Fisher–Yates shuffle of ps.
// rng must be non-nil; NewResolver resolves it from the options.
//
// Complexity: O(n) time, O(1) extra space.
func shufflePoints[T geom.Real](ps []geom.Point[T], rng *rand.Rand) {
	n := len(ps)
	if n <= 1 {
		return
	}
	for i := n - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		ps[i], ps[j] = ps[j], ps[i]
	}
}
