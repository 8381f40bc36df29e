// Package welzl_test provides lightweight helpers shared across *_test.go
// files in this package: deterministic point generators and a brute-force
// oracle for the k-enclosing query.
package welzl_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/enclosing/geom"
)

// -----------------------------------------------------------------------------
// Constants - single source of truth for test knobs
// -----------------------------------------------------------------------------

const (
	// epsTiny is the tolerance for comparing radii/centers of equal circles.
	epsTiny = 1e-7

	// epsShrink is how much a minimal circle is shrunk to prove minimality.
	epsShrink = 1e-6

	// seedDet is a deterministic seed for generators and resolver shuffles.
	seedDet = int64(42)
)

// randomPoints returns n points uniform in [-scale, scale]², seeded.
func randomPoints(n int, seed int64, scale float64) []geom.Point[float64] {
	rng := rand.New(rand.NewSource(seed))
	ps := make([]geom.Point[float64], n)
	for i := range ps {
		ps[i] = geom.Pt((rng.Float64()*2-1)*scale, (rng.Float64()*2-1)*scale)
	}
	return ps
}

// clusteredPoints returns n points spread over a few tight clusters so that
// k-enclosing answers are well separated from the all-points answer.
func clusteredPoints(n int, seed int64) []geom.Point[float64] {
	rng := rand.New(rand.NewSource(seed))
	centers := []geom.Point[float64]{{X: 0, Y: 0}, {X: 10, Y: 3}, {X: -6, Y: 8}}
	ps := make([]geom.Point[float64], n)
	for i := range ps {
		c := centers[i%len(centers)]
		ps[i] = geom.Pt(c.X+rng.NormFloat64()*(1+float64(i%3)), c.Y+rng.NormFloat64())
	}
	return ps
}

// bruteForceK returns the smallest circle containing at least k points.
// Every minimal circle of a subset is fixed by 1, 2 or 3 of its points, so
// the candidates are all singletons, diameters and circumcircles.
//
// Complexity: O(n⁴).
func bruteForceK(ps []geom.Point[float64], k int) geom.Circle[float64] {
	best := geom.Circle[float64]{Radius: math.Inf(1)}
	try := func(c geom.Circle[float64]) {
		if c.Radius >= best.Radius {
			return
		}
		cnt := 0
		for _, p := range ps {
			if c.ContainsEps(p, geom.DefaultEps) {
				cnt++
			}
		}
		if cnt >= k {
			best = c
		}
	}

	n := len(ps)
	for i := 0; i < n; i++ {
		try(geom.FromPoint(ps[i]))
		for j := i + 1; j < n; j++ {
			try(geom.FromTwoPoints(ps[i], ps[j]))
			for l := j + 1; l < n; l++ {
				try(geom.FromThreePoints(ps[i], ps[j], ps[l]))
			}
		}
	}

	return best
}

// requireEnclosesAll fails unless c contains every point of ps.
func requireEnclosesAll(t *testing.T, c geom.Circle[float64], ps []geom.Point[float64]) {
	t.Helper()
	for i, p := range ps {
		require.Truef(t, c.Contains(p), "point #%d %s outside %s", i, p, c)
	}
}

// requireMinimal fails unless shrinking c by epsShrink leaves some point out.
func requireMinimal(t *testing.T, c geom.Circle[float64], ps []geom.Point[float64]) {
	t.Helper()
	shrunk := geom.Circle[float64]{Center: c.Center, Radius: c.Radius - epsShrink}
	require.Falsef(t, shrunk.ContainsAll(ps, 0), "%s is not minimal", c)
}

// requireSameCircle compares center and radius within epsTiny.
func requireSameCircle(t *testing.T, want, got geom.Circle[float64]) {
	t.Helper()
	require.InDelta(t, want.Radius, got.Radius, epsTiny, "radius")
	require.InDelta(t, want.Center.X, got.Center.X, epsTiny, "center.X")
	require.InDelta(t, want.Center.Y, got.Center.Y, epsTiny, "center.Y")
}
