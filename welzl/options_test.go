package welzl_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/enclosing/geom"
	"github.com/katalvlaran/enclosing/welzl"
)

func TestDefaultOptions(t *testing.T) {
	o := welzl.DefaultOptions()
	assert.Equal(t, geom.DefaultEps, o.Eps)
	assert.True(t, o.Shuffle)
	assert.Zero(t, o.Seed)
	assert.Nil(t, o.Rand)
	assert.False(t, o.Distinct)
}

func TestOptionConstructors_Panic(t *testing.T) {
	assert.Panics(t, func() { welzl.WithEps(-1) })
	assert.Panics(t, func() { welzl.WithEps(math.NaN()) })
	assert.Panics(t, func() { welzl.WithRand(nil) })
	assert.NotPanics(t, func() { welzl.WithEps(0) })
}

func TestOptions_LaterOverridesEarlier(t *testing.T) {
	o := welzl.DefaultOptions()
	for _, opt := range []welzl.Option{welzl.WithoutShuffle(), welzl.WithSeed(7), welzl.WithEps(1e-3)} {
		opt(&o)
	}
	assert.True(t, o.Shuffle, "WithSeed re-enables shuffling")
	assert.Equal(t, int64(7), o.Seed)
	assert.Equal(t, 1e-3, o.Eps)
}

func TestWithEps_LooseToleranceAbsorbsNearPoints(t *testing.T) {
	ps := []geom.Point[float64]{{X: -1, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1.0005}}

	strict, err := welzl.NewResolver(ps, welzl.WithEps(0)).Resolve()
	require.NoError(t, err)
	assert.Greater(t, strict.Radius, 1.0)

	loose, err := welzl.NewResolver(ps, welzl.WithEps(1e-3), welzl.WithoutShuffle()).Resolve()
	require.NoError(t, err)
	assert.LessOrEqual(t, loose.Radius, strict.Radius)
	assert.True(t, loose.ContainsAll(ps, 1e-3))
}

func TestShuffle_SeedDeterminism(t *testing.T) {
	ps := randomPoints(300, seedDet, 9)
	a, err := welzl.NewResolver(ps, welzl.WithSeed(99)).Resolve()
	require.NoError(t, err)
	b, err := welzl.NewResolver(ps, welzl.WithRand(rand.New(rand.NewSource(99)))).Resolve()
	require.NoError(t, err)
	assert.Equal(t, a, b, "same seed ⇒ same permutation ⇒ identical circle")
}

func TestShuffle_ZeroSeedUsesDefault(t *testing.T) {
	ps := randomPoints(100, seedDet, 2)
	a, err := welzl.NewResolver(ps).Resolve()
	require.NoError(t, err)
	b, err := welzl.NewResolver(ps, welzl.WithSeed(0)).Resolve()
	require.NoError(t, err)
	c, err := welzl.NewResolver(ps, welzl.WithSeed(1)).Resolve()
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.Equal(t, a, c)
}

func TestShuffle_OrderDoesNotChangeKAnswer(t *testing.T) {
	ps := randomPoints(40, seedDet, 5)
	want, err := welzl.NewResolver(ps, welzl.WithoutShuffle()).WithSmallestPoints(12).Resolve()
	require.NoError(t, err)
	for _, seed := range []int64{0, 3, 77} {
		got, err := welzl.NewResolver(ps, welzl.WithSeed(seed)).WithSmallestPoints(12).Resolve()
		require.NoError(t, err)
		requireSameCircle(t, want, got)
	}
}
