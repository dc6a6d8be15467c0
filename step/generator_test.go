package step_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/randwalk/geom"
	"github.com/katalvlaran/randwalk/step"
)

// zeroFirstSource returns zeros for the first n draws, then defers to inner.
// Zero draws make NormFloat64 return exactly 0, forcing a degenerate vector.
type zeroFirstSource struct {
	n     int
	inner rand.Source
}

func (s *zeroFirstSource) Int63() int64 {
	if s.n > 0 {
		s.n--
		return 0
	}
	return s.inner.Int63()
}

func (s *zeroFirstSource) Seed(seed int64) { s.inner.Seed(seed) }

// TestParseKind checks canonical names, aliases and rejection of unknown names.
func TestParseKind(t *testing.T) {
	cases := []struct {
		in   string
		want step.Kind
	}{
		{"continuous", step.KindContinuous},
		{"Direct", step.KindContinuous},
		{" angle ", step.KindContinuous},
		{"grid", step.KindGrid},
		{"GRID", step.KindGrid},
	}
	for _, tc := range cases {
		got, err := step.ParseKind(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}

	_, err := step.ParseKind("hex")
	assert.ErrorIs(t, err, step.ErrUnknownKind)
}

// TestNew returns the matching variant and rejects unknown kinds.
func TestNew(t *testing.T) {
	g, err := step.New(step.KindContinuous)
	require.NoError(t, err)
	assert.Equal(t, step.KindContinuous, g.Kind())
	assert.Equal(t, "continuous", g.Kind().String())

	g, err = step.New(step.KindGrid)
	require.NoError(t, err)
	assert.Equal(t, step.KindGrid, g.Kind())

	_, err = step.New(step.Kind(42))
	assert.ErrorIs(t, err, step.ErrUnknownKind)
}

// TestContinuous_UnitLength verifies every draw has length 1.
func TestContinuous_UnitLength(t *testing.T) {
	r := step.NewRand(7)
	g := step.Continuous{}
	for i := 0; i < 10000; i++ {
		d := g.Next(r)
		require.InDelta(t, 1.0, d.Len(), 1e-12, "draw %d: %v", i, d)
	}
}

// TestContinuous_Isotropic checks that the mean direction of many draws is
// close to the origin (no preferred axis).
func TestContinuous_Isotropic(t *testing.T) {
	r := step.NewRand(11)
	g := step.Continuous{}
	const n = 20000
	var sum geom.Point3
	for i := 0; i < n; i++ {
		sum = sum.Add(g.Next(r))
	}
	mean := sum.Mul(1.0 / n)
	assert.Less(t, mean.Len(), 0.05, "mean direction %v", mean)
}

// TestContinuous_DegenerateDrawIsRedrawn forces a zero vector on the first draw.
func TestContinuous_DegenerateDrawIsRedrawn(t *testing.T) {
	src := &zeroFirstSource{n: 3, inner: rand.NewSource(3)}
	r := rand.New(src)
	d := step.Continuous{}.Next(r)

	assert.False(t, math.IsNaN(d.Len()), "degenerate draw leaked NaN")
	assert.InDelta(t, 1.0, d.Len(), 1e-12)
	assert.Equal(t, 0, src.n, "the zero draws must have been consumed")
}

// TestGrid_AxisAlignedAndUniform checks membership in the six face directions
// and an approximately uniform frequency of each.
func TestGrid_AxisAlignedAndUniform(t *testing.T) {
	r := step.NewRand(5)
	g := step.Grid{}
	allowed := step.GridSteps()
	counts := make(map[geom.Point3]int, len(allowed))

	const n = 60000
	for i := 0; i < n; i++ {
		d := g.Next(r)
		counts[d]++
	}
	require.Len(t, counts, 6, "every face direction must appear and nothing else")
	for _, dir := range allowed {
		assert.Equal(t, 1.0, dir.Len())
		// Expected 10000 each; 5 sigma is roughly ±460.
		assert.InDelta(t, n/6, counts[dir], 500, "direction %v", dir)
	}
}

// TestGenerators_SatisfyDisplacer ensures generators can move targets.
func TestGenerators_SatisfyDisplacer(t *testing.T) {
	var _ geom.Displacer = step.Continuous{}
	var _ geom.Displacer = step.Grid{}
}
