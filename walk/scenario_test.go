package walk_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/randwalk/geom"
	"github.com/katalvlaran/randwalk/step"
	"github.com/katalvlaran/randwalk/walk"
)

// sphereScenarioMaxSteps is the practical ceiling used by long-running studies.
const sphereScenarioMaxSteps = 500_000_000

// meanStepsToTarget runs n seeded walks in a sphere of radius R with a target
// of radius R/6 centered at (R/2, R/2, R/2) and returns the hit count and the
// mean accepted steps of the hits.
func meanStepsToTarget(t *testing.T, radius float64, n int, seed int64) (hits int, mean float64) {
	t.Helper()
	var total int
	for i := 0; i < n; i++ {
		boundary, err := geom.NewSphere(geom.Origin, radius)
		require.NoError(t, err)
		target, err := geom.NewSphere(geom.Pt(radius/2, radius/2, radius/2), radius/6)
		require.NoError(t, err)
		require.True(t, boundary.Encloses(target))

		w, err := walk.New(geom.Origin, sphereScenarioMaxSteps, step.Continuous{},
			walk.WithRand(step.StreamRand(seed, uint64(i))),
			walk.WithBoundary(boundary), walk.WithTarget(target), walk.WithoutPath())
		require.NoError(t, err)
		require.NoError(t, w.Run())
		if w.TargetHit() {
			hits++
			total += w.StepsTaken()
		}
	}
	if hits > 0 {
		mean = float64(total) / float64(hits)
	}

	return hits, mean
}

// TestScenario_SphereTargetIsReached reproduces the classic configuration:
// Sphere boundary r=20, target r=3.33 at (10,10,10), start at the origin.
func TestScenario_SphereTargetIsReached(t *testing.T) {
	if testing.Short() {
		t.Skip("long-running scenario")
	}
	const n = 40
	var hits, total int
	for i := 0; i < n; i++ {
		boundary, _ := geom.NewSphere(geom.Origin, 20)
		target, _ := geom.NewSphere(geom.Pt(10, 10, 10), 3.33)
		w, err := walk.New(geom.Origin, sphereScenarioMaxSteps, step.Continuous{},
			walk.WithRand(step.StreamRand(77, uint64(i))),
			walk.WithBoundary(boundary), walk.WithTarget(target), walk.WithoutPath())
		require.NoError(t, err)
		require.NoError(t, w.Run())
		if w.TargetHit() {
			hits++
			total += w.StepsTaken()
		}
	}
	assert.Equal(t, n, hits, "every walk should reach the target well within the budget")
	assert.Greater(t, float64(total)/float64(hits), 1.0)
}

// TestScenario_LargerBoundaryTakesLonger checks the average steps to target
// grows monotonically with the boundary radius when the target scales with it.
func TestScenario_LargerBoundaryTakesLonger(t *testing.T) {
	if testing.Short() {
		t.Skip("long-running scenario")
	}
	const n = 300
	radii := []float64{10, 15, 20, 25, 30}
	means := make([]float64, len(radii))
	for i, r := range radii {
		hits, mean := meanStepsToTarget(t, r, n, int64(100+i))
		require.Equal(t, n, hits, "radius %g", r)
		means[i] = mean
	}
	for i := 1; i < len(means); i++ {
		assert.Greater(t, means[i], means[i-1], "radius %g vs %g: means %v", radii[i], radii[i-1], means)
	}
}
