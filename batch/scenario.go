package batch

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/randwalk/geom"
	"github.com/katalvlaran/randwalk/step"
	"github.com/katalvlaran/randwalk/walk"
)

// Scenario is the immutable description shared by every walk of a batch.
// Boundary and Target are templates: each walk receives its own clone.
type Scenario struct {
	Start      geom.Point3
	MaxSteps   int
	Step       step.Kind
	Boundary   *geom.Shape
	Target     *geom.Shape
	MoveTarget bool
}

// Validate performs the driver's one-time checks before any walk starts.
//
// Errors:
//   - ErrTargetOutsideBoundary — target center not strictly inside the boundary.
//   - ErrStartOutsideBoundary  — start not strictly inside the boundary.
//   - ErrNoAcceptableStep      — no candidate first step stays inside the boundary.
//   - step.ErrUnknownKind      — unknown generator kind.
//   - walk.ErrConfiguration    — anything walk.New rejects (max steps,
//     moving target without boundary, non-finite start).
func (sc Scenario) Validate() error {
	// A throwaway walk runs the same construction checks every real walk will.
	if _, err := sc.newWalk(step.NewRand(0), false); err != nil {
		return fmt.Errorf("%s: %w", methodValidate, err)
	}
	if sc.Boundary != nil {
		if sc.Target != nil && !sc.Boundary.Encloses(sc.Target) {
			return fmt.Errorf("%s: target %s, boundary %s: %w", methodValidate, sc.Target, sc.Boundary, ErrTargetOutsideBoundary)
		}
		if !sc.Boundary.ContainsPoint(sc.Start) {
			return fmt.Errorf("%s: start %s, boundary %s: %w", methodValidate, geom.FormatPoint(sc.Start), sc.Boundary, ErrStartOutsideBoundary)
		}
		if !sc.canStep() {
			return fmt.Errorf("%s: start %s, boundary %s, step %s: %w", methodValidate, geom.FormatPoint(sc.Start), sc.Boundary, sc.Step, ErrNoAcceptableStep)
		}
	}

	return nil
}

// diagonal is the per-axis component of a unit vector along a cube diagonal.
var diagonal = 1 / math.Sqrt(3)

// canStep reports whether some step from Start lands inside the boundary.
// Grid walks try all six lattice steps, which is exact. Continuous walks try
// the six axis and eight diagonal directions; that is sufficient but not
// necessary, so a start wedged in a very thin region may be refused.
func (sc Scenario) canStep() bool {
	lattice := step.GridSteps()
	for _, d := range lattice {
		if sc.Boundary.ContainsPoint(sc.Start.Add(d)) {
			return true
		}
	}
	if sc.Step != step.KindContinuous {
		return false
	}
	for _, sx := range []float64{-1, 1} {
		for _, sy := range []float64{-1, 1} {
			for _, sz := range []float64{-1, 1} {
				d := geom.Pt(sx, sy, sz).Mul(diagonal)
				if sc.Boundary.ContainsPoint(sc.Start.Add(d)) {
					return true
				}
			}
		}
	}

	return false
}

// newWalk builds one walk of the scenario with private shape clones.
func (sc Scenario) newWalk(r *rand.Rand, recordPath bool) (*walk.Walk, error) {
	gen, err := step.New(sc.Step)
	if err != nil {
		return nil, err
	}
	opts := []walk.Option{walk.WithRand(r), walk.WithMoveTarget(sc.MoveTarget)}
	if sc.Boundary != nil {
		opts = append(opts, walk.WithBoundary(sc.Boundary.Clone()))
	}
	if sc.Target != nil {
		opts = append(opts, walk.WithTarget(sc.Target.Clone()))
	}
	if !recordPath {
		opts = append(opts, walk.WithoutPath())
	}

	return walk.New(sc.Start, sc.MaxSteps, gen, opts...)
}

// Characteristics summarises a scenario the way a report header would.
type Characteristics struct {
	Boundary        string
	BoundaryVolume  float64
	Target          string
	TargetVolume    float64
	Start           geom.Point3
	InitialDistance float64 // start → target center; 0 without a target
	MoveTarget      bool
	Step            step.Kind
	MaxSteps        int
	HasBoundary     bool
	HasTarget       bool
}

// Describe returns the scenario characteristics. It does not validate.
func (sc Scenario) Describe() Characteristics {
	c := Characteristics{
		Boundary:   "none (unconfined)",
		Target:     "none",
		Start:      sc.Start,
		MoveTarget: sc.MoveTarget,
		Step:       sc.Step,
		MaxSteps:   sc.MaxSteps,
	}
	if sc.Boundary != nil {
		c.HasBoundary = true
		c.Boundary = sc.Boundary.String()
		c.BoundaryVolume = sc.Boundary.Volume()
	}
	if sc.Target != nil {
		c.HasTarget = true
		c.Target = sc.Target.String()
		c.TargetVolume = sc.Target.Volume()
		c.InitialDistance = sc.Target.DistanceFrom(sc.Start)
	}

	return c
}

// String renders the characteristics as an indented multi-line report.
func (c Characteristics) String() string {
	s := "Walk characteristics:\n"
	s += fmt.Sprintf("   Boundary: %s\n", c.Boundary)
	if c.HasBoundary {
		s += fmt.Sprintf("      Volume: %.0f\n", c.BoundaryVolume)
	}
	s += fmt.Sprintf("   Target: %s\n", c.Target)
	if c.HasTarget {
		s += fmt.Sprintf("      Volume: %.0f\n", c.TargetVolume)
	}
	s += fmt.Sprintf("   Starting point: %s\n", geom.FormatPoint(c.Start))
	if c.HasTarget {
		s += fmt.Sprintf("   Distance from start to initial target: %.2f\n", c.InitialDistance)
	}
	s += fmt.Sprintf("   Step generator: %s\n", c.Step)
	s += fmt.Sprintf("   Max steps: %d\n", c.MaxSteps)
	s += fmt.Sprintf("   Move target: %v\n", c.MoveTarget)

	return s
}
