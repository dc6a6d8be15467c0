package walk_test

import (
	"fmt"

	"github.com/katalvlaran/randwalk/geom"
	"github.com/katalvlaran/randwalk/step"
	"github.com/katalvlaran/randwalk/walk"
)

// ExampleNew runs an unconfined, untargeted grid walk: it always uses the
// whole budget and every step moves one lattice unit.
func ExampleNew() {
	w, err := walk.New(geom.Origin, 5, step.Grid{}, walk.WithSeed(1))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	_ = w.Run()

	fmt.Println(w.State(), w.StepsTaken(), w.TargetHit(), len(w.Path()))
	// Output:
	// max-steps-exceeded 5 false 6
}

// ExampleWalk_Run shows a walk whose target contains the start point: the
// target is only tested on trial steps, so the hit happens at step 1.
func ExampleWalk_Run() {
	boundary, _ := geom.NewSphere(geom.Origin, 10)
	target, _ := geom.NewSphere(geom.Origin, 2)
	w, _ := walk.New(geom.Origin, 100, step.Continuous{},
		walk.WithSeed(42), walk.WithBoundary(boundary), walk.WithTarget(target))

	_ = w.Run()
	fmt.Println(w.State(), w.StepsTaken())
	// Output:
	// target-hit 1
}

// ExampleWithMoveTarget shows that a moving target needs a boundary.
func ExampleWithMoveTarget() {
	target, _ := geom.NewSphere(geom.Pt(3, 0, 0), 1)
	_, err := walk.New(geom.Origin, 100, step.Grid{},
		walk.WithSeed(1), walk.WithTarget(target), walk.WithMoveTarget(true))
	fmt.Println(err)
	// Output:
	// New: walk: invalid configuration: moving target requires a boundary
}
