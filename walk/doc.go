// Package walk runs a single confined 3D random walk.
//
// 🚀 What is a confined walk?
//
//	A particle starts at a fixed point and repeatedly proposes a unit step
//	(a "trial"). The trial is judged against two optional shapes:
//
//	  target   — a trial inside the target is accepted and ends the walk;
//	  boundary — a trial outside the boundary is rejected and retried.
//
//	Only accepted steps count against MaxSteps. Rejected trials are free, so
//	a tightly confined walk may draw many more trials than it takes steps;
//	Attempts reports that total.
//
// ✨ Lifecycle:
//
//	Pending ──Run──▶ Running ──▶ TargetHit
//	                         └──▶ MaxStepsExceeded
//
//	A Walk is single-use. Accessors are valid at any time; before Run they
//	report StepsTaken()==0 and TargetHit()==false.
//
// ⚙️ Usage:
//
//	boundary, _ := geom.NewSphere(geom.Origin, 20)
//	target, _ := geom.NewSphere(geom.Pt(10, 10, 10), 3.33)
//	w, err := walk.New(geom.Origin, 500_000_000, step.Continuous{},
//		walk.WithBoundary(boundary),
//		walk.WithTarget(target),
//		walk.WithSeed(42),
//	)
//	if err != nil { ... }
//	_ = w.Run()
//	fmt.Println(w.TargetHit(), w.StepsTaken())
//
// Moving targets:
//
//	WithMoveTarget(true) lets the target attempt one random relocation inside
//	the boundary after every trial that misses it. This requires a boundary;
//	New rejects the configuration otherwise. The target Shape is mutated in
//	place, so concurrent walks must each own their target (geom.Shape.Clone).
//
// Complexity:
//
//	Time   = O(Attempts) — each trial is O(1).
//	Memory = O(StepsTaken) for the path, O(1) with WithoutPath.
package walk
