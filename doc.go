// Package randwalk simulates random walkers in three dimensions: a walker
// leaves a start point, takes unit-length steps, is kept inside an optional
// boundary shape and stops when a step lands inside a target shape.
//
// What is inside?
//
//	geom/  — Point3 (mgl64.Vec3), Box, Sphere and Ellipsoid shapes with strict
//	         containment, volume, relocation and random relocation
//	step/  — continuous (uniform on the sphere) and grid (±x, ±y, ±z) step
//	         generators, seeded random streams
//	walk/  — a single confined walk: rejection of out-of-bounds trials,
//	         target-first hit test, optional moving target, recorded path
//	batch/ — scenario validation, characteristics report, concurrent batches
//	         with one reproducible stream per walk
//	config/ — YAML scenario files with RANDWALK_* environment overrides
//
// Quick start:
//
//	boundary, _ := geom.NewSphere(geom.Origin, 20)
//	target, _ := geom.NewSphere(geom.Pt(10, 10, 10), 3.33)
//	w, _ := walk.New(geom.Origin, 1_000_000, step.Continuous{},
//		walk.WithBoundary(boundary), walk.WithTarget(target), walk.WithSeed(42))
//	_ = w.Run()
//	fmt.Println(w.State(), w.StepsTaken())
//
// The randwalk command in cmd/randwalk runs batches from a scenario file.
package randwalk
