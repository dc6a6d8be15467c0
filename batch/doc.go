// Package batch is the simulation driver: it validates a scenario once,
// then runs many independent walks of it concurrently.
//
// Every walk in a batch gets:
//   - its own clone of the boundary and the target, so moving targets never
//     race between walks;
//   - its own random stream, step.StreamRand(seed, index), so a batch is
//     reproducible regardless of worker count or scheduling.
//
// The runner reports one Outcome per walk, in index order. Turning outcomes
// into statistics or plots is left to the caller.
//
//	sc := batch.Scenario{Start: geom.Origin, MaxSteps: 1_000_000, Step: step.KindContinuous,
//		Boundary: boundary, Target: target}
//	res, err := batch.NewRunner(batch.WithSeed(42), batch.WithWorkers(8)).Run(ctx, sc, 100)
package batch
