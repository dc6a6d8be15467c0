// Package step provides the unit-length displacement generators that drive a
// random walk, and the seeded random streams they draw from.
//
// Two variants exist:
//
//	Continuous — a direction uniformly distributed on the unit sphere,
//	             obtained by normalising three standard-normal draws.
//	Grid       — one of the six axis-aligned unit vectors, each with p=1/6.
//
// Generators are stateless values; all randomness comes from the *rand.Rand
// passed to Next. The same generator value may therefore be shared freely,
// while each goroutine must own its *rand.Rand (math/rand.Rand is NOT
// goroutine-safe). StreamRand splits one seed into independent streams.
//
//	r := step.NewRand(42)
//	g, _ := step.New(step.KindGrid)
//	d := g.Next(r) // e.g. (0, -1, 0)
package step
