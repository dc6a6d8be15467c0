package step

import "math/rand"

// DefaultSeed replaces a zero seed so that "unset" is still reproducible.
const DefaultSeed int64 = 1

// golden is the SplitMix64 increment (2^64 / phi, odd).
const golden uint64 = 0x9e3779b97f4a7c15

// NewRand returns a *rand.Rand seeded with seed, or DefaultSeed when seed is 0.
// The result is not safe for concurrent use; give each walk its own.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = DefaultSeed
	}

	return rand.New(rand.NewSource(seed))
}

// DeriveSeed returns the seed of stream number stream under parent: the
// (stream+1)-th output of a SplitMix64 generator started at parent. Distinct
// streams of one parent never share a seed.
func DeriveSeed(parent int64, stream uint64) int64 {
	return int64(mix64(uint64(parent) + (stream+1)*golden))
}

// StreamRand returns the generator for stream under parent (0 means
// DefaultSeed). It is a pure function of its arguments, so walk i of a batch
// draws the same numbers whatever order the walks are started in.
func StreamRand(parent int64, stream uint64) *rand.Rand {
	if parent == 0 {
		parent = DefaultSeed
	}

	return rand.New(rand.NewSource(DeriveSeed(parent, stream)))
}

// mix64 is the SplitMix64 output function; it is a bijection on uint64.
func mix64(z uint64) uint64 {
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb

	return z ^ (z >> 31)
}
