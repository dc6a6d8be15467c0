// SPDX-License-Identifier: MIT
// Package: randwalk/walk
//
// options.go — functional options for New.
//
// Contract:
//   • WithRand panics on nil (programmer error surfaced early, as builder does).
//   • Other invalid values are recorded and surfaced by New as ErrOptionViolation.
//   • Options apply in order; later options override earlier ones.

package walk

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/randwalk/geom"
	"github.com/katalvlaran/randwalk/step"
)

// Option customizes a Walk before it is built.
type Option func(*walkConfig)

// walkConfig aggregates every knob New consumes.
type walkConfig struct {
	boundary   *geom.Shape
	target     *geom.Shape
	moveTarget bool
	rng        *rand.Rand
	recordPath bool
	onStep     func(n int, p geom.Point3)

	// err records the first invalid option.
	err error
}

// newWalkConfig returns defaults with all options applied.
// Defaults: no boundary, no target, static target, no rng, path recorded.
func newWalkConfig(opts ...Option) walkConfig {
	cfg := walkConfig{recordPath: true}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithBoundary confines the walk to b. Trials outside b are rejected without
// consuming a step. A nil b means the walk is unconfined.
func WithBoundary(b *geom.Shape) Option {
	return func(c *walkConfig) {
		c.boundary = b
	}
}

// WithTarget ends the walk as soon as a trial lands strictly inside t.
// A nil t means the walk has no target and always runs to MaxSteps.
func WithTarget(t *geom.Shape) Option {
	return func(c *walkConfig) {
		c.target = t
	}
}

// WithMoveTarget lets the target attempt a random relocation inside the
// boundary after every trial that misses it.
func WithMoveTarget(move bool) Option {
	return func(c *walkConfig) {
		c.moveTarget = move
	}
}

// WithRand supplies the random source. Panics on nil; prefer WithSeed for
// reproducible runs.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("walk: WithRand(nil)")
	}
	return func(c *walkConfig) {
		c.rng = r
	}
}

// WithSeed creates a private random source from seed (seed==0 ⇒ step.DefaultSeed).
func WithSeed(seed int64) Option {
	return func(c *walkConfig) {
		c.rng = step.NewRand(seed)
	}
}

// WithoutPath disables path recording. Path then holds only the start point
// and the final position must be read from Position.
func WithoutPath() Option {
	return func(c *walkConfig) {
		c.recordPath = false
	}
}

// WithOnStep registers fn to be called after every accepted step with the
// step number (1-based) and the new position. A nil fn is an option violation.
func WithOnStep(fn func(n int, p geom.Point3)) Option {
	return func(c *walkConfig) {
		if fn == nil {
			c.err = fmt.Errorf("WithOnStep(nil): %w", ErrOptionViolation)
			return
		}
		c.onStep = fn
	}
}
