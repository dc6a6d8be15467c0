package walk

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/randwalk/geom"
	"github.com/katalvlaran/randwalk/step"
)

// State is the lifecycle position of a Walk.
type State int

const (
	// Pending: constructed, not yet run.
	Pending State = iota
	// Running: inside Run.
	Running
	// TargetHit: a trial step entered the target.
	TargetHit
	// MaxStepsExceeded: the accepted-step budget ran out without a hit.
	MaxStepsExceeded
)

// String returns a readable state name.
func (s State) String() string {
	switch s {
	case Pending:
		return "pending"
	case Running:
		return "running"
	case TargetHit:
		return "target-hit"
	case MaxStepsExceeded:
		return "max-steps-exceeded"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Walk is a single-use confined random walk.
//
// Invariants:
//   - path[0] == start
//   - len(path)-1 == stepsTaken, unless built WithoutPath; then path holds
//     only start and Position is the sole record of where the walk ended
//   - stepsTaken <= maxSteps
type Walk struct {
	start      geom.Point3
	maxSteps   int
	gen        step.Generator
	boundary   *geom.Shape
	target     *geom.Shape
	moveTarget bool
	rng        *rand.Rand
	recordPath bool
	onStep     func(n int, p geom.Point3)

	state      State
	position   geom.Point3
	path       []geom.Point3
	stepsTaken int
	attempts   int
	targetHit  bool
}

// New validates the configuration and returns a Pending walk.
//
// Errors (all match ErrConfiguration):
//   - ErrInvalidMaxSteps         — maxSteps <= 0.
//   - ErrNilGenerator            — gen is nil.
//   - ErrInvalidStart            — start has a NaN/Inf coordinate.
//   - ErrNeedRandSource          — no WithRand/WithSeed.
//   - ErrMoveTargetNeedsBoundary — WithMoveTarget(true) with a target but no boundary.
//   - ErrOptionViolation         — an option received a meaningless value.
func New(start geom.Point3, maxSteps int, gen step.Generator, opts ...Option) (*Walk, error) {
	cfg := newWalkConfig(opts...)
	if cfg.err != nil {
		return nil, fmt.Errorf("%s: %w", methodNew, cfg.err)
	}
	if maxSteps <= 0 {
		return nil, fmt.Errorf("%s: maxSteps=%d: %w", methodNew, maxSteps, ErrInvalidMaxSteps)
	}
	if gen == nil {
		return nil, fmt.Errorf("%s: %w", methodNew, ErrNilGenerator)
	}
	if !geom.IsFinite(start) {
		return nil, fmt.Errorf("%s: start=%s: %w", methodNew, geom.FormatPoint(start), ErrInvalidStart)
	}
	if cfg.rng == nil {
		return nil, fmt.Errorf("%s: %w", methodNew, ErrNeedRandSource)
	}
	if cfg.moveTarget && cfg.target != nil && cfg.boundary == nil {
		return nil, fmt.Errorf("%s: %w", methodNew, ErrMoveTargetNeedsBoundary)
	}

	w := &Walk{
		start:      start,
		maxSteps:   maxSteps,
		gen:        gen,
		boundary:   cfg.boundary,
		target:     cfg.target,
		moveTarget: cfg.moveTarget,
		rng:        cfg.rng,
		recordPath: cfg.recordPath,
		onStep:     cfg.onStep,
		state:      Pending,
		position:   start,
		path:       []geom.Point3{start},
	}

	return w, nil
}

// Run performs the walk until a trial enters the target or maxSteps
// accepted steps have been taken. It may be called once; later calls
// return ErrAlreadyRun and leave the outcome untouched.
//
// Per trial:
//  1. trial = position + gen.Next(rng).
//  2. Target first: a trial inside the target is accepted and ends the walk,
//     even if the boundary would have rejected it. On a miss, a moving
//     target attempts one relocation inside the boundary.
//  3. Boundary: the trial is accepted only if strictly inside; a rejected
//     trial does not consume a step. Without a boundary every trial is accepted.
func (w *Walk) Run() error {
	if w.state != Pending {
		return fmt.Errorf("%s: state=%s: %w", methodRun, w.state, ErrAlreadyRun)
	}
	w.state = Running

	for w.stepsTaken < w.maxSteps {
		trial := w.position.Add(w.gen.Next(w.rng))
		w.attempts++

		if w.target != nil {
			if w.target.ContainsPoint(trial) {
				w.accept(trial)
				w.targetHit = true
				w.state = TargetHit
				return nil
			}
			if w.moveTarget {
				// Rejections are silent; New already ruled out a missing boundary.
				if _, err := w.target.AttemptRandomRelocate(w.gen, w.rng, w.boundary); err != nil {
					return fmt.Errorf("%s: %w", methodRun, err)
				}
			}
		}

		if w.boundary != nil && !w.boundary.ContainsPoint(trial) {
			continue
		}
		w.accept(trial)
	}

	w.targetHit = false
	w.state = MaxStepsExceeded

	return nil
}

// accept commits trial as the new position.
func (w *Walk) accept(trial geom.Point3) {
	w.position = trial
	w.stepsTaken++
	if w.recordPath {
		w.path = append(w.path, trial)
	}
	if w.onStep != nil {
		w.onStep(w.stepsTaken, trial)
	}
}

// Start returns the starting point.
func (w *Walk) Start() geom.Point3 { return w.start }

// MaxSteps returns the accepted-step budget.
func (w *Walk) MaxSteps() int { return w.maxSteps }

// Generator returns the step generator.
func (w *Walk) Generator() step.Generator { return w.gen }

// Boundary returns the confining shape, or nil for an unconfined walk.
func (w *Walk) Boundary() *geom.Shape { return w.boundary }

// Target returns the target shape, or nil for an untargeted walk.
func (w *Walk) Target() *geom.Shape { return w.target }

// MoveTarget reports whether the target relocates during the walk.
func (w *Walk) MoveTarget() bool { return w.moveTarget }

// State returns the lifecycle state.
func (w *Walk) State() State { return w.state }

// StepsTaken returns the number of accepted steps.
func (w *Walk) StepsTaken() int { return w.stepsTaken }

// Attempts returns the number of trial steps drawn, accepted or not.
func (w *Walk) Attempts() int { return w.attempts }

// TargetHit reports whether the walk ended inside the target.
func (w *Walk) TargetHit() bool { return w.targetHit }

// Position returns the current (after Run: final) position.
func (w *Walk) Position() geom.Point3 { return w.position }

// Path returns a copy of the recorded path, starting with the start point.
func (w *Walk) Path() []geom.Point3 {
	out := make([]geom.Point3, len(w.path))
	copy(out, w.path)

	return out
}
