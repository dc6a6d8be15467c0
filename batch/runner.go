package batch

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/randwalk/geom"
	"github.com/katalvlaran/randwalk/step"
)

// Option configures a Runner.
type Option func(*Runner)

// Runner executes batches of independent walks.
type Runner struct {
	workers     int
	seed        int64
	recordPaths bool
	logger      *zap.Logger
}

// NewRunner returns a Runner with defaults: GOMAXPROCS workers, seed 0
// (step.DefaultSeed), no path recording, a no-op logger.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{
		workers: runtime.GOMAXPROCS(0),
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// WithWorkers bounds the number of walks running at once. n <= 0 keeps the default.
func WithWorkers(n int) Option {
	return func(r *Runner) {
		if n > 0 {
			r.workers = n
		}
	}
}

// WithSeed sets the batch seed from which every walk stream is derived.
func WithSeed(seed int64) Option {
	return func(r *Runner) {
		r.seed = seed
	}
}

// WithRecordPaths keeps the full path of every walk in its Outcome.
func WithRecordPaths(record bool) Option {
	return func(r *Runner) {
		r.recordPaths = record
	}
}

// WithLogger sets the logger. A nil logger keeps the no-op default.
func WithLogger(l *zap.Logger) Option {
	return func(r *Runner) {
		if l != nil {
			r.logger = l
		}
	}
}

// Outcome is the terminal result of one walk.
type Outcome struct {
	Index       int
	TargetHit   bool
	Steps       int
	Attempts    int
	Final       geom.Point3
	FinalTarget geom.Point3 // target center at the end; equals the initial center unless it moved
	Path        []geom.Point3
}

// Result holds the outcomes of one batch in walk-index order.
type Result struct {
	RunID    uuid.UUID
	Seed     int64
	Outcomes []Outcome
	Elapsed  time.Duration
}

// Run validates sc once, then executes n walks of it with at most Workers
// in flight. Walk i draws from step.StreamRand(seed, i), so the result is
// identical for any worker count.
//
// Cancellation is checked before each walk starts; a walk in progress always
// runs to its own termination.
func (r *Runner) Run(ctx context.Context, sc Scenario, n int) (*Result, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%s: n=%d: %w", methodRun, n, ErrInvalidWalkCount)
	}
	if err := sc.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", methodRun, err)
	}

	res := &Result{
		RunID:    uuid.New(),
		Seed:     r.seed,
		Outcomes: make([]Outcome, n),
	}
	log := r.logger.With(zap.String("run_id", res.RunID.String()))
	log.Info("batch started",
		zap.Int("walks", n),
		zap.Int("workers", r.workers),
		zap.Int64("seed", r.seed),
		zap.Int("max_steps", sc.MaxSteps),
		zap.Stringer("step", sc.Step),
		zap.Bool("move_target", sc.MoveTarget))
	began := time.Now()

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(r.workers)
	for i := 0; i < n; i++ {
		i := i // per-iteration copy (go directive predates Go 1.22 loop semantics)
		if egCtx.Err() != nil {
			break
		}
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			out, err := r.runOne(sc, i)
			if err != nil {
				return err
			}
			// Each goroutine owns exactly one slot.
			res.Outcomes[i] = out
			log.Debug("walk finished",
				zap.Int("walk", i),
				zap.Bool("target_hit", out.TargetHit),
				zap.Int("steps", out.Steps),
				zap.Int("attempts", out.Attempts))
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		log.Warn("batch aborted", zap.Error(err))
		return nil, fmt.Errorf("%s: %w", methodRun, err)
	}
	if err := ctx.Err(); err != nil {
		log.Warn("batch cancelled", zap.Error(err))
		return nil, fmt.Errorf("%s: %w", methodRun, err)
	}

	res.Elapsed = time.Since(began)
	log.Info("batch finished", zap.Duration("elapsed", res.Elapsed))

	return res, nil
}

// runOne builds and runs walk i of sc on its own stream and shape clones.
func (r *Runner) runOne(sc Scenario, i int) (Outcome, error) {
	w, err := sc.newWalk(step.StreamRand(r.seed, uint64(i)), r.recordPaths)
	if err != nil {
		return Outcome{}, fmt.Errorf("walk %d: %w", i, err)
	}
	if err := w.Run(); err != nil {
		return Outcome{}, fmt.Errorf("walk %d: %w", i, err)
	}

	out := Outcome{
		Index:     i,
		TargetHit: w.TargetHit(),
		Steps:     w.StepsTaken(),
		Attempts:  w.Attempts(),
		Final:     w.Position(),
	}
	if t := w.Target(); t != nil {
		out.FinalTarget = t.Center()
	}
	if r.recordPaths {
		out.Path = w.Path()
	}

	return out, nil
}
