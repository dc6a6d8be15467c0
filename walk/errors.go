// SPDX-License-Identifier: MIT
// Package: randwalk/walk
//
// errors.go — sentinel errors for the walk package.
//
// Every construction failure matches ErrConfiguration; Run itself has no
// recoverable error states beyond ErrAlreadyRun.

package walk

import (
	"errors"
	"fmt"
)

// ErrConfiguration is the umbrella for every construction-time failure.
var ErrConfiguration = errors.New("walk: invalid configuration")

var (
	// ErrInvalidMaxSteps indicates maxSteps <= 0.
	ErrInvalidMaxSteps = fmt.Errorf("%w: max steps must be > 0", ErrConfiguration)

	// ErrNilGenerator indicates a nil step generator.
	ErrNilGenerator = fmt.Errorf("%w: step generator is nil", ErrConfiguration)

	// ErrNeedRandSource indicates neither WithRand nor WithSeed was supplied.
	ErrNeedRandSource = fmt.Errorf("%w: rng is required", ErrConfiguration)

	// ErrInvalidStart indicates a start point with a NaN or infinite coordinate.
	ErrInvalidStart = fmt.Errorf("%w: start must be finite", ErrConfiguration)

	// ErrMoveTargetNeedsBoundary indicates a moving target without a boundary
	// to move inside of.
	ErrMoveTargetNeedsBoundary = fmt.Errorf("%w: moving target requires a boundary", ErrConfiguration)

	// ErrOptionViolation indicates a meaningless option value (e.g. a nil hook).
	ErrOptionViolation = fmt.Errorf("%w: invalid option supplied", ErrConfiguration)
)

// ErrAlreadyRun is returned by Run on a walk that has already been run.
var ErrAlreadyRun = errors.New("walk: already run")

// Method names used as error prefixes.
const (
	methodNew = "New"
	methodRun = "Run"
)
