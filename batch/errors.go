// SPDX-License-Identifier: MIT
// Package: randwalk/batch
//
// errors.go — sentinel errors for scenario validation and batch execution.

package batch

import (
	"errors"
	"fmt"
)

// ErrConfiguration is the umbrella for every scenario validation failure.
var ErrConfiguration = errors.New("batch: invalid scenario")

var (
	// ErrTargetOutsideBoundary indicates the target center is not strictly
	// inside the boundary.
	ErrTargetOutsideBoundary = fmt.Errorf("%w: target is not inside the boundary", ErrConfiguration)

	// ErrStartOutsideBoundary indicates the start point is not strictly inside
	// the boundary; every trial could then be rejected forever.
	ErrStartOutsideBoundary = fmt.Errorf("%w: start is not inside the boundary", ErrConfiguration)

	// ErrNoAcceptableStep indicates that no step from the start point lands
	// inside the boundary; rejected trials cost nothing, so such a walk never ends.
	ErrNoAcceptableStep = fmt.Errorf("%w: no step from start stays inside the boundary", ErrConfiguration)

	// ErrInvalidWalkCount indicates a batch of fewer than one walk.
	ErrInvalidWalkCount = fmt.Errorf("%w: walk count must be > 0", ErrConfiguration)
)

// Method names used as error prefixes.
const (
	methodValidate = "Validate"
	methodRun      = "Run"
)
