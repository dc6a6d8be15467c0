// SPDX-License-Identifier: MIT
// Package: randwalk/geom
//
// errors.go — sentinel errors for the geom package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Every construction failure also matches ErrConfiguration, so a driver
//     can reject a whole scenario with a single check.
//   • Methods never panic on geometric input; they report errors instead.

package geom

import (
	"errors"
	"fmt"
)

// ErrConfiguration is the umbrella for every construction-time failure.
// Usage: if errors.Is(err, geom.ErrConfiguration) { /* reject scenario */ }.
var ErrConfiguration = errors.New("geom: invalid shape configuration")

// ErrInvalidExtent indicates a width/height/depth, radius or semi-axis that is
// not a finite, strictly positive number.
var ErrInvalidExtent = fmt.Errorf("%w: extent must be finite and > 0", ErrConfiguration)

// ErrInvalidCenter indicates a center with a NaN or infinite coordinate.
var ErrInvalidCenter = fmt.Errorf("%w: center must be finite", ErrConfiguration)

// ErrNilBoundary is returned by AttemptRandomRelocate when no enclosing shape
// is supplied. An absent boundary is never treated as unbounded space.
var ErrNilBoundary = errors.New("geom: relocation requires a boundary")

// ErrNilDisplacer is returned by AttemptRandomRelocate when no displacement
// source or random source is supplied.
var ErrNilDisplacer = errors.New("geom: relocation requires a displacer and rng")

// Method names used as error prefixes.
const (
	methodNewBox                = "NewBox"
	methodNewSphere             = "NewSphere"
	methodNewEllipsoid          = "NewEllipsoid"
	methodAttemptRandomRelocate = "AttemptRandomRelocate"
)
