// SPDX-License-Identifier: MIT
// Package: randwalk/geom
//
// shape.go — the Shape tagged variant {Box, Sphere, Ellipsoid}.
//
// Representation:
//   • kind selects the variant; every method switches on it once.
//   • ext holds the variant extents in a fixed slot order:
//       Box       → width, height, depth (full lengths along x, y, z)
//       Sphere    → radius, radius, radius
//       Ellipsoid → a, b, c (semi-axes along x, y, z)
//   • center moves during a walk (moving targets); initial never does.
//
// Complexity: every method is O(1) time and space.

package geom

import (
	"fmt"
	"math"
	"math/rand"
)

// Kind selects the geometric variant of a Shape.
type Kind int

const (
	// KindBox is an axis-aligned rectangular box.
	KindBox Kind = iota
	// KindSphere is a ball of a single radius.
	KindSphere
	// KindEllipsoid is an axis-aligned ellipsoid with semi-axes a, b, c.
	KindEllipsoid
)

// String returns the lower-case variant name.
func (k Kind) String() string {
	switch k {
	case KindBox:
		return "box"
	case KindSphere:
		return "sphere"
	case KindEllipsoid:
		return "ellipsoid"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Displacer produces one random displacement per call. step.Generator
// satisfies it; geom only needs the single method for relocations.
type Displacer interface {
	Next(r *rand.Rand) Point3
}

// Shape is a closed 3D region with a movable center.
// The zero value is not usable; build shapes with NewBox, NewSphere or NewEllipsoid.
type Shape struct {
	kind    Kind
	center  Point3
	initial Point3
	ext     [3]float64
}

// NewBox returns an axis-aligned box centered at center with full side
// lengths width (x), height (y) and depth (z).
// Returns ErrInvalidCenter or ErrInvalidExtent (both match ErrConfiguration).
func NewBox(center Point3, width, height, depth float64) (*Shape, error) {
	return newShape(methodNewBox, KindBox, center, width, height, depth)
}

// NewSphere returns a sphere of the given radius centered at center.
func NewSphere(center Point3, radius float64) (*Shape, error) {
	return newShape(methodNewSphere, KindSphere, center, radius, radius, radius)
}

// NewEllipsoid returns an axis-aligned ellipsoid with semi-axes a (x), b (y), c (z).
func NewEllipsoid(center Point3, a, b, c float64) (*Shape, error) {
	return newShape(methodNewEllipsoid, KindEllipsoid, center, a, b, c)
}

// newShape validates and assembles a Shape; it is the single construction path.
func newShape(method string, kind Kind, center Point3, e0, e1, e2 float64) (*Shape, error) {
	if !IsFinite(center) {
		return nil, fmt.Errorf("%s: center=%s: %w", method, FormatPoint(center), ErrInvalidCenter)
	}
	ext := [3]float64{e0, e1, e2}
	for _, e := range ext {
		if !(e > 0) || math.IsInf(e, 0) {
			return nil, fmt.Errorf("%s: extent=%g: %w", method, e, ErrInvalidExtent)
		}
	}

	return &Shape{kind: kind, center: center, initial: center, ext: ext}, nil
}

// Kind returns the variant tag.
func (s *Shape) Kind() Kind { return s.kind }

// Center returns the current center.
func (s *Shape) Center() Point3 { return s.center }

// InitialCenter returns the center recorded at construction.
func (s *Shape) InitialCenter() Point3 { return s.initial }

// Extents returns the variant extents: (width, height, depth) for boxes,
// (r, r, r) for spheres and (a, b, c) for ellipsoids.
func (s *Shape) Extents() [3]float64 { return s.ext }

// Radius returns the sphere radius. For other variants it returns the
// largest extent, i.e. half the longest box side or the longest semi-axis.
func (s *Shape) Radius() float64 {
	if s.kind == KindBox {
		return math.Max(s.ext[0], math.Max(s.ext[1], s.ext[2])) / 2
	}

	return math.Max(s.ext[0], math.Max(s.ext[1], s.ext[2]))
}

// halfExtents returns the distance from center to the bounding-box faces.
func (s *Shape) halfExtents() Point3 {
	if s.kind == KindBox {
		return Point3{s.ext[0] / 2, s.ext[1] / 2, s.ext[2] / 2}
	}

	return Point3(s.ext)
}

// Corners returns the minimum (bottom-left) and maximum (upper-right) corners
// of the axis-aligned bounding box around the current center. For a box these
// are its own corners.
func (s *Shape) Corners() (lo, hi Point3) {
	h := s.halfExtents()

	return s.center.Sub(h), s.center.Add(h)
}

// ContainsPoint reports whether p lies strictly inside the shape.
// Points on the surface are outside for every variant.
func (s *Shape) ContainsPoint(p Point3) bool {
	switch s.kind {
	case KindBox:
		lo, hi := s.Corners()
		return lo[0] < p[0] && p[0] < hi[0] &&
			lo[1] < p[1] && p[1] < hi[1] &&
			lo[2] < p[2] && p[2] < hi[2]
	case KindSphere:
		r := s.ext[0]
		return p.Sub(s.center).LenSqr() < r*r
	case KindEllipsoid:
		d := p.Sub(s.center)
		var sum float64
		for i := 0; i < 3; i++ {
			sum += (d[i] * d[i]) / (s.ext[i] * s.ext[i])
		}
		return sum < 1.0
	default:
		return false
	}
}

// Volume returns the closed-form volume of the shape.
func (s *Shape) Volume() float64 {
	switch s.kind {
	case KindBox:
		return s.ext[0] * s.ext[1] * s.ext[2]
	case KindSphere:
		r := s.ext[0]
		return 4.0 * math.Pi * r * r * r / 3.0
	case KindEllipsoid:
		return 4.0 * math.Pi * s.ext[0] * s.ext[1] * s.ext[2] / 3.0
	default:
		return 0
	}
}

// DistanceFrom returns the Euclidean distance from p to the current center.
func (s *Shape) DistanceFrom(p Point3) float64 {
	return Distance(p, s.center)
}

// Relocate sets the center unconditionally. No enclosing shape is consulted.
func (s *Shape) Relocate(center Point3) {
	s.center = center
}

// Reset moves the shape back to its initial center.
func (s *Shape) Reset() {
	s.center = s.initial
}

// AttemptRandomRelocate draws one displacement from d and moves the center by
// it only when the trial center lies strictly inside boundary. A rejected
// attempt is a silent no-op (moved=false, err=nil); there is no retry.
//
// Errors:
//   - ErrNilBoundary  — boundary is nil.
//   - ErrNilDisplacer — d or r is nil.
func (s *Shape) AttemptRandomRelocate(d Displacer, r *rand.Rand, boundary *Shape) (moved bool, err error) {
	if boundary == nil {
		return false, fmt.Errorf("%s: %w", methodAttemptRandomRelocate, ErrNilBoundary)
	}
	if d == nil || r == nil {
		return false, fmt.Errorf("%s: %w", methodAttemptRandomRelocate, ErrNilDisplacer)
	}
	trial := s.center.Add(d.Next(r))
	if !boundary.ContainsPoint(trial) {
		return false, nil
	}
	s.Relocate(trial)

	return true, nil
}

// Encloses reports whether other's current center lies strictly inside s.
// This is the pre-walk check a driver performs between boundary and target.
// Only the center is tested: a target may cross the surface of s, and a walk
// can then end on the part of the target that lies outside s.
func (s *Shape) Encloses(other *Shape) bool {
	if other == nil {
		return false
	}

	return s.ContainsPoint(other.center)
}

// Clone returns an independent copy, including the current and initial centers.
func (s *Shape) Clone() *Shape {
	c := *s

	return &c
}

// String describes the shape by variant, extents and initial center.
func (s *Shape) String() string {
	at := FormatPoint(s.initial)
	switch s.kind {
	case KindBox:
		return fmt.Sprintf("box width=%g height=%g depth=%g centered at %s", s.ext[0], s.ext[1], s.ext[2], at)
	case KindSphere:
		return fmt.Sprintf("sphere radius=%g centered at %s", s.ext[0], at)
	case KindEllipsoid:
		return fmt.Sprintf("ellipsoid a=%g b=%g c=%g centered at %s", s.ext[0], s.ext[1], s.ext[2], at)
	default:
		return s.kind.String()
	}
}
