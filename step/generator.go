package step

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"strings"

	"github.com/katalvlaran/randwalk/geom"
)

// Sentinel errors for generator selection.
var (
	// ErrUnknownKind indicates a Kind value or name that names no generator.
	ErrUnknownKind = errors.New("step: unknown generator kind")
)

// minNorm is the smallest vector length accepted for normalisation. Draws
// shorter than this are degenerate and are redrawn.
const minNorm = 1e-300

// Kind selects a generator variant.
type Kind int

const (
	// KindContinuous draws a uniformly distributed direction in 3D.
	KindContinuous Kind = iota
	// KindGrid draws one of the six axis-aligned unit vectors.
	KindGrid
)

// String returns the canonical name used in configuration files.
func (k Kind) String() string {
	switch k {
	case KindContinuous:
		return "continuous"
	case KindGrid:
		return "grid"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// ParseKind maps a configuration name to a Kind. Accepted names are
// "continuous" (aliases "direct", "angle") and "grid"; case is ignored.
func ParseKind(name string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "continuous", "direct", "angle":
		return KindContinuous, nil
	case "grid":
		return KindGrid, nil
	default:
		return 0, fmt.Errorf("ParseKind(%q): %w", name, ErrUnknownKind)
	}
}

// Generator produces one unit-length displacement per call.
// It satisfies geom.Displacer, so targets can relocate with the same source.
type Generator interface {
	Next(r *rand.Rand) geom.Point3
	Kind() Kind
}

// New returns the stateless generator for kind.
func New(kind Kind) (Generator, error) {
	switch kind {
	case KindContinuous:
		return Continuous{}, nil
	case KindGrid:
		return Grid{}, nil
	default:
		return nil, fmt.Errorf("New(%d): %w", int(kind), ErrUnknownKind)
	}
}

// Continuous draws directions uniformly on the unit sphere.
type Continuous struct{}

// Kind returns KindContinuous.
func (Continuous) Kind() Kind { return KindContinuous }

// Next normalises three independent standard-normal draws. A zero-length
// draw cannot be normalised and is redrawn.
func (Continuous) Next(r *rand.Rand) geom.Point3 {
	for {
		v := geom.Pt(r.NormFloat64(), r.NormFloat64(), r.NormFloat64())
		n := v.Len()
		if n < minNorm || math.IsInf(n, 0) {
			continue
		}
		return v.Mul(1 / n)
	}
}

// gridSteps lists the six axis-aligned unit displacements in draw order.
var gridSteps = [6]geom.Point3{
	{1, 0, 0}, {-1, 0, 0},
	{0, 1, 0}, {0, -1, 0},
	{0, 0, 1}, {0, 0, -1},
}

// Grid draws one of the six face directions of the unit cube.
type Grid struct{}

// Kind returns KindGrid.
func (Grid) Kind() Kind { return KindGrid }

// Next returns gridSteps[r.Intn(6)].
func (Grid) Next(r *rand.Rand) geom.Point3 {
	return gridSteps[r.Intn(len(gridSteps))]
}

// GridSteps returns a copy of the six grid displacements.
func GridSteps() [6]geom.Point3 {
	return gridSteps
}
