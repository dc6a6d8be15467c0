package geom

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Point3 is an immutable (x, y, z) triple used for locations, displacements
// and path samples. It is an alias so that mgl64 vector methods apply directly.
type Point3 = mgl64.Vec3

// Origin is the point (0, 0, 0).
var Origin = Point3{0, 0, 0}

// Pt builds a Point3 from its coordinates.
func Pt(x, y, z float64) Point3 {
	return Point3{x, y, z}
}

// IsFinite reports whether every coordinate of p is neither NaN nor ±Inf.
func IsFinite(p Point3) bool {
	for _, c := range p {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}

	return true
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Point3) float64 {
	return a.Sub(b).Len()
}

// FormatPoint renders p as "(x, y, z)" with %g coordinates.
func FormatPoint(p Point3) string {
	return fmt.Sprintf("(%g, %g, %g)", p[0], p[1], p[2])
}
