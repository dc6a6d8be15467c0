// Package geom provides the closed 3D regions used by confined random walks:
// axis-aligned boxes, spheres and ellipsoids.
//
// A Shape plays one of two roles during a walk:
//
//	boundary — trial steps landing outside it are rejected;
//	target   — the first trial step landing inside it ends the walk.
//
// Every variant shares one contract:
//
//   - ContainsPoint is strict: a point on the surface is OUTSIDE.
//   - Volume follows the closed-form formula of the variant.
//   - DistanceFrom measures to the current center, not to the surface.
//   - Relocate / AttemptRandomRelocate move the center; the initial center
//     recorded at construction never changes.
//
// Points are mgl64.Vec3 values (aliased as Point3), so the usual vector
// arithmetic (Add, Sub, Len, Normalize) is available everywhere.
//
// Shapes are NOT safe for concurrent mutation. A target that moves during a
// walk must not be shared between walks running in parallel; use Clone.
//
//	import "github.com/katalvlaran/randwalk/geom"
//
//	boundary, _ := geom.NewSphere(geom.Pt(0, 0, 0), 20)
//	target, _ := geom.NewSphere(geom.Pt(10, 10, 10), 3.33)
//	fmt.Println(boundary.Encloses(target)) // true
package geom
