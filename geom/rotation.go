package geom

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// alignEps bounds the cosine below which two directions are considered
// exactly parallel or antiparallel by RotationBetween.
const alignEps = 1e-12

// RotationBetween returns the rotation that maps direction v1 onto
// direction v2 about the axis perpendicular to both (the minimal-angle
// rotation). Degenerate alignments are handled explicitly:
//   - v1 ∥ v2  — identity rotation.
//   - v1 ∥ -v2 — half-turn about an arbitrary axis perpendicular to v1.
//   - either input zero — identity rotation.
func RotationBetween(v1, v2 r3.Vec) r3.Rotation {
	if r3.Norm(v1) == 0 || r3.Norm(v2) == 0 {
		return r3.NewRotation(0, r3.Vec{Z: 1})
	}
	u1 := r3.Unit(v1)
	u2 := r3.Unit(v2)

	c := r3.Dot(u1, u2)
	switch {
	case c >= 1-alignEps:
		return r3.NewRotation(0, r3.Vec{Z: 1})
	case c <= -1+alignEps:
		return r3.NewRotation(math.Pi, perpendicular(u1))
	default:
		return r3.NewRotation(math.Acos(c), r3.Cross(u1, u2))
	}
}

// AxisRotation returns the right-handed rotation by angleDeg degrees
// about the given principal axis.
func AxisRotation(angleDeg float64, axis Axis) r3.Rotation {
	return r3.NewRotation(angleDeg*math.Pi/180, axis.Vec())
}
