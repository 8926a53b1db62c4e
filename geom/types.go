// Package geom defines options, axes and sentinel errors for the
// geometry foundation of magcage.
package geom

import "gonum.org/v1/gonum/spatial/r3"

// Axis identifies one of the three principal coordinate axes.
type Axis int

const (
	// AxisX is the global x-axis (1, 0, 0).
	AxisX Axis = iota
	// AxisY is the global y-axis (0, 1, 0).
	AxisY
	// AxisZ is the global z-axis (0, 0, 1).
	AxisZ
)

// Vec returns the unit vector of the axis.
func (a Axis) Vec() r3.Vec {
	switch a {
	case AxisX:
		return r3.Vec{X: 1}
	case AxisY:
		return r3.Vec{Y: 1}
	default:
		return r3.Vec{Z: 1}
	}
}

// String returns "x", "y" or "z".
func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	default:
		return "z"
	}
}

// Point2 is a point in a 2D working plane.
type Point2 struct {
	X, Y float64
}

// Options holds the numerical tolerances used when validating and
// classifying coordinate sets.
//
// Fields:
//   - PlanarTol — relative tolerance for the SVD planarity check: the
//     smallest singular value of the centered point matrix must not
//     exceed PlanarTol times the largest. Default 1e-8.
//   - EqTol — absolute tolerance for "equal points / equal directions /
//     zero offset" decisions, e.g. detecting a duplicated closing point
//     or a straight-through vertex. Default 1e-9.
type Options struct {
	PlanarTol float64
	EqTol     float64
}

// DefaultOptions returns the documented default tolerances:
// PlanarTol=1e-8 (relative), EqTol=1e-9 (absolute).
func DefaultOptions() Options {
	return Options{
		PlanarTol: 1e-8,
		EqTol:     1e-9,
	}
}
