package geom_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/fieldline/magcage/geom"
)

func assertVecInDelta(t *testing.T, want, got r3.Vec, tol float64, msg string) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, tol, "%s (x)", msg)
	assert.InDelta(t, want.Y, got.Y, tol, "%s (y)", msg)
	assert.InDelta(t, want.Z, got.Z, tol, "%s (z)", msg)
}

// TestRotationBetween maps one direction onto another, including the
// degenerate parallel and antiparallel alignments.
func TestRotationBetween(t *testing.T) {
	rot := geom.RotationBetween(r3.Vec{X: 1}, r3.Vec{Z: 1})
	assertVecInDelta(t, r3.Vec{Z: 1}, rot.Rotate(r3.Vec{X: 1}), 1e-12, "x̂ onto ẑ")

	// Scale must not matter: only directions align.
	rot = geom.RotationBetween(r3.Vec{X: 3}, r3.Vec{Y: -7})
	assertVecInDelta(t, r3.Vec{Y: -1}, rot.Rotate(r3.Vec{X: 1}), 1e-12, "x̂ onto −ŷ")

	// Parallel: identity.
	rot = geom.RotationBetween(r3.Vec{X: 1, Y: 2, Z: 3}, r3.Vec{X: 2, Y: 4, Z: 6})
	assertVecInDelta(t, r3.Vec{X: 5, Y: -1, Z: 2}, rot.Rotate(r3.Vec{X: 5, Y: -1, Z: 2}), 1e-12, "parallel is identity")

	// Antiparallel: a half-turn that still maps v1 onto v2.
	rot = geom.RotationBetween(r3.Vec{X: 1}, r3.Vec{X: -1})
	assertVecInDelta(t, r3.Vec{X: -1}, rot.Rotate(r3.Vec{X: 1}), 1e-12, "x̂ onto −x̂")
}

// TestAxisRotation checks the right-hand rule on all three axes.
func TestAxisRotation(t *testing.T) {
	assertVecInDelta(t, r3.Vec{Y: 1}, geom.AxisRotation(90, geom.AxisZ).Rotate(r3.Vec{X: 1}), 1e-12, "z: x̂→ŷ")
	assertVecInDelta(t, r3.Vec{Z: 1}, geom.AxisRotation(90, geom.AxisX).Rotate(r3.Vec{Y: 1}), 1e-12, "x: ŷ→ẑ")
	assertVecInDelta(t, r3.Vec{X: 1}, geom.AxisRotation(90, geom.AxisY).Rotate(r3.Vec{Z: 1}), 1e-12, "y: ẑ→x̂")
}

// TestAxisVec pins the axis unit vectors and labels.
func TestAxisVec(t *testing.T) {
	assert.Equal(t, r3.Vec{X: 1}, geom.AxisX.Vec())
	assert.Equal(t, r3.Vec{Y: 1}, geom.AxisY.Vec())
	assert.Equal(t, r3.Vec{Z: 1}, geom.AxisZ.Vec())
	assert.Equal(t, "x", geom.AxisX.String())
	assert.Equal(t, "z", geom.AxisZ.String())
}
