// Package source defines the CurrentSource contract and grid options for
// the prism primitives.
package source

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/fieldline/magcage/geom"
)

// Mu0 is the vacuum permeability [H/m].
const Mu0 = 4 * math.Pi * 1e-7

// CurrentSource is a finite current-carrying volume that can report its
// magnetic field anywhere in space and be copied and rigidly moved.
//
// Implementations must guarantee:
//   - Field is pure (no observable state change).
//   - Copy returns a fully independent deep copy: transforming the copy
//     never affects the original.
//   - Rotate rotates the whole source about the global origin, so that
//     field evaluation is equivariant under the transform.
type CurrentSource interface {
	// Field returns the magnetic field vector [T] at point p [m].
	Field(p r3.Vec) r3.Vec
	// Copy returns an independent deep copy of the source.
	Copy() CurrentSource
	// Rotate rotates the source in place by angleDeg degrees about the
	// given principal axis through the global origin.
	Rotate(angleDeg float64, axis geom.Axis)
	// Translate shifts the source in place by dv.
	Translate(dv r3.Vec)
}

// Options controls the filament discretization of the prism sources.
//
// Fields:
//   - NU — filament grid resolution along the tangent axis (cross-section
//     breadth). Default 3.
//   - NV — filament grid resolution along the normal axis (cross-section
//     depth). Default 3.
//
// A 1×1 grid degenerates to a single centerline filament, which is exact
// for vanishing cross-sections and convenient for analytic comparisons.
type Options struct {
	NU int
	NV int
}

// DefaultOptions returns the default 3×3 filament grid.
func DefaultOptions() Options {
	return Options{NU: 3, NV: 3}
}

func (o Options) normalized() Options {
	if o.NU <= 0 {
		o.NU = DefaultOptions().NU
	}
	if o.NV <= 0 {
		o.NV = DefaultOptions().NV
	}
	return o
}
