package source

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/fieldline/magcage/geom"
)

// prism carries the placement frame and filament bundle shared by the
// trapezoidal and polyhedral variants.
type prism struct {
	origin  r3.Vec // segment midpoint
	dl      r3.Vec // segment vector, not normalized
	normal  r3.Vec // unit loop normal
	tangent r3.Vec // unit tangent, direction × normal
	alpha   float64 // exit half-angle [°]
	beta    float64 // entry half-angle [°]
	current float64 // [A]
	fil     []filament
}

// Field returns the summed filament field [T] at p.
func (pr *prism) Field(p r3.Vec) r3.Vec {
	var b r3.Vec
	for _, f := range pr.fil {
		b = r3.Add(b, f.field(p))
	}
	return b
}

// Rotate rotates the source about the global origin.
func (pr *prism) Rotate(angleDeg float64, axis geom.Axis) {
	rot := geom.AxisRotation(angleDeg, axis)
	pr.origin = rot.Rotate(pr.origin)
	pr.dl = rot.Rotate(pr.dl)
	pr.normal = rot.Rotate(pr.normal)
	pr.tangent = rot.Rotate(pr.tangent)
	for i, f := range pr.fil {
		pr.fil[i] = f.rotated(rot)
	}
}

// Translate shifts the source by dv.
func (pr *prism) Translate(dv r3.Vec) {
	pr.origin = r3.Add(pr.origin, dv)
	for i, f := range pr.fil {
		pr.fil[i] = f.translated(dv)
	}
}

// clone deep-copies the placement frame and filament bundle.
func (pr *prism) clone() prism {
	cp := *pr
	cp.fil = make([]filament, len(pr.fil))
	copy(cp.fil, pr.fil)
	return cp
}

// Origin returns the segment midpoint.
func (pr *prism) Origin() r3.Vec { return pr.origin }

// Direction returns the (non-normalized) segment vector.
func (pr *prism) Direction() r3.Vec { return pr.dl }

// Normal returns the unit loop normal.
func (pr *prism) Normal() r3.Vec { return pr.normal }

// Tangent returns the unit tangent (direction × normal).
func (pr *prism) Tangent() r3.Vec { return pr.tangent }

// Current returns the source current [A].
func (pr *prism) Current() float64 { return pr.current }

// HalfAngles returns the entry (beta) and exit (alpha) half-angles [°].
func (pr *prism) HalfAngles() (beta, alpha float64) { return pr.beta, pr.alpha }

// frame validates and normalizes a placement frame. The returned vectors
// are the unit direction, unit tangent and unit normal.
func frame(dl, normal, tangent r3.Vec) (dHat, tHat, nHat r3.Vec, halfLen float64, err error) {
	l := r3.Norm(dl)
	if l == 0 || r3.Norm(normal) == 0 || r3.Norm(tangent) == 0 ||
		!isFinite(dl.X, dl.Y, dl.Z, normal.X, normal.Y, normal.Z, tangent.X, tangent.Y, tangent.Z) {
		return r3.Vec{}, r3.Vec{}, r3.Vec{}, 0, ErrBadGeometry
	}
	return r3.Unit(dl), r3.Unit(tangent), r3.Unit(normal), 0.5 * l, nil
}
