package source

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// filament is a finite straight conductor from a to b carrying current i.
type filament struct {
	a, b r3.Vec
	i    float64
}

// fieldDenomFloor guards the Biot–Savart denominator: points on the
// conductor itself (where the expression is singular) report zero field.
const fieldDenomFloor = 1e-30

// field evaluates the closed-form Biot–Savart field of the filament at p,
// using the two-radius form
//
//	B = (μ0 I / 4π) · (|r1| + |r2|) / (|r1||r2|(|r1||r2| + r1·r2)) · (r1 × r2)
//
// with r1 = p − a, r2 = p − b. The form is exact for a finite straight
// segment and is singular only on the segment itself.
func (f filament) field(p r3.Vec) r3.Vec {
	r1 := r3.Sub(p, f.a)
	r2 := r3.Sub(p, f.b)
	n1 := r3.Norm(r1)
	n2 := r3.Norm(r2)

	denom := n1 * n2 * (n1*n2 + r3.Dot(r1, r2))
	if denom < fieldDenomFloor {
		return r3.Vec{}
	}
	scale := Mu0 / (4 * math.Pi) * f.i * (n1 + n2) / denom
	return r3.Scale(scale, r3.Cross(r1, r2))
}

func (f filament) rotated(rot r3.Rotation) filament {
	return filament{a: rot.Rotate(f.a), b: rot.Rotate(f.b), i: f.i}
}

func (f filament) translated(dv r3.Vec) filament {
	return filament{a: r3.Add(f.a, dv), b: r3.Add(f.b, dv), i: f.i}
}

// mitredFilament builds the filament at transverse offset (u, v) of a
// prism centered on origin with unit current direction dHat, unit
// tangent tHat and unit normal nHat. The end-caps are planes through the
// nominal ends, rotated about the normal by the entry half-angle beta
// and exit half-angle alpha: a filament at tangent offset u meets them
// at s = −halfLen + u·tanβ and s = halfLen − u·tanα, so for positive
// angles the positive-offset filaments shorten, the negative-offset ones
// lengthen, and consecutive mitred prisms tile without gap or overlap.
func mitredFilament(origin, dHat, tHat, nHat r3.Vec, halfLen, u, v, tanAlpha, tanBeta, current float64) filament {
	base := r3.Add(origin, r3.Add(r3.Scale(u, tHat), r3.Scale(v, nHat)))
	return filament{
		a: r3.Add(base, r3.Scale(-halfLen+u*tanBeta, dHat)),
		b: r3.Add(base, r3.Scale(halfLen-u*tanAlpha, dHat)),
		i: current,
	}
}

func isFinite(xs ...float64) bool {
	for _, x := range xs {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}
	return true
}

func tanDeg(deg float64) float64 { return math.Tan(deg * math.Pi / 180) }
