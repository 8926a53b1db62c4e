package source

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/fieldline/magcage/geom"
)

// endCapEqTolDeg bounds |alpha−beta| below which polyhedral end-caps are
// treated as mirror-symmetric.
const endCapEqTolDeg = 1e-9

// PolyhedralPrism is a finite current source with an arbitrary polygon
// cross-section and mitred end-caps.
//
// The cross-section polygon is given in local (tangent, normal)
// coordinates [m] about the conductor centerline. Filaments are placed
// at the centers of an NU×NV grid over the polygon's bounding box and
// kept when they fall inside the polygon, each carrying an equal share
// of the current (uniform current density).
//
// When the entry and exit half-angles differ, the mitred-bundle field is
// only approximate; EndCapMismatch reports this so that a circuit
// factory can emit a single modeling-accuracy warning.
type PolyhedralPrism struct {
	prism
	xs       []geom.Point2
	mismatch bool
}

// NewPolyhedralPrism builds a polygon-cross-section prism source.
//
// Parameters mirror NewTrapezoidalPrism, with the rectangular half-sizes
// replaced by the cross-section polygon in local (tangent, normal)
// coordinates. A nil opts uses DefaultOptions.
//
// Errors: ErrBadGeometry, ErrBadCrossSection (fewer than three vertices,
// zero area, non-finite vertices, or a grid too coarse to place any
// filament inside the polygon), ErrBadCurrent.
func NewPolyhedralPrism(midpoint, dl, normal, tangent r3.Vec, xs []geom.Point2, betaDeg, alphaDeg, current float64, opts *Options) (*PolyhedralPrism, error) {
	dHat, tHat, nHat, halfLen, err := frame(dl, normal, tangent)
	if err != nil {
		return nil, err
	}
	if len(xs) < 3 || !isFinite(betaDeg, alphaDeg) {
		return nil, ErrBadCrossSection
	}
	for _, p := range xs {
		if !isFinite(p.X, p.Y) {
			return nil, ErrBadCrossSection
		}
	}
	if geom.SignedArea(xs) == 0 {
		return nil, ErrBadCrossSection
	}
	if !isFinite(current) {
		return nil, ErrBadCurrent
	}

	o := DefaultOptions()
	if opts != nil {
		o = opts.normalized()
	}

	poly := geom.EnsureCCW(xs)
	uMin, uMax, vMin, vMax := bound(poly)

	// Grid cell centers inside the polygon become filament positions.
	type uv struct{ u, v float64 }
	var cells []uv
	for iu := 0; iu < o.NU; iu++ {
		u := uMin + (uMax-uMin)*(float64(iu)+0.5)/float64(o.NU)
		for iv := 0; iv < o.NV; iv++ {
			v := vMin + (vMax-vMin)*(float64(iv)+0.5)/float64(o.NV)
			if geom.InPolygon(geom.Point2{X: u, Y: v}, poly) {
				cells = append(cells, uv{u, v})
			}
		}
	}
	if len(cells) == 0 {
		return nil, ErrBadCrossSection
	}

	tanA, tanB := tanDeg(alphaDeg), tanDeg(betaDeg)
	perFil := current / float64(len(cells))
	fil := make([]filament, 0, len(cells))
	for _, c := range cells {
		fil = append(fil, mitredFilament(midpoint, dHat, tHat, nHat, halfLen, c.u, c.v, tanA, tanB, perFil))
	}

	xsCopy := make([]geom.Point2, len(xs))
	copy(xsCopy, xs)

	return &PolyhedralPrism{
		prism: prism{
			origin:  midpoint,
			dl:      dl,
			normal:  nHat,
			tangent: tHat,
			alpha:   alphaDeg,
			beta:    betaDeg,
			current: current,
			fil:     fil,
		},
		xs:       xsCopy,
		mismatch: math.Abs(alphaDeg-betaDeg) > endCapEqTolDeg,
	}, nil
}

// CrossSection returns a copy of the cross-section polygon in local
// (tangent, normal) coordinates.
func (s *PolyhedralPrism) CrossSection() []geom.Point2 {
	out := make([]geom.Point2, len(s.xs))
	copy(out, s.xs)
	return out
}

// EndCapMismatch reports whether the entry and exit half-angles differ,
// making the field evaluation approximate.
func (s *PolyhedralPrism) EndCapMismatch() bool { return s.mismatch }

// Copy returns an independent deep copy.
func (s *PolyhedralPrism) Copy() CurrentSource {
	xs := make([]geom.Point2, len(s.xs))
	copy(xs, s.xs)
	return &PolyhedralPrism{prism: s.prism.clone(), xs: xs, mismatch: s.mismatch}
}

func bound(poly []geom.Point2) (uMin, uMax, vMin, vMax float64) {
	uMin, vMin = math.Inf(1), math.Inf(1)
	uMax, vMax = math.Inf(-1), math.Inf(-1)
	for _, p := range poly {
		uMin = math.Min(uMin, p.X)
		uMax = math.Max(uMax, p.X)
		vMin = math.Min(vMin, p.Y)
		vMax = math.Max(vMax, p.Y)
	}
	return uMin, uMax, vMin, vMax
}
