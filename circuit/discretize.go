package circuit

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/fieldline/magcage/geom"
)

// yAligned bounds |normal·ŷ| above which the shape is treated as already
// lying in the x-z working plane and the canonical transform is skipped.
const yAligned = 1 - 1e-12

// acuteSlackDeg absorbs the rounding of the radian-to-degree conversion:
// a half-angle within this much of the acute limit counts as on it, so a
// square's exact 45° corners never flag.
const acuteSlackDeg = 1e-9

// Discretize produces one Segment per edge of the shape, with mitre
// half-angles computed in the canonical x-z working frame.
//
// The returned segments live in the shape's own (world) frame; only the
// angle computation uses the canonical frame. Non-fatal warnings (acute
// mitres) are returned alongside.
//
// Complexity: O(n²) — each vertex runs a point-in-polygon test over the
// n-vertex footprint.
func Discretize(shape *geom.Coordinates, opts Options) ([]Segment, []Warning, error) {
	opts = opts.normalized()

	work := canonical(shape)
	wpts := work.Points()
	ccwY := work.CCW(r3.Vec{Y: 1})
	poly := footprint(wpts)
	eqTol := shape.Options().EqTol

	wmids, _ := edges(wpts, work.Closed())
	nseg := len(wmids)

	alphas := make([]float64, nseg)
	acute := false
	for i := 0; i < nseg; i++ {
		switch {
		case i < nseg-1:
			alphas[i] = halfAngle(wmids[i], wpts[i+1], wmids[i+1], poly, ccwY, eqTol)
		case work.Closed():
			alphas[i] = halfAngle(wmids[i], wpts[0], wmids[0], poly, ccwY, eqTol)
		default:
			alphas[i] = 0
		}
		if math.Abs(alphas[i]) > opts.AcuteLimitDeg+acuteSlackDeg {
			acute = true
		}
	}

	betas := make([]float64, nseg)
	if work.Closed() {
		betas[0] = alphas[nseg-1]
	}
	for i := 1; i < nseg; i++ {
		betas[i] = alphas[i-1]
	}

	// Assemble world-frame segments.
	pts := shape.Points()
	normal := shape.Normal()
	mids, dls := edges(pts, shape.Closed())
	segs := make([]Segment, nseg)
	for i := range segs {
		segs[i] = Segment{
			Midpoint: mids[i],
			DL:       dls[i],
			Tangent:  r3.Unit(r3.Cross(r3.Unit(dls[i]), normal)),
			Beta:     betas[i],
			Alpha:    alphas[i],
		}
	}

	var warns []Warning
	if acute {
		warns = append(warns, Warning{
			Kind: WarnAcuteMitre,
			Message: fmt.Sprintf(
				"circuit: mitre half-angle magnitude exceeds %g°, consecutive source end-caps will overlap",
				opts.AcuteLimitDeg),
		})
	}
	return segs, warns, nil
}

// canonical re-expresses the shape in the x-z working plane: center of
// mass at the origin, loop normal rotated onto −ŷ. Shapes whose normal
// is already ±ŷ are used as-is.
func canonical(shape *geom.Coordinates) *geom.Coordinates {
	if math.Abs(shape.Normal().Y) >= yAligned {
		return shape
	}
	work := shape.Translated(r3.Scale(-1, shape.CenterOfMass()))
	rot := geom.RotationBetween(work.Normal(), r3.Vec{Y: -1})
	return work.Rotated(rot)
}

// footprint projects the canonical-frame points into the x-z plane and
// normalizes the polygon to counterclockwise order, so the inside test
// below is independent of the input winding.
func footprint(wpts []r3.Vec) []geom.Point2 {
	poly := make([]geom.Point2, len(wpts))
	for i, p := range wpts {
		poly[i] = geom.Point2{X: p.X, Y: p.Z}
	}
	return geom.EnsureCCW(poly)
}

// edges returns the midpoint and edge vector of every segment of the
// point chain, including the wraparound edge for closed chains.
func edges(pts []r3.Vec, closed bool) (mids, dls []r3.Vec) {
	nseg := len(pts) - 1
	if closed {
		nseg++
	}
	mids = make([]r3.Vec, nseg)
	dls = make([]r3.Vec, nseg)
	for i := 0; i < nseg; i++ {
		a := pts[i]
		b := pts[(i+1)%len(pts)]
		dls[i] = r3.Sub(b, a)
		mids[i] = r3.Add(a, r3.Scale(0.5, dls[i]))
	}
	return mids, dls
}

// halfAngle computes the signed mitre half-angle [°] at the vertex p1
// between the incoming segment midpoint p0 and the outgoing segment
// midpoint p2, all in the canonical frame.
//
// Degenerate cases (straight continuation, vertex on the p0–p2 chord)
// yield exactly zero. Otherwise the unsigned half-angle is
// 0.5·acos(v̂1·v̂2) and the sign comes from mitreSign.
func halfAngle(p0, p1, p2 r3.Vec, poly []geom.Point2, ccwY bool, eqTol float64) float64 {
	v1 := r3.Unit(r3.Sub(p1, p0))
	v2 := r3.Unit(r3.Sub(p2, p1))
	if r3.Norm(r3.Sub(v1, v2)) < eqTol {
		return 0
	}
	ang := 0.5 * math.Acos(clamp(r3.Dot(v1, v2), -1, 1))

	v3 := r3.Unit(r3.Sub(p2, p0))
	proj := r3.Add(p0, r3.Scale(r3.Dot(r3.Sub(p1, p0), v3), v3))
	if r3.Norm(r3.Sub(p1, proj)) < eqTol {
		return 0
	}

	inside := geom.InPolygon(geom.Point2{X: proj.X, Y: proj.Z}, poly)
	return mitreSign(ccwY, inside) * ang * 180 / math.Pi
}

// mitreSign is the winding × inside truth table for the half-angle sign:
//
//	winding about +ŷ | chord projection inside | sign
//	-----------------+-------------------------+-----
//	   clockwise     |          yes            |  +
//	   clockwise     |          no             |  −
//	counterclockwise |          yes            |  −
//	counterclockwise |          no             |  +
//
// The two conditions compose as independent sign flips: exactly one of
// them yields a negative mitre, both or neither a positive one.
func mitreSign(ccwY, inside bool) float64 {
	switch {
	case !ccwY && inside:
		return 1
	case !ccwY && !inside:
		return -1
	case ccwY && inside:
		return -1
	default:
		return 1
	}
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
