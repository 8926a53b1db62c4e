package geom

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

// Coordinates is an immutable, ordered, coplanar 3D point sequence.
//
// Description:
//
//	Coordinates is the validated shape handle consumed by the circuit
//	discretizer. Construction verifies coplanarity with an SVD plane fit
//	and caches the unit plane normal and the center of mass. A sequence
//	whose final point coincides with its first (within Options.EqTol) is
//	stored without the duplicate and marked closed.
//
// Invariants:
//   - All points lie on one plane within Options.PlanarTol.
//   - Normal() is unit length; its sign is fixed deterministically
//     (largest-magnitude component positive), independent of point order.
//
// Construction: O(n) plus one n×3 SVD. Memory: O(n).
type Coordinates struct {
	pts    []r3.Vec
	closed bool
	normal r3.Vec
	com    r3.Vec
	opts   Options
}

// New validates points and returns a Coordinates.
//
// Zero-valued tolerance fields in opts are replaced by the defaults from
// DefaultOptions; negative or non-finite tolerances yield ErrBadTolerance.
//
// Errors:
//   - ErrTooFewPoints — fewer than three distinct points.
//   - ErrNotPlanar — the point set is not coplanar within PlanarTol, or
//     is fully degenerate (all points coincident).
func New(points []r3.Vec, opts Options) (*Coordinates, error) {
	opts, err := normalizeOptions(opts)
	if err != nil {
		return nil, err
	}

	pts := make([]r3.Vec, len(points))
	copy(pts, points)

	closed := false
	if len(pts) >= 2 && r3.Norm(r3.Sub(pts[len(pts)-1], pts[0])) < opts.EqTol {
		pts = pts[:len(pts)-1]
		closed = true
	}
	if len(pts) < 3 {
		return nil, ErrTooFewPoints
	}

	com := centroid(pts)
	normal, ok := planeNormal(pts, com, opts.PlanarTol)
	if !ok {
		return nil, ErrNotPlanar
	}

	return &Coordinates{
		pts:    pts,
		closed: closed,
		normal: normal,
		com:    com,
		opts:   opts,
	}, nil
}

// Len returns the number of stored points (the duplicated closing point
// of a closed loop is not counted).
func (c *Coordinates) Len() int { return len(c.pts) }

// Point returns the i-th stored point.
func (c *Coordinates) Point(i int) r3.Vec { return c.pts[i] }

// Points returns a copy of the stored points.
func (c *Coordinates) Points() []r3.Vec {
	out := make([]r3.Vec, len(c.pts))
	copy(out, c.pts)
	return out
}

// Closed reports whether the sequence describes a closed loop.
func (c *Coordinates) Closed() bool { return c.closed }

// Normal returns the cached unit plane normal.
func (c *Coordinates) Normal() r3.Vec { return c.normal }

// CenterOfMass returns the mean of the stored points.
func (c *Coordinates) CenterOfMass() r3.Vec { return c.com }

// Options returns the tolerances the set was validated with.
func (c *Coordinates) Options() Options { return c.opts }

// CCW reports whether the points wind counterclockwise about the given
// viewing axis, determined from the sign of the projected signed area.
// A degenerate (collinear) sequence is reported as counterclockwise.
func (c *Coordinates) CCW(axis r3.Vec) bool {
	k := r3.Unit(axis)
	e1 := r3.Unit(perpendicular(k))
	e2 := r3.Cross(k, e1)

	poly := make([]Point2, len(c.pts))
	for i, p := range c.pts {
		poly[i] = Point2{X: r3.Dot(p, e1), Y: r3.Dot(p, e2)}
	}
	return SignedArea(poly) >= 0
}

// Translated returns a new Coordinates shifted by dv. Planarity and
// winding are translation-invariant, so no revalidation happens.
func (c *Coordinates) Translated(dv r3.Vec) *Coordinates {
	pts := make([]r3.Vec, len(c.pts))
	for i, p := range c.pts {
		pts[i] = r3.Add(p, dv)
	}
	return &Coordinates{
		pts:    pts,
		closed: c.closed,
		normal: c.normal,
		com:    r3.Add(c.com, dv),
		opts:   c.opts,
	}
}

// Rotated returns a new Coordinates with every point, the normal and the
// center of mass rotated by rot (about the global origin).
func (c *Coordinates) Rotated(rot r3.Rotation) *Coordinates {
	pts := make([]r3.Vec, len(c.pts))
	for i, p := range c.pts {
		pts[i] = rot.Rotate(p)
	}
	return &Coordinates{
		pts:    pts,
		closed: c.closed,
		normal: rot.Rotate(c.normal),
		com:    rot.Rotate(c.com),
		opts:   c.opts,
	}
}

// normalizeOptions fills zero tolerances with defaults and rejects
// negative or non-finite values.
func normalizeOptions(opts Options) (Options, error) {
	def := DefaultOptions()
	if opts.PlanarTol == 0 {
		opts.PlanarTol = def.PlanarTol
	}
	if opts.EqTol == 0 {
		opts.EqTol = def.EqTol
	}
	if opts.PlanarTol < 0 || opts.EqTol < 0 ||
		math.IsNaN(opts.PlanarTol) || math.IsInf(opts.PlanarTol, 0) ||
		math.IsNaN(opts.EqTol) || math.IsInf(opts.EqTol, 0) {
		return Options{}, ErrBadTolerance
	}
	return opts, nil
}

func centroid(pts []r3.Vec) r3.Vec {
	var s r3.Vec
	for _, p := range pts {
		s = r3.Add(s, p)
	}
	return r3.Scale(1/float64(len(pts)), s)
}

// planeNormal fits a plane through the centered points with a thin SVD.
// The right singular vector of the smallest singular value is the plane
// normal; the fit is accepted when that singular value is at most
// planarTol times the largest one. For collinear point sets the normal
// is an arbitrary (but deterministic) direction perpendicular to the line.
func planeNormal(pts []r3.Vec, com r3.Vec, planarTol float64) (r3.Vec, bool) {
	a := mat.NewDense(len(pts), 3, nil)
	for i, p := range pts {
		a.Set(i, 0, p.X-com.X)
		a.Set(i, 1, p.Y-com.Y)
		a.Set(i, 2, p.Z-com.Z)
	}

	var svd mat.SVD
	if ok := svd.Factorize(a, mat.SVDThin); !ok {
		return r3.Vec{}, false
	}
	s := svd.Values(nil)
	if s[0] <= 0 || s[2] > planarTol*s[0] {
		return r3.Vec{}, false
	}

	var v mat.Dense
	svd.VTo(&v)
	n := r3.Unit(r3.Vec{X: v.At(0, 2), Y: v.At(1, 2), Z: v.At(2, 2)})

	// Fix the SVD's arbitrary sign: largest-magnitude component positive.
	ax, ay, az := math.Abs(n.X), math.Abs(n.Y), math.Abs(n.Z)
	switch {
	case ax >= ay && ax >= az:
		if n.X < 0 {
			n = r3.Scale(-1, n)
		}
	case ay >= az:
		if n.Y < 0 {
			n = r3.Scale(-1, n)
		}
	default:
		if n.Z < 0 {
			n = r3.Scale(-1, n)
		}
	}
	return n, true
}

// perpendicular returns some vector perpendicular to k, chosen by
// crossing k with the principal axis it is least aligned with.
func perpendicular(k r3.Vec) r3.Vec {
	ax, ay, az := math.Abs(k.X), math.Abs(k.Y), math.Abs(k.Z)
	var ref r3.Vec
	switch {
	case ax <= ay && ax <= az:
		ref = r3.Vec{X: 1}
	case ay <= az:
		ref = r3.Vec{Y: 1}
	default:
		ref = r3.Vec{Z: 1}
	}
	return r3.Cross(k, ref)
}
