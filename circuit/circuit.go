package circuit

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/fieldline/magcage/geom"
	"github.com/fieldline/magcage/source"
)

// Circuit is a planar current loop discretized into prism sources.
//
// Description:
//
//	A Circuit owns one prism source per segment of its shape, grouped
//	behind a single field-evaluation entry point (vector superposition).
//	It is built once from a validated shape, a cross-section and a
//	current, and is immutable thereafter except for whole-object rigid
//	transforms: Copy, Rotate, Translate.
//
// Diagnostics from construction are retained: the traversed point chain
// (Shape as an n×3 matrix), per-segment edge vectors and midpoints, and
// any modeling-accuracy warnings.
type Circuit struct {
	group    *source.Group
	segments []Segment
	shapePts []r3.Vec // traversed chain, closing duplicate included for loops
	warnings []Warning
	current  float64
}

// NewRectangular builds a circuit of constant rectangular cross-section
// and uniform current density along the shape.
//
// Parameters: validated planar shape, cross-section half-breadth and
// half-depth [m], current [A] (negative reverses the flow direction).
// A nil opts uses DefaultOptions.
//
// Errors: ErrNilShape, source.ErrBadCrossSection, source.ErrBadCurrent,
// source.ErrBadGeometry (zero-length edge).
func NewRectangular(shape *geom.Coordinates, breadth, depth, current float64, opts *Options) (*Circuit, error) {
	return build(shape, current, opts, func(seg Segment, normal r3.Vec, o Options) (source.CurrentSource, bool, error) {
		s, err := source.NewTrapezoidalPrism(
			seg.Midpoint, seg.DL, normal, seg.Tangent,
			breadth, depth, seg.Beta, seg.Alpha, current, &o.Source)
		return s, false, err
	})
}

// NewPolyhedral builds a circuit of constant polygonal cross-section and
// uniform current density along the shape. The cross-section polygon is
// given in local (tangent, normal) coordinates [m].
//
// When any generated source has unequal end-cap half-angles the circuit
// records a single WarnUnequalEndCaps warning: such fields are
// approximate, increasingly so as the end-cap discrepancy grows.
func NewPolyhedral(shape *geom.Coordinates, xs []geom.Point2, current float64, opts *Options) (*Circuit, error) {
	return build(shape, current, opts, func(seg Segment, normal r3.Vec, o Options) (source.CurrentSource, bool, error) {
		s, err := source.NewPolyhedralPrism(
			seg.Midpoint, seg.DL, normal, seg.Tangent,
			xs, seg.Beta, seg.Alpha, current, &o.Source)
		if err != nil {
			return nil, false, err
		}
		return s, s.EndCapMismatch(), err
	})
}

// build runs the shared pipeline: discretize, instantiate one source per
// segment, collect warnings (at most one per kind).
func build(shape *geom.Coordinates, current float64, opts *Options, mk func(Segment, r3.Vec, Options) (source.CurrentSource, bool, error)) (*Circuit, error) {
	if shape == nil {
		return nil, ErrNilShape
	}
	o := DefaultOptions()
	if opts != nil {
		o = opts.normalized()
	}

	segs, warns, err := Discretize(shape, o)
	if err != nil {
		return nil, err
	}

	normal := shape.Normal()
	sources := make([]source.CurrentSource, 0, len(segs))
	mismatch := false
	for i, seg := range segs {
		s, m, err := mk(seg, normal, o)
		if err != nil {
			return nil, fmt.Errorf("circuit: segment %d: %w", i, err)
		}
		mismatch = mismatch || m
		sources = append(sources, s)
	}
	if mismatch {
		warns = append(warns, Warning{
			Kind: WarnUnequalEndCaps,
			Message: "circuit: unequal end-cap half-angles on a polyhedral source; " +
				"the field is approximate and degrades as the end-cap discrepancy grows",
		})
	}

	chain := shape.Points()
	if shape.Closed() {
		chain = append(chain, chain[0])
	}

	return &Circuit{
		group:    source.NewGroup(sources...),
		segments: segs,
		shapePts: chain,
		warnings: warns,
		current:  current,
	}, nil
}

// Field returns the superposed field [T] of all segment sources at p.
func (c *Circuit) Field(p r3.Vec) r3.Vec { return c.group.Field(p) }

// Fields evaluates the circuit field at every point, in parallel across
// points. Result order matches the input order.
func (c *Circuit) Fields(pts []r3.Vec) []r3.Vec { return c.group.Fields(pts) }

// Len returns the number of segment sources.
func (c *Circuit) Len() int { return c.group.Len() }

// Sources returns the segment sources. The slice is a copy but the
// sources are shared; use Copy for an independent duplicate.
func (c *Circuit) Sources() []source.CurrentSource { return c.group.Sources() }

// Current returns the circuit current [A].
func (c *Circuit) Current() float64 { return c.current }

// Segments returns a copy of the per-segment placement descriptors.
func (c *Circuit) Segments() []Segment {
	out := make([]Segment, len(c.segments))
	copy(out, c.segments)
	return out
}

// Warnings returns the modeling-accuracy warnings collected during
// construction, at most one per kind.
func (c *Circuit) Warnings() []Warning {
	out := make([]Warning, len(c.warnings))
	copy(out, c.warnings)
	return out
}

// Shape returns the traversed point chain as an n×3 matrix (the closing
// point is repeated for closed loops), in the circuit's current frame.
func (c *Circuit) Shape() *mat.Dense {
	m := mat.NewDense(len(c.shapePts), 3, nil)
	for i, p := range c.shapePts {
		m.Set(i, 0, p.X)
		m.Set(i, 1, p.Y)
		m.Set(i, 2, p.Z)
	}
	return m
}

// Midpoints returns the per-segment midpoints in the circuit's current
// frame.
func (c *Circuit) Midpoints() []r3.Vec {
	out := make([]r3.Vec, len(c.segments))
	for i, s := range c.segments {
		out[i] = s.Midpoint
	}
	return out
}

// DL returns the per-segment edge vectors in the circuit's current frame.
func (c *Circuit) DL() []r3.Vec {
	out := make([]r3.Vec, len(c.segments))
	for i, s := range c.segments {
		out[i] = s.DL
	}
	return out
}

// Copy returns a fully independent deep copy: transforming the copy
// never affects the original.
func (c *Circuit) Copy() *Circuit {
	segs := make([]Segment, len(c.segments))
	copy(segs, c.segments)
	pts := make([]r3.Vec, len(c.shapePts))
	copy(pts, c.shapePts)
	warns := make([]Warning, len(c.warnings))
	copy(warns, c.warnings)
	return &Circuit{
		group:    c.group.Copy().(*source.Group),
		segments: segs,
		shapePts: pts,
		warnings: warns,
		current:  c.current,
	}
}

// Rotate rotates the whole circuit, sources and diagnostics alike, by
// angleDeg degrees about the given principal axis through the global
// origin.
func (c *Circuit) Rotate(angleDeg float64, axis geom.Axis) {
	c.group.Rotate(angleDeg, axis)
	rot := geom.AxisRotation(angleDeg, axis)
	for i, s := range c.segments {
		c.segments[i].Midpoint = rot.Rotate(s.Midpoint)
		c.segments[i].DL = rot.Rotate(s.DL)
		c.segments[i].Tangent = rot.Rotate(s.Tangent)
	}
	for i, p := range c.shapePts {
		c.shapePts[i] = rot.Rotate(p)
	}
}

// Translate shifts the whole circuit by dv.
func (c *Circuit) Translate(dv r3.Vec) {
	c.group.Translate(dv)
	for i, s := range c.segments {
		c.segments[i].Midpoint = r3.Add(s.Midpoint, dv)
	}
	for i, p := range c.shapePts {
		c.shapePts[i] = r3.Add(p, dv)
	}
}
