package source

import (
	"gonum.org/v1/gonum/spatial/r3"
)

// TrapezoidalPrism is a finite current source of rectangular
// cross-section with mitred end-caps.
//
// Description:
//
//	The conductor runs along dl through the segment midpoint. Its
//	rectangular cross-section spans ±breadth along the tangent and
//	±depth along the loop normal. End-caps are cut at the entry (beta)
//	and exit (alpha) half-angles about the normal, so that consecutive
//	prisms along a discretized loop meet flush.
//
// Field model: NU×NV uniform filament bundle, each filament carrying
// current/(NU·NV); exact in the filament limit, singular nowhere outside
// the conductor volume.
type TrapezoidalPrism struct {
	prism
	breadth float64
	depth   float64
}

// NewTrapezoidalPrism builds a rectangular-cross-section prism source.
//
// Parameters: midpoint and segment vector dl [m], unit loop normal and
// tangent, half-breadth and half-depth [m], entry/exit half-angles [°],
// current [A]. A nil opts uses DefaultOptions.
//
// Errors: ErrBadGeometry (degenerate frame), ErrBadCrossSection
// (non-positive or non-finite breadth/depth), ErrBadCurrent.
func NewTrapezoidalPrism(midpoint, dl, normal, tangent r3.Vec, breadth, depth, betaDeg, alphaDeg, current float64, opts *Options) (*TrapezoidalPrism, error) {
	dHat, tHat, nHat, halfLen, err := frame(dl, normal, tangent)
	if err != nil {
		return nil, err
	}
	if breadth <= 0 || depth <= 0 || !isFinite(breadth, depth, betaDeg, alphaDeg) {
		return nil, ErrBadCrossSection
	}
	if !isFinite(current) {
		return nil, ErrBadCurrent
	}

	o := DefaultOptions()
	if opts != nil {
		o = opts.normalized()
	}

	tanA, tanB := tanDeg(alphaDeg), tanDeg(betaDeg)
	perFil := current / float64(o.NU*o.NV)
	fil := make([]filament, 0, o.NU*o.NV)
	for iu := 0; iu < o.NU; iu++ {
		u := -breadth + 2*breadth*(float64(iu)+0.5)/float64(o.NU)
		for iv := 0; iv < o.NV; iv++ {
			v := -depth + 2*depth*(float64(iv)+0.5)/float64(o.NV)
			fil = append(fil, mitredFilament(midpoint, dHat, tHat, nHat, halfLen, u, v, tanA, tanB, perFil))
		}
	}

	return &TrapezoidalPrism{
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
		breadth: breadth,
		depth:   depth,
	}, nil
}

// Breadth returns the cross-section half-breadth [m].
func (s *TrapezoidalPrism) Breadth() float64 { return s.breadth }

// Depth returns the cross-section half-depth [m].
func (s *TrapezoidalPrism) Depth() float64 { return s.depth }

// Copy returns an independent deep copy.
func (s *TrapezoidalPrism) Copy() CurrentSource {
	return &TrapezoidalPrism{prism: s.prism.clone(), breadth: s.breadth, depth: s.depth}
}
