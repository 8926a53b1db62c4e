// Package circuit defines the segment descriptor, options and warning
// types for planar-circuit construction.
package circuit

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/fieldline/magcage/source"
)

// Segment describes the placement of one prism source along a
// discretized loop.
//
// Fields:
//   - Midpoint — edge midpoint [m], in the input (world) frame.
//   - DL — edge vector [m], not normalized; the current flows along it.
//   - Tangent — unit vector, direction × loop normal.
//   - Beta — entry half-angle [°] at the segment's first vertex.
//   - Alpha — exit half-angle [°] at the segment's second vertex.
//
// Continuity invariant: Beta of segment i+1 equals Alpha of segment i
// (cyclically for closed loops), since both derive from the same shared
// vertex.
type Segment struct {
	Midpoint r3.Vec
	DL       r3.Vec
	Tangent  r3.Vec
	Beta     float64
	Alpha    float64
}

// WarningKind labels a class of modeling-accuracy warning.
type WarningKind int

const (
	// WarnAcuteMitre — a mitre half-angle magnitude exceeds the acute
	// limit, so consecutive source end-caps overlap.
	WarnAcuteMitre WarningKind = iota
	// WarnUnequalEndCaps — a polyhedral source has unequal entry/exit
	// half-angles, making its field evaluation approximate.
	WarnUnequalEndCaps
)

// String returns a short label for the warning kind.
func (k WarningKind) String() string {
	switch k {
	case WarnAcuteMitre:
		return "acute-mitre"
	case WarnUnequalEndCaps:
		return "unequal-end-caps"
	default:
		return "unknown"
	}
}

// Warning is a non-fatal modeling-accuracy notice collected during
// circuit construction. At most one warning of a given kind is recorded
// per construction, however many segments share the issue.
type Warning struct {
	Kind    WarningKind
	Message string
}

// Options configures circuit construction.
//
// Fields:
//   - Source — filament grid resolution passed to the prism sources.
//   - AcuteLimitDeg — mitre half-angle magnitude [°] above which the
//     acute-mitre warning is recorded. Default 45: beyond it the mitred
//     end-caps of consecutive sources overlap.
//
// Geometric tolerances (planarity, degenerate-angle detection) travel
// with the geom.Coordinates input; see geom.Options.
type Options struct {
	Source        source.Options
	AcuteLimitDeg float64
}

// DefaultOptions returns the default construction options.
func DefaultOptions() Options {
	return Options{
		Source:        source.DefaultOptions(),
		AcuteLimitDeg: 45,
	}
}

func (o Options) normalized() Options {
	if o.AcuteLimitDeg <= 0 {
		o.AcuteLimitDeg = DefaultOptions().AcuteLimitDeg
	}
	return o
}
