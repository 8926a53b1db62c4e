package geom

import "errors"

// Sentinel errors for coordinate-set validation.
var (
	// ErrTooFewPoints indicates fewer than three input points.
	ErrTooFewPoints = errors.New("geom: a coordinate set needs at least three points")
	// ErrNotPlanar indicates the input points are not coplanar within tolerance.
	ErrNotPlanar = errors.New("geom: input points are not coplanar within tolerance")
	// ErrBadTolerance indicates a non-positive or non-finite tolerance in Options.
	ErrBadTolerance = errors.New("geom: tolerances must be positive and finite")
)
