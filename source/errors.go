package source

import "errors"

// Sentinel errors for source construction.
var (
	// ErrBadCrossSection indicates a degenerate or non-finite cross-section.
	ErrBadCrossSection = errors.New("source: cross-section must be finite and non-degenerate")
	// ErrBadCurrent indicates a non-finite current value.
	ErrBadCurrent = errors.New("source: current must be finite")
	// ErrBadGeometry indicates a zero-length segment or degenerate placement frame.
	ErrBadGeometry = errors.New("source: placement requires a non-zero direction, normal and tangent")
)
