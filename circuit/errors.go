package circuit

import "errors"

// Sentinel errors for circuit construction.
var (
	// ErrNilShape indicates a nil geom.Coordinates input.
	ErrNilShape = errors.New("circuit: shape must not be nil")
)
