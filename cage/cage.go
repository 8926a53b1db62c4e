package cage

import (
	"errors"
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/fieldline/magcage/circuit"
	"github.com/fieldline/magcage/geom"
)

// Sentinel errors for cage construction and evaluation.
var (
	// ErrBadCoilCount indicates a replica count below one.
	ErrBadCoilCount = errors.New("cage: coil count must be a positive integer")
	// ErrNilTemplate indicates a nil template circuit.
	ErrNilTemplate = errors.New("cage: template circuit must not be nil")
	// ErrLengthMismatch indicates coordinate slices of differing lengths.
	ErrLengthMismatch = errors.New("cage: coordinate slices must have equal lengths")
)

// Cage is an axisymmetric arrangement of n circuit replicas about the
// z-axis. Replica k sits at k·360/n degrees; replicas never share state
// with each other or with the template, so per-replica transforms (and
// future mutations of the template) cannot leak between them.
//
// A Cage is immutable after construction.
type Cage struct {
	n     int
	coils []*circuit.Circuit
}

// New patterns the template circuit n times about the z-axis.
//
// The template itself is left untouched; every replica is a deep copy.
// n = 1 degenerates to a single untransformed replica whose field equals
// the template's everywhere.
//
// Errors: ErrNilTemplate, ErrBadCoilCount (n < 1).
func New(template *circuit.Circuit, n int) (*Cage, error) {
	if template == nil {
		return nil, ErrNilTemplate
	}
	if n < 1 {
		return nil, ErrBadCoilCount
	}

	coils := make([]*circuit.Circuit, n)
	pitch := 360 / float64(n)
	for k := 0; k < n; k++ {
		c := template.Copy()
		c.Rotate(float64(k)*pitch, geom.AxisZ)
		coils[k] = c
	}
	return &Cage{n: n, coils: coils}, nil
}

// NCoils returns the replica count.
func (c *Cage) NCoils() int { return c.n }

// Coils returns the replicas. The slice is a copy; the circuits are the
// cage's own and must not be transformed by callers.
func (c *Cage) Coils() []*circuit.Circuit {
	out := make([]*circuit.Circuit, len(c.coils))
	copy(out, c.coils)
	return out
}

// Field returns the superposed field [T] of all replicas at p.
func (c *Cage) Field(p r3.Vec) r3.Vec {
	var b r3.Vec
	for _, coil := range c.coils {
		b = r3.Add(b, coil.Field(p))
	}
	return b
}

// Fields evaluates the cage field at every point, in parallel across
// points. Result order matches the input order.
func (c *Cage) Fields(pts []r3.Vec) []r3.Vec {
	out := make([]r3.Vec, len(pts))
	var eg errgroup.Group
	eg.SetLimit(runtime.GOMAXPROCS(0))
	for i, p := range pts {
		eg.Go(func() error {
			out[i] = c.Field(p)
			return nil
		})
	}
	_ = eg.Wait()
	return out
}

// Ripple returns the toroidal-field ripple [%] at the point (x, y, z).
//
// The query point and the toroidal reference direction (0, 1, 0) are
// rotated into the coil-aligned plane (θ = 0) and the inter-coil gap
// plane (θ = 180/n°); the total field is evaluated in each frame and
// projected onto the rotated toroidal direction. The relative
// inline/in-gap difference is reported as a percentage.
func (c *Cage) Ripple(x, y, z float64) float64 {
	point := r3.Vec{X: x, Y: y, Z: z}
	toroidal := r3.Vec{Y: 1}
	planes := [2]float64{0, math.Pi / float64(c.n)} // inline, in-gap

	var proj [2]float64
	for i, theta := range planes {
		// R(θ)ᵀ = R(−θ): bring the query into the reference plane's frame.
		rot := r3.NewRotation(-theta, r3.Vec{Z: 1})
		pr := rot.Rotate(point)
		nr := rot.Rotate(toroidal)
		proj[i] = r3.Dot(nr, c.Field(pr))
	}
	return 100 * (proj[0] - proj[1]) / (proj[0] + proj[1])
}

// RippleBatch evaluates Ripple elementwise over equal-length coordinate
// slices, in parallel across points.
func (c *Cage) RippleBatch(xs, ys, zs []float64) ([]float64, error) {
	if len(xs) != len(ys) || len(xs) != len(zs) {
		return nil, ErrLengthMismatch
	}
	out := make([]float64, len(xs))
	var eg errgroup.Group
	eg.SetLimit(runtime.GOMAXPROCS(0))
	for i := range xs {
		eg.Go(func() error {
			out[i] = c.Ripple(xs[i], ys[i], zs[i])
			return nil
		})
	}
	_ = eg.Wait()
	return out, nil
}
