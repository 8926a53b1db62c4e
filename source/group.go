package source

import (
	"runtime"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/fieldline/magcage/geom"
)

// Group aggregates current sources behind a single field-evaluation
// entry point. The total field is the vector superposition of every
// child source's contribution — sources are independent and linear.
//
// A Group itself satisfies CurrentSource, so groups nest (a coil cage is
// a group of circuits, each a group of prisms).
type Group struct {
	sources []CurrentSource
}

// NewGroup builds a Group over the given sources. The slice is copied;
// the sources themselves are owned by the group from here on.
func NewGroup(sources ...CurrentSource) *Group {
	ss := make([]CurrentSource, len(sources))
	copy(ss, sources)
	return &Group{sources: ss}
}

// Len returns the number of child sources.
func (g *Group) Len() int { return len(g.sources) }

// Sources returns a copy of the child slice. The children are shared:
// use Copy for an independent duplicate of the whole group.
func (g *Group) Sources() []CurrentSource {
	out := make([]CurrentSource, len(g.sources))
	copy(out, g.sources)
	return out
}

// Field returns the superposed field [T] of all children at p.
func (g *Group) Field(p r3.Vec) r3.Vec {
	var b r3.Vec
	for _, s := range g.sources {
		b = r3.Add(b, s.Field(p))
	}
	return b
}

// Fields evaluates the group field at every point, in parallel across
// points (field evaluation is pure, so points are independent). Result
// order matches the input order.
func (g *Group) Fields(pts []r3.Vec) []r3.Vec {
	out := make([]r3.Vec, len(pts))
	var eg errgroup.Group
	eg.SetLimit(runtime.GOMAXPROCS(0))
	for i, p := range pts {
		eg.Go(func() error {
			out[i] = g.Field(p)
			return nil
		})
	}
	// Workers never return an error; Wait is for joining only.
	_ = eg.Wait()
	return out
}

// Copy returns a deep copy: every child source is copied, so subsequent
// transforms of the copy never affect the original.
func (g *Group) Copy() CurrentSource {
	ss := make([]CurrentSource, len(g.sources))
	for i, s := range g.sources {
		ss[i] = s.Copy()
	}
	return &Group{sources: ss}
}

// Rotate rotates every child source about the global origin.
func (g *Group) Rotate(angleDeg float64, axis geom.Axis) {
	for _, s := range g.sources {
		s.Rotate(angleDeg, axis)
	}
}

// Translate shifts every child source by dv.
func (g *Group) Translate(dv r3.Vec) {
	for _, s := range g.sources {
		s.Translate(dv)
	}
}
