package fieldplot

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/fieldline/magcage/cage"
)

// Sentinel errors for plot construction.
var (
	// ErrNoPoints indicates an empty sample set.
	ErrNoPoints = errors.New("fieldplot: at least one sample point is required")
	// ErrBadSamples indicates a non-positive sample count.
	ErrBadSamples = errors.New("fieldplot: sample count must be positive")
)

// FieldEvaluator is anything that can report a magnetic field at a
// point: a source, a circuit, or a whole cage.
type FieldEvaluator interface {
	Field(p r3.Vec) r3.Vec
}

// RippleProfile plots the toroidal-field ripple [%] of the cage against
// major radius at height z, over the given radii, and saves the figure
// to path. The plot format follows the path extension (e.g. .png, .pdf).
func RippleProfile(c *cage.Cage, radii []float64, z float64, path string) error {
	if len(radii) == 0 {
		return ErrNoPoints
	}

	pts := make(plotter.XYs, len(radii))
	for i, r := range radii {
		pts[i].X = r
		pts[i].Y = c.Ripple(r, 0, z)
	}

	p := plot.New()
	p.Title.Text = "Toroidal field ripple"
	p.X.Label.Text = "major radius x [m]"
	p.Y.Label.Text = "ripple [%]"

	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	p.Add(line, plotter.NewGrid())
	return p.Save(6*vg.Inch, 4*vg.Inch, path)
}

// FieldMagnitudeProfile plots |B| [T] of the evaluator on a circle of
// the given radius at height z, sampled at n evenly spaced toroidal
// angles over a full turn, and saves the figure to path.
func FieldMagnitudeProfile(f FieldEvaluator, radius, z float64, n int, path string) error {
	if n <= 0 {
		return ErrBadSamples
	}

	pts := make(plotter.XYs, n)
	for i := 0; i < n; i++ {
		phi := 2 * math.Pi * float64(i) / float64(n)
		b := f.Field(r3.Vec{X: radius * math.Cos(phi), Y: radius * math.Sin(phi), Z: z})
		pts[i].X = phi * 180 / math.Pi
		pts[i].Y = r3.Norm(b)
	}

	p := plot.New()
	p.Title.Text = "Field magnitude around the torus"
	p.X.Label.Text = "toroidal angle [°]"
	p.Y.Label.Text = "|B| [T]"

	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	p.Add(line, plotter.NewGrid())
	return p.Save(6*vg.Inch, 4*vg.Inch, path)
}
