package circuit_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/fieldline/magcage/circuit"
	"github.com/fieldline/magcage/geom"
	"github.com/fieldline/magcage/source"
)

func assertVecInDelta(t *testing.T, want, got r3.Vec, tol float64, msg string) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, tol, "%s (x)", msg)
	assert.InDelta(t, want.Y, got.Y, tol, "%s (y)", msg)
	assert.InDelta(t, want.Z, got.Z, tol, "%s (z)", msg)
}

// squareCircuit builds a thin square loop of half-side a in the x-z
// plane, with one centerline filament per segment.
func squareCircuit(t *testing.T, a, current float64) *circuit.Circuit {
	t.Helper()
	shape := mustShape(t, []r3.Vec{
		{X: a, Z: a}, {X: -a, Z: a}, {X: -a, Z: -a}, {X: a, Z: -a}, {X: a, Z: a},
	})
	opts := circuit.DefaultOptions()
	opts.Source = source.Options{NU: 1, NV: 1}
	c, err := circuit.NewRectangular(shape, 0.01, 0.01, current, &opts)
	require.NoError(t, err)
	return c
}

// TestRectangular_SquareLoopCenterField compares the discretized square
// loop against the analytic center field B = √2·μ0·I/(π·a).
func TestRectangular_SquareLoopCenterField(t *testing.T) {
	const a, current = 1.5, 1e6
	c := squareCircuit(t, a, current)
	require.Equal(t, 4, c.Len())

	b := c.Field(r3.Vec{})
	want := math.Sqrt2 * source.Mu0 * current / (math.Pi * a)

	assert.InEpsilon(t, want, r3.Norm(b), 1e-9, "square-loop center field")
	assert.InDelta(t, 0, b.X, 1e-12, "center field is normal to the loop plane")
	assert.InDelta(t, 0, b.Z, 1e-12, "center field is normal to the loop plane")
}

// TestRectangular_ThickConductorMitre verifies the flush-mitre geometry
// on a conductor with off-axis filaments: in a square loop of half-side
// a, the 45° end-caps close the filament at tangent offset u into a
// concentric square of half-side a−u, so the center field is the sum of
// the analytic square-loop fields √2·μ0·(I/NU)/(π·(a−u)) over the
// filament offsets. Crossed (a+u)×(a−u) end geometry, where the caps
// tilt the wrong way, misses this value by several percent.
func TestRectangular_ThickConductorMitre(t *testing.T) {
	const (
		a       = 1.0
		w       = 0.5 // conductor half-breadth
		current = 1e6
		nu      = 3
	)
	shape := mustShape(t, []r3.Vec{
		{X: a, Z: a}, {X: -a, Z: a}, {X: -a, Z: -a}, {X: a, Z: -a}, {X: a, Z: a},
	})
	opts := circuit.DefaultOptions()
	opts.Source = source.Options{NU: nu, NV: 1}
	c, err := circuit.NewRectangular(shape, w, 0.01, current, &opts)
	require.NoError(t, err)

	want := 0.0
	for iu := 0; iu < nu; iu++ {
		u := -w + 2*w*(float64(iu)+0.5)/nu
		want += math.Sqrt2 * source.Mu0 * (current / nu) / (math.Pi * (a - u))
	}

	b := c.Field(r3.Vec{})
	assert.InEpsilon(t, want, r3.Norm(b), 1e-9, "center field of three concentric filament squares")
	assert.InDelta(t, 0, b.X, 1e-12)
	assert.InDelta(t, 0, b.Z, 1e-12)
}

// TestCircuit_Superposition: the circuit field is the elementwise sum of
// its segment sources evaluated alone.
func TestCircuit_Superposition(t *testing.T) {
	c := squareCircuit(t, 2, 5e5)

	for _, p := range []r3.Vec{{}, {X: 1, Y: 1, Z: 1}, {X: -3, Y: 0.2, Z: 4}} {
		var want r3.Vec
		for _, s := range c.Sources() {
			want = r3.Add(want, s.Field(p))
		}
		assertVecInDelta(t, want, c.Field(p), 1e-18, "superposition over segments")
	}
}

// TestCircuit_RotationEquivariance: rotating a circuit by θ about z and
// evaluating at p equals evaluating the original at R(−θ)·p and rotating
// the result by θ.
func TestCircuit_RotationEquivariance(t *testing.T) {
	c := squareCircuit(t, 2, 5e5)
	rotated := c.Copy()
	rotated.Rotate(30, geom.AxisZ)

	rot := geom.AxisRotation(30, geom.AxisZ)
	inv := geom.AxisRotation(-30, geom.AxisZ)

	for _, p := range []r3.Vec{{X: 1, Z: 0.5}, {X: -0.7, Y: 2.2, Z: 1.4}, {Y: 3}} {
		want := rot.Rotate(c.Field(inv.Rotate(p)))
		assertVecInDelta(t, want, rotated.Field(p), 1e-15, "field equivariance under rigid rotation")
	}
}

// TestCircuit_CopyIndependence: transforming a copy leaves the original
// circuit's field (and diagnostics) untouched.
func TestCircuit_CopyIndependence(t *testing.T) {
	c := squareCircuit(t, 2, 5e5)
	p := r3.Vec{X: 0.3, Y: 1.1, Z: -0.6}
	before := c.Field(p)
	midsBefore := c.Midpoints()

	cp := c.Copy()
	cp.Rotate(90, geom.AxisZ)
	cp.Translate(r3.Vec{Y: 5})

	assert.Equal(t, before, c.Field(p), "the original field must not move")
	assert.Equal(t, midsBefore, c.Midpoints(), "the original diagnostics must not move")
	assert.NotEqual(t, before, cp.Field(p), "the copy did move")
}

// TestCircuit_Diagnostics pins the retained bookkeeping: point matrix,
// midpoints, edge vectors, segment count.
func TestCircuit_Diagnostics(t *testing.T) {
	c := squareCircuit(t, 1, 1e3)

	r, cols := c.Shape().Dims()
	assert.Equal(t, 5, r, "closed square chain repeats the closing point")
	assert.Equal(t, 3, cols)

	assert.Len(t, c.Midpoints(), 4)
	assert.Len(t, c.DL(), 4)
	assert.Len(t, c.Segments(), 4)
	assert.Equal(t, 1e3, c.Current())
	assert.Empty(t, c.Warnings(), "square mitres sit exactly on the 45° limit")
}

// TestCircuit_Transforms: rotating the circuit rotates its diagnostics
// with it.
func TestCircuit_TransformsDiagnostics(t *testing.T) {
	c := squareCircuit(t, 1, 1e3)
	mids := c.Midpoints()

	c.Rotate(90, geom.AxisZ)
	rot := geom.AxisRotation(90, geom.AxisZ)
	for i, m := range c.Midpoints() {
		assertVecInDelta(t, rot.Rotate(mids[i]), m, 1e-12, "rotated midpoint")
	}

	c.Translate(r3.Vec{Z: 2})
	assert.InDelta(t, 2, c.Midpoints()[0].Z-rot.Rotate(mids[0]).Z, 1e-12, "translated midpoint")
}

// TestNewRectangular_Errors covers the fatal construction taxonomy.
func TestNewRectangular_Errors(t *testing.T) {
	_, err := circuit.NewRectangular(nil, 0.1, 0.1, 1e3, nil)
	assert.ErrorIs(t, err, circuit.ErrNilShape)

	shape := mustShape(t, regularPolygonXZ(4, 1))
	_, err = circuit.NewRectangular(shape, 0, 0.1, 1e3, nil)
	assert.ErrorIs(t, err, source.ErrBadCrossSection, "degenerate cross-section")

	_, err = circuit.NewRectangular(shape, 0.1, 0.1, math.NaN(), nil)
	assert.ErrorIs(t, err, source.ErrBadCurrent, "non-finite current")

	// Negative current is valid: it reverses the field.
	fwd, err := circuit.NewRectangular(shape, 0.1, 0.1, 1e3, nil)
	require.NoError(t, err)
	rev, err := circuit.NewRectangular(shape, 0.1, 0.1, -1e3, nil)
	require.NoError(t, err)
	p := r3.Vec{Y: 0.5}
	assertVecInDelta(t, r3.Scale(-1, fwd.Field(p)), rev.Field(p), 1e-18, "reversed current")
}

// TestPlanarityError: a non-planar point set is rejected by the shape
// adapter before any circuit can be built.
func TestPlanarityError(t *testing.T) {
	_, err := geom.New([]r3.Vec{
		{X: 1, Z: 1}, {X: -1, Z: 1}, {X: -1, Z: -1}, {X: 1, Y: 0.2, Z: -1},
	}, geom.DefaultOptions())
	assert.ErrorIs(t, err, geom.ErrNotPlanar)
}

// TestNewPolyhedral_EndCapWarning: an open bent path gives its first
// segment unequal end-cap angles (entry 0, exit 45°), which must
// surface as exactly one warning on a polyhedral circuit.
func TestNewPolyhedral_EndCapWarning(t *testing.T) {
	bent := mustShape(t, []r3.Vec{{X: 0}, {X: 2}, {X: 2, Z: 2}, {X: 0, Z: 2}})
	xs := []geom.Point2{{X: -0.1, Y: -0.1}, {X: 0.1, Y: -0.1}, {X: 0.1, Y: 0.1}, {X: -0.1, Y: 0.1}}

	c, err := circuit.NewPolyhedral(bent, xs, 1e4, nil)
	require.NoError(t, err)

	warns := c.Warnings()
	require.Len(t, warns, 1, "one warning per kind, not per source")
	assert.Equal(t, circuit.WarnUnequalEndCaps, warns[0].Kind)

	// A closed square has mirror-symmetric end-caps everywhere: no warning.
	sym, err := circuit.NewPolyhedral(mustShape(t, regularPolygonXZ(4, 2)), xs, 1e4, nil)
	require.NoError(t, err)
	assert.Empty(t, sym.Warnings())
}

// TestNewPolyhedral_MatchesRectangular: a rectangle polygon cross-section
// reproduces the rectangular circuit field.
func TestNewPolyhedral_MatchesRectangular(t *testing.T) {
	shape := mustShape(t, regularPolygonXZ(6, 2))
	xs := []geom.Point2{{X: -0.2, Y: -0.1}, {X: 0.2, Y: -0.1}, {X: 0.2, Y: 0.1}, {X: -0.2, Y: 0.1}}

	rect, err := circuit.NewRectangular(shape, 0.2, 0.1, 3e5, nil)
	require.NoError(t, err)
	poly, err := circuit.NewPolyhedral(shape, xs, 3e5, nil)
	require.NoError(t, err)

	for _, p := range []r3.Vec{{}, {X: 1, Y: 1, Z: -1}, {Y: 4}} {
		assertVecInDelta(t, rect.Field(p), poly.Field(p), 1e-15, "rectangle polygon ≡ rectangular circuit")
	}
}

// TestCircuit_FieldsMatchesField: batch evaluation preserves order and
// values.
func TestCircuit_FieldsMatchesField(t *testing.T) {
	c := squareCircuit(t, 2, 1e5)
	pts := make([]r3.Vec, 50)
	for i := range pts {
		pts[i] = r3.Vec{X: 0.1 * float64(i), Y: 0.5, Z: -0.3}
	}
	batch := c.Fields(pts)
	require.Len(t, batch, len(pts))
	for i, p := range pts {
		assert.Equal(t, c.Field(p), batch[i], "batch point %d", i)
	}
}
