package cage_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/fieldline/magcage/cage"
	"github.com/fieldline/magcage/circuit"
	"github.com/fieldline/magcage/geom"
	"github.com/fieldline/magcage/source"
)

// tfCoil builds a rectangular toroidal-field coil in the x-z plane:
// inboard leg at x=r1, outboard leg at x=r2, height ±h.
func tfCoil(t testing.TB, r1, r2, h, current float64) *circuit.Circuit {
	t.Helper()
	shape, err := geom.New([]r3.Vec{
		{X: r1, Z: -h}, {X: r2, Z: -h}, {X: r2, Z: h}, {X: r1, Z: h}, {X: r1, Z: -h},
	}, geom.DefaultOptions())
	require.NoError(t, err)

	opts := circuit.DefaultOptions()
	opts.Source = source.Options{NU: 2, NV: 2}
	c, err := circuit.NewRectangular(shape, 0.05, 0.05, current, &opts)
	require.NoError(t, err)
	return c
}

// TestNew_Validation covers the fatal construction cases.
func TestNew_Validation(t *testing.T) {
	_, err := cage.New(nil, 8)
	assert.ErrorIs(t, err, cage.ErrNilTemplate)

	c := tfCoil(t, 1, 5, 4, 1e6)
	_, err = cage.New(c, 0)
	assert.ErrorIs(t, err, cage.ErrBadCoilCount)
	_, err = cage.New(c, -3)
	assert.ErrorIs(t, err, cage.ErrBadCoilCount)
}

// TestNew_SingleReplica: a cage of one coil is the untransformed
// template — identical field everywhere.
func TestNew_SingleReplica(t *testing.T) {
	tpl := tfCoil(t, 1, 5, 4, 1e6)
	cg, err := cage.New(tpl, 1)
	require.NoError(t, err)
	require.Equal(t, 1, cg.NCoils())

	for _, p := range []r3.Vec{{X: 3}, {X: 2, Y: 1, Z: 1}, {X: 4, Y: -2, Z: -3}} {
		assertVecInDelta(t, tpl.Field(p), cg.Field(p), 1e-15, "single replica ≡ template")
	}
}

// TestNew_TemplateUntouched: patterning must deep-copy; the template (and
// siblings) never alias replica state.
func TestNew_TemplateUntouched(t *testing.T) {
	tpl := tfCoil(t, 1, 5, 4, 1e6)
	p := r3.Vec{X: 3, Y: 0.5, Z: 0.2}
	before := tpl.Field(p)

	cg, err := cage.New(tpl, 12)
	require.NoError(t, err)

	assert.Equal(t, before, tpl.Field(p), "template must not move during patterning")
	require.Len(t, cg.Coils(), 12)
}

// TestField_SumOfReplicas: the cage field is the superposition of its
// replica fields.
func TestField_SumOfReplicas(t *testing.T) {
	cg, err := cage.New(tfCoil(t, 1, 5, 4, 1e6), 6)
	require.NoError(t, err)

	p := r3.Vec{X: 3, Y: 1, Z: -0.5}
	var want r3.Vec
	for _, coil := range cg.Coils() {
		want = r3.Add(want, coil.Field(p))
	}
	assertVecInDelta(t, want, cg.Field(p), 1e-18, "superposition across replicas")
}

// TestField_ReplicaPlacement: replica k sits at k·360/n degrees — the
// field pattern has n-fold rotational symmetry.
func TestField_ReplicaPlacement(t *testing.T) {
	const n = 8
	cg, err := cage.New(tfCoil(t, 1, 5, 4, 1e6), n)
	require.NoError(t, err)

	p := r3.Vec{X: 3.2, Y: 0.4, Z: 0.7}
	rot := geom.AxisRotation(360/float64(n), geom.AxisZ)
	want := rot.Rotate(cg.Field(p))
	got := cg.Field(rot.Rotate(p))
	assertVecInDelta(t, want, got, 1e-12, "n-fold symmetry of the patterned field")
}

// TestRipple_MonotoneInCoilCount: ripple at the outboard midplane is
// finite, positive, and decreases monotonically as the coil count grows
// (more coils ⇒ more nearly axisymmetric winding).
func TestRipple_MonotoneInCoilCount(t *testing.T) {
	tpl := tfCoil(t, 1, 5, 4, 1e6)

	var last = math.Inf(1)
	for _, n := range []int{8, 12, 18, 24} {
		cg, err := cage.New(tpl, n)
		require.NoError(t, err)

		r := cg.Ripple(4, 0, 0)
		require.False(t, math.IsNaN(r) || math.IsInf(r, 0), "n=%d: ripple is well-defined", n)
		assert.Greater(t, r, 0.0, "n=%d: inline field exceeds in-gap field", n)
		assert.Less(t, r, last, "n=%d: ripple decreases with coil count", n)
		last = r
	}
}

// TestRippleBatch matches pointwise Ripple and rejects ragged input.
func TestRippleBatch(t *testing.T) {
	cg, err := cage.New(tfCoil(t, 1, 5, 4, 1e6), 10)
	require.NoError(t, err)

	xs := []float64{3, 3.5, 4, 4.5}
	ys := []float64{0, 0, 0, 0}
	zs := []float64{0, 0.5, -0.5, 1}
	got, err := cg.RippleBatch(xs, ys, zs)
	require.NoError(t, err)
	require.Len(t, got, len(xs))
	for i := range xs {
		assert.Equal(t, cg.Ripple(xs[i], ys[i], zs[i]), got[i], "batch point %d", i)
	}

	_, err = cg.RippleBatch(xs, ys[:2], zs)
	assert.ErrorIs(t, err, cage.ErrLengthMismatch)
}

// TestFields_MatchesField: parallel batch evaluation preserves order.
func TestFields_MatchesField(t *testing.T) {
	cg, err := cage.New(tfCoil(t, 1, 5, 4, 1e6), 4)
	require.NoError(t, err)

	pts := []r3.Vec{{X: 2}, {X: 3, Y: 1}, {X: 4, Z: -1}, {X: 2.5, Y: -0.5, Z: 0.5}}
	batch := cg.Fields(pts)
	require.Len(t, batch, len(pts))
	for i, p := range pts {
		assert.Equal(t, cg.Field(p), batch[i], "batch point %d", i)
	}
}

func assertVecInDelta(t *testing.T, want, got r3.Vec, tol float64, msg string) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, tol, "%s (x)", msg)
	assert.InDelta(t, want.Y, got.Y, tol, "%s (y)", msg)
	assert.InDelta(t, want.Z, got.Z, tol, "%s (z)", msg)
}
