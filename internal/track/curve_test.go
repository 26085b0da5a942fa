package track

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

const tol = 1e-9

func assertVecNear(t *testing.T, want, got r3.Vec, delta float64, msgAndArgs ...any) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, delta, msgAndArgs...)
	assert.InDelta(t, want.Y, got.Y, delta, msgAndArgs...)
	assert.InDelta(t, want.Z, got.Z, delta, msgAndArgs...)
}

func defaultCurves(t *testing.T) map[string]Curve {
	t.Helper()
	cat, err := DefaultCatalog()
	require.NoError(t, err)
	out := make(map[string]Curve, cat.Len())
	for i := 0; i < cat.Len(); i++ {
		e, err := cat.At(i)
		require.NoError(t, err)
		out[e.Name] = e.Curve
	}
	return out
}

func TestWrap(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in, want float64
	}{
		{0, 0},
		{0.25, 0.25},
		{1, 0},
		{1.25, 0.25},
		{3, 0},
		{-0.25, 0.75},
		{-1, 0},
		{-1e-18, 0},
	}
	for _, c := range cases {
		got := Wrap(c.in)
		assert.InDelta(t, c.want, got, tol, "Wrap(%v)", c.in)
		assert.GreaterOrEqual(t, got, 0.0)
		assert.Less(t, got, 1.0)
	}
}

// ---------------------------------------------------------------------------
// Ellipse
// ---------------------------------------------------------------------------

func TestEllipse(t *testing.T) {
	t.Parallel()

	e, err := NewEllipse(10, 14, 1)
	require.NoError(t, err)

	t.Run("quarter points", func(t *testing.T) {
		assertVecNear(t, r3.Vec{X: 10, Y: 0, Z: 1}, e.Point(0), tol)
		assertVecNear(t, r3.Vec{X: 0, Y: 14, Z: 1}, e.Point(0.25), tol)
		assertVecNear(t, r3.Vec{X: -10, Y: 0, Z: 1}, e.Point(0.5), tol)
		assertVecNear(t, r3.Vec{X: 0, Y: -14, Z: 1}, e.Point(0.75), tol)
	})

	t.Run("analytic tangent", func(t *testing.T) {
		tan, err := e.Tangent(0)
		require.NoError(t, err)
		assertVecNear(t, r3.Vec{X: 0, Y: 1, Z: 0}, tan, tol)

		tan, err = e.Tangent(0.25)
		require.NoError(t, err)
		assertVecNear(t, r3.Vec{X: -1, Y: 0, Z: 0}, tan, tol)
	})

	t.Run("rejects non-positive radii", func(t *testing.T) {
		for _, r := range [][2]float64{{0, 14}, {10, 0}, {-1, 5}, {math.NaN(), 3}} {
			_, err := NewEllipse(r[0], r[1], 0)
			assert.ErrorIs(t, err, ErrConfiguration, "radii %v", r)
		}
	})
}

// ---------------------------------------------------------------------------
// Bezier
// ---------------------------------------------------------------------------

func square8() []r3.Vec {
	return []r3.Vec{
		{X: 0, Y: 0}, {X: 4, Y: -2}, {X: 8, Y: -2}, {X: 12, Y: 0},
		{X: 12, Y: 0}, {X: 8, Y: 6}, {X: 4, Y: 6}, {X: 0, Y: 0},
	}
}

func TestNewBezierRejectsBadCounts(t *testing.T) {
	t.Parallel()

	for _, n := range []int{0, 1, 3, 5, 7, 9} {
		_, err := NewBezier(make([]r3.Vec, n))
		assert.ErrorIs(t, err, ErrConfiguration, "n=%d", n)
	}
	b, err := NewBezier(make([]r3.Vec, 12))
	require.NoError(t, err)
	assert.Equal(t, 3, b.Segments())
}

func TestBezierCopiesControlPoints(t *testing.T) {
	t.Parallel()

	pts := square8()
	b, err := NewBezier(pts)
	require.NoError(t, err)

	pts[0] = r3.Vec{X: 100}
	assertVecNear(t, r3.Vec{}, b.Point(0), tol)

	out := b.ControlPoints()
	out[0] = r3.Vec{X: 100}
	assertVecNear(t, r3.Vec{}, b.Point(0), tol)
}

func TestBezierTwoSegmentBoundaries(t *testing.T) {
	t.Parallel()

	pts := square8()
	b, err := NewBezier(pts)
	require.NoError(t, err)
	assert.InDelta(t, 1.0/8, b.SampleInterval(), tol)

	assertVecNear(t, pts[0], b.Point(0), tol)
	assertVecNear(t, pts[4], b.Point(0.5), tol)
	assertVecNear(t, pts[0], b.Point(1), tol)
	assertVecNear(t, pts[7], b.Point(1-1e-12), 1e-9)

	// t=0.25 is the middle of the first segment: (P0 + 3P1 + 3P2 + P3) / 8.
	mid := r3.Scale(1.0/8, r3.Add(r3.Add(pts[0], r3.Scale(3, pts[1])), r3.Add(r3.Scale(3, pts[2]), pts[3])))
	assertVecNear(t, mid, b.Point(0.25), tol)
}

func TestBezierFourSegmentBoundaries(t *testing.T) {
	t.Parallel()

	pts := concaveLoop()
	b, err := NewBezier(pts)
	require.NoError(t, err)

	for i, tt := range []float64{0, 0.25, 0.5, 0.75} {
		assertVecNear(t, pts[4*i], b.Point(tt), tol, "t=%v", tt)
	}
}

func TestBezierTangentMatchesDerivative(t *testing.T) {
	t.Parallel()

	b, err := NewBezier(square8())
	require.NoError(t, err)

	const h = 1e-6
	for _, tt := range []float64{0.1, 0.2, 0.3, 0.6, 0.7, 0.9} {
		tan, err := b.Tangent(tt)
		require.NoError(t, err)
		fd := r3.Unit(r3.Sub(b.Point(tt+h), b.Point(tt-h)))
		assertVecNear(t, fd, tan, 1e-5, "t=%v", tt)
	}
}

func TestBezierDegenerateTangent(t *testing.T) {
	t.Parallel()

	pts := square8()
	pts[1] = pts[0] // zero derivative at the start of segment 0
	b, err := NewBezier(pts)
	require.NoError(t, err)

	tan, err := b.Tangent(0)
	require.ErrorIs(t, err, ErrDegenerateGeometry)
	assert.Equal(t, r3.Vec{}, tan)

	_, err = b.Tangent(0.1)
	assert.NoError(t, err)
}

// ---------------------------------------------------------------------------
// Properties shared by both curve variants
// ---------------------------------------------------------------------------

func TestCurveClosure(t *testing.T) {
	t.Parallel()

	for name, c := range defaultCurves(t) {
		t.Run(name, func(t *testing.T) {
			assertVecNear(t, c.Point(0), c.Point(1-1e-10), 1e-6)
			for _, tt := range []float64{0, 0.1, 0.37, 0.5, 0.93} {
				for _, k := range []float64{-3, -1, 1, 2, 7} {
					assertVecNear(t, c.Point(tt), c.Point(tt+k), 1e-9, "t=%v k=%v", tt, k)
				}
			}
		})
	}
}

func TestCurveUnitTangent(t *testing.T) {
	t.Parallel()

	for name, c := range defaultCurves(t) {
		t.Run(name, func(t *testing.T) {
			for tt := 0.0; tt < 1; tt += 0.0037 {
				tan, err := c.Tangent(tt)
				require.NoError(t, err, "t=%v", tt)
				assert.InDelta(t, 1, r3.Norm(tan), 1e-12, "t=%v", tt)
			}
		})
	}
}
