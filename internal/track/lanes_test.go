package track

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

// concaveLoop is a counter-clockwise loop: three quarter circles of radius 10
// and a final segment dented inwards, so its second half curves clockwise.
func concaveLoop() []r3.Vec {
	const k = 5.523 // 0.5523 * radius
	return []r3.Vec{
		{X: 10, Y: 0}, {X: 10, Y: k}, {X: k, Y: 10}, {X: 0, Y: 10},
		{X: 0, Y: 10}, {X: -k, Y: 10}, {X: -10, Y: k}, {X: -10, Y: 0},
		{X: -10, Y: 0}, {X: -10, Y: -k}, {X: -k, Y: -10}, {X: 0, Y: -10},
		{X: 0, Y: -10}, {X: 2, Y: -6}, {X: 6, Y: -2}, {X: 10, Y: 0},
	}
}

func newResolver(t *testing.T, c Curve) *Resolver {
	t.Helper()
	r, err := NewResolver(c, DefaultConfig())
	require.NoError(t, err)
	return r
}

func TestConfigValidate(t *testing.T) {
	t.Parallel()

	require.NoError(t, DefaultConfig().Validate())
	assert.InDelta(t, 4*1.22, DefaultConfig().TotalWidth(), tol)

	bad := map[string]func(*Config){
		"zero lane width":  func(c *Config) { c.LaneWidth = 0 },
		"no lanes":         func(c *Config) { c.LaneCount = 0 },
		"zero step":        func(c *Config) { c.TangentStep = 0 },
		"step too large":   func(c *Config) { c.TangentStep = 1 },
		"zero up axis":     func(c *Config) { c.Up = r3.Vec{} },
		"negative lane w.": func(c *Config) { c.LaneWidth = -1 },
	}
	for name, mutate := range bad {
		t.Run(name, func(t *testing.T) {
			cfg := DefaultConfig()
			mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrConfiguration)

			e, err := NewEllipse(10, 14, 0)
			require.NoError(t, err)
			_, err = NewResolver(e, cfg)
			assert.ErrorIs(t, err, ErrConfiguration)
		})
	}
}

func TestNewResolverNilCurve(t *testing.T) {
	t.Parallel()

	_, err := NewResolver(nil, DefaultConfig())
	assert.ErrorIs(t, err, ErrConfiguration)
}

func TestLanePointInvalidLane(t *testing.T) {
	t.Parallel()

	e, err := NewEllipse(10, 14, 1)
	require.NoError(t, err)
	r := newResolver(t, e)

	for _, lane := range []int{-1, 4, 100} {
		_, err := r.LanePoint(lane, 0.3)
		require.ErrorIs(t, err, ErrInvalidLane)

		var le *InvalidLaneError
		require.ErrorAs(t, err, &le)
		assert.Equal(t, lane, le.Lane)
		assert.Equal(t, 4, le.Count)

		_, err = r.LaneTangent(lane, 0.3)
		assert.ErrorIs(t, err, ErrInvalidLane)
	}
}

func TestLanePointOnEllipse(t *testing.T) {
	t.Parallel()

	e, err := NewEllipse(10, 14, 1)
	require.NoError(t, err)
	r := newResolver(t, e)

	// At t=0 the normal points along +X, away from the center.
	n, err := r.Normal(0)
	require.NoError(t, err)
	assertVecNear(t, r3.Vec{X: 1}, n, tol)

	want := []float64{10 - 1.83, 10 - 0.61, 10 + 0.61, 10 + 1.83}
	for lane, x := range want {
		p, err := r.LanePoint(lane, 0)
		require.NoError(t, err)
		assertVecNear(t, r3.Vec{X: x, Y: 0, Z: 1}, p, 1e-9, "lane %d", lane)
	}

	inner, outer, err := r.Edges(0)
	require.NoError(t, err)
	assertVecNear(t, r3.Vec{X: 10 - 2.44, Z: 1}, inner, 1e-9)
	assertVecNear(t, r3.Vec{X: 10 + 2.44, Z: 1}, outer, 1e-9)
}

func TestLaneOrdering(t *testing.T) {
	t.Parallel()

	for name, c := range defaultCurves(t) {
		t.Run(name, func(t *testing.T) {
			r := newResolver(t, c)
			cfg := r.Config()
			for tt := 0.0; tt < 1; tt += 0.031 {
				n, err := r.Normal(tt)
				require.NoError(t, err)
				center := c.Point(tt)
				prev := -cfg.TotalWidth() / 2
				for lane := 0; lane < cfg.LaneCount; lane++ {
					p, err := r.LanePoint(lane, tt)
					require.NoError(t, err)
					along := r3.Dot(r3.Sub(p, center), n)
					assert.InDelta(t, cfg.LaneWidth/2, along-prev, 1e-9)
					assert.LessOrEqual(t, along+cfg.LaneWidth/2, cfg.TotalWidth()/2+1e-9)
					prev = along + cfg.LaneWidth/2
				}
			}
		})
	}
}

func TestLaneTangentFollowsLane(t *testing.T) {
	t.Parallel()

	loop, err := NewBezier(concaveLoop())
	require.NoError(t, err)
	oval, err := NewEllipse(10, 14, 0)
	require.NoError(t, err)

	// Segment 0 of the loop is convex, segment 3 concave.
	concave, err := loop.Tangent(0.85)
	require.NoError(t, err)
	ahead, err := loop.Tangent(0.9)
	require.NoError(t, err)
	require.Less(t, r3.Cross(concave, ahead).Z, 0.0, "expected a clockwise bend")

	cases := map[string]struct {
		curve Curve
		ts    []float64
	}{
		"oval":            {curve: oval, ts: []float64{0, 0.1, 0.25, 0.4, 0.6, 0.99}},
		"loop convex":     {curve: loop, ts: []float64{0.05, 0.1, 0.15, 0.2}},
		"loop concave":    {curve: loop, ts: []float64{0.8, 0.85, 0.875, 0.9, 0.95}},
		"loop second arc": {curve: loop, ts: []float64{0.3, 0.375, 0.45}},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			r := newResolver(t, tc.curve)
			for lane := 0; lane < r.Config().LaneCount; lane++ {
				for _, tt := range tc.ts {
					tan, err := r.LaneTangent(lane, tt)
					require.NoError(t, err)
					assert.InDelta(t, 1, r3.Norm(tan), 1e-12)

					p, err := r.LanePoint(lane, tt)
					require.NoError(t, err)
					for _, eps := range []float64{1e-4, 1e-3, 4e-3} {
						q, err := r.LanePoint(lane, tt+eps)
						require.NoError(t, err)
						assert.GreaterOrEqual(t, r3.Dot(tan, r3.Sub(q, p)), 0.0,
							"lane %d t=%v eps=%v", lane, tt, eps)
					}
				}
			}
		})
	}
}

func TestLaneTangentFlipsReversedOffsetPath(t *testing.T) {
	t.Parallel()

	// The inner lane offset (1.83) exceeds the radius, so the inner lane
	// runs backwards around the center.
	tiny, err := NewEllipse(1, 1, 0)
	require.NoError(t, err)
	r := newResolver(t, tiny)

	for _, tt := range []float64{0, 0.2, 0.5, 0.8} {
		fwd, err := tiny.Tangent(tt)
		require.NoError(t, err)
		tan, err := r.LaneTangent(0, tt)
		require.NoError(t, err)
		assert.Greater(t, r3.Dot(tan, fwd), 0.9, "t=%v", tt)

		p, _ := r.LanePoint(0, tt)
		q, _ := r.LanePoint(0, tt+1e-3)
		assert.Less(t, r3.Dot(r3.Sub(q, p), fwd), 0.0, "offset path should run backwards")
	}
}

func TestResolverDegenerateCurve(t *testing.T) {
	t.Parallel()

	pts := make([]r3.Vec, 4)
	for i := range pts {
		pts[i] = r3.Vec{X: 1, Y: 1}
	}
	b, err := NewBezier(pts)
	require.NoError(t, err)
	r := newResolver(t, b)

	_, err = r.LanePoint(0, 0.4)
	assert.ErrorIs(t, err, ErrDegenerateGeometry)
	_, err = r.LaneTangent(0, 0.4)
	assert.ErrorIs(t, err, ErrDegenerateGeometry)
	_, _, err = r.Edges(0.4)
	assert.ErrorIs(t, err, ErrDegenerateGeometry)
}

// ---------------------------------------------------------------------------
// SampledResolver
// ---------------------------------------------------------------------------

func TestSampledResolver(t *testing.T) {
	t.Parallel()

	e, err := NewEllipse(10, 14, 1)
	require.NoError(t, err)
	exact := newResolver(t, e)

	s, err := NewSampledResolver(exact, 1.0/200)
	require.NoError(t, err)
	assert.InDelta(t, 1.0/200, s.Interval(), tol)

	t.Run("exact at sample points", func(t *testing.T) {
		for _, k := range []int{0, 1, 50, 199} {
			tt := float64(k) / 200
			want, err := exact.LanePoint(2, tt)
			require.NoError(t, err)
			got, err := s.LanePoint(2, tt)
			require.NoError(t, err)
			assertVecNear(t, want, got, 1e-9, "k=%d", k)
		}
	})

	t.Run("close between samples", func(t *testing.T) {
		for tt := 0.0013; tt < 1; tt += 0.0171 {
			for lane := 0; lane < 4; lane++ {
				want, err := exact.LanePoint(lane, tt)
				require.NoError(t, err)
				got, err := s.LanePoint(lane, tt)
				require.NoError(t, err)
				assert.Less(t, r3.Norm(r3.Sub(want, got)), 0.01, "lane %d t=%v", lane, tt)

				wantTan, err := exact.LaneTangent(lane, tt)
				require.NoError(t, err)
				gotTan, err := s.LaneTangent(lane, tt)
				require.NoError(t, err)
				assert.Greater(t, r3.Dot(wantTan, gotTan), 0.99)
			}
		}
	})

	t.Run("wraps between last and first sample", func(t *testing.T) {
		first, _ := exact.LanePoint(1, 0)
		last, _ := exact.LanePoint(1, 199.0/200)
		mid := r3.Scale(0.5, r3.Add(first, last))
		got, err := s.LanePoint(1, 199.5/200)
		require.NoError(t, err)
		assertVecNear(t, mid, got, 1e-9)
	})

	t.Run("invalid lane", func(t *testing.T) {
		_, err := s.LanePoint(4, 0.1)
		assert.ErrorIs(t, err, ErrInvalidLane)
		_, err = s.LaneTangent(-1, 0.1)
		assert.ErrorIs(t, err, ErrInvalidLane)
	})
}

func TestSampledResolverDefaults(t *testing.T) {
	t.Parallel()

	b, err := NewBezier(concaveLoop())
	require.NoError(t, err)
	s, err := NewSampledResolver(newResolver(t, b), 0)
	require.NoError(t, err)
	assert.InDelta(t, 1.0/16, s.Interval(), tol)

	_, err = NewSampledResolver(newResolver(t, b), 0.5)
	assert.ErrorIs(t, err, ErrConfiguration)
	_, err = NewSampledResolver(nil, 0.1)
	assert.ErrorIs(t, err, ErrConfiguration)
}

func TestCatalog(t *testing.T) {
	t.Parallel()

	cat, err := DefaultCatalog()
	require.NoError(t, err)
	require.Equal(t, 2, cat.Len())

	e, err := cat.At(0)
	require.NoError(t, err)
	assert.Equal(t, "oval", e.Name)

	e, err = cat.At(1)
	require.NoError(t, err)
	assert.Equal(t, "circuit", e.Name)
	b, ok := e.Curve.(*Bezier)
	require.True(t, ok)
	assert.Equal(t, 9, b.Segments())

	_, err = cat.At(2)
	assert.ErrorIs(t, err, ErrConfiguration)
	_, err = cat.At(-1)
	assert.ErrorIs(t, err, ErrConfiguration)

	_, err = NewCatalog()
	assert.ErrorIs(t, err, ErrConfiguration)
	_, err = NewCatalog(Entry{Name: "empty"})
	assert.ErrorIs(t, err, ErrConfiguration)
}
