package game

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"robotrace/internal/race"
	"robotrace/internal/track"
)

func appendSprite(buf []float32, p r3.Vec, size float32, c RGB, a, rot float32) []float32 {
	cr, cg, cb := c.Floats()
	return append(buf, float32(p.X), float32(p.Y), size, cr, cg, cb, a, rot)
}

// TrackSprites appends the static track layer sampled at n points around the
// loop: asphalt under every lane, the inner and outer edges, then dashed
// separators between neighbouring lanes.
func TrackSprites(buf []float32, res *track.Resolver, n int) ([]float32, error) {
	if n < 3 {
		return buf, fmt.Errorf("game: need at least 3 track samples, got %d", n)
	}
	lanes := res.Config().LaneCount
	pts := make([][]r3.Vec, lanes)
	for lane := range pts {
		pts[lane] = make([]r3.Vec, n)
		for i := 0; i < n; i++ {
			p, err := res.LanePoint(lane, float64(i)/float64(n))
			if err != nil {
				return buf, err
			}
			pts[lane][i] = p
		}
	}

	size := float32(res.Config().LaneWidth * AsphaltSize)
	for lane := range pts {
		for _, p := range pts[lane] {
			buf = appendSprite(buf, p, size, Palette.Asphalt, 1, 0)
		}
	}

	for i := 0; i < n; i++ {
		inner, outer, err := res.Edges(float64(i) / float64(n))
		if err != nil {
			return buf, err
		}
		buf = appendSprite(buf, inner, EdgeSize, Palette.Edge, 1, 0)
		buf = appendSprite(buf, outer, EdgeSize, Palette.Edge, 1, 0)
	}

	for lane := 1; lane < lanes; lane++ {
		for i := 0; i < n; i++ {
			if (i/LaneMarkStride)%2 != 0 {
				continue
			}
			mid := r3.Scale(0.5, r3.Add(pts[lane-1][i], pts[lane][i]))
			buf = appendSprite(buf, mid, LaneMarkSize, Palette.LaneMark, 0.9, 0)
		}
	}
	return buf, nil
}

// TrackBounds is the box around both track edges, sampled at n points.
func TrackBounds(res *track.Resolver, n int) (Bounds, error) {
	b := EmptyBounds()
	for i := 0; i < n; i++ {
		inner, outer, err := res.Edges(float64(i) / float64(n))
		if err != nil {
			return b, err
		}
		b.Extend(inner.X, inner.Y)
		b.Extend(outer.X, outer.Y)
	}
	return b, nil
}

// RobotSprites appends one body per robot, rotated to its direction of travel,
// and a small marker ahead of it.
func RobotSprites(buf []float32, robots []*race.Robot) []float32 {
	for _, r := range robots {
		rot := float32(heading(r.Direction.X, r.Direction.Y))
		buf = appendSprite(buf, r.Position, RobotSize, MaterialColor(r.Material), 1, rot)
	}
	return buf
}

// HeadingSprites appends the marker dot in front of every robot.
func HeadingSprites(buf []float32, robots []*race.Robot) []float32 {
	for _, r := range robots {
		p := r3.Add(r.Position, r3.Scale(HeadingDistance, r.Direction))
		buf = appendSprite(buf, p, HeadingSize, Palette.Heading, 1, 0)
	}
	return buf
}

// RobotGlowSprites appends an additive halo under every robot in its body colour.
func RobotGlowSprites(buf []float32, robots []*race.Robot) []float32 {
	for _, r := range robots {
		buf = appendSprite(buf, r.Position, RobotGlowSize, MaterialColor(r.Material).Mul(110), 1, 0)
	}
	return buf
}
