package game

import "math"

type Camera struct {
	X, Y float64 // world units, camera centre
	Zoom float64 // screen pixels per world unit
}

// Bounds is an axis-aligned box in the track plane.
type Bounds struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// EmptyBounds returns a box that any Extend call replaces.
func EmptyBounds() Bounds {
	return Bounds{
		MinX: math.Inf(1), MinY: math.Inf(1),
		MaxX: math.Inf(-1), MaxY: math.Inf(-1),
	}
}

func (b Bounds) Empty() bool { return b.MinX > b.MaxX || b.MinY > b.MaxY }

func (b *Bounds) Extend(x, y float64) {
	b.MinX = math.Min(b.MinX, x)
	b.MinY = math.Min(b.MinY, y)
	b.MaxX = math.Max(b.MaxX, x)
	b.MaxY = math.Max(b.MaxY, y)
}

// Grow pads the box by m on every side.
func (b Bounds) Grow(m float64) Bounds {
	return Bounds{MinX: b.MinX - m, MinY: b.MinY - m, MaxX: b.MaxX + m, MaxY: b.MaxY + m}
}

func (b Bounds) Center() (float64, float64) {
	return (b.MinX + b.MaxX) / 2, (b.MinY + b.MaxY) / 2
}

// Clamp limits zoom and keeps the camera centre inside b. Once the whole box
// fits on screen the camera is centred on it.
func (c *Camera) Clamp(b Bounds, fbW, fbH int) {
	c.Zoom = clampF(c.Zoom, MinZoom, MaxZoom)
	if b.Empty() {
		return
	}

	halfW := float64(fbW) / (2.0 * c.Zoom)
	halfH := float64(fbH) / (2.0 * c.Zoom)
	cx, cy := b.Center()

	minX, maxX := b.MinX+halfW, b.MaxX-halfW
	if minX > maxX {
		c.X = cx
	} else {
		c.X = clampF(c.X, minX, maxX)
	}

	minY, maxY := b.MinY+halfH, b.MaxY-halfH
	if minY > maxY {
		c.Y = cy
	} else {
		c.Y = clampF(c.Y, minY, maxY)
	}
}
