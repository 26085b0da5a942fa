package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBounds(t *testing.T) {
	t.Parallel()

	b := EmptyBounds()
	assert.True(t, b.Empty())
	b.Extend(1, -2)
	b.Extend(-3, 4)
	assert.False(t, b.Empty())
	assert.Equal(t, Bounds{MinX: -3, MinY: -2, MaxX: 1, MaxY: 4}, b)

	cx, cy := b.Center()
	assert.Equal(t, -1.0, cx)
	assert.Equal(t, 1.0, cy)
	assert.Equal(t, Bounds{MinX: -4, MinY: -3, MaxX: 2, MaxY: 5}, b.Grow(1))
}

func TestFitCamera(t *testing.T) {
	t.Parallel()

	var cam Camera
	FitCamera(&cam, Bounds{MaxX: 100, MaxY: 50}, 1000, 1000)
	assert.Equal(t, Camera{X: 50, Y: 25, Zoom: 10}, cam)

	// Tiny boxes stop at the zoom limit.
	FitCamera(&cam, Bounds{MaxX: 1, MaxY: 1}, 1000, 1000)
	assert.Equal(t, MaxZoom, cam.Zoom)

	before := cam
	FitCamera(&cam, EmptyBounds(), 1000, 1000)
	assert.Equal(t, before, cam)
}

func TestCameraClamp(t *testing.T) {
	t.Parallel()

	b := Bounds{MaxX: 100, MaxY: 100}

	cam := Camera{X: -5, Y: 200, Zoom: 10}
	cam.Clamp(b, 200, 200)
	assert.Equal(t, Camera{X: 10, Y: 90, Zoom: 10}, cam)

	// The whole box fits: centre on it.
	cam = Camera{X: 3, Y: 3, Zoom: MinZoom}
	cam.Clamp(b, 1000, 1000)
	assert.Equal(t, 50.0, cam.X)
	assert.Equal(t, 50.0, cam.Y)

	cam = Camera{Zoom: 1e6}
	cam.Clamp(b, 200, 200)
	assert.Equal(t, MaxZoom, cam.Zoom)
}

func TestEaseCameraConverges(t *testing.T) {
	t.Parallel()

	cam := Camera{Zoom: DefaultZoom}
	target := Camera{X: 30, Y: -12, Zoom: 9}
	for i := 0; i < 600; i++ {
		EaseCamera(&cam, target, 4, 1.0/60)
	}
	assert.InDelta(t, target.X, cam.X, 1e-9)
	assert.InDelta(t, target.Y, cam.Y, 1e-9)
	assert.InDelta(t, target.Zoom, cam.Zoom, 1e-9)
}
