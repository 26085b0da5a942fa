package game

import (
	"math"

	"github.com/go-gl/glfw/v3.3/glfw"
)

type Input struct {
	prevKeys map[glfw.Key]bool
}

func NewInput() *Input {
	return &Input{
		prevKeys: make(map[glfw.Key]bool),
	}
}

func (in *Input) JustPressed(window *glfw.Window, key glfw.Key) bool {
	down := window.GetKey(key) == glfw.Press
	jp := down && !in.prevKeys[key]
	in.prevKeys[key] = down
	return jp
}

// UpdateCameraZoom handles E/R zoom. It reports whether the user zoomed, so
// the caller can stop re-fitting the view to the track.
func UpdateCameraZoom(cam *Camera, window *glfw.Window, dt float64, b Bounds, fbW, fbH int) bool {
	zoomRate := 1.4
	zoomed := false
	if window.GetKey(glfw.KeyE) == glfw.Press {
		cam.Zoom *= math.Exp(zoomRate * dt)
		zoomed = true
	}
	if window.GetKey(glfw.KeyR) == glfw.Press {
		cam.Zoom *= math.Exp(-zoomRate * dt)
		zoomed = true
	}
	cam.Clamp(b, fbW, fbH)
	return zoomed
}
