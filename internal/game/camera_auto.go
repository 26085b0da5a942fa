package game

import "math"

// FitCamera frames the whole of b on screen: zoom is chosen so the box fills
// the framebuffer and the camera is centred on it.
func FitCamera(cam *Camera, b Bounds, fbW, fbH int) {
	if b.Empty() || fbW <= 0 || fbH <= 0 {
		return
	}
	w := math.Max(b.MaxX-b.MinX, 1e-6)
	h := math.Max(b.MaxY-b.MinY, 1e-6)
	zoomW := float64(fbW) / w
	zoomH := float64(fbH) / h
	cam.Zoom = clampF(math.Min(zoomW, zoomH), MinZoom, MaxZoom)
	cam.X, cam.Y = b.Center()
}

// EaseCamera moves cam towards target at rate units per second, so a track
// switch pans rather than jumps.
func EaseCamera(cam *Camera, target Camera, rate, dt float64) {
	step := rate * dt
	cam.X = approach(cam.X, target.X, step*math.Max(1, math.Abs(target.X-cam.X)))
	cam.Y = approach(cam.Y, target.Y, step*math.Max(1, math.Abs(target.Y-cam.Y)))
	cam.Zoom = approach(cam.Zoom, target.Zoom, step*math.Max(1, math.Abs(target.Zoom-cam.Zoom)))
}
