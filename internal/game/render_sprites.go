package game

import "github.com/go-gl/gl/v4.1-core/gl"

// DrawSprites renders round dots. buf format: [x, y, size, r, g, b, a, rotation] * N.
func (r *Renderer) DrawSprites(buf []float32, cam Camera, fbW, fbH int) {
	r.draw(r.sprite, buf, cam, fbW, fbH, false)
}

// DrawGlowSprites renders light sprites with additive blending and radial falloff.
// RGB values should be pre-multiplied by desired brightness.
func (r *Renderer) DrawGlowSprites(buf []float32, cam Camera, fbW, fbH int) {
	r.draw(r.glow, buf, cam, fbW, fbH, true)
}

// DrawRobotSprites renders robot bodies rotated to their heading.
func (r *Renderer) DrawRobotSprites(buf []float32, cam Camera, fbW, fbH int) {
	r.draw(r.robot, buf, cam, fbW, fbH, false)
}

func (r *Renderer) draw(p spriteProgram, buf []float32, cam Camera, fbW, fbH int, additive bool) {
	if len(buf) == 0 {
		return
	}
	count := len(buf) / SpriteFloats
	if count > MaxSprites {
		count = MaxSprites
	}

	gl.UseProgram(p.id)
	gl.BindVertexArray(r.spriteVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.spriteVBO)

	gl.Uniform2f(p.uCamera, float32(cam.X), float32(cam.Y))
	gl.Uniform1f(p.uZoom, float32(cam.Zoom))
	gl.Uniform2f(p.uResolution, float32(fbW), float32(fbH))

	gl.Enable(gl.BLEND)
	if additive {
		gl.BlendFunc(gl.ONE, gl.ONE)
	} else {
		gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	}

	gl.BufferData(gl.ARRAY_BUFFER, count*SpriteFloats*4, gl.Ptr(buf), gl.STREAM_DRAW)
	gl.DrawArrays(gl.POINTS, 0, int32(count))

	gl.Disable(gl.BLEND)
}
