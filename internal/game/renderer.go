package game

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// glOffset converts a byte offset to unsafe.Pointer for OpenGL VBO offset params.
func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

// spriteProgram is a linked program over the shared sprite vertex layout.
type spriteProgram struct {
	id          uint32
	uCamera     int32
	uZoom       int32
	uResolution int32
}

func newSpriteProgram(fragSrc string) (spriteProgram, error) {
	id, err := linkProgram(spriteVertSrc, fragSrc)
	if err != nil {
		return spriteProgram{}, err
	}
	return spriteProgram{
		id:          id,
		uCamera:     gl.GetUniformLocation(id, gl.Str("uCamera\x00")),
		uZoom:       gl.GetUniformLocation(id, gl.Str("uZoom\x00")),
		uResolution: gl.GetUniformLocation(id, gl.Str("uResolution\x00")),
	}, nil
}

// Renderer draws the track and robots as point sprites.
type Renderer struct {
	sprite spriteProgram // round dots: asphalt, edges, lane marks
	glow   spriteProgram // additive halos under the robots
	robot  spriteProgram // rotated robot bodies

	spriteVAO uint32
	spriteVBO uint32
}

func NewRenderer() (*Renderer, error) {
	sprite, err := newSpriteProgram(spriteFragSrc)
	if err != nil {
		return nil, fmt.Errorf("sprite program: %w", err)
	}
	glow, err := newSpriteProgram(glowFragSrc)
	if err != nil {
		gl.DeleteProgram(sprite.id)
		return nil, fmt.Errorf("glow program: %w", err)
	}
	robot, err := newSpriteProgram(robotFragSrc)
	if err != nil {
		gl.DeleteProgram(sprite.id)
		gl.DeleteProgram(glow.id)
		return nil, fmt.Errorf("robot program: %w", err)
	}

	r := &Renderer{sprite: sprite, glow: glow, robot: robot}

	// Sprite VAO/VBO: streaming buffer for point sprites.
	// Each sprite: 8 floats (x, y, size, r, g, b, a, rotation).
	var sVAO, sVBO uint32
	gl.GenVertexArrays(1, &sVAO)
	gl.GenBuffers(1, &sVBO)
	gl.BindVertexArray(sVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, sVBO)

	stride := int32(SpriteFloats * 4)
	gl.BufferData(gl.ARRAY_BUFFER, MaxSprites*int(stride), nil, gl.STREAM_DRAW)
	// aWorldPos (vec2)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, glOffset(0))
	// aSize (float)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 1, gl.FLOAT, false, stride, glOffset(2*4))
	// aColor (vec4)
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(2, 4, gl.FLOAT, false, stride, glOffset(3*4))
	// aRotation (float)
	gl.EnableVertexAttribArray(3)
	gl.VertexAttribPointer(3, 1, gl.FLOAT, false, stride, glOffset(7*4))
	r.spriteVAO = sVAO
	r.spriteVBO = sVBO

	gl.BindVertexArray(0)
	return r, nil
}

func (r *Renderer) Destroy() {
	if r.spriteVBO != 0 {
		gl.DeleteBuffers(1, &r.spriteVBO)
	}
	if r.spriteVAO != 0 {
		gl.DeleteVertexArrays(1, &r.spriteVAO)
	}
	for _, p := range []spriteProgram{r.sprite, r.glow, r.robot} {
		if p.id != 0 {
			gl.DeleteProgram(p.id)
		}
	}
}

// BeginFrame sets the viewport and clears to the ground colour.
func (r *Renderer) BeginFrame(fbW, fbH int) {
	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	cr, cg, cb := Palette.Ground.Floats()
	gl.ClearColor(cr, cg, cb, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT)
}
