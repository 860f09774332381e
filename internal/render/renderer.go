// Package render draws scene frames with OpenGL 4.1 point sprites.
// Every call must come from the thread that owns the GL context.
package render

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"arena/internal/scene"
)

// glOffset converts a byte offset to unsafe.Pointer for OpenGL VBO offset params.
func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

// spriteProgram is a point-sprite program sharing the sprite VAO.
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

type Renderer struct {
	square spriteProgram
	disc   spriteProgram
	glow   spriteProgram
	ring   spriteProgram

	spriteVAO uint32
	spriteVBO uint32

	// Font/text rendering.
	fontTex      uint32
	textProg     uint32
	textVAO      uint32
	textVBO      uint32
	textURes     int32
	textUFontTex int32
	textBuf      []float32
}

func NewRenderer() (*Renderer, error) {
	r := &Renderer{}
	for _, p := range []struct {
		dst  *spriteProgram
		name string
		src  string
	}{
		{&r.square, "square", squareFragSrc},
		{&r.disc, "disc", discFragSrc},
		{&r.glow, "glow", glowFragSrc},
		{&r.ring, "ring", ringFragSrc},
	} {
		prog, err := newSpriteProgram(p.src)
		if err != nil {
			r.Destroy()
			return nil, fmt.Errorf("%s program: %w", p.name, err)
		}
		*p.dst = prog
	}

	// Sprite VAO/VBO: streaming buffer for point sprites.
	var sVAO, sVBO uint32
	gl.GenVertexArrays(1, &sVAO)
	gl.GenBuffers(1, &sVBO)
	gl.BindVertexArray(sVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, sVBO)

	stride := int32(scene.FloatsPerSprite * 4)
	gl.BufferData(gl.ARRAY_BUFFER, scene.MaxSprites*int(stride), nil, gl.STREAM_DRAW)
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

	if err := r.initFont(); err != nil {
		r.Destroy()
		return nil, err
	}
	return r, nil
}

func (r *Renderer) Destroy() {
	for _, id := range []uint32{r.spriteVBO, r.textVBO} {
		if id != 0 {
			gl.DeleteBuffers(1, &id)
		}
	}
	for _, id := range []uint32{r.spriteVAO, r.textVAO} {
		if id != 0 {
			gl.DeleteVertexArrays(1, &id)
		}
	}
	for _, id := range []uint32{r.square.id, r.disc.id, r.glow.id, r.ring.id, r.textProg} {
		if id != 0 {
			gl.DeleteProgram(id)
		}
	}
	if r.fontTex != 0 {
		gl.DeleteTextures(1, &r.fontTex)
	}
}

// Draw renders one frame: backdrop, trails, particles, bodies, glow, debug
// rings, then HUD text on top.
func (r *Renderer) Draw(f *scene.Frame, fbW, fbH int) {
	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	gl.ClearColor(float32(f.Clear.R)/255.0, float32(f.Clear.G)/255.0, float32(f.Clear.B)/255.0, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	cam := f.Camera
	r.drawSprites(&r.square, f.Backdrop, cam, fbW, fbH, false)
	r.drawSprites(&r.disc, f.Trails, cam, fbW, fbH, false)
	r.drawSprites(&r.square, f.Particles, cam, fbW, fbH, false)
	r.drawSprites(&r.disc, f.Bodies, cam, fbW, fbH, false)
	r.drawSprites(&r.glow, f.Glow, cam, fbW, fbH, true)
	r.drawSprites(&r.ring, f.Rings, cam, fbW, fbH, false)

	for _, l := range f.Text {
		r.DrawLine(l)
	}
	r.FlushText(fbW, fbH)
}
