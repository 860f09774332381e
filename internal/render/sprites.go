package render

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"arena/internal/scene"
)

// drawSprites renders buf ([x, y, size, r, g, b, a, rotation] * N) with
// prog. additive blends ONE/ONE and expects RGB premultiplied by brightness.
func (r *Renderer) drawSprites(prog *spriteProgram, buf []float32, cam scene.Camera, fbW, fbH int, additive bool) {
	if len(buf) == 0 {
		return
	}

	count := len(buf) / scene.FloatsPerSprite
	if count > scene.MaxSprites {
		count = scene.MaxSprites
	}

	gl.UseProgram(prog.id)
	gl.BindVertexArray(r.spriteVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.spriteVBO)

	gl.Uniform2f(prog.uCamera, float32(cam.X), float32(cam.Y))
	gl.Uniform1f(prog.uZoom, float32(cam.Zoom))
	gl.Uniform2f(prog.uResolution, float32(fbW), float32(fbH))

	gl.Enable(gl.BLEND)
	if additive {
		gl.BlendFunc(gl.ONE, gl.ONE)
	} else {
		gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	}

	gl.BufferData(gl.ARRAY_BUFFER, count*scene.FloatsPerSprite*4, gl.Ptr(buf), gl.STREAM_DRAW)
	gl.DrawArrays(gl.POINTS, 0, int32(count))

	gl.Disable(gl.BLEND)
}
