package render

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"arena/internal/scene"
)

// initFont uploads the font atlas and sets up the text rendering pipeline.
func (r *Renderer) initFont() error {
	atlas := scene.FontAtlas()
	b := atlas.Bounds()

	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8,
		int32(b.Dx()), int32(b.Dy()), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(atlas.Pix))
	r.fontTex = tex

	prog, err := linkProgram(textVertSrc, textFragSrc)
	if err != nil {
		return fmt.Errorf("text program: %w", err)
	}
	r.textProg = prog
	gl.UseProgram(prog)
	r.textURes = gl.GetUniformLocation(prog, gl.Str("uResolution\x00"))
	r.textUFontTex = gl.GetUniformLocation(prog, gl.Str("uFontTex\x00"))
	gl.Uniform1i(r.textUFontTex, 2) // texture unit 2

	// Text VAO/VBO: per-vertex pos(2) + uv(2) + color(4) = 8 floats.
	var vao, vbo uint32
	gl.GenVertexArrays(1, &vao)
	gl.GenBuffers(1, &vbo)
	gl.BindVertexArray(vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)

	stride := int32(8 * 4)
	gl.BufferData(gl.ARRAY_BUFFER, 512*6*int(stride), nil, gl.STREAM_DRAW)
	gl.EnableVertexAttribArray(0) // aPos
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, glOffset(0))
	gl.EnableVertexAttribArray(1) // aUV
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, stride, glOffset(2*4))
	gl.EnableVertexAttribArray(2) // aColor
	gl.VertexAttribPointer(2, 4, gl.FLOAT, false, stride, glOffset(4*4))

	r.textVAO = vao
	r.textVBO = vbo
	gl.BindVertexArray(0)
	return nil
}

// drawChar queues a single character as a textured quad in screen pixel space.
func (r *Renderer) drawChar(ch rune, sx, sy, scale float32, cr, cg, cb, ca float32) {
	u0, v0, u1, v1, ok := scene.GlyphUV(ch)
	if !ok {
		return
	}
	w := float32(scene.FontCellW) * scale
	h := float32(scene.FontCellH) * scale

	// Two triangles: TL, TR, BL then TR, BR, BL.
	r.textBuf = append(r.textBuf,
		sx, sy, u0, v0, cr, cg, cb, ca,
		sx+w, sy, u1, v0, cr, cg, cb, ca,
		sx, sy+h, u0, v1, cr, cg, cb, ca,
		sx+w, sy, u1, v0, cr, cg, cb, ca,
		sx+w, sy+h, u1, v1, cr, cg, cb, ca,
		sx, sy+h, u0, v1, cr, cg, cb, ca,
	)
}

// DrawLine queues a HUD line at its screen pixel position.
func (r *Renderer) DrawLine(l scene.TextLine) {
	cr := float32(l.Col.R) / 255.0
	cg := float32(l.Col.G) / 255.0
	cb := float32(l.Col.B) / 255.0

	advance := float32(scene.FontCellW) * l.Scale
	lineAdvance := float32(scene.FontCellH) * l.Scale
	baseX := float32(l.X)
	x := float32(l.X)
	y := float32(l.Y)
	for _, ch := range l.Text {
		if ch == '\n' {
			x = baseX
			y += lineAdvance
			continue
		}
		r.drawChar(ch, x, y, l.Scale, cr, cg, cb, l.Alpha)
		x += advance
	}
}

// FlushText draws all buffered text quads and clears the buffer.
func (r *Renderer) FlushText(fbW, fbH int) {
	if len(r.textBuf) == 0 {
		return
	}

	gl.UseProgram(r.textProg)
	gl.BindVertexArray(r.textVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.textVBO)

	gl.Uniform2f(r.textURes, float32(fbW), float32(fbH))

	gl.ActiveTexture(gl.TEXTURE2)
	gl.BindTexture(gl.TEXTURE_2D, r.fontTex)

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	count := len(r.textBuf) / 8
	gl.BufferData(gl.ARRAY_BUFFER, len(r.textBuf)*4, gl.Ptr(r.textBuf), gl.STREAM_DRAW)
	gl.DrawArrays(gl.TRIANGLES, 0, int32(count))

	gl.Disable(gl.BLEND)
	gl.ActiveTexture(gl.TEXTURE0)
	r.textBuf = r.textBuf[:0]
}
