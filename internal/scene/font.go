package scene

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Font atlas layout: printable ASCII (32..126) in a 16 x 6 grid of
// basicfont 7x13 cells.
const (
	FontCellW  = 7
	FontCellH  = 13
	FontCols   = 16
	FontRows   = 6
	FontAtlasW = FontCellW * FontCols // 112
	FontAtlasH = FontCellH * FontRows // 78

	firstGlyph = 32
	lastGlyph  = 126
)

// GlyphCell returns the atlas cell holding ch.
func GlyphCell(ch rune) (col, row int, ok bool) {
	if ch < firstGlyph || ch > lastGlyph {
		return 0, 0, false
	}
	i := int(ch - firstGlyph)
	return i % FontCols, i / FontCols, true
}

// GlyphUV returns the texture coordinates of ch's cell.
func GlyphUV(ch rune) (u0, v0, u1, v1 float32, ok bool) {
	col, row, ok := GlyphCell(ch)
	if !ok {
		return 0, 0, 0, 0, false
	}
	u0 = float32(col*FontCellW) / FontAtlasW
	v0 = float32(row*FontCellH) / FontAtlasH
	u1 = float32((col+1)*FontCellW) / FontAtlasW
	v1 = float32((row+1)*FontCellH) / FontAtlasH
	return u0, v0, u1, v1, true
}

// FontAtlas rasterizes basicfont.Face7x13 into a white-on-transparent
// NRGBA atlas with a tightly packed stride.
func FontAtlas() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, FontAtlasW, FontAtlasH))
	draw.Draw(img, img.Bounds(), image.Transparent, image.Point{}, draw.Src)

	face := basicfont.Face7x13
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.White),
		Face: face,
	}
	for ch := rune(firstGlyph); ch <= lastGlyph; ch++ {
		col, row, _ := GlyphCell(ch)
		d.Dot = fixed.P(col*FontCellW, row*FontCellH+face.Ascent)
		d.DrawString(string(ch))
	}
	return img
}
