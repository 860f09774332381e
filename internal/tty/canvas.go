package tty

import (
	"strings"

	"github.com/gdamore/tcell/v2"

	"arena/internal/game"
)

type cell struct {
	ch   rune
	fg   game.RGB
	bg   game.RGB
	bold bool
}

// canvas is an off-screen cell grid; paint writes it and blit copies it to
// the terminal.
type canvas struct {
	w, h  int
	cells []cell
}

func (c *canvas) resize(w, h int) {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	c.w, c.h = w, h
	if cap(c.cells) < w*h {
		c.cells = make([]cell, w*h)
	}
	c.cells = c.cells[:w*h]
}

func (c *canvas) clear(bg game.RGB) {
	for i := range c.cells {
		c.cells[i] = cell{ch: ' ', bg: bg}
	}
}

func (c *canvas) in(x, y int) bool {
	return x >= 0 && y >= 0 && x < c.w && y < c.h
}

// set draws ch over whatever is there, keeping the background.
func (c *canvas) set(x, y int, ch rune, fg game.RGB) {
	if !c.in(x, y) {
		return
	}
	cl := &c.cells[y*c.w+x]
	cl.ch, cl.fg, cl.bold = ch, fg, false
}

func (c *canvas) text(x, y int, s string, fg game.RGB, bold bool) {
	for _, ch := range s {
		if c.in(x, y) {
			cl := &c.cells[y*c.w+x]
			cl.ch, cl.fg, cl.bold = ch, fg, bold
		}
		x++
	}
}

func (c *canvas) centred(y int, s string, fg game.RGB, bold bool) {
	c.text((c.w-len([]rune(s)))/2, y, s, fg, bold)
}

func (c *canvas) at(x, y int) cell {
	if !c.in(x, y) {
		return cell{}
	}
	return c.cells[y*c.w+x]
}

func (c *canvas) row(y int) string {
	if y < 0 || y >= c.h {
		return ""
	}
	var b strings.Builder
	for x := 0; x < c.w; x++ {
		b.WriteRune(c.cells[y*c.w+x].ch)
	}
	return b.String()
}

func rgb(c game.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func (c *canvas) blit(screen tcell.Screen) {
	for y := 0; y < c.h; y++ {
		for x := 0; x < c.w; x++ {
			cl := c.cells[y*c.w+x]
			style := tcell.StyleDefault.Foreground(rgb(cl.fg)).Background(rgb(cl.bg)).Bold(cl.bold)
			screen.SetContent(x, y, cl.ch, nil, style)
		}
	}
	screen.Show()
}
