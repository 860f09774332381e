package tty

import (
	"math"
	"time"
	"unicode"

	"github.com/gdamore/tcell/v2"

	"arena/internal/game"
)

// Terminals report key presses and autorepeat but never releases, so a
// key counts as held for keyHold after its last press or repeat.
const keyHold = 200 * time.Millisecond

type action int

const (
	actUp action = iota
	actDown
	actLeft
	actRight
	actFire
	numActions
)

// keyboard folds tcell key and mouse events into game.Input.
type keyboard struct {
	pressed [numActions]time.Time

	// Edges, cleared by input.
	dash, pause, restart, mute, debug bool
	quit                              bool

	mouseSeen      bool
	mouseX, mouseY int
	mouseFire      bool
	mouseDash      bool

	dirX, dirY float64 // last movement direction, aim fallback without a mouse
}

func newKeyboard() *keyboard {
	return &keyboard{dirY: -1}
}

func (k *keyboard) handle(ev tcell.Event, now time.Time) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		k.handleKey(ev, now)
	case *tcell.EventMouse:
		x, y := ev.Position()
		btn := ev.Buttons()
		k.mouseSeen = true
		k.mouseX, k.mouseY = x, y
		k.mouseFire = btn&tcell.ButtonPrimary != 0
		secondary := btn&tcell.ButtonSecondary != 0
		if secondary && !k.mouseDash {
			k.dash = true
		}
		k.mouseDash = secondary
	}
}

func (k *keyboard) handleKey(ev *tcell.EventKey, now time.Time) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		k.quit = true
	case tcell.KeyUp:
		k.pressed[actUp] = now
	case tcell.KeyDown:
		k.pressed[actDown] = now
	case tcell.KeyLeft:
		k.pressed[actLeft] = now
	case tcell.KeyRight:
		k.pressed[actRight] = now
	case tcell.KeyF3:
		k.debug = true
	case tcell.KeyRune:
		switch unicode.ToLower(ev.Rune()) {
		case 'w':
			k.pressed[actUp] = now
		case 's':
			k.pressed[actDown] = now
		case 'a':
			k.pressed[actLeft] = now
		case 'd':
			k.pressed[actRight] = now
		case ' ':
			k.pressed[actFire] = now
		case 'x':
			k.dash = true
		case 'p':
			k.pause = true
		case 'r':
			k.restart = true
		case 'm':
			k.mute = true
		case '`':
			k.debug = true
		case 'q':
			k.quit = true
		}
	}
}

func (k *keyboard) held(a action, now time.Time) bool {
	t := k.pressed[a]
	return !t.IsZero() && now.Sub(t) < keyHold
}

// input builds this tick's game.Input for a player at (px, py) and
// consumes the pending edges.
func (k *keyboard) input(now time.Time, px, py float64) game.Input {
	var in game.Input
	if k.held(actLeft, now) {
		in.MoveX--
	}
	if k.held(actRight, now) {
		in.MoveX++
	}
	if k.held(actUp, now) {
		in.MoveY--
	}
	if k.held(actDown, now) {
		in.MoveY++
	}
	if in.MoveX != 0 || in.MoveY != 0 {
		l := math.Hypot(in.MoveX, in.MoveY)
		k.dirX, k.dirY = in.MoveX/l, in.MoveY/l
	}

	if k.mouseSeen {
		in.AimX, in.AimY = cellCentre(k.mouseX, k.mouseY)
	} else {
		in.AimX, in.AimY = px+k.dirX*100, py+k.dirY*100
	}
	in.Fire = k.held(actFire, now) || k.mouseFire

	in.Dash, in.Pause, in.Restart, in.Mute, in.Debug = k.dash, k.pause, k.restart, k.mute, k.debug
	k.dash, k.pause, k.restart, k.mute, k.debug = false, false, false, false, false
	return in
}
