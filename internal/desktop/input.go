package desktop

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"arena/internal/game"
	"arena/internal/scene"
)

// Input turns raw glfw key and button state into per-tick game.Input,
// tracking the previous frame so toggles fire once per press.
type Input struct {
	prevMouse map[glfw.MouseButton]bool
	prevKeys  map[glfw.Key]bool
}

func NewInput() *Input {
	return &Input{
		prevMouse: make(map[glfw.MouseButton]bool),
		prevKeys:  make(map[glfw.Key]bool),
	}
}

func (in *Input) JustPressed(window *glfw.Window, key glfw.Key) bool {
	down := window.GetKey(key) == glfw.Press
	jp := down && !in.prevKeys[key]
	in.prevKeys[key] = down
	return jp
}

func (in *Input) JustClicked(window *glfw.Window, btn glfw.MouseButton) bool {
	down := window.GetMouseButton(btn) == glfw.Press
	jp := down && !in.prevMouse[btn]
	in.prevMouse[btn] = down
	return jp
}

func held(window *glfw.Window, keys ...glfw.Key) bool {
	for _, k := range keys {
		if window.GetKey(k) == glfw.Press {
			return true
		}
	}
	return false
}

// CursorArenaPos converts the cursor position to arena coordinates.
func CursorArenaPos(window *glfw.Window, cam scene.Camera, fbW, fbH int) (float64, float64) {
	cx, cy := window.GetCursorPos()
	winW, winH := window.GetSize()
	if winW <= 0 || winH <= 0 || cam.Zoom <= 0 {
		return cam.X, cam.Y
	}
	scaleX := float64(fbW) / float64(winW)
	scaleY := float64(fbH) / float64(winH)
	fx := cx * scaleX
	fy := cy * scaleY
	wx := cam.X + (fx-float64(fbW)*0.5)/cam.Zoom
	wy := cam.Y + (fy-float64(fbH)*0.5)/cam.Zoom
	return wx, wy
}

// Read samples the window for one tick.
//
//	WASD / arrows   move
//	mouse           aim
//	LMB / Space     fire (held)
//	Shift / RMB     dash
//	P R M F3        pause, restart, mute, debug overlay
func (in *Input) Read(window *glfw.Window, cam scene.Camera, fbW, fbH int) game.Input {
	var out game.Input
	if held(window, glfw.KeyA, glfw.KeyLeft) {
		out.MoveX--
	}
	if held(window, glfw.KeyD, glfw.KeyRight) {
		out.MoveX++
	}
	if held(window, glfw.KeyW, glfw.KeyUp) {
		out.MoveY--
	}
	if held(window, glfw.KeyS, glfw.KeyDown) {
		out.MoveY++
	}
	out.AimX, out.AimY = CursorArenaPos(window, cam, fbW, fbH)
	out.Fire = window.GetMouseButton(glfw.MouseButtonLeft) == glfw.Press || held(window, glfw.KeySpace)

	// Every edge detector must see every frame, so no short-circuiting.
	lshift := in.JustPressed(window, glfw.KeyLeftShift)
	rshift := in.JustPressed(window, glfw.KeyRightShift)
	rmb := in.JustClicked(window, glfw.MouseButtonRight)
	out.Dash = lshift || rshift || rmb

	out.Pause = in.JustPressed(window, glfw.KeyP)
	out.Restart = in.JustPressed(window, glfw.KeyR)
	out.Mute = in.JustPressed(window, glfw.KeyM)
	out.Debug = in.JustPressed(window, glfw.KeyF3)
	return out
}
