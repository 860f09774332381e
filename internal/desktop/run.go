// Package desktop runs the simulation in a glfw window with the OpenGL
// renderer.
package desktop

import (
	"fmt"
	"log/slog"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"arena/internal/game"
	"arena/internal/render"
	"arena/internal/scene"
)

type Config struct {
	Sim    *game.Sim
	Tuning *game.TuningWatcher // optional hot reload
	Log    *slog.Logger

	Width, Height int
}

// Run owns the calling OS thread until the window closes.
func Run(cfg Config) error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	log := cfg.Log
	if log == nil {
		log = slog.Default()
	}
	log = log.With("component", "desktop")

	w, h := cfg.Width, cfg.Height
	if w <= 0 || h <= 0 {
		w, h = int(game.DefaultArenaWidth), int(game.DefaultArenaHeight)
	}
	window, err := initWindow(w, h)
	if err != nil {
		return err
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}
	log.Info("gl ready", "version", gl.GoStr(gl.GetString(gl.VERSION)))

	// GL state.
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.Enable(gl.PROGRAM_POINT_SIZE)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)

	rend, err := render.NewRenderer()
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer rend.Destroy()

	sim := cfg.Sim
	input := NewInput()
	var (
		clock game.Clock
		frame scene.Frame
		fps   float64
	)

	for !window.ShouldClose() {
		dt := clock.Tick(glfw.GetTime())

		glfw.PollEvents()
		if window.GetKey(glfw.KeyEscape) == glfw.Press {
			window.SetShouldClose(true)
			continue
		}

		fbW, fbH := window.GetFramebufferSize()
		winW, winH := window.GetSize()
		if fbW <= 0 || fbH <= 0 || winW <= 0 || winH <= 0 {
			// Minimized.
			continue
		}
		sim.SetArena(float64(winW), float64(winH))

		if err := cfg.Tuning.Apply(sim); err != nil {
			log.Warn("tuning reload rejected", "err", err)
		}

		// Aim against the unshaken camera so the crosshair doesn't jitter.
		aimCam := scene.FitCamera(sim.Arena, 0, 0, fbW, fbH)
		sim.Step(dt, input.Read(window, aimCam, fbW, fbH))

		if dt > 0 {
			fps += (1/dt - fps) * 0.1
		}
		frame.FPS = fps
		scene.Build(sim.Snapshot(), fbW, fbH, &frame)
		rend.Draw(&frame, fbW, fbH)

		window.SwapBuffers()
	}
	return nil
}
