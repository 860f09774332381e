// Package tty runs the simulation in a terminal with tcell.
package tty

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"

	"arena/internal/game"
)

const frameInterval = 16 * time.Millisecond

type Config struct {
	Sim    *game.Sim
	Tuning *game.TuningWatcher // optional hot reload
	Log    *slog.Logger
}

// Run drives the game on screen until the player quits or ctx is done.
// Run initialises and finalises the screen.
func Run(ctx context.Context, screen tcell.Screen, cfg Config) error {
	log := cfg.Log
	if log == nil {
		log = slog.Default()
	}
	log = log.With("component", "tty")

	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()
	screen.Clear()

	done := make(chan struct{})
	defer close(done)
	events := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	sim := cfg.Sim
	kb := newKeyboard()
	start := time.Now()
	var (
		clock game.Clock
		cv    canvas
		fps   float64
	)

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev := <-events:
			if _, ok := ev.(*tcell.EventResize); ok {
				screen.Sync()
				continue
			}
			kb.handle(ev, time.Now())
			if kb.quit {
				log.Info("quit", "score", sim.Session.Score, "wave", sim.Session.Wave)
				return nil
			}

		case now := <-ticker.C:
			dt := clock.Tick(now.Sub(start).Seconds())

			w, h := screen.Size()
			sim.SetArena(arenaSize(w, h))
			if err := cfg.Tuning.Apply(sim); err != nil {
				log.Warn("tuning reload rejected", "err", err)
			}
			sim.Step(dt, kb.input(now, sim.Player.X, sim.Player.Y))

			if dt > 0 {
				fps += (1/dt - fps) * 0.1
			}
			cv.resize(w, h)
			paint(&cv, sim.Snapshot(), fps)
			cv.blit(screen)
		}
	}
}
