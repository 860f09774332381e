// Package cli holds the flag, logging and start-up wiring shared by the
// arena binaries.
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"time"

	"arena/internal/game"
)

const seedEnv = "ARENA_SEED"

type Options struct {
	TuningPath string
	Seed       uint64
	Mute       bool
	Debug      bool
	LogLevel   string
	LogFile    string
	Volume     float64
}

func (o *Options) Register(fs *flag.FlagSet) {
	fs.StringVar(&o.TuningPath, "tuning", "", "YAML tuning file, reloaded on change")
	fs.Uint64Var(&o.Seed, "seed", 0, "RNG seed (0 uses $"+seedEnv+" or the clock)")
	fs.BoolVar(&o.Mute, "mute", false, "start muted")
	fs.BoolVar(&o.Debug, "debug", false, "start with the debug overlay")
	fs.StringVar(&o.LogLevel, "log-level", "info", "debug, info, warn or error")
	fs.StringVar(&o.LogFile, "log-file", "", "append logs to this file")
	fs.Float64Var(&o.Volume, "volume", 0.58, "master volume, 0 to 1")
}

func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("log level %q: %w", s, err)
	}
	return l, nil
}

func NewLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// OpenLog returns the log destination: LogFile when set, else fallback.
// The closer is a no-op for fallback.
func (o Options) OpenLog(fallback io.Writer) (io.Writer, func() error, error) {
	if o.LogFile == "" {
		return fallback, func() error { return nil }, nil
	}
	f, err := os.OpenFile(o.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log: %w", err)
	}
	return f, f.Close, nil
}

// ResolveSeed prefers the flag, then the environment, then the clock.
func (o Options) ResolveSeed(getenv func(string) string, now time.Time) uint64 {
	if o.Seed != 0 {
		return o.Seed
	}
	if s := getenv(seedEnv); s != "" {
		if v, err := strconv.ParseUint(s, 10, 64); err == nil {
			return v
		}
	}
	return uint64(now.UnixNano())
}

// Game is a configured simulation plus its optional tuning watcher.
type Game struct {
	Sim     *game.Sim
	Watcher *game.TuningWatcher
}

// NewGame loads tuning, seeds and builds the simulation, and starts the
// hot-reload watcher when a tuning file is given.
func NewGame(o Options, cues game.CuePlayer, log *slog.Logger) (*Game, error) {
	tuning := game.DefaultTuning()
	if o.TuningPath != "" {
		t, err := game.LoadTuning(o.TuningPath)
		if err != nil {
			return nil, err
		}
		tuning = t
	}

	seed := o.ResolveSeed(os.Getenv, time.Now())
	log.Info("starting", "seed", seed, "tuning", o.TuningPath)

	sim := game.NewSim(tuning, seed,
		game.WithCues(cues),
		game.WithLogger(log.With("component", "sim")),
	)
	sim.Session.Muted = o.Mute
	sim.Session.Debug = o.Debug
	logEvents(sim.Events, log.With("component", "events"))

	g := &Game{Sim: sim}
	if o.TuningPath != "" {
		w, err := game.WatchTuning(o.TuningPath)
		if err != nil {
			log.Warn("tuning hot reload disabled", "err", err)
		} else {
			g.Watcher = w
		}
	}
	return g, nil
}

// logEvents traces kills, hits and deaths at debug level.
func logEvents(bus *game.EventBus, log *slog.Logger) {
	for _, t := range []game.EventType{game.EventEnemyKilled, game.EventPlayerHit, game.EventPlayerDied, game.EventDash} {
		bus.Subscribe(t, func(e game.Event) {
			log.Debug(e.Type.String(), "x", int(e.X), "y", int(e.Y), "data", e.Data)
		})
	}
}

func (g *Game) Close() error {
	if g.Watcher == nil {
		return nil
	}
	return g.Watcher.Close()
}

// Exit reports err and returns the process exit code.
func Exit(name string, err error) int {
	if err == nil || errors.Is(err, flag.ErrHelp) {
		return 0
	}
	fmt.Fprintf(os.Stderr, "%s: %v\n", name, err)
	return 1
}
