// Command arena-tty plays in a terminal through tcell, with oto audio.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"arena/internal/audio"
	"arena/internal/cli"
	"arena/internal/tty"
)

func main() {
	var opts cli.Options
	opts.Register(flag.CommandLine)
	flag.Parse()
	os.Exit(cli.Exit("arena-tty", run(opts)))
}

func run(opts cli.Options) error {
	level, err := cli.ParseLevel(opts.LogLevel)
	if err != nil {
		return err
	}
	// The terminal is the display, so logs only go to a file.
	out, closeLog, err := opts.OpenLog(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()
	log := cli.NewLogger(out, level).With("app", "arena-tty")

	cues := audio.Open(opts.Volume, log.With("component", "audio"))
	g, err := cli.NewGame(opts, cues, log)
	if err != nil {
		return err
	}
	defer g.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return tty.Run(ctx, screen, tty.Config{Sim: g.Sim, Tuning: g.Watcher, Log: log})
}
