// Command arena is the desktop build: glfw window, OpenGL renderer and oto
// audio.
package main

import (
	"flag"
	"os"
	"runtime"

	"arena/internal/audio"
	"arena/internal/cli"
	"arena/internal/desktop"
)

func init() {
	// glfw and GL calls must stay on the main thread.
	runtime.LockOSThread()
}

func main() {
	var opts cli.Options
	opts.Register(flag.CommandLine)
	flag.Parse()
	os.Exit(cli.Exit("arena", run(opts)))
}

func run(opts cli.Options) error {
	level, err := cli.ParseLevel(opts.LogLevel)
	if err != nil {
		return err
	}
	out, closeLog, err := opts.OpenLog(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()
	log := cli.NewLogger(out, level).With("app", "arena")

	cues := audio.Open(opts.Volume, log.With("component", "audio"))
	g, err := cli.NewGame(opts, cues, log)
	if err != nil {
		return err
	}
	defer g.Close()

	return desktop.Run(desktop.Config{Sim: g.Sim, Tuning: g.Watcher, Log: log})
}
