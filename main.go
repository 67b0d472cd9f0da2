package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"snake-arcade/config"
	"snake-arcade/game"
	"snake-arcade/storage"
	"snake-arcade/ui"

	"github.com/rs/zerolog"
)

func main() {
	configPath := flag.String("config", "", "Optional TOML file overriding grid size and speed settings")
	frontend := flag.String("frontend", "window", "Frontend to use: window or term")
	storePath := flag.String("store", filepath.Join("data", "highscore.json"), "File holding the high score")
	seed := flag.Uint64("seed", 0, "Food placement seed (0 = time based)")
	logPath := flag.String("log", "", "Log file (the window frontend logs to stderr when empty)")
	verbose := flag.Bool("v", false, "Enable debug logging")
	flag.Parse()

	log, closeLog, err := newLogger(*frontend, *logPath, *verbose)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer closeLog()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Error().Err(err).Msg("could not load config")
		closeLog()
		os.Exit(1)
	}

	if *seed == 0 {
		*seed = uint64(time.Now().UnixNano())
	}
	g := game.NewGame(cfg, storage.NewFileStore(*storePath),
		game.WithLogger(log),
		game.WithSeed(*seed),
	)

	switch *frontend {
	case "window":
		ui.RunWindow(g, log)
	case "term":
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		if err := ui.RunTerminal(ctx, g, log); err != nil {
			log.Error().Err(err).Msg("terminal frontend failed")
			stop()
			closeLog()
			os.Exit(1)
		}
	default:
		log.Error().Str("frontend", *frontend).Msg("unknown frontend")
		closeLog()
		os.Exit(2)
	}
}

// newLogger writes to path when set. Without a path the window frontend
// logs to stderr and the terminal frontend stays silent, since tcell owns
// the tty.
func newLogger(frontend, path string, verbose bool) (zerolog.Logger, func(), error) {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	var out io.Writer
	closeFn := func() {}
	switch {
	case path != "":
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return zerolog.Nop(), closeFn, fmt.Errorf("open log %s: %w", path, err)
		}
		out = f
		closeFn = func() { f.Close() }
	case frontend == "term":
		return zerolog.Nop(), closeFn, nil
	default:
		out = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	}

	log := zerolog.New(out).Level(level).With().Timestamp().Logger()
	return log, closeFn, nil
}
