package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"snake-arcade/ai"
	"snake-arcade/game"
	"snake-arcade/ui"

	"github.com/op/go-logging"
	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
)

const (
	backendRaylib   = "raylib"
	backendTerminal = "terminal"
	backendHeadless = "headless"
)

func main() {
	speed := flag.Int("speed", 100, "Tick duration in milliseconds (lower = faster)")
	seed := flag.Int64("seed", 0, "Random seed for food placement (0 = wall clock)")
	backendName := flag.String("backend", backendRaylib, "Rendering backend: raylib, terminal or headless")
	autopilot := flag.Bool("autopilot", false, "Let the built-in pilot steer the snake")
	maxTicks := flag.Int("max-ticks", 0, "Stop after this many ticks (0 = no limit)")
	logFile := flag.String("log", "", "Write logs to this file instead of stderr")
	logLevel := flag.String("log-level", "INFO", "Log level: DEBUG, INFO, WARNING, ERROR")
	flag.Parse()

	out, closeLog, err := logOutput(*logFile, *backendName)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer closeLog()
	if err := SetupLogger(out, *logLevel); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := run(*backendName, *seed, *speed, *maxTicks, *autopilot); err != nil {
		log.Criticalf("%v", err)
		closeLog()
		os.Exit(1)
	}
}

func run(backendName string, seed int64, speed, maxTicks int, autopilot bool) error {
	backend, err := newBackend(backendName)
	if err != nil {
		return err
	}

	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Debugf("Seed: %v", seed)
	rng := rand.New(rand.NewSource(uint64(seed)))

	cfg := game.DefaultConfig()
	cfg.TickInterval = time.Duration(speed) * time.Millisecond
	cfg.MaxTicks = maxTicks

	g, err := game.NewGame(cfg, backend, rng, logging.MustGetLogger("game"))
	if err != nil {
		return errors.Wrap(err, "setup")
	}
	if autopilot {
		g.SetController(ai.NewPilot())
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g.Run(ctx)
	return nil
}

func newBackend(name string) (game.Backend, error) {
	uiLog := logging.MustGetLogger("ui")
	switch name {
	case backendRaylib:
		return ui.NewRaylib(uiLog), nil
	case backendTerminal:
		return ui.NewTerminal(uiLog), nil
	case backendHeadless:
		return ui.NewHeadless(), nil
	default:
		return nil, errors.Errorf("unknown backend %q", name)
	}
}
