package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"github.com/lixenwraith/vi-snake/app"
	"github.com/lixenwraith/vi-snake/audio"
	"github.com/lixenwraith/vi-snake/config"
)

var (
	configFlag      = flag.String("config", "", "Config file (default vi-snake.toml if present)")
	tickFlag        = flag.Int("tick", 0, "Tick interval in milliseconds (0 = from config)")
	cooldownFlag    = flag.Int("cooldown", -1, "Ticks between shots (-1 = from config)")
	debugFlag       = flag.Bool("debug", false, "Write logs/vi-snake.log and show the metrics overlay")
	muteFlag        = flag.Bool("mute", false, "Start with sound muted")
	minimalFlag     = flag.Bool("minimal", false, "Draw only the border, the snake and the food")
	colorFlag       = flag.String("color", "", "Color mode: true, mono (empty = from config)")
	shotFlag        = flag.String("shot", "", "Write a PNG snapshot on death and quit (file or directory)")
	writeConfigFlag = flag.String("write-config", "", "Write the effective config to a file and exit")
)

// screen is shared with the crash handler so a panic can restore the terminal
var screen tcell.Screen

func main() {
	defer func() {
		if r := recover(); r != nil {
			if screen != nil {
				screen.Fini()
			}
			fmt.Fprintf(os.Stderr, "\n\x1b[31mVI-SNAKE CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Parse()

	logFile := setupLogging(*debugFlag)
	if logFile != nil {
		defer logFile.Close()
	}

	cfg, path, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "vi-snake: %v\n", err)
		os.Exit(2)
	}

	if *writeConfigFlag != "" {
		if err := cfg.Write(*writeConfigFlag); err != nil {
			fmt.Fprintf(os.Stderr, "vi-snake: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Config written to %s\n", *writeConfigFlag)
		return
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "vi-snake: stdout is not a terminal")
		os.Exit(1)
	}

	if err := run(cfg, path); err != nil {
		fmt.Fprintf(os.Stderr, "vi-snake: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig layers defaults, the TOML file, .env, the environment and flags
func loadConfig() (*config.Config, string, error) {
	if err := config.LoadEnv(); err != nil {
		return nil, "", err
	}

	cfg, path, err := config.LoadAuto(*configFlag)
	if err != nil {
		return nil, "", err
	}
	applyOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, "", err
	}
	return cfg, path, nil
}

// applyOverrides puts the environment and command line over a file revision
// It runs at startup and again on every hot reload
func applyOverrides(cfg *config.Config) {
	cfg.ApplyEnv()

	if *tickFlag > 0 {
		cfg.Game.TickIntervalMs = *tickFlag
	}
	if *cooldownFlag >= 0 {
		cfg.Game.BulletCooldownTicks = *cooldownFlag
	}
	if *minimalFlag {
		cfg.Render.Minimal = true
	}
	if *colorFlag != "" {
		cfg.Render.ColorMode = *colorFlag
	}
	if *shotFlag != "" {
		cfg.Screenshot.Path = *shotFlag
	}
}

func run(cfg *config.Config, path string) error {
	log.Printf("[MAIN] starting, config=%q tick=%v", path, cfg.TickInterval())

	player, err := audio.NewPlayer(cfg.AudioConfig())
	switch {
	case errors.Is(err, audio.ErrAudioDisabled):
		log.Printf("[MAIN] audio disabled")
	case err != nil:
		log.Printf("[MAIN] audio unavailable: %v (continuing without sound)", err)
	}
	if *muteFlag {
		player.SetMuted(true)
	}

	var watcher *config.Watcher
	if path != "" {
		if watcher, err = config.NewWatcher(path, applyOverrides); err != nil {
			log.Printf("[MAIN] config reload disabled: %v", err)
			watcher = nil
		} else {
			defer watcher.Close()
		}
	}

	s, err := tcell.NewScreen()
	if err != nil {
		player.Close()
		return fmt.Errorf("create screen: %w", err)
	}
	if err := s.Init(); err != nil {
		player.Close()
		return fmt.Errorf("initialize terminal: %w", err)
	}
	screen = s
	defer s.Fini()

	s.HideCursor()
	s.SetStyle(tcell.StyleDefault)
	s.Clear()

	a, err := app.New(s, cfg, app.Options{
		Debug:   *debugFlag,
		Player:  player,
		Watcher: watcher,
	})
	if err != nil {
		player.Close()
		return err
	}
	defer a.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := a.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	log.Printf("[MAIN] exit")
	return nil
}
