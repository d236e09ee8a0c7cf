package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/lixenwraith/launchgrid/audio"
	"github.com/lixenwraith/launchgrid/config"
	"github.com/lixenwraith/launchgrid/engine"
	"github.com/lixenwraith/launchgrid/snake"
	"github.com/lixenwraith/launchgrid/status"
	"github.com/lixenwraith/launchgrid/terminal"
)

var (
	configFlag = flag.String("config", "", "YAML config file")
	debugFlag  = flag.Bool("debug", false, "Write logs to logs/launchgrid.log")
	muteFlag   = flag.Bool("mute", false, "Start with sound muted")
	seedFlag   = flag.Int64("seed", 0, "Food placement seed, 0 seeds from the clock")
	speedFlag  = flag.Float64("speed", 0, "Snake speed in cells per second, 0 keeps the configured value")
)

func main() {
	flag.Parse()

	if f := setupLogging(*debugFlag); f != nil {
		defer f.Close()
	}

	cfg, err := loadConfig(*configFlag, *seedFlag, *speedFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	reg := status.NewRegistry()
	if !cfg.Terminal.ShowStatus {
		reg = nil
	}
	device, err := terminal.NewScreenPad(cfg.Terminal, reg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create terminal pad: %v\n", err)
		os.Exit(1)
	}
	if err := device.Open(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open terminal pad: %v\n", err)
		os.Exit(1)
	}

	// Panic recovery: restore the terminal before printing the crash
	defer func() {
		if r := recover(); r != nil {
			device.Close()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mLAUNCHGRID CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	ctx := engine.NewGameContext(device)
	if reg != nil {
		ctx.Status = reg
	}

	sound := audio.NewSoundManager(&cfg.Audio)
	sound.SetMuted(*muteFlag)
	if err := sound.Initialize(); err != nil {
		log.Printf("Audio unavailable: %v (continuing without audio)", err)
	} else {
		defer sound.Close()
	}
	ctx.Audio = sound
	device.Bind('m', func() {
		log.Printf("Muted: %v", sound.ToggleMute())
	})

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(signals)
	go func() {
		if _, ok := <-signals; ok {
			ctx.Quit()
		}
	}()

	if err := play(ctx, cfg); err != nil {
		device.Close()
		fmt.Fprintf(os.Stderr, "launchgrid: %v\n", err)
		os.Exit(1)
	}
	device.Close()
}

// loadConfig layers the file, then the environment, then non-zero flags over the defaults
func loadConfig(path string, seed int64, speed float64) (*config.Config, error) {
	cfg := config.Default()
	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	cfg.ApplyEnv()

	if seed != 0 {
		cfg.Snake.Seed = seed
	}
	if speed != 0 {
		cfg.Snake.Speed = speed
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// play runs one snake session on ctx until it quits
func play(ctx *engine.GameContext, cfg *config.Config) error {
	game, err := snake.NewGame(ctx, cfg.Snake)
	if err != nil {
		return err
	}

	loop, err := engine.NewLoop(ctx, cfg.Loop)
	if err != nil {
		return err
	}

	log.Printf("Starting %v", game)
	err = loop.Run(game)
	log.Printf("Stopped after %v", ctx.Elapsed())
	return err
}
