package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/lixenwraith/wordfall/audio"
	"github.com/lixenwraith/wordfall/canvas"
	"github.com/lixenwraith/wordfall/config"
	"github.com/lixenwraith/wordfall/constants"
	"github.com/lixenwraith/wordfall/engine"
	"github.com/lixenwraith/wordfall/stats"
)

var (
	configFlag = flag.String("config", "", "Path to a YAML config file")
	wordsFlag  = flag.String("words", "", "Path to a word list, one word per line")
	debugFlag  = flag.Bool("debug", false, "Log to stderr")
	seedFlag   = flag.Int64("seed", 0, "Random seed (0 seeds from the clock)")
	muteFlag   = flag.Bool("mute", false, "Start with sound muted (Ctrl+S toggles)")
)

func main() {
	flag.Parse()
	_ = godotenv.Load()

	// The window leaves stderr free, so logs go there instead of a file
	if *debugFlag {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr}).Level(config.LogLevel())
	} else {
		log.Logger = zerolog.Nop()
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "wordfall-canvas: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(*configFlag)
	if err != nil {
		return err
	}
	if *wordsFlag != "" {
		cfg.WordsFile = *wordsFlag
	}
	if *seedFlag != 0 {
		cfg.Seed = *seedFlag
	}

	sound := audio.NewSoundManager(audio.LoadAudioConfig())
	if err := sound.Initialize(); err != nil {
		log.Warn().Err(err).Msg("audio unavailable, continuing without sound")
	}
	defer sound.Cleanup()
	if *muteFlag {
		sound.SetMuted(true)
	}

	store := stats.Open(cfg.StatsApp)

	session, err := engine.NewSession(engine.SessionOptions{
		Config:   cfg,
		Feedback: sound,
		Stats:    store,
		Width:    canvas.Columns,
		FloorRow: canvas.FloorRow,
	})
	if err != nil {
		return err
	}

	g := canvas.NewGame(session.Game, session.Spawner, session.Field, session.Clock, engine.LoopOptions{
		Best:  store,
		Muter: sound,
	})

	ebiten.SetWindowSize(constants.CanvasWidth, constants.CanvasHeight)
	ebiten.SetWindowTitle("wordfall")
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("canvas stopped: %w", err)
	}
	return nil
}
