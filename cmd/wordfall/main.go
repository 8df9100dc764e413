package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/lixenwraith/wordfall/audio"
	"github.com/lixenwraith/wordfall/config"
	"github.com/lixenwraith/wordfall/engine"
	"github.com/lixenwraith/wordfall/render"
	"github.com/lixenwraith/wordfall/stats"
)

var (
	configFlag = flag.String("config", "", "Path to a YAML config file")
	wordsFlag  = flag.String("words", "", "Path to a word list, one word per line")
	debugFlag  = flag.Bool("debug", false, "Write logs to logs/wordfall.log")
	seedFlag   = flag.Int64("seed", 0, "Random seed (0 seeds from the clock)")
	muteFlag   = flag.Bool("mute", false, "Start with sound muted (Ctrl+S toggles)")
)

func main() {
	flag.Parse()

	// A missing .env is normal
	_ = godotenv.Load()

	logFile := setupLogging(*debugFlag)
	if logFile != nil {
		defer logFile.Close()
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "wordfall: %v\n", err)
		if logFile != nil {
			logFile.Close()
		}
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

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize terminal: %w", err)
	}

	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			crash(screen, "WORDFALL CRASHED", r)
		}
	}()

	width, height := screen.Size()
	session, err := engine.NewSession(engine.SessionOptions{
		Config:   cfg,
		Feedback: sound,
		Stats:    store,
		Width:    width,
		FloorRow: render.FloorRowFor(height),
	})
	if err != nil {
		screen.Fini()
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	loop := engine.NewLoop(screen, session.Game, session.Spawner, session.Field, session.Clock, engine.LoopOptions{
		Best:  store,
		Muter: sound,
		CrashHandler: func(r any) {
			crash(screen, "EVENT POLLER CRASHED", r)
		},
	})

	log.Info().Int("width", width).Int("height", height).Msg("wordfall started")
	err = loop.Run(ctx)
	screen.Fini()

	if errors.Is(err, context.Canceled) {
		err = nil
	}

	st := session.Game.Stats()
	fmt.Printf("hits %d, misses %d, best %d\n", st.Hits, st.Misses, max(store.Best(), st.Hits))
	return err
}

// crash restores the terminal before printing the panic and stack
func crash(screen tcell.Screen, title string, r any) {
	screen.Fini()
	fmt.Fprintf(os.Stderr, "\n\x1b[31m%s: %v\x1b[0m\n", title, r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
	log.Error().Interface("panic", r).Str("stack", string(debug.Stack())).Msg(title)
	os.Exit(1)
}
