package engine

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/lixenwraith/wordfall/config"
	"github.com/lixenwraith/wordfall/fall"
	"github.com/lixenwraith/wordfall/game"
	"github.com/lixenwraith/wordfall/words"
)

// SessionOptions carries what a front end supplies to build a session
type SessionOptions struct {
	Config   *config.Config
	Feedback game.FeedbackSink
	Stats    game.StatsSink
	RealTime TimeProvider

	// Width and FloorRow size the field until the front end resizes it
	Width    int
	FloorRow int
}

// Session is one wired game: pool, state machine, spawner and field
type Session struct {
	Game    *game.Game
	Spawner *game.Spawner
	Field   *fall.Field
	Clock   *PausableClock
	Source  *words.Source
}

// NewSession loads the word list and wires the game's collaborators
func NewSession(opts SessionOptions) (*Session, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}

	list := words.Default()
	if cfg.WordsFile != "" {
		var err error
		if list, err = words.LoadFile(cfg.WordsFile); err != nil {
			return nil, fmt.Errorf("failed to load word list: %w", err)
		}
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	source, err := words.NewSource(list, cfg.Spawn.MaxWordLength, rng)
	if err != nil {
		return nil, fmt.Errorf("failed to build word source: %w", err)
	}

	clock := NewPausableClock(opts.RealTime)
	field := fall.NewField(fall.Config{
		Width:    opts.Width,
		FloorRow: opts.FloorRow,
		MinSpeed: cfg.Fall.MinSpeed,
		MaxSpeed: cfg.Fall.MaxSpeed,
		Gravity:  cfg.Fall.Gravity,
	}, rng)

	g := game.New(game.NewPool(cfg.Pool.Capacity), game.Options{
		Feedback: opts.Feedback,
		Sink:     field,
		Stats:    opts.Stats,
		Clock:    clock,
	})
	g.Attach(field)
	if c, ok := opts.Stats.(interface{ SetClock(game.Clock) }); ok {
		c.SetClock(clock.real)
	}

	spawner := game.NewSpawner(g, source, clock, rng, game.SpawnerConfig{
		MinDelay:        cfg.Spawn.MinDelay,
		MaxDelay:        cfg.Spawn.MaxDelay,
		MaxDrawAttempts: cfg.Spawn.MaxDrawAttempts,
	})

	log.Info().
		Int64("seed", seed).
		Int("words", source.Len()).
		Int("letters", len(source.Letters())).
		Int("pool", cfg.Pool.Capacity).
		Msg("session ready")

	return &Session{
		Game:    g,
		Spawner: spawner,
		Field:   field,
		Clock:   clock,
		Source:  source,
	}, nil
}
