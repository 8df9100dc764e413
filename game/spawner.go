package game

import (
	"math/rand"
	"time"

	"github.com/rs/zerolog/log"
)

// DefaultMaxDrawAttempts bounds re-draws when the source keeps returning taken letters
const DefaultMaxDrawAttempts = 32

// SpawnerConfig controls spawn pacing
type SpawnerConfig struct {
	MinDelay        time.Duration
	MaxDelay        time.Duration
	MaxDrawAttempts int
}

// Spawner inserts random words into the game's pool on a randomized delay
// It is driven by Tick from the owning loop; the timer is re-armed after every
// attempt, dropped on game over and re-armed on the first tick after restart
type Spawner struct {
	game   *Game
	source WordSource
	clock  Clock
	rng    *rand.Rand
	cfg    SpawnerConfig

	next  time.Time
	armed bool
}

// NewSpawner creates a spawner and arms its first delay
func NewSpawner(g *Game, source WordSource, clock Clock, rng *rand.Rand, cfg SpawnerConfig) *Spawner {
	if cfg.MaxDrawAttempts <= 0 {
		cfg.MaxDrawAttempts = DefaultMaxDrawAttempts
	}
	if cfg.MaxDelay < cfg.MinDelay {
		cfg.MaxDelay = cfg.MinDelay
	}
	if clock == nil {
		clock = wallClock{}
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	s := &Spawner{
		game:   g,
		source: source,
		clock:  clock,
		rng:    rng,
		cfg:    cfg,
	}
	if !g.IsOver() {
		s.arm(clock.Now())
	}
	return s
}

// Tick runs one spawn attempt if the armed delay has elapsed
// Returns true when a word was inserted
func (s *Spawner) Tick() bool {
	if s.game.IsOver() {
		s.armed = false
		return false
	}
	if s.game.IsPaused() {
		return false
	}

	now := s.clock.Now()
	if !s.armed {
		s.arm(now)
		return false
	}
	if now.Before(s.next) {
		return false
	}

	_, ok := s.Attempt()
	s.arm(now)
	return ok
}

// Attempt draws words until one fits the pool
// A full pool makes the attempt a no-op
func (s *Spawner) Attempt() (Word, bool) {
	pool := s.game.Pool()
	if pool.Full() {
		log.Debug().Int("pool", pool.Len()).Msg("spawn skipped: pool full")
		return Word{}, false
	}

	for i := 0; i < s.cfg.MaxDrawAttempts; i++ {
		w := Word{Text: s.source.Next()}
		if !ValidWord(w.Text) || pool.Has(w.Key()) {
			continue
		}
		if err := s.game.Offer(w); err != nil {
			log.Debug().Err(err).Str("word", w.Text).Msg("spawn rejected")
			return Word{}, false
		}
		return w, true
	}

	log.Debug().Int("attempts", s.cfg.MaxDrawAttempts).Msg("spawn gave up: no free first letter drawn")
	return Word{}, false
}

// NextSpawn returns when the next attempt is due
func (s *Spawner) NextSpawn() (time.Time, bool) {
	return s.next, s.armed
}

func (s *Spawner) arm(now time.Time) {
	s.next = now.Add(s.delay())
	s.armed = true
}

// delay picks a duration in [MinDelay, MaxDelay] at millisecond granularity
func (s *Spawner) delay() time.Duration {
	lowMs := s.cfg.MinDelay.Milliseconds()
	highMs := s.cfg.MaxDelay.Milliseconds()
	if highMs <= lowMs {
		return s.cfg.MinDelay
	}
	return time.Duration(lowMs+s.rng.Int63n(highMs-lowMs+1)) * time.Millisecond
}
