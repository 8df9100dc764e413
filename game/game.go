package game

import (
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Options wires the game's collaborators; nil fields get no-op defaults
type Options struct {
	Feedback FeedbackSink
	Sink     SpawnSink
	Stats    StatsSink
	Clock    Clock
}

// Game is the input state machine plus the pool and game-over lifecycle
type Game struct {
	pool   *Pool
	active *ActiveWord
	over   bool
	paused bool
	stats  Stats

	feedback  FeedbackSink
	sink      SpawnSink
	statsSink StatsSink
	clock     Clock
}

// New creates a game in the Idle state over the given pool
func New(pool *Pool, opts Options) *Game {
	g := &Game{
		pool:      pool,
		feedback:  opts.Feedback,
		sink:      opts.Sink,
		statsSink: opts.Stats,
		clock:     opts.Clock,
	}
	if g.feedback == nil {
		g.feedback = NopFeedback{}
	}
	if g.sink == nil {
		g.sink = nopSink{}
	}
	if g.clock == nil {
		g.clock = wallClock{}
	}
	g.resetStats()
	return g
}

// Attach routes a collision source's signal into Collide
func (g *Game) Attach(src CollisionSource) {
	src.SetCollisionHandler(g.Collide)
}

// Pool exposes the pending words for read-only use by front ends
func (g *Game) Pool() *Pool {
	return g.pool
}

// Active returns the active word, if any
func (g *Game) Active() (ActiveWord, bool) {
	if g.active == nil {
		return ActiveWord{}, false
	}
	return *g.active, true
}

// State returns the current state machine state
func (g *Game) State() State {
	switch {
	case g.over:
		return StateGameOver
	case g.active != nil:
		return StateTracking
	default:
		return StateIdle
	}
}

// IsOver reports whether a word has reached the floor
func (g *Game) IsOver() bool {
	return g.over
}

// IsPaused reports whether play is suspended
func (g *Game) IsPaused() bool {
	return g.paused
}

// Stats returns the current game's counters
func (g *Game) Stats() Stats {
	return g.stats
}

// HandleKey dispatches one keystroke
func (g *Game) HandleKey(k Key) Outcome {
	switch k.Kind {
	case KeyRestart:
		if !g.over {
			return OutcomeIgnored
		}
		g.Restart()
		return OutcomeRestarted
	case KeyPause:
		if g.over {
			return OutcomeIgnored
		}
		g.paused = !g.paused
		if g.paused {
			return OutcomePaused
		}
		return OutcomeResumed
	}

	// Nothing but restart reaches the state machine once the game is over
	if g.over || g.paused {
		return OutcomeIgnored
	}

	switch k.Kind {
	case KeySpace:
		if g.active == nil {
			return OutcomeIgnored
		}
		g.abandon()
		return OutcomeAbandoned
	case KeyLetter:
		if g.active != nil {
			return g.advance(k.Char)
		}
		return g.claim(k.Char)
	}
	return OutcomeIgnored
}

// Offer inserts a spawned word into the pool and notifies the sink
func (g *Game) Offer(w Word) error {
	if g.over {
		return ErrGameOver
	}
	if err := g.pool.Insert(w); err != nil {
		return err
	}
	g.sink.WordSpawned(w)
	log.Debug().Str("word", w.Text).Int("pool", g.pool.Len()).Msg("word spawned")
	return nil
}

// Collide ends the game; repeated signals are ignored
func (g *Game) Collide() {
	if g.over {
		return
	}
	g.over = true
	g.paused = false
	g.active = nil
	g.stats.Ended = g.clock.Now()

	g.feedback.GameOver()
	log.Info().
		Str("run", g.stats.RunID).
		Int("hits", g.stats.Hits).
		Int("misses", g.stats.Misses).
		Dur("duration", g.stats.Duration()).
		Msg("game over")

	if g.statsSink != nil {
		g.statsSink.GameEnded(g.stats)
	}
}

// Restart clears the pool and active word and leaves game over
func (g *Game) Restart() {
	g.over = false
	g.paused = false
	g.active = nil
	g.pool.Clear()
	g.sink.Cleared()
	g.resetStats()
	log.Info().Str("run", g.stats.RunID).Msg("game restarted")
}

func (g *Game) claim(c byte) Outcome {
	w, ok := g.pool.Get(c)
	if !ok {
		return g.miss()
	}

	g.active = &ActiveWord{Text: w.Text, NextCharIndex: 1}
	if len(w.Text) == 1 {
		// Single-letter words complete on their first keystroke
		if err := g.complete(); err != nil {
			return OutcomeIgnored
		}
		return OutcomeCompleted
	}
	g.active.NextChar = w.Text[1]
	return OutcomeClaimed
}

func (g *Game) advance(c byte) Outcome {
	if c != g.active.NextChar {
		return g.miss()
	}

	next := g.active.NextCharIndex + 1
	if next >= len(g.active.Text) {
		if err := g.complete(); err != nil {
			return OutcomeIgnored
		}
		return OutcomeCompleted
	}
	g.active.NextCharIndex = next
	g.active.NextChar = g.active.Text[next]
	return OutcomeAdvanced
}

func (g *Game) complete() error {
	if g.active == nil {
		log.Error().Err(ErrNoActiveWord).Msg("completion requested without an active word")
		return ErrNoActiveWord
	}

	w, ok := g.pool.Remove(g.active.Text[0])
	if ok {
		g.sink.WordRemoved(w)
	}
	log.Debug().Str("word", g.active.Text).Msg("word complete")

	g.active = nil
	g.stats.Hits++
	g.feedback.WordComplete()
	return nil
}

func (g *Game) abandon() {
	log.Debug().Str("word", g.active.Text).Int("typed", g.active.NextCharIndex).Msg("word abandoned")
	g.active = nil
	g.stats.Abandons++
	g.feedback.Undo()
}

func (g *Game) miss() Outcome {
	g.stats.Misses++
	g.feedback.Miss()
	return OutcomeMiss
}

func (g *Game) resetStats() {
	g.stats = Stats{
		RunID:   uuid.NewString(),
		Started: g.clock.Now(),
	}
}
