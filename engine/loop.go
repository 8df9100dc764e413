package engine

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog/log"

	"github.com/lixenwraith/wordfall/constants"
	"github.com/lixenwraith/wordfall/fall"
	"github.com/lixenwraith/wordfall/game"
	"github.com/lixenwraith/wordfall/input"
	"github.com/lixenwraith/wordfall/render"
)

// BestScorer reports the best hit count recorded across runs
type BestScorer interface {
	Best() int
}

// Muter toggles audio feedback
type Muter interface {
	SetMuted(bool)
	IsMuted() bool
}

// LoopOptions carries the loop's optional collaborators
type LoopOptions struct {
	Best  BestScorer
	Muter Muter

	// CrashHandler runs when the event poller panics; the terminal must be
	// restored before the process exits
	CrashHandler func(any)
}

// Loop owns the game state and drives it from one goroutine
type Loop struct {
	screen   tcell.Screen
	game     *game.Game
	spawner  *game.Spawner
	field    *fall.Field
	clock    *PausableClock
	renderer *render.Renderer
	opts     LoopOptions

	lastFrame time.Time
}

// NewLoop wires a terminal loop; the field must already be attached to the game
func NewLoop(screen tcell.Screen, g *game.Game, spawner *game.Spawner, field *fall.Field, clock *PausableClock, opts LoopOptions) *Loop {
	return &Loop{
		screen:    screen,
		game:      g,
		spawner:   spawner,
		field:     field,
		clock:     clock,
		renderer:  render.NewRenderer(screen),
		opts:      opts,
		lastFrame: clock.Now(),
	}
}

// Run processes events and frames until quit, screen close or ctx cancel
func (l *Loop) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan tcell.Event, constants.EventQueueSize)
	go l.poll(ctx, events)

	frameTicker := time.NewTicker(constants.FrameUpdateInterval)
	defer frameTicker.Stop()

	l.resize()
	l.Render()

	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("loop stopped by context")
			return ctx.Err()

		case ev, ok := <-events:
			if !ok {
				log.Info().Msg("screen closed")
				return nil
			}
			if !l.HandleEvent(ev) {
				log.Info().Msg("quit requested")
				return nil
			}
			l.Render()

		case <-frameTicker.C:
			now := l.clock.Now()
			l.Tick(now.Sub(l.lastFrame))
			l.lastFrame = now
			l.Render()
		}
	}
}

// poll forwards screen events; it closes the channel once the screen is finalized
func (l *Loop) poll(ctx context.Context, events chan<- tcell.Event) {
	defer close(events)
	defer func() {
		if r := recover(); r != nil {
			if l.opts.CrashHandler != nil {
				l.opts.CrashHandler(r)
				return
			}
			panic(r)
		}
	}()

	for {
		ev := l.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-ctx.Done():
			return
		}
	}
}

// HandleEvent applies one screen event; returns false when the loop should exit
func (l *Loop) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		l.resize()
		l.screen.Sync()

	case *tcell.EventKey:
		intent := input.Classify(ev)
		switch intent.Type {
		case input.IntentQuit:
			return false
		case input.IntentToggleMute:
			if l.opts.Muter != nil {
				muted := !l.opts.Muter.IsMuted()
				l.opts.Muter.SetMuted(muted)
				log.Debug().Bool("muted", muted).Msg("audio toggled")
			}
		case input.IntentKey:
			l.dispatch(intent.Key)
		}
	}
	return true
}

func (l *Loop) dispatch(k game.Key) {
	switch l.game.HandleKey(k) {
	case game.OutcomePaused:
		l.clock.Pause()
	case game.OutcomeResumed:
		l.clock.Resume()
	case game.OutcomeRestarted:
		// A restart can end a pause left over from before the collision
		l.clock.Resume()
		l.lastFrame = l.clock.Now()
	}
}

// Tick advances spawning and falling by dt of game time
func (l *Loop) Tick(dt time.Duration) {
	if dt > constants.MaxFrameDelta {
		dt = constants.MaxFrameDelta
	}
	l.spawner.Tick()
	if l.game.IsOver() || l.game.IsPaused() {
		return
	}
	l.field.Step(dt)
}

// Render draws the current state
func (l *Loop) Render() {
	best := 0
	if l.opts.Best != nil {
		best = l.opts.Best.Best()
	}
	l.renderer.Draw(render.Snapshot(l.game, l.field, best))
}

func (l *Loop) resize() {
	w, h := l.screen.Size()
	l.field.Resize(w, render.FloorRowFor(h))
	log.Debug().Int("width", w).Int("height", h).Msg("screen resized")
}
