// Package fall moves spawned words down the playfield and reports when one
// reaches the floor. It is a kinematic stand-in for a physics engine: each
// word is a body with a column, a fractional row and a downward speed.
package fall

import (
	"math/rand"
	"sort"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/lixenwraith/wordfall/game"
)

// Config sizes the field and shapes the motion
type Config struct {
	Width    int     // Columns available to words
	FloorRow int     // Row of the floor line; words land on the row above it
	MinSpeed float64 // Initial speed range in rows per second
	MaxSpeed float64
	Gravity  float64 // Rows per second squared
}

// Body is a falling word
type Body struct {
	Word   game.Word
	X      int
	Y      float64
	Speed  float64
	Landed bool
	seq    uint64
}

// Row returns the integer row the body occupies
func (b Body) Row() int {
	return int(b.Y)
}

// Field tracks one body per pending word
// Implements game.SpawnSink and game.CollisionSource
type Field struct {
	cfg       Config
	rng       *rand.Rand
	bodies    map[string]*Body
	seq       uint64
	onCollide func()
}

// NewField creates an empty field
func NewField(cfg Config, rng *rand.Rand) *Field {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if cfg.MaxSpeed < cfg.MinSpeed {
		cfg.MaxSpeed = cfg.MinSpeed
	}
	return &Field{
		cfg:    cfg,
		rng:    rng,
		bodies: make(map[string]*Body),
	}
}

// SetCollisionHandler installs the floor-contact callback
func (f *Field) SetCollisionHandler(fn func()) {
	f.onCollide = fn
}

// WordSpawned drops a new body at a random column on the top row
func (f *Field) WordSpawned(w game.Word) {
	f.seq++
	f.bodies[w.Text] = &Body{
		Word:  w,
		X:     f.randomColumn(len(w.Text)),
		Y:     0,
		Speed: f.cfg.MinSpeed + f.rng.Float64()*(f.cfg.MaxSpeed-f.cfg.MinSpeed),
		seq:   f.seq,
	}
}

// WordRemoved drops the word's body
func (f *Field) WordRemoved(w game.Word) {
	delete(f.bodies, w.Text)
}

// Cleared drops every body
func (f *Field) Cleared() {
	clear(f.bodies)
}

// Len returns the number of bodies
func (f *Field) Len() int {
	return len(f.bodies)
}

// FloorRow returns the row of the floor line
func (f *Field) FloorRow() int {
	return f.cfg.FloorRow
}

// Step advances every body by dt and returns how many landed during this step
// The collision handler runs once per landing
func (f *Field) Step(dt time.Duration) int {
	if dt <= 0 {
		return 0
	}
	secs := dt.Seconds()
	rest := f.restRow()

	landed := 0
	for _, b := range f.ordered() {
		if b.Landed {
			continue
		}
		b.Speed += f.cfg.Gravity * secs
		b.Y += b.Speed * secs
		if b.Y < rest {
			continue
		}

		b.Y = rest
		b.Speed = 0
		b.Landed = true
		landed++
		log.Debug().Str("word", b.Word.Text).Int("column", b.X).Msg("word reached the floor")
		if f.onCollide != nil {
			f.onCollide()
		}
	}
	return landed
}

// Resize adopts new dimensions, keeping words inside the width
// Falling words keep their relative height so a shrink never lands them;
// landed words move to the new rest row
func (f *Field) Resize(width, floorRow int) {
	oldRest := float64(f.restRow())
	f.cfg.Width = width
	f.cfg.FloorRow = floorRow
	rest := float64(f.restRow())
	for _, b := range f.bodies {
		if maxX := width - len(b.Word.Text); b.X > maxX {
			b.X = max(maxX, 0)
		}
		switch {
		case b.Landed:
			b.Y = rest
		case oldRest > 0:
			b.Y = b.Y * rest / oldRest
		default:
			b.Y = min(b.Y, rest)
		}
	}
}

// Bodies returns a snapshot in spawn order
func (f *Field) Bodies() []Body {
	ordered := f.ordered()
	out := make([]Body, len(ordered))
	for i, b := range ordered {
		out[i] = *b
	}
	return out
}

// Body returns the body of a pending word
func (f *Field) Body(text string) (Body, bool) {
	b, ok := f.bodies[text]
	if !ok {
		return Body{}, false
	}
	return *b, true
}

func (f *Field) ordered() []*Body {
	out := make([]*Body, 0, len(f.bodies))
	for _, b := range f.bodies {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].seq < out[j].seq
	})
	return out
}

// restRow is the row a landed word sits on
func (f *Field) restRow() float64 {
	return float64(max(f.cfg.FloorRow-1, 0))
}

func (f *Field) randomColumn(length int) int {
	span := f.cfg.Width - length
	if span <= 0 {
		return 0
	}
	return f.rng.Intn(span + 1)
}
