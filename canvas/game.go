// Package canvas is the ebiten front end: the same game drawn in a window
package canvas

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/rs/zerolog/log"

	"github.com/lixenwraith/wordfall/constants"
	"github.com/lixenwraith/wordfall/engine"
	"github.com/lixenwraith/wordfall/fall"
	"github.com/lixenwraith/wordfall/game"
	"github.com/lixenwraith/wordfall/render"
)

var (
	colorBackground = color.RGBA{R: 26, G: 27, B: 38, A: 255}
	colorActive     = color.RGBA{R: 255, G: 165, B: 0, A: 160}
	colorLanded     = color.RGBA{R: 255, G: 80, B: 80, A: 160}
	colorFloor      = color.RGBA{R: 100, G: 150, B: 255, A: 255}
	colorStatus     = color.RGBA{R: 60, G: 100, B: 200, A: 255}
)

// Columns is the playfield width in debug-font cells
const Columns = constants.CanvasWidth / constants.CanvasCellWidth

// FloorRow is the floor's cell row; one status row sits below it
const FloorRow = constants.CanvasHeight/constants.CanvasCellHeight - constants.StatusBarRows - 1

// Game adapts the word game to ebiten.Game
type Game struct {
	game    *game.Game
	spawner *game.Spawner
	field   *fall.Field
	clock   *engine.PausableClock
	opts    engine.LoopOptions

	lastFrame time.Time
	chars     []rune
}

var _ ebiten.Game = (*Game)(nil)

// NewGame wires the canvas front end; the field is resized to the canvas grid
func NewGame(g *game.Game, spawner *game.Spawner, field *fall.Field, clock *engine.PausableClock, opts engine.LoopOptions) *Game {
	field.Resize(Columns, FloorRow)
	return &Game{
		game:      g,
		spawner:   spawner,
		field:     field,
		clock:     clock,
		opts:      opts,
		lastFrame: clock.Now(),
	}
}

// Update reads input and advances the simulation one tick
func (c *Game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyControl) && inpututil.IsKeyJustPressed(ebiten.KeyC) {
		return ebiten.Termination
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) && inpututil.IsKeyJustPressed(ebiten.KeyS) && c.opts.Muter != nil {
		c.opts.Muter.SetMuted(!c.opts.Muter.IsMuted())
	}

	c.chars = ebiten.AppendInputChars(c.chars[:0])
	if ebiten.IsKeyPressed(ebiten.KeyControl) {
		c.chars = c.chars[:0]
	}
	for _, k := range Keys(c.chars, inpututil.IsKeyJustPressed) {
		c.dispatch(k)
	}

	now := c.clock.Now()
	c.step(now.Sub(c.lastFrame))
	c.lastFrame = now
	return nil
}

// Keys maps one tick of ebiten input to game keys: control keys first, then typed characters
func Keys(chars []rune, justPressed func(ebiten.Key) bool) []game.Key {
	var keys []game.Key
	if justPressed(ebiten.KeyEnter) || justPressed(ebiten.KeyNumpadEnter) {
		keys = append(keys, game.Key{Kind: game.KeyRestart})
	}
	if justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyTab) {
		keys = append(keys, game.Key{Kind: game.KeyPause})
	}
	for _, r := range chars {
		if k := game.KeyFromRune(r); k.Kind != game.KeyIgnored {
			keys = append(keys, k)
		}
	}
	return keys
}

func (c *Game) dispatch(k game.Key) {
	switch c.game.HandleKey(k) {
	case game.OutcomePaused:
		c.clock.Pause()
	case game.OutcomeResumed, game.OutcomeRestarted:
		c.clock.Resume()
	}
}

func (c *Game) step(dt time.Duration) {
	if dt > constants.MaxFrameDelta {
		dt = constants.MaxFrameDelta
	}
	c.spawner.Tick()
	if c.game.IsOver() || c.game.IsPaused() {
		return
	}
	if landed := c.field.Step(dt); landed > 0 {
		log.Debug().Int("landed", landed).Msg("canvas: word reached the floor")
	}
}

// Draw renders the current state
func (c *Game) Draw(screen *ebiten.Image) {
	best := 0
	if c.opts.Best != nil {
		best = c.opts.Best.Best()
	}
	v := render.Snapshot(c.game, c.field, best)

	screen.Fill(colorBackground)

	cw, ch := float32(constants.CanvasCellWidth), float32(constants.CanvasCellHeight)
	for _, b := range v.Bodies {
		row := b.Row()
		if row >= v.FloorRow {
			row = v.FloorRow - 1
		}
		text, active := v.Text(b)
		x, y := b.X*constants.CanvasCellWidth, row*constants.CanvasCellHeight

		switch {
		case active:
			typed := float32(v.Active.NextCharIndex)
			vector.DrawFilledRect(screen, float32(x)+typed*cw, float32(y), float32(len(text))*cw-typed*cw, ch, colorActive, false)
		case b.Landed:
			vector.DrawFilledRect(screen, float32(x), float32(y), float32(len(text))*cw, ch, colorLanded, false)
		}
		ebitenutil.DebugPrintAt(screen, text, x, y)
	}

	floorY := float32(v.FloorRow) * ch
	vector.DrawFilledRect(screen, 0, floorY, constants.CanvasWidth, constants.CanvasFloorThickness, colorFloor, false)

	statusY := (v.FloorRow + 1) * constants.CanvasCellHeight
	vector.DrawFilledRect(screen, 0, float32(statusY), constants.CanvasWidth, ch, colorStatus, false)
	ebitenutil.DebugPrintAt(screen, StatusLine(v), 0, statusY)

	if v.Over {
		mid := v.FloorRow / 2 * constants.CanvasCellHeight
		printCentered(screen, constants.GameOverText, mid)
		printCentered(screen, constants.RestartHintText, mid+constants.CanvasCellHeight)
	}
}

// StatusLine formats the bottom bar
func StatusLine(v render.View) string {
	s := fmt.Sprintf(" hits %d  misses %d  best %d  pool %d/%d", v.Stats.Hits, v.Stats.Misses, v.Best, v.PoolLen, v.PoolCap)
	if v.Paused {
		s += "  " + constants.PausedText
	}
	return s
}

func printCentered(screen *ebiten.Image, text string, y int) {
	x := (constants.CanvasWidth - len(text)*constants.CanvasCellWidth) / 2
	ebitenutil.DebugPrintAt(screen, text, x, y)
}

// Layout returns the fixed logical canvas size
func (c *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return constants.CanvasWidth, constants.CanvasHeight
}
