package render

import (
	"github.com/lixenwraith/wordfall/fall"
	"github.com/lixenwraith/wordfall/game"
)

// View is a frame's worth of game state, independent of the output device
type View struct {
	Bodies    []fall.Body
	Active    game.ActiveWord
	HasActive bool
	Stats     game.Stats
	Best      int
	PoolLen   int
	PoolCap   int
	FloorRow  int
	Paused    bool
	Over      bool
}

// Snapshot copies the state needed to draw one frame
func Snapshot(g *game.Game, f *fall.Field, best int) View {
	active, ok := g.Active()
	stats := g.Stats()
	if stats.Hits > best {
		best = stats.Hits
	}
	return View{
		Bodies:    f.Bodies(),
		Active:    active,
		HasActive: ok,
		Stats:     stats,
		Best:      best,
		PoolLen:   g.Pool().Len(),
		PoolCap:   g.Pool().Cap(),
		FloorRow:  f.FloorRow(),
		Paused:    g.IsPaused(),
		Over:      g.IsOver(),
	}
}

// Text returns what a body shows: the active word hides its typed prefix
func (v View) Text(b fall.Body) (string, bool) {
	if v.HasActive && b.Word.Text == v.Active.Text {
		return v.Active.Visible(), true
	}
	return b.Word.Text, false
}
