package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/wordfall/constants"
)

// Renderer draws views to a tcell screen
type Renderer struct {
	screen tcell.Screen
}

// NewRenderer creates a renderer for the given screen
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// FloorRowFor returns the floor row for a screen height
func FloorRowFor(height int) int {
	row := height - constants.StatusBarRows - 1
	if row < constants.MinPlayRows {
		row = constants.MinPlayRows
	}
	return row
}

// Draw renders the full frame and shows it
func (r *Renderer) Draw(v View) {
	r.screen.SetStyle(StyleDefault)
	r.screen.Clear()

	width, _ := r.screen.Size()

	r.drawWords(v)
	r.drawFloor(v.FloorRow, width)
	r.drawStatusBar(v, width)

	if v.Over {
		r.drawGameOver(v.FloorRow, width)
	}

	r.screen.Show()
}

func (r *Renderer) drawWords(v View) {
	for _, b := range v.Bodies {
		row := b.Row()
		if row >= v.FloorRow {
			row = v.FloorRow - 1
		}

		text, active := v.Text(b)
		style := StyleWord
		switch {
		case active:
			style = StyleActive
		case b.Landed:
			style = StyleLanded
		}
		r.drawString(b.X, row, text, style)
	}
}

func (r *Renderer) drawFloor(row, width int) {
	for x := 0; x < width; x++ {
		r.screen.SetContent(x, row, constants.FloorRune, nil, StyleFloor)
	}
}

func (r *Renderer) drawStatusBar(v View, width int) {
	row := v.FloorRow + 1
	for x := 0; x < width; x++ {
		r.screen.SetContent(x, row, ' ', nil, StyleStatus)
	}

	status := fmt.Sprintf(" hits %d  misses %d  best %d  pool %d/%d ",
		v.Stats.Hits, v.Stats.Misses, v.Best, v.PoolLen, v.PoolCap)
	r.drawString(0, row, status, StyleStatus)

	if v.Paused {
		label := " " + constants.PausedText + " "
		r.drawString(width-len(label), row, label, StylePaused)
	}
}

func (r *Renderer) drawGameOver(floorRow, width int) {
	mid := floorRow / 2
	r.drawString((width-len(constants.GameOverText))/2, mid, constants.GameOverText, StyleOver)
	r.drawString((width-len(constants.RestartHintText))/2, mid+1, constants.RestartHintText, StyleHint)
}

// drawString writes ASCII text starting at x; spaces are drawn so typed
// prefixes overwrite whatever sat beneath them
func (r *Renderer) drawString(x, y int, s string, style tcell.Style) {
	for i := 0; i < len(s); i++ {
		if x+i < 0 {
			continue
		}
		r.screen.SetContent(x+i, y, rune(s[i]), nil, style)
	}
}
