package render

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/wordfall/constants"
	"github.com/lixenwraith/wordfall/fall"
	"github.com/lixenwraith/wordfall/game"
)

func newTestScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init simulation screen: %v", err)
	}
	screen.SetSize(w, h)
	t.Cleanup(screen.Fini)
	return screen
}

func rowText(screen tcell.SimulationScreen, y int) string {
	w, _ := screen.Size()
	var sb strings.Builder
	for x := 0; x < w; x++ {
		r, _, _, _ := screen.GetContent(x, y)
		sb.WriteRune(r)
	}
	return sb.String()
}

func TestFloorRowFor(t *testing.T) {
	tests := []struct {
		height int
		want   int
	}{
		{24, 22},
		{10, 8},
		{3, constants.MinPlayRows},
	}
	for _, tt := range tests {
		if got := FloorRowFor(tt.height); got != tt.want {
			t.Errorf("FloorRowFor(%d) = %d, want %d", tt.height, got, tt.want)
		}
	}
}

// TestDrawWordsAndFloor verifies bodies land at their cell and the floor spans the width
func TestDrawWordsAndFloor(t *testing.T) {
	screen := newTestScreen(t, 40, 12)
	r := NewRenderer(screen)

	v := View{
		Bodies: []fall.Body{
			{Word: game.Word{Text: "apple"}, X: 3, Y: 2.6},
			{Word: game.Word{Text: "zebra"}, X: 20, Y: 7},
		},
		PoolLen:  2,
		PoolCap:  25,
		FloorRow: FloorRowFor(12),
	}
	r.Draw(v)

	if got := rowText(screen, 2); !strings.HasPrefix(got[3:], "apple") {
		t.Errorf("Expected apple at (3,2), row reads %q", got)
	}
	if got := rowText(screen, 7); !strings.HasPrefix(got[20:], "zebra") {
		t.Errorf("Expected zebra at (20,7), row reads %q", got)
	}

	floor := rowText(screen, v.FloorRow)
	if floor != strings.Repeat(string(constants.FloorRune), 40) {
		t.Errorf("Floor row not filled: %q", floor)
	}

	status := rowText(screen, v.FloorRow+1)
	if !strings.Contains(status, "pool 2/25") {
		t.Errorf("Status bar missing pool size: %q", status)
	}
}

// TestDrawActiveWordKeepsRemainingAligned verifies the typed prefix is blanked in place
func TestDrawActiveWordKeepsRemainingAligned(t *testing.T) {
	screen := newTestScreen(t, 40, 12)
	r := NewRenderer(screen)

	v := View{
		Bodies:    []fall.Body{{Word: game.Word{Text: "hello"}, X: 10, Y: 4}},
		Active:    game.ActiveWord{Text: "hello", NextCharIndex: 2, NextChar: 'l'},
		HasActive: true,
		FloorRow:  FloorRowFor(12),
	}
	r.Draw(v)

	row := rowText(screen, 4)
	if row[10:15] != "  llo" {
		t.Errorf("Expected \"  llo\" at column 10, got %q", row[10:15])
	}

	_, _, style, _ := screen.GetContent(12, 4)
	if style != StyleActive {
		t.Error("Remaining letters should use the active style")
	}
}

// TestDrawGameOverBanner verifies the banner and restart hint
func TestDrawGameOverBanner(t *testing.T) {
	screen := newTestScreen(t, 40, 12)
	r := NewRenderer(screen)

	v := View{FloorRow: FloorRowFor(12), Over: true, Stats: game.Stats{Hits: 3}, Best: 7}
	r.Draw(v)

	mid := v.FloorRow / 2
	if !strings.Contains(rowText(screen, mid), constants.GameOverText) {
		t.Errorf("Missing banner on row %d: %q", mid, rowText(screen, mid))
	}
	if !strings.Contains(rowText(screen, mid+1), constants.RestartHintText) {
		t.Errorf("Missing restart hint: %q", rowText(screen, mid+1))
	}
	if status := rowText(screen, v.FloorRow+1); !strings.Contains(status, "hits 3") || !strings.Contains(status, "best 7") {
		t.Errorf("Status bar should show hits and best: %q", status)
	}
}

// TestDrawPausedLabel verifies the pause indicator
func TestDrawPausedLabel(t *testing.T) {
	screen := newTestScreen(t, 60, 12)
	r := NewRenderer(screen)

	r.Draw(View{FloorRow: FloorRowFor(12), Paused: true})
	if status := rowText(screen, FloorRowFor(12)+1); !strings.Contains(status, constants.PausedText) {
		t.Errorf("Expected paused label in status bar: %q", status)
	}
}

// TestSnapshotTracksBest verifies the current run raises the displayed best
func TestSnapshotTracksBest(t *testing.T) {
	f := fall.NewField(fall.Config{Width: 40, FloorRow: 10, MinSpeed: 1, MaxSpeed: 1}, nil)
	g := game.New(game.NewPool(25), game.Options{Sink: f})
	g.Attach(f)

	if err := g.Offer(game.Word{Text: "go"}); err != nil {
		t.Fatalf("Offer: %v", err)
	}
	g.HandleKey(game.Letter('g'))
	g.HandleKey(game.Letter('o'))

	v := Snapshot(g, f, 0)
	if v.Best != 1 || v.Stats.Hits != 1 {
		t.Errorf("Expected best 1 after one hit, got best=%d hits=%d", v.Best, v.Stats.Hits)
	}
	if v.PoolLen != 0 || v.PoolCap != 25 || v.FloorRow != 10 {
		t.Errorf("Unexpected snapshot: %+v", v)
	}

	if err := g.Offer(game.Word{Text: "cat"}); err != nil {
		t.Fatalf("Offer: %v", err)
	}
	g.HandleKey(game.Letter('c'))
	v = Snapshot(g, f, 5)
	if !v.HasActive || v.Best != 5 {
		t.Errorf("Expected active word and stored best 5, got %+v", v)
	}
	text, active := v.Text(v.Bodies[0])
	if !active || text != " at" {
		t.Errorf("Expected \" at\" for the active body, got %q", text)
	}
}
