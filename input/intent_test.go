package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/wordfall/game"
)

func TestFromTcell(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want game.Key
	}{
		{"lowercase", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), game.Letter('q')},
		{"uppercase folds", tcell.NewEventKey(tcell.KeyRune, 'Q', tcell.ModShift), game.Letter('q')},
		{"space abandons", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), game.Space()},
		{"digit ignored", tcell.NewEventKey(tcell.KeyRune, '7', tcell.ModNone), game.Key{}},
		{"non-ascii ignored", tcell.NewEventKey(tcell.KeyRune, 'é', tcell.ModNone), game.Key{}},
		{"alt letter ignored", tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModAlt), game.Key{}},
		{"enter restarts", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), game.Key{Kind: game.KeyRestart}},
		{"escape pauses", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), game.Key{Kind: game.KeyPause}},
		{"tab pauses", tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone), game.Key{Kind: game.KeyPause}},
		{"ctrl-c quits", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), game.Key{Kind: game.KeyQuit}},
		{"arrow ignored", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), game.Key{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromTcell(tt.ev); got != tt.want {
				t.Errorf("FromTcell() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want IntentType
	}{
		{"letter", tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone), IntentKey},
		{"restart", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), IntentKey},
		{"quit", tcell.NewEventKey(tcell.KeyCtrlQ, 0, tcell.ModCtrl), IntentQuit},
		{"mute", tcell.NewEventKey(tcell.KeyCtrlS, 0, tcell.ModCtrl), IntentToggleMute},
		{"function key", tcell.NewEventKey(tcell.KeyF1, 0, tcell.ModNone), IntentNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.ev); got.Type != tt.want {
				t.Errorf("Classify() = %v, want %v", got.Type, tt.want)
			}
		})
	}
}
