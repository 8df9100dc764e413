package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/wordfall/game"
)

// IntentType discriminates what a terminal key asks for
type IntentType uint8

const (
	IntentNone IntentType = iota

	IntentKey        // Forward Key to the game
	IntentQuit       // Ctrl+C, Ctrl+Q
	IntentToggleMute // Ctrl+S
)

// Intent is a classified terminal keystroke
type Intent struct {
	Type IntentType
	Key  game.Key
}

// Classify splits front-end controls from game keys
func Classify(ev *tcell.EventKey) Intent {
	if ev.Key() == tcell.KeyCtrlS {
		return Intent{Type: IntentToggleMute}
	}

	k := FromTcell(ev)
	switch k.Kind {
	case game.KeyIgnored:
		return Intent{}
	case game.KeyQuit:
		return Intent{Type: IntentQuit, Key: k}
	default:
		return Intent{Type: IntentKey, Key: k}
	}
}

// FromTcell translates a tcell key event into a game key
func FromTcell(ev *tcell.EventKey) game.Key {
	switch ev.Key() {
	case tcell.KeyCtrlC, tcell.KeyCtrlQ:
		return game.Key{Kind: game.KeyQuit}
	case tcell.KeyEnter:
		return game.Key{Kind: game.KeyRestart}
	case tcell.KeyEscape, tcell.KeyTab:
		return game.Key{Kind: game.KeyPause}
	case tcell.KeyRune:
		if ev.Modifiers()&(tcell.ModCtrl|tcell.ModAlt) != 0 {
			return game.Key{}
		}
		return game.KeyFromRune(ev.Rune())
	}
	return game.Key{}
}
