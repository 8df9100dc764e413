package game

import (
	"strings"
	"time"
)

// Word is a falling word, keyed in the pool by its first letter
type Word struct {
	Text string
}

// Key returns the pool key of the word
func (w Word) Key() byte {
	return w.Text[0]
}

// ActiveWord is the word locked for typing
// NextCharIndex is in [1, len(Text)) while stored, NextChar == Text[NextCharIndex]
type ActiveWord struct {
	Text          string
	NextCharIndex int
	NextChar      byte
}

// Typed returns the prefix already typed
func (a ActiveWord) Typed() string {
	return a.Text[:a.NextCharIndex]
}

// Remaining returns the part still to type
func (a ActiveWord) Remaining() string {
	return a.Text[a.NextCharIndex:]
}

// Visible returns the word with its typed prefix blanked, keeping the
// remaining letters at their original offsets
func (a ActiveWord) Visible() string {
	return strings.Repeat(" ", a.NextCharIndex) + a.Remaining()
}

// State is the input state machine's current state
type State uint8

const (
	StateIdle State = iota
	StateTracking
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateTracking:
		return "tracking"
	case StateGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// Outcome reports what a dispatched key did
type Outcome uint8

const (
	OutcomeIgnored   Outcome = iota // Key not handled in the current state
	OutcomeClaimed                  // Idle -> Tracking
	OutcomeAdvanced                 // Correct next character
	OutcomeCompleted                // Word finished and removed
	OutcomeMiss                     // Wrong or unmatched character
	OutcomeAbandoned                // Space released the active word
	OutcomeRestarted                // Game reset after game over
	OutcomePaused
	OutcomeResumed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeIgnored:
		return "ignored"
	case OutcomeClaimed:
		return "claimed"
	case OutcomeAdvanced:
		return "advanced"
	case OutcomeCompleted:
		return "completed"
	case OutcomeMiss:
		return "miss"
	case OutcomeAbandoned:
		return "abandoned"
	case OutcomeRestarted:
		return "restarted"
	case OutcomePaused:
		return "paused"
	case OutcomeResumed:
		return "resumed"
	default:
		return "unknown"
	}
}

// Stats counts one game's activity
type Stats struct {
	RunID    string
	Hits     int
	Misses   int
	Abandons int
	Started  time.Time
	Ended    time.Time
}

// Duration returns how long the game lasted, or zero while still running
func (s Stats) Duration() time.Duration {
	if s.Ended.IsZero() {
		return 0
	}
	return s.Ended.Sub(s.Started)
}
