package game

import "time"

// FeedbackSink receives fire-and-forget presentation signals
type FeedbackSink interface {
	Miss()
	WordComplete()
	Undo()
	GameOver()
}

// NopFeedback discards all feedback, for headless runs and tests
type NopFeedback struct{}

func (NopFeedback) Miss()         {}
func (NopFeedback) WordComplete() {}
func (NopFeedback) Undo()         {}
func (NopFeedback) GameOver()     {}

// SpawnSink mirrors pool membership into a presentation layer
type SpawnSink interface {
	WordSpawned(w Word)
	WordRemoved(w Word)
	Cleared()
}

// CollisionSource delivers the floor-collision signal
type CollisionSource interface {
	SetCollisionHandler(fn func())
}

// WordSource returns one random lowercase word per call
type WordSource interface {
	Next() string
}

// StatsSink is told once about every finished game
type StatsSink interface {
	GameEnded(s Stats)
}

// Clock supplies the time used for spawn scheduling and stats
type Clock interface {
	Now() time.Time
}

type wallClock struct{}

func (wallClock) Now() time.Time { return time.Now() }

type nopSink struct{}

func (nopSink) WordSpawned(Word) {}
func (nopSink) WordRemoved(Word) {}
func (nopSink) Cleared()         {}
