package constants

import "time"

// Miss Sound Timing
const (
	MissSoundDuration = 80 * time.Millisecond
	MissSoundAttack   = 5 * time.Millisecond
	MissSoundRelease  = 20 * time.Millisecond
)

// Word Complete Sound Timing
const (
	CompleteSoundDuration           = 600 * time.Millisecond
	CompleteSoundAttack             = 5 * time.Millisecond
	CompleteSoundFundamentalRelease = 550 * time.Millisecond
	CompleteSoundOvertoneRelease    = 200 * time.Millisecond
)

// Undo Sound Timing
const (
	UndoSoundDuration = 200 * time.Millisecond
	UndoSoundAttack   = 100 * time.Millisecond
	UndoSoundRelease  = 100 * time.Millisecond
)

// Game Over Sound Timing
const (
	GameOverSoundNote1Duration = 200 * time.Millisecond
	GameOverSoundNote2Duration = 500 * time.Millisecond
	GameOverSoundAttack        = 5 * time.Millisecond
	GameOverSoundNote1Release  = 60 * time.Millisecond
	GameOverSoundNote2Release  = 400 * time.Millisecond
)
