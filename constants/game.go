package constants

import "time"

// Game Loop Timing Constants
const (
	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// EventQueueSize is the buffered capacity of the terminal input channel
	EventQueueSize = 256
)

// Word Pool & Spawn Constants
const (
	// DefaultPoolCapacity is the maximum number of pending words
	DefaultPoolCapacity = 25

	// MaxPoolCapacity is one word per letter of the alphabet
	MaxPoolCapacity = 26

	// DefaultMaxWordLength bounds the length of spawned words
	DefaultMaxWordLength = 8

	// SpawnMinDelay is the shortest wait between spawn attempts
	SpawnMinDelay = 400 * time.Millisecond

	// SpawnMaxDelay is the longest wait between spawn attempts
	SpawnMaxDelay = 1500 * time.Millisecond
)

// Falling Constants
const (
	// FallMinSpeed is the minimum initial falling speed in rows per second
	FallMinSpeed = 0.5

	// FallMaxSpeed is the maximum initial falling speed in rows per second
	FallMaxSpeed = 2.0

	// FallGravity is the downward acceleration in rows per second squared
	FallGravity = 0.05

	// MaxFrameDelta caps the integration step so a stalled frame cannot teleport words
	MaxFrameDelta = 250 * time.Millisecond
)
