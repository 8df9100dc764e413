package game

import "errors"

// Sentinel errors
var (
	ErrNoActiveWord = errors.New("no active word")
	ErrPoolFull     = errors.New("word pool is full")
	ErrKeyTaken     = errors.New("a pending word already starts with this letter")
	ErrInvalidWord  = errors.New("word must be lowercase ascii letters")
	ErrGameOver     = errors.New("game is over")
)
