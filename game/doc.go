// Package game holds the renderer-agnostic rules of wordfall: the pool of
// falling words keyed by first letter, the active-word input state machine,
// the randomized word spawner, and the game-over/restart lifecycle.
//
// Presentation plugs in through the small interfaces in ports.go. A Game is
// owned by a single goroutine (the front end's event loop) and is not safe
// for concurrent use.
package game
