package game

import (
	"sort"

	"github.com/samber/lo"
)

// Pool holds the pending words, at most one per first letter
type Pool struct {
	entries  map[byte]Word
	capacity int
}

// NewPool creates a pool holding at most capacity words; capacity <= 0 means unbounded
func NewPool(capacity int) *Pool {
	return &Pool{
		entries:  make(map[byte]Word),
		capacity: capacity,
	}
}

// Len returns the number of pending words
func (p *Pool) Len() int {
	return len(p.entries)
}

// Cap returns the configured capacity (0 when unbounded)
func (p *Pool) Cap() int {
	if p.capacity <= 0 {
		return 0
	}
	return p.capacity
}

// Full reports whether another insert would exceed capacity
func (p *Pool) Full() bool {
	return p.capacity > 0 && len(p.entries) >= p.capacity
}

// Has reports whether a pending word starts with c
func (p *Pool) Has(c byte) bool {
	_, ok := p.entries[c]
	return ok
}

// Get returns the pending word starting with c
func (p *Pool) Get(c byte) (Word, bool) {
	w, ok := p.entries[c]
	return w, ok
}

// Insert adds a word; it never replaces an existing entry
func (p *Pool) Insert(w Word) error {
	if !ValidWord(w.Text) {
		return ErrInvalidWord
	}
	if p.Full() {
		return ErrPoolFull
	}
	if p.Has(w.Key()) {
		return ErrKeyTaken
	}
	p.entries[w.Key()] = w
	return nil
}

// Remove deletes the word starting with c
func (p *Pool) Remove(c byte) (Word, bool) {
	w, ok := p.entries[c]
	if ok {
		delete(p.entries, c)
	}
	return w, ok
}

// Clear empties the pool
func (p *Pool) Clear() {
	clear(p.entries)
}

// Words returns a snapshot ordered by first letter
func (p *Pool) Words() []Word {
	words := lo.Values(p.entries)
	sort.Slice(words, func(i, j int) bool {
		return words[i].Text < words[j].Text
	})
	return words
}

// ValidWord reports whether text is a non-empty run of 'a'..'z'
func ValidWord(text string) bool {
	if text == "" {
		return false
	}
	for i := 0; i < len(text); i++ {
		if text[i] < 'a' || text[i] > 'z' {
			return false
		}
	}
	return true
}
