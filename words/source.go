package words

import (
	"errors"
	"math/rand"
	"time"

	"github.com/samber/lo"
)

// ErrEmptyList is returned when no word survives the length filter
var ErrEmptyList = errors.New("word list has no usable words")

// Source draws uniformly from a fixed list of words no longer than MaxLength
// Implements game.WordSource
type Source struct {
	words     []string
	maxLength int
	rng       *rand.Rand
}

// NewSource keeps the words of list whose length is in [1, maxLength]
// maxLength <= 0 keeps every word
func NewSource(list []string, maxLength int, rng *rand.Rand) (*Source, error) {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	kept := lo.Filter(list, func(w string, _ int) bool {
		return len(w) > 0 && (maxLength <= 0 || len(w) <= maxLength)
	})
	if len(kept) == 0 {
		return nil, ErrEmptyList
	}
	return &Source{
		words:     kept,
		maxLength: maxLength,
		rng:       rng,
	}, nil
}

// Next returns a random word
func (s *Source) Next() string {
	return s.words[s.rng.Intn(len(s.words))]
}

// Len returns the number of candidate words
func (s *Source) Len() int {
	return len(s.words)
}

// Letters returns the distinct first letters the source can produce
func (s *Source) Letters() []byte {
	return lo.Uniq(lo.Map(s.words, func(w string, _ int) byte {
		return w[0]
	}))
}
