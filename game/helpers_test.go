package game

import (
	"sync"
	"time"
)

type recordingFeedback struct {
	misses, completes, undos, overs int
}

func (f *recordingFeedback) Miss()         { f.misses++ }
func (f *recordingFeedback) WordComplete() { f.completes++ }
func (f *recordingFeedback) Undo()         { f.undos++ }
func (f *recordingFeedback) GameOver()     { f.overs++ }

type recordingSink struct {
	spawned []string
	removed []string
	cleared int
}

func (s *recordingSink) WordSpawned(w Word) { s.spawned = append(s.spawned, w.Text) }
func (s *recordingSink) WordRemoved(w Word) { s.removed = append(s.removed, w.Text) }
func (s *recordingSink) Cleared()           { s.cleared++ }

type recordingStats struct {
	ended []Stats
}

func (r *recordingStats) GameEnded(s Stats) { r.ended = append(r.ended, s) }

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// sequenceSource returns its words in order, cycling
type sequenceSource struct {
	words []string
	pos   int
	calls int
}

func (s *sequenceSource) Next() string {
	s.calls++
	w := s.words[s.pos%len(s.words)]
	s.pos++
	return w
}

type testRig struct {
	game     *Game
	feedback *recordingFeedback
	sink     *recordingSink
	stats    *recordingStats
	clock    *fakeClock
}

func newTestRig(capacity int, words ...string) *testRig {
	r := &testRig{
		feedback: &recordingFeedback{},
		sink:     &recordingSink{},
		stats:    &recordingStats{},
		clock:    newFakeClock(),
	}
	r.game = New(NewPool(capacity), Options{
		Feedback: r.feedback,
		Sink:     r.sink,
		Stats:    r.stats,
		Clock:    r.clock,
	})
	for _, w := range words {
		if err := r.game.Offer(Word{Text: w}); err != nil {
			panic(err)
		}
	}
	return r
}

func (r *testRig) typeString(s string) []Outcome {
	outcomes := make([]Outcome, 0, len(s))
	for i := 0; i < len(s); i++ {
		outcomes = append(outcomes, r.game.HandleKey(KeyFromRune(rune(s[i]))))
	}
	return outcomes
}
