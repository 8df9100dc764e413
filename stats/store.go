// Package stats keeps lifetime scores across runs
package stats

import (
	"fmt"
	"sync"
	"time"

	"github.com/quasilyte/gdata/v2"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/wordfall/game"
)

const (
	recordObject   = "stats"
	recordProperty = "lifetime"
)

// Record is the persisted lifetime summary
type Record struct {
	GamesPlayed int       `yaml:"gamesPlayed"`
	BestHits    int       `yaml:"bestHits"`
	TotalHits   int       `yaml:"totalHits"`
	TotalMisses int       `yaml:"totalMisses"`
	LastRunID   string    `yaml:"lastRunId"`
	LastPlayed  time.Time `yaml:"lastPlayed"`
}

// Store folds finished games into a Record and persists it through gdata
// A nil manager keeps the record in memory only
type Store struct {
	mu      sync.Mutex
	manager *gdata.Manager
	clock   game.Clock // Wall time for LastPlayed; game time stops during pauses
	record  Record
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

var _ game.StatsSink = (*Store)(nil)

// Open creates a gdata manager for appName; failures degrade to memory-only
func Open(appName string) *Store {
	if appName == "" {
		return NewStore(nil)
	}
	manager, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		log.Warn().Err(err).Str("app", appName).Msg("stats storage unavailable, scores will not persist")
		return NewStore(nil)
	}
	return NewStore(manager)
}

// NewStore creates a store and loads any saved record
func NewStore(manager *gdata.Manager) *Store {
	s := &Store{manager: manager, clock: systemClock{}}
	if err := s.Load(); err != nil {
		log.Warn().Err(err).Msg("failed to load stats, starting fresh")
	}
	return s
}

// SetClock replaces the wall clock that stamps LastPlayed
func (s *Store) SetClock(c game.Clock) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c == nil {
		c = systemClock{}
	}
	s.clock = c
}

// Persistent reports whether records reach disk
func (s *Store) Persistent() bool {
	return s.manager != nil
}

// Load replaces the in-memory record with the saved one
func (s *Store) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.manager == nil || !s.manager.ObjectPropExists(recordObject, recordProperty) {
		return nil
	}

	data, err := s.manager.LoadObjectProp(recordObject, recordProperty)
	if err != nil {
		return fmt.Errorf("failed to load stats: %w", err)
	}

	var rec Record
	if err := yaml.Unmarshal(data, &rec); err != nil {
		return fmt.Errorf("failed to unmarshal stats: %w", err)
	}
	s.record = rec
	return nil
}

// Save writes the current record
func (s *Store) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveLocked()
}

func (s *Store) saveLocked() error {
	if s.manager == nil {
		return nil
	}

	data, err := yaml.Marshal(&s.record)
	if err != nil {
		return fmt.Errorf("failed to marshal stats: %w", err)
	}
	if err := s.manager.SaveObjectProp(recordObject, recordProperty, data); err != nil {
		return fmt.Errorf("failed to save stats: %w", err)
	}
	return nil
}

// Record returns a copy of the lifetime record
func (s *Store) Record() Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.record
}

// Best returns the highest hit count of any finished game
func (s *Store) Best() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.record.BestHits
}

// GameEnded folds a finished game into the record and persists it
func (s *Store) GameEnded(st game.Stats) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.record.GamesPlayed++
	s.record.TotalHits += st.Hits
	s.record.TotalMisses += st.Misses
	s.record.LastRunID = st.RunID
	s.record.LastPlayed = s.clock.Now()
	newBest := st.Hits > s.record.BestHits
	if newBest {
		s.record.BestHits = st.Hits
	}

	log.Info().
		Str("run", st.RunID).
		Int("hits", st.Hits).
		Int("best", s.record.BestHits).
		Bool("newBest", newBest).
		Int("games", s.record.GamesPlayed).
		Msg("stats recorded")

	if err := s.saveLocked(); err != nil {
		log.Warn().Err(err).Msg("failed to persist stats")
	}
}
