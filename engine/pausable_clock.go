package engine

import (
	"sync"
	"time"
)

// PausableClock is game time: real time minus every paused interval
// Spawn timers and run durations read it so a pause neither fires overdue
// spawns nor inflates the recorded run length
type PausableClock struct {
	mu sync.RWMutex

	real      TimeProvider
	epoch     time.Time     // Real time at creation
	paused    bool
	pauseAt   time.Time     // Real time the current pause began
	pausedSum time.Duration // Completed pauses
}

// NewPausableClock creates a running clock over the given real time source
func NewPausableClock(real TimeProvider) *PausableClock {
	if real == nil {
		real = NewMonotonicTimeProvider()
	}
	return &PausableClock{
		real:  real,
		epoch: real.Now(),
	}
}

// Now returns current game time, frozen while paused
func (pc *PausableClock) Now() time.Time {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	if pc.paused {
		return pc.pauseAt.Add(-pc.pausedSum)
	}
	return pc.real.Now().Add(-pc.pausedSum)
}

// RealTime returns the underlying wall time
func (pc *PausableClock) RealTime() time.Time {
	return pc.real.Now()
}

// Pause stops game time advancement
func (pc *PausableClock) Pause() {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	if pc.paused {
		return
	}
	pc.paused = true
	pc.pauseAt = pc.real.Now()
}

// Resume continues game time advancement
func (pc *PausableClock) Resume() {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	if !pc.paused {
		return
	}
	pc.pausedSum += pc.real.Now().Sub(pc.pauseAt)
	pc.paused = false
	pc.pauseAt = time.Time{}
}

// IsPaused returns current pause state
func (pc *PausableClock) IsPaused() bool {
	pc.mu.RLock()
	defer pc.mu.RUnlock()
	return pc.paused
}

// TotalPauseDuration returns cumulative pause time including any current pause
func (pc *PausableClock) TotalPauseDuration() time.Duration {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	total := pc.pausedSum
	if pc.paused {
		total += pc.real.Now().Sub(pc.pauseAt)
	}
	return total
}

// Elapsed returns game time since the clock was created
func (pc *PausableClock) Elapsed() time.Duration {
	return pc.Now().Sub(pc.epoch)
}
