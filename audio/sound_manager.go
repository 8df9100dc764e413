package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/rs/zerolog/log"

	"github.com/lixenwraith/wordfall/game"
)

var _ game.FeedbackSink = (*SoundManager)(nil)

// SoundManager plays feedback effects through a shared mixer
// Every method is safe to call before Initialize or after a failed init
type SoundManager struct {
	mu          sync.Mutex
	cfg         *AudioConfig
	mixer       *beep.Mixer
	initialized bool
	muted       bool
	warned      bool
}

// NewSoundManager creates a new sound manager
func NewSoundManager(cfg *AudioConfig) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	return &SoundManager{
		cfg:   cfg,
		mixer: &beep.Mixer{},
		muted: !cfg.Enabled,
	}
}

// Initialize sets up the speaker
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if !sm.cfg.Enabled {
		return nil
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(100*time.Millisecond)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	log.Info().Int("rate", sm.cfg.SampleRate).Float64("volume", sm.cfg.MasterVolume).Msg("audio initialized")
	return nil
}

// Cleanup stops all sounds
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	// beep has no speaker close; an empty mixer leaves no artifacts
	sm.initialized = false
}

// SetMuted silences or restores playback
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = muted
}

// IsMuted reports whether playback is silenced
func (sm *SoundManager) IsMuted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// Play queues a sound effect on the mixer
func (sm *SoundManager) Play(st SoundType) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}

	streamer := GetSoundEffect(st, sm.cfg)
	if streamer == nil {
		if !sm.warned {
			log.Warn().Str("sound", st.String()).Msg("unknown sound effect")
			sm.warned = true
		}
		return
	}

	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
}

// Miss plays the wrong-key buzz
func (sm *SoundManager) Miss() { sm.Play(SoundMiss) }

// WordComplete plays the completion bell
func (sm *SoundManager) WordComplete() { sm.Play(SoundComplete) }

// Undo plays the abandon whoosh
func (sm *SoundManager) Undo() { sm.Play(SoundUndo) }

// GameOver plays the falling tone
func (sm *SoundManager) GameOver() { sm.Play(SoundGameOver) }
