package audio

// SoundType represents the feedback sound effects
type SoundType int

const (
	SoundMiss     SoundType = iota // Wrong or unmatched keystroke
	SoundComplete                  // Word typed to the end
	SoundUndo                      // Active word abandoned
	SoundGameOver                  // Word reached the floor
	soundTypeCount
)

// String returns the key used for the sound in WORDFALL_SFX_VOLUMES
func (st SoundType) String() string {
	switch st {
	case SoundMiss:
		return "miss"
	case SoundComplete:
		return "complete"
	case SoundUndo:
		return "undo"
	case SoundGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// AudioConfig holds audio settings
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64 // 0.0-1.0
	EffectVolumes map[SoundType]float64
	SampleRate    int
}

// DefaultAudioConfig returns the built-in audio settings
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: 0.5,
		EffectVolumes: map[SoundType]float64{
			SoundMiss:     0.8,
			SoundComplete: 1.0,
			SoundUndo:     0.6,
			SoundGameOver: 0.7,
		},
		SampleRate: 44100,
	}
}
