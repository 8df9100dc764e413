package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/wordfall/constants"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// tone is one enveloped voice
type tone struct {
	wave     WaveType
	freq     float64 // Hz, ignored for noise
	duration time.Duration
	attack   time.Duration
	release  time.Duration
	gain     float64 // Share of the layer mix
}

// phrase lists layers played together; a sound plays its phrases in order
type phrase []tone

// soundTable describes every feedback sound
var soundTable = map[SoundType][]phrase{
	// Low saw buzz
	SoundMiss: {
		{{wave: WaveSaw, freq: 100, duration: constants.MissSoundDuration, attack: constants.MissSoundAttack, release: constants.MissSoundRelease, gain: 1}},
	},
	// A5 bell with a shorter octave overtone
	SoundComplete: {
		{
			{wave: WaveSine, freq: 880, duration: constants.CompleteSoundDuration, attack: constants.CompleteSoundAttack, release: constants.CompleteSoundFundamentalRelease, gain: 0.7},
			{wave: WaveSine, freq: 1760, duration: constants.CompleteSoundDuration, attack: constants.CompleteSoundAttack, release: constants.CompleteSoundOvertoneRelease, gain: 0.3},
		},
	},
	// Soft noise whoosh
	SoundUndo: {
		{{wave: WaveNoise, duration: constants.UndoSoundDuration, attack: constants.UndoSoundAttack, release: constants.UndoSoundRelease, gain: 1}},
	},
	// E4 falling to A3
	SoundGameOver: {
		{{wave: WaveSquare, freq: 329.63, duration: constants.GameOverSoundNote1Duration, attack: constants.GameOverSoundAttack, release: constants.GameOverSoundNote1Release, gain: 1}},
		{{wave: WaveSquare, freq: 220, duration: constants.GameOverSoundNote2Duration, attack: constants.GameOverSoundAttack, release: constants.GameOverSoundNote2Release, gain: 1}},
	},
}

// toneStreamer renders a tone sample by sample with its envelope applied
type toneStreamer struct {
	t       tone
	rate    beep.SampleRate
	total   int
	attack  int
	release int
	pos     int
	phase   float64
}

func newToneStreamer(t tone, rate beep.SampleRate) *toneStreamer {
	total := rate.N(t.duration)
	attack := min(rate.N(t.attack), total)
	release := min(rate.N(t.release), total-attack)
	return &toneStreamer{t: t, rate: rate, total: total, attack: attack, release: release}
}

func (s *toneStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	if s.pos >= s.total {
		return 0, false
	}
	for n = range samples {
		if s.pos >= s.total {
			return n, true
		}
		v := s.wave() * s.level() * s.t.gain
		samples[n][0], samples[n][1] = v, v
		s.pos++
	}
	return len(samples), true
}

func (s *toneStreamer) Err() error { return nil }

// wave returns the next raw sample in [-1, 1] and advances the phase
func (s *toneStreamer) wave() float64 {
	var v float64
	switch s.t.wave {
	case WaveSine:
		v = math.Sin(2 * math.Pi * s.phase)
	case WaveSquare:
		v = 1
		if s.phase >= 0.5 {
			v = -1
		}
	case WaveSaw:
		v = 2*s.phase - 1
	case WaveNoise:
		v = rand.Float64()*2 - 1
	}
	s.phase += s.t.freq / float64(s.rate)
	s.phase -= math.Floor(s.phase)
	return v
}

// level is the linear attack/release envelope at the current position
func (s *toneStreamer) level() float64 {
	if s.attack > 0 && s.pos < s.attack {
		return float64(s.pos) / float64(s.attack)
	}
	if left := s.total - s.pos; s.release > 0 && left <= s.release {
		return float64(left) / float64(s.release)
	}
	return 1
}

// length is the longest layer in samples
func (p phrase) length(rate beep.SampleRate) int {
	n := 0
	for _, t := range p {
		n = max(n, rate.N(t.duration))
	}
	return n
}

// soundLength is the number of samples a sound plays for
func soundLength(phrases []phrase, rate beep.SampleRate) int {
	n := 0
	for _, p := range phrases {
		n += p.length(rate)
	}
	return n
}

// newVolume scales s linearly; math.Log2(0) is -Inf so zero is made silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// GetSoundEffect builds a fresh streamer for the sound, or nil for unknown types
func GetSoundEffect(soundType SoundType, cfg *AudioConfig) beep.Streamer {
	phrases, ok := soundTable[soundType]
	if !ok {
		return nil
	}
	rate := beep.SampleRate(cfg.SampleRate)

	parts := make([]beep.Streamer, 0, len(phrases))
	for _, p := range phrases {
		layers := make([]beep.Streamer, 0, len(p))
		for _, t := range p {
			layers = append(layers, newToneStreamer(t, rate))
		}
		if len(layers) == 1 {
			parts = append(parts, layers[0])
			continue
		}
		parts = append(parts, beep.Take(p.length(rate), beep.Mix(layers...)))
	}

	return newVolume(beep.Seq(parts...), cfg.EffectVolumes[soundType]*cfg.MasterVolume)
}
