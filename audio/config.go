package audio

import (
	"encoding/json"
	"os"
	"strconv"

	"github.com/rs/zerolog/log"
)

// LoadAudioConfig loads audio configuration from environment variables
func LoadAudioConfig() *AudioConfig {
	cfg := DefaultAudioConfig()

	if enabled := os.Getenv("WORDFALL_AUDIO_ENABLED"); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		} else {
			log.Warn().Str("value", enabled).Msg("invalid WORDFALL_AUDIO_ENABLED, keeping default")
		}
	}

	// Master volume is 0-100 in the environment
	if volume := os.Getenv("WORDFALL_MASTER_VOLUME"); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.MasterVolume = clampVolume(float64(val) / 100.0)
		}
	}

	// Effect volumes: {"miss":0.5,"complete":1,...}
	if effectVols := os.Getenv("WORDFALL_SFX_VOLUMES"); effectVols != "" {
		var volumes map[string]float64
		if err := json.Unmarshal([]byte(effectVols), &volumes); err == nil {
			for st := SoundType(0); st < soundTypeCount; st++ {
				if v, ok := volumes[st.String()]; ok {
					cfg.EffectVolumes[st] = clampVolume(v)
				}
			}
		} else {
			log.Warn().Err(err).Msg("invalid WORDFALL_SFX_VOLUMES, keeping defaults")
		}
	}

	if sampleRate := os.Getenv("WORDFALL_SAMPLE_RATE"); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			cfg.SampleRate = val
		}
	}

	return cfg
}

func clampVolume(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
