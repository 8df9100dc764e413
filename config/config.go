// Package config loads wordfall settings from defaults, an optional YAML
// file and WORDFALL_* environment variables, in that order
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/wordfall/constants"
	"github.com/lixenwraith/wordfall/game"
)

// Config is the full set of tunables
type Config struct {
	Pool  PoolConfig  `yaml:"pool"`
	Spawn SpawnConfig `yaml:"spawn"`
	Fall  FallConfig  `yaml:"fall"`

	// WordsFile replaces the embedded word list when set
	WordsFile string `yaml:"wordsFile"`
	// StatsApp names the gdata storage directory; empty disables persistence
	StatsApp string `yaml:"statsApp"`
	// Seed fixes the random source; zero seeds from the clock
	Seed int64 `yaml:"seed"`
}

// PoolConfig bounds the pending word pool
type PoolConfig struct {
	Capacity int `yaml:"capacity"`
}

// SpawnConfig controls word spawning
type SpawnConfig struct {
	MinDelay        time.Duration `yaml:"minDelay"`
	MaxDelay        time.Duration `yaml:"maxDelay"`
	MaxWordLength   int           `yaml:"maxWordLength"`
	MaxDrawAttempts int           `yaml:"maxDrawAttempts"`
}

// FallConfig controls falling speed in rows per second
type FallConfig struct {
	MinSpeed float64 `yaml:"minSpeed"`
	MaxSpeed float64 `yaml:"maxSpeed"`
	Gravity  float64 `yaml:"gravity"`
}

// Default returns the built-in settings
func Default() *Config {
	return &Config{
		Pool: PoolConfig{Capacity: constants.DefaultPoolCapacity},
		Spawn: SpawnConfig{
			MinDelay:        constants.SpawnMinDelay,
			MaxDelay:        constants.SpawnMaxDelay,
			MaxWordLength:   constants.DefaultMaxWordLength,
			MaxDrawAttempts: game.DefaultMaxDrawAttempts,
		},
		Fall: FallConfig{
			MinSpeed: constants.FallMinSpeed,
			MaxSpeed: constants.FallMaxSpeed,
			Gravity:  constants.FallGravity,
		},
		StatsApp: "wordfall",
	}
}

// Load builds a config from defaults, the YAML file at path (skipped when
// empty) and environment overrides, then validates it
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config YAML: %w", err)
		}
		log.Debug().Str("path", path).Msg("config file loaded")
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	c.Pool.Capacity = getEnvInt("WORDFALL_POOL_CAPACITY", c.Pool.Capacity)
	c.Spawn.MinDelay = getEnvDuration("WORDFALL_SPAWN_MIN_DELAY", c.Spawn.MinDelay)
	c.Spawn.MaxDelay = getEnvDuration("WORDFALL_SPAWN_MAX_DELAY", c.Spawn.MaxDelay)
	c.Spawn.MaxWordLength = getEnvInt("WORDFALL_MAX_WORD_LENGTH", c.Spawn.MaxWordLength)
	c.Fall.MinSpeed = getEnvFloat("WORDFALL_FALL_MIN_SPEED", c.Fall.MinSpeed)
	c.Fall.MaxSpeed = getEnvFloat("WORDFALL_FALL_MAX_SPEED", c.Fall.MaxSpeed)
	c.Fall.Gravity = getEnvFloat("WORDFALL_FALL_GRAVITY", c.Fall.Gravity)
	if v := os.Getenv("WORDFALL_WORDS_FILE"); v != "" {
		c.WordsFile = v
	}
	if v, ok := os.LookupEnv("WORDFALL_STATS_APP"); ok {
		c.StatsApp = v
	}
}

// Validate rejects settings the game cannot run with
func (c *Config) Validate() error {
	var errs []error

	if c.Pool.Capacity < 1 || c.Pool.Capacity > constants.MaxPoolCapacity {
		errs = append(errs, fmt.Errorf("pool capacity must be between 1 and %d, got %d", constants.MaxPoolCapacity, c.Pool.Capacity))
	}
	if c.Spawn.MinDelay <= 0 {
		errs = append(errs, fmt.Errorf("spawn minDelay must be positive, got %v", c.Spawn.MinDelay))
	}
	if c.Spawn.MaxDelay < c.Spawn.MinDelay {
		errs = append(errs, fmt.Errorf("spawn maxDelay %v is below minDelay %v", c.Spawn.MaxDelay, c.Spawn.MinDelay))
	}
	if c.Spawn.MaxWordLength < 1 {
		errs = append(errs, fmt.Errorf("maxWordLength must be at least 1, got %d", c.Spawn.MaxWordLength))
	}
	if c.Spawn.MaxDrawAttempts < 1 {
		errs = append(errs, fmt.Errorf("maxDrawAttempts must be at least 1, got %d", c.Spawn.MaxDrawAttempts))
	}
	if c.Fall.MinSpeed < 0 || c.Fall.MaxSpeed < c.Fall.MinSpeed {
		errs = append(errs, fmt.Errorf("fall speeds must satisfy 0 <= minSpeed <= maxSpeed, got %v..%v", c.Fall.MinSpeed, c.Fall.MaxSpeed))
	}
	if c.Fall.MaxSpeed == 0 && c.Fall.Gravity <= 0 {
		errs = append(errs, errors.New("words never fall with zero speed and no gravity"))
	}
	if c.Fall.Gravity < 0 {
		errs = append(errs, fmt.Errorf("gravity must not be negative, got %v", c.Fall.Gravity))
	}

	return errors.Join(errs...)
}

// LogLevel reads WORDFALL_LOG_LEVEL for the binaries' loggers
// Unset or unparsable values give debug, since logging is only on with -debug
func LogLevel() zerolog.Level {
	if v := os.Getenv("WORDFALL_LOG_LEVEL"); v != "" {
		if level, err := zerolog.ParseLevel(v); err == nil && level != zerolog.NoLevel {
			return level
		}
	}
	return zerolog.DebugLevel
}

// getEnvDuration reads a time.Duration from the environment or returns a fallback
func getEnvDuration(key string, fallback time.Duration) time.Duration {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	d, err := time.ParseDuration(val)
	if err != nil {
		log.Warn().Str("key", key).Err(err).Dur("default", fallback).Msg("invalid duration, using default")
		return fallback
	}
	return d
}

// getEnvInt reads an int from the environment or returns a fallback
func getEnvInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	i, err := strconv.Atoi(val)
	if err != nil {
		log.Warn().Str("key", key).Err(err).Int("default", fallback).Msg("invalid int, using default")
		return fallback
	}
	return i
}

func getEnvFloat(key string, fallback float64) float64 {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(val, 64)
	if err != nil {
		log.Warn().Str("key", key).Err(err).Float64("default", fallback).Msg("invalid float, using default")
		return fallback
	}
	return f
}
