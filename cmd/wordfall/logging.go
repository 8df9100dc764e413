package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/lixenwraith/wordfall/config"
)

const (
	logDir      = "logs"
	logFileName = "wordfall.log"
	maxLogSize  = 10 * 1024 * 1024 // 10MB
)

// setupLogging points the global logger at logs/wordfall.log when debug is on
// The terminal owns stdout and stderr, so logging is discarded otherwise
// Returns the open file for the caller to close, or nil
func setupLogging(debug bool) *os.File {
	if !debug {
		log.Logger = zerolog.Nop()
		return nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		log.Logger = zerolog.Nop()
		return nil
	}

	logPath := filepath.Join(logDir, logFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(logDir, fmt.Sprintf("wordfall_%s.log", time.Now().Format("20060102_150405")))
		_ = os.Rename(logPath, rotated)
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.Logger = zerolog.Nop()
		return nil
	}

	log.Logger = zerolog.New(f).Level(config.LogLevel()).With().Timestamp().Logger()
	return f
}
