package main

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// newLogger writes to the configured log file. The terminal belongs to the
// game, so with no file configured nothing is logged at all.
func newLogger(config *Config) (zerolog.Logger, io.Closer, error) {
	if config.LogFile == "" {
		return zerolog.Nop(), nopCloser{}, nil
	}

	file, err := os.OpenFile(config.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return zerolog.Nop(), nopCloser{}, fmt.Errorf("open log file: %w", err)
	}

	level, err := zerolog.ParseLevel(config.LogLevel)
	if err != nil || config.LogLevel == "" {
		level = zerolog.InfoLevel
	}

	logger := zerolog.New(file).Level(level).With().Timestamp().Logger()
	return logger, file, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// newRand seeds from the config, falling back to crypto/rand and then the
// clock when no seed is set.
func newRand(seed int64) *rand.Rand {
	if seed == 0 {
		var b [8]byte
		if _, err := crand.Read(b[:]); err == nil {
			seed = int64(binary.LittleEndian.Uint64(b[:]))
		} else {
			seed = time.Now().UnixNano()
		}
	}
	return rand.New(rand.NewSource(seed))
}
