package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestNewLoggerWithoutFileIsSilent(t *testing.T) {
	logger, closer, err := newLogger(defaultConfig())
	if err != nil {
		t.Fatalf("newLogger: %v", err)
	}
	defer closer.Close()

	if logger.GetLevel() != zerolog.Disabled {
		t.Fatalf("logger level = %v, want disabled", logger.GetLevel())
	}
}

func TestNewLoggerWritesToFile(t *testing.T) {
	config := defaultConfig()
	config.LogFile = filepath.Join(t.TempDir(), "memorize.log")
	config.LogLevel = "warn"

	logger, closer, err := newLogger(config)
	if err != nil {
		t.Fatalf("newLogger: %v", err)
	}
	logger.Info().Msg("hidden")
	logger.Warn().Int("tiles", 4).Msg("shown")
	closer.Close()

	data, err := os.ReadFile(config.LogFile)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	out := string(data)
	if strings.Contains(out, "hidden") {
		t.Fatalf("info line written at warn level: %s", out)
	}
	if !strings.Contains(out, `"message":"shown"`) || !strings.Contains(out, `"tiles":4`) {
		t.Fatalf("warn line missing: %s", out)
	}
}

func TestNewLoggerBadLevelFallsBackToInfo(t *testing.T) {
	config := defaultConfig()
	config.LogFile = filepath.Join(t.TempDir(), "memorize.log")
	config.LogLevel = "chatty"

	logger, closer, err := newLogger(config)
	if err != nil {
		t.Fatalf("newLogger: %v", err)
	}
	defer closer.Close()

	if logger.GetLevel() != zerolog.InfoLevel {
		t.Fatalf("logger level = %v, want info", logger.GetLevel())
	}
}

func TestNewLoggerReportsUnopenableFile(t *testing.T) {
	config := defaultConfig()
	config.LogFile = filepath.Join(t.TempDir(), "missing", "memorize.log")

	_, closer, err := newLogger(config)
	if err == nil {
		t.Fatalf("expected error for a log file in a missing directory")
	}
	if closer == nil {
		t.Fatalf("closer is nil on error")
	}
}

func TestNewRandIsDeterministicWithSeed(t *testing.T) {
	a, b := newRand(11), newRand(11)
	for i := 0; i < 10; i++ {
		if x, y := a.Int(), b.Int(); x != y {
			t.Fatalf("draw %d differs: %d vs %d", i, x, y)
		}
	}
	if newRand(0) == nil {
		t.Fatalf("newRand(0) returned nil")
	}
}
