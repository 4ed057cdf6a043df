package main

import "github.com/rs/zerolog"

type model struct {
	width          int
	height         int
	board          *Board
	config         *Config
	log            zerolog.Logger
	startVisible   bool
	input          string
	alert          string
	cursorX        int
	cursorY        int
	errorMessage   string
	successMessage string
	stats          sessionStats
	lastResult     string
	clipboardRead  func() (string, error)
	clipboardWrite func(string) error
}

type sessionStats struct {
	Played int
	Wins   int
	Losses int
}

// Timer messages carry the generation of the game that scheduled them so a
// tick from an abandoned game is dropped.
type memorizeDoneMsg struct {
	generation int
}

type shuffleTickMsg struct {
	generation int
}
