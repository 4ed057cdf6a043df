package main

import "time"

type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLayingOut
	PhaseShuffling
	PhaseAwaitingInput
	PhaseResolved
)

type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeSuccess
	OutcomeFailure
)

type ClickOutcome int

const (
	ClickIgnored ClickOutcome = iota
	ClickCorrect
	ClickSolved
	ClickWrong
)

type ExportType int

const (
	ExportPNG ExportType = iota
	ExportVisualTXT
)

const (
	minTiles = 3
	maxTiles = 7

	defaultTileWidth       = 10
	defaultTileHeight      = 5
	defaultGap             = 1
	defaultTopMargin       = 1
	defaultMemorizePerTile = time.Second
	defaultShuffleInterval = 2 * time.Second
	defaultMaxAttempts     = 1000

	inputFieldWidth = 4
)

const (
	msgInvalidInput  = "Please enter a number between 3 and 7."
	msgSuccess       = "Excellent memory!"
	msgWrongOrder    = "Wrong order!"
	msgBoardTooSmall = "The window is too small for that many tiles. Enlarge it and try again."
)
