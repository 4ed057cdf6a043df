package main

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/rs/zerolog"
)

var (
	ErrInvalidTileCount = errors.New("tile count out of range")
	ErrGameInProgress   = errors.New("game already in progress")
	ErrBoardTooSmall    = errors.New("board too small for tiles")
)

// BoardSettings is the geometry a board lays its tiles out with.
type BoardSettings struct {
	TileWidth   int
	TileHeight  int
	Gap         int
	TopMargin   int
	MaxAttempts int
}

// Board owns the tiles of one game and walks them through
// Idle → LayingOut → Shuffling → AwaitingInput → Resolved.
// It never schedules anything itself; the caller drives the phases.
type Board struct {
	settings   BoardSettings
	rng        *rand.Rand
	log        zerolog.Logger
	width      int
	height     int
	tiles      []*Tile
	count      int
	phase      Phase
	outcome    Outcome
	cursor     int
	rounds     int
	generation int
}

func NewBoard(settings BoardSettings, rng *rand.Rand, logger zerolog.Logger) *Board {
	if settings.MaxAttempts <= 0 {
		settings.MaxAttempts = defaultMaxAttempts
	}
	return &Board{
		settings: settings,
		rng:      rng,
		log:      logger,
		phase:    PhaseIdle,
	}
}

func (b *Board) Resize(width, height int) {
	b.width = width
	b.height = height
}

func (b *Board) Size() (int, int) { return b.width, b.height }
func (b *Board) Phase() Phase { return b.phase }
func (b *Board) Outcome() Outcome { return b.outcome }
func (b *Board) Cursor() int { return b.cursor }
func (b *Board) Count() int { return b.count }
func (b *Board) Rounds() int { return b.rounds }
func (b *Board) Generation() int { return b.generation }
func (b *Board) Tiles() []*Tile { return b.tiles }

// Busy reports whether a game is between start and resolution.
func (b *Board) Busy() bool {
	return b.phase != PhaseIdle && b.phase != PhaseResolved
}

// Fits reports whether n tiles can be laid out and later shuffled inside the
// current board.
func (b *Board) Fits(n int) bool {
	s := b.settings
	for _, pos := range rowPackedPositions(n, s.TileWidth, s.TileHeight, s.Gap, s.TopMargin, b.width) {
		r := rect{X: pos.X, Y: pos.Y, W: s.TileWidth, H: s.TileHeight}
		if !r.within(b.width, b.height) {
			return false
		}
	}
	return len(gridSlots(s.TileWidth, s.TileHeight, s.Gap, b.width, b.height)) >= n
}

// StartGame discards the previous game and lays out n fresh tiles.
func (b *Board) StartGame(n int) error {
	if b.Busy() {
		return ErrGameInProgress
	}
	if n < minTiles || n > maxTiles {
		return fmt.Errorf("start game with %d tiles: %w", n, ErrInvalidTileCount)
	}
	if !b.Fits(n) {
		return fmt.Errorf("start game with %d tiles on %dx%d: %w", n, b.width, b.height, ErrBoardTooSmall)
	}

	b.reset()
	b.generation++
	b.count = n
	b.phase = PhaseLayingOut
	b.layout()

	b.log.Info().
		Int("tiles", n).
		Int("generation", b.generation).
		Int("width", b.width).
		Int("height", b.height).
		Msg("game started")
	return nil
}

func (b *Board) reset() {
	b.tiles = nil
	b.count = 0
	b.cursor = 0
	b.rounds = 0
	b.outcome = OutcomeNone
}

func (b *Board) layout() {
	s := b.settings
	positions := rowPackedPositions(b.count, s.TileWidth, s.TileHeight, s.Gap, s.TopMargin, b.width)
	b.tiles = make([]*Tile, 0, b.count)
	for i, pos := range positions {
		b.tiles = append(b.tiles, newTile(i, i+1, s.TileWidth, s.TileHeight, pos.X, pos.Y, b.rng))
	}
}

func (b *Board) BeginShuffle() {
	if b.phase != PhaseLayingOut {
		return
	}
	b.phase = PhaseShuffling
}

// ShuffleRound runs one tick of the shuffle phase. Each of the first N calls
// repositions every tile; the call after that hides the labels and opens the
// board for input. It returns true once the board is awaiting input.
func (b *Board) ShuffleRound() (bool, error) {
	if b.phase != PhaseShuffling {
		return b.phase == PhaseAwaitingInput, nil
	}

	if b.rounds >= b.count {
		for _, tile := range b.tiles {
			tile.HideLabel()
		}
		b.cursor = 0
		b.phase = PhaseAwaitingInput
		b.log.Debug().Int("generation", b.generation).Msg("labels hidden")
		return true, nil
	}

	if err := b.scramble(); err != nil {
		return false, err
	}
	b.rounds++
	b.log.Debug().
		Int("generation", b.generation).
		Int("round", b.rounds).
		Msg("shuffle round")
	return false, nil
}

func (b *Board) scramble() error {
	for i, tile := range b.tiles {
		pos, ok := sampleFree(b.rng, b.tiles, i, b.width, b.height, b.settings.MaxAttempts)
		if !ok {
			return b.scrambleIntoSlots()
		}
		tile.SetPosition(pos.X, pos.Y)
	}
	return nil
}

func (b *Board) scrambleIntoSlots() error {
	s := b.settings
	slots := gridSlots(s.TileWidth, s.TileHeight, s.Gap, b.width, b.height)
	if !assignSlots(b.rng, b.tiles, slots) {
		return fmt.Errorf("shuffle %d tiles on %dx%d: %w", len(b.tiles), b.width, b.height, ErrBoardTooSmall)
	}
	b.log.Warn().
		Int("generation", b.generation).
		Int("round", b.rounds+1).
		Int("slots", len(slots)).
		Msg("random placement exhausted, using grid slots")
	return nil
}

// Click checks the clicked tile against the next label in original order.
func (b *Board) Click(id int) ClickOutcome {
	if b.phase != PhaseAwaitingInput || id < 0 || id >= len(b.tiles) {
		return ClickIgnored
	}
	tile := b.tiles[id]
	if tile.Disabled {
		return ClickIgnored
	}

	if tile.Label != b.tiles[b.cursor].Label {
		for _, t := range b.tiles {
			t.ShowLabel()
		}
		b.resolve(OutcomeFailure)
		return ClickWrong
	}

	tile.ShowLabel()
	b.cursor++
	if b.cursor == b.count {
		b.resolve(OutcomeSuccess)
		return ClickSolved
	}
	return ClickCorrect
}

func (b *Board) resolve(outcome Outcome) {
	for _, tile := range b.tiles {
		tile.Disable()
	}
	b.outcome = outcome
	b.phase = PhaseResolved
	b.log.Info().
		Int("generation", b.generation).
		Str("outcome", outcome.String()).
		Int("correct", b.cursor).
		Msg("game resolved")
}

// Abort drops an unfinished game and returns the board to Idle.
func (b *Board) Abort() {
	if !b.Busy() {
		return
	}
	b.log.Warn().Int("generation", b.generation).Str("phase", b.phase.String()).Msg("game aborted")
	b.reset()
	b.phase = PhaseIdle
}

// TileAt returns the ID of the topmost tile covering (x, y), or -1.
func (b *Board) TileAt(x, y int) int {
	for i := len(b.tiles) - 1; i >= 0; i-- {
		if b.tiles[i].Contains(x, y) {
			return b.tiles[i].ID
		}
	}
	return -1
}

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "IDLE"
	case PhaseLayingOut:
		return "MEMORIZE"
	case PhaseShuffling:
		return "SHUFFLE"
	case PhaseAwaitingInput:
		return "RECALL"
	case PhaseResolved:
		return "DONE"
	default:
		return "UNKNOWN"
	}
}

func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomeFailure:
		return "failure"
	default:
		return "none"
	}
}
