package main

import (
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
)

func newModel(config *Config, logger zerolog.Logger, rng *rand.Rand) model {
	return model{
		board:          NewBoard(config.BoardSettings(), rng, logger),
		config:         config,
		log:            logger,
		startVisible:   true,
		clipboardRead:  readClipboardText,
		clipboardWrite: writeClipboardText,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.board.Resize(boardDimensions(m.width, m.height))
		if m.board.Busy() && !m.board.Fits(m.board.Count()) {
			m.abortGame(ErrBoardTooSmall)
		}
		m.ensureCursorInBounds()
		return m, nil

	case memorizeDoneMsg:
		if msg.generation != m.board.Generation() || m.board.Phase() != PhaseLayingOut {
			return m, nil
		}
		m.board.BeginShuffle()
		return m, m.shuffleTick()

	case shuffleTickMsg:
		if msg.generation != m.board.Generation() || m.board.Phase() != PhaseShuffling {
			return m, nil
		}
		ready, err := m.board.ShuffleRound()
		if err != nil {
			m.abortGame(err)
			return m, nil
		}
		if ready {
			m.successMessage = "Click the tiles in their original order"
			return m, nil
		}
		return m, m.shuffleTick()

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == "ctrl+c" {
		return m, tea.Quit
	}

	if m.alert != "" {
		m.alert = ""
		return m, nil
	}

	switch key {
	case "esc":
		return m, tea.Quit
	case "ctrl+s":
		m.export(ExportPNG)
		return m, nil
	case "ctrl+t":
		m.export(ExportVisualTXT)
		return m, nil
	case "ctrl+y":
		m.copyResult()
		return m, nil
	case "ctrl+v":
		if m.startVisible {
			m.pasteInput()
		}
		return m, nil
	}

	if m.startVisible {
		switch msg.Type {
		case tea.KeyEnter:
			return m, m.startNewGame()
		case tea.KeyBackspace:
			if runes := []rune(m.input); len(runes) > 0 {
				m.input = string(runes[:len(runes)-1])
			}
		case tea.KeySpace:
			m.input = truncateRunes(m.input+" ", inputFieldWidth)
		case tea.KeyRunes:
			m.input = truncateRunes(m.input+string(msg.Runes), inputFieldWidth)
		}
		return m, nil
	}

	if m.board.Phase() == PhaseAwaitingInput {
		if msg.Type == tea.KeyEnter || msg.Type == tea.KeySpace || key == " " {
			m.clickTile(m.board.TileAt(m.cursorX, m.cursorY))
			return m, nil
		}
		m.handleCursorMove(key, m.getMoveSpeed(key))
	}
	return m, nil
}

func (m model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Type != tea.MouseLeft {
		return m, nil
	}

	if m.alert != "" {
		m.alert = ""
		return m, nil
	}

	if m.startVisible && msg.Y == 0 {
		x0, x1 := m.goButtonBounds()
		if msg.X >= x0 && msg.X < x1 {
			return m, m.startNewGame()
		}
		return m, nil
	}

	if m.board.Phase() != PhaseAwaitingInput {
		return m, nil
	}
	bx, by := msg.X, msg.Y-headerHeight
	m.cursorX, m.cursorY = bx, by
	m.ensureCursorInBounds()
	m.clickTile(m.board.TileAt(bx, by))
	return m, nil
}

// validateInput accepts a whole number from minTiles to maxTiles.
func validateInput(raw string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("parse tile count %q: %w", raw, ErrInvalidTileCount)
	}
	if n < minTiles || n > maxTiles {
		return 0, fmt.Errorf("tile count %d: %w", n, ErrInvalidTileCount)
	}
	return n, nil
}

// startNewGame leaves every piece of state alone unless the board accepted
// the new game.
func (m *model) startNewGame() tea.Cmd {
	n, err := validateInput(m.input)
	if err != nil {
		m.log.Debug().Err(err).Msg("input rejected")
		m.alert = msgInvalidInput
		return nil
	}

	if err := m.board.StartGame(n); err != nil {
		m.log.Warn().Err(err).Int("tiles", n).Msg("start rejected")
		switch {
		case errors.Is(err, ErrBoardTooSmall):
			m.alert = msgBoardTooSmall
		case errors.Is(err, ErrGameInProgress):
			m.errorMessage = "A game is already running"
		default:
			m.alert = err.Error()
		}
		return nil
	}

	m.startVisible = false
	m.stats.Played++
	m.errorMessage = ""
	m.successMessage = fmt.Sprintf("Memorize the order of %d tiles", n)
	m.cursorX, m.cursorY = 0, 0
	return m.memorizeDelay(n)
}

func (m *model) memorizeDelay(n int) tea.Cmd {
	generation := m.board.Generation()
	return tea.Tick(time.Duration(n)*m.config.MemorizePerTile, func(time.Time) tea.Msg {
		return memorizeDoneMsg{generation: generation}
	})
}

func (m *model) shuffleTick() tea.Cmd {
	generation := m.board.Generation()
	return tea.Tick(m.config.ShuffleInterval, func(time.Time) tea.Msg {
		return shuffleTickMsg{generation: generation}
	})
}

func (m *model) clickTile(id int) {
	switch m.board.Click(id) {
	case ClickCorrect:
		m.successMessage = fmt.Sprintf("%d of %d", m.board.Cursor(), m.board.Count())
	case ClickSolved:
		m.stats.Wins++
		m.finishGame(msgSuccess)
	case ClickWrong:
		m.stats.Losses++
		m.finishGame(msgWrongOrder)
	}
}

func (m *model) finishGame(message string) {
	m.alert = message
	m.startVisible = true
	m.successMessage = ""
	m.lastResult = fmt.Sprintf("Memorize: %s %d tiles, %d/%d in order (session: %d won of %d)",
		message, m.board.Count(), m.board.Cursor(), m.board.Count(), m.stats.Wins, m.stats.Played)
}

func (m *model) abortGame(err error) {
	m.log.Warn().Err(err).Msg("game stopped")
	m.board.Abort()
	m.startVisible = true
	m.successMessage = ""
	if errors.Is(err, ErrBoardTooSmall) {
		m.alert = msgBoardTooSmall
		return
	}
	m.alert = err.Error()
}

func (m *model) copyResult() {
	if m.lastResult == "" {
		m.errorMessage = "No finished game to copy"
		return
	}
	if err := m.clipboardWrite(m.lastResult); err != nil {
		m.log.Error().Err(err).Msg("clipboard write")
		m.errorMessage = "Clipboard unavailable"
		return
	}
	m.errorMessage = ""
	m.successMessage = "Result copied"
}

func (m *model) pasteInput() {
	text, err := m.clipboardRead()
	if err != nil {
		m.log.Error().Err(err).Msg("clipboard read")
		m.errorMessage = "Clipboard unavailable"
		return
	}
	m.errorMessage = ""
	m.input = cleanClipboardText(text)
}
