package main

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
)

const (
	headerHeight = 2
	statusHeight = 1

	inputPrompt = "Tiles (3-7): "
	goLabel     = "[ Go ]"
)

// boardDimensions is the part of the terminal left for the play area once
// the header and status line are taken.
func boardDimensions(width, height int) (int, int) {
	return max(width, 0), max(height-headerHeight-statusHeight, 0)
}

type cellStyle struct {
	bg    string
	fg    string
	faint bool
	bold  bool
}

type cell struct {
	ch    rune
	style cellStyle
}

var (
	alertStyle  = cellStyle{bg: "#1f2335", fg: "#ffffff", bold: true}
	cursorStyle = cellStyle{fg: "#ffcc00", bold: true}
)

func newGrid(width, height int) [][]cell {
	grid := make([][]cell, height)
	for y := range grid {
		grid[y] = make([]cell, width)
		for x := range grid[y] {
			grid[y][x] = cell{ch: ' '}
		}
	}
	return grid
}

func setCell(grid [][]cell, x, y int, ch rune, style cellStyle) {
	if y < 0 || y >= len(grid) || x < 0 || x >= len(grid[y]) {
		return
	}
	grid[y][x] = cell{ch: ch, style: style}
}

// renderBoard draws the play area. showCursor marks the keyboard cursor and
// alert, when non-empty, is drawn as a box over the middle of the board.
func renderBoard(board *Board, cursorX, cursorY int, showCursor bool, alert string) [][]cell {
	width, height := board.Size()
	grid := newGrid(width, height)

	for _, tile := range board.Tiles() {
		drawTile(grid, tile)
	}

	if showCursor {
		style := cursorStyle
		if id := board.TileAt(cursorX, cursorY); id != -1 {
			tile := board.Tiles()[id]
			style = cellStyle{bg: tile.Color, fg: tile.TextColor(), bold: true}
		}
		setCell(grid, cursorX, cursorY, '█', style)
	}

	if alert != "" {
		drawAlert(grid, alert)
	}
	return grid
}

func drawTile(grid [][]cell, tile *Tile) {
	style := cellStyle{bg: tile.Color, fg: tile.TextColor(), faint: tile.Disabled, bold: true}
	for y := tile.Y; y < tile.Y+tile.Height; y++ {
		for x := tile.X; x < tile.X+tile.Width; x++ {
			setCell(grid, x, y, ' ', style)
		}
	}

	label := tile.DisplayText()
	if label == "" {
		return
	}
	labelY := tile.Y + tile.Height/2
	labelX := tile.X + (tile.Width-len(label))/2
	for i, ch := range label {
		setCell(grid, labelX+i, labelY, ch, style)
	}
}

func drawAlert(grid [][]cell, message string) {
	if len(grid) == 0 {
		return
	}
	lines := []string{"", message, "", "press any key"}
	innerWidth := 0
	for _, line := range lines {
		innerWidth = max(innerWidth, utf8.RuneCountInString(line))
	}
	boxWidth := innerWidth + 4
	boxHeight := len(lines) + 2
	left := (len(grid[0]) - boxWidth) / 2
	top := (len(grid) - boxHeight) / 2

	for y := 0; y < boxHeight; y++ {
		for x := 0; x < boxWidth; x++ {
			ch := ' '
			switch {
			case y == 0 && x == 0:
				ch = '╭'
			case y == 0 && x == boxWidth-1:
				ch = '╮'
			case y == boxHeight-1 && x == 0:
				ch = '╰'
			case y == boxHeight-1 && x == boxWidth-1:
				ch = '╯'
			case y == 0 || y == boxHeight-1:
				ch = '─'
			case x == 0 || x == boxWidth-1:
				ch = '│'
			}
			setCell(grid, left+x, top+y, ch, alertStyle)
		}
	}

	for i, line := range lines {
		offset := (innerWidth - utf8.RuneCountInString(line)) / 2
		col := 0
		for _, ch := range line {
			setCell(grid, left+2+offset+col, top+1+i, ch, alertStyle)
			col++
		}
	}
}

// plainLines flattens the grid without styling, for text export and tests.
func plainLines(grid [][]cell) []string {
	lines := make([]string, len(grid))
	for y, row := range grid {
		runes := make([]rune, len(row))
		for x, c := range row {
			runes[x] = c.ch
		}
		lines[y] = string(runes)
	}
	return lines
}

// styledLines renders each row as runs of equally styled cells.
func styledLines(grid [][]cell) []string {
	styles := map[cellStyle]lipgloss.Style{}
	lookup := func(cs cellStyle) lipgloss.Style {
		if s, ok := styles[cs]; ok {
			return s
		}
		s := lipgloss.NewStyle().Bold(cs.bold).Faint(cs.faint)
		if cs.bg != "" {
			s = s.Background(lipgloss.Color(cs.bg))
		}
		if cs.fg != "" {
			s = s.Foreground(lipgloss.Color(cs.fg))
		}
		styles[cs] = s
		return s
	}

	lines := make([]string, len(grid))
	for y, row := range grid {
		var line strings.Builder
		start := 0
		for x := 1; x <= len(row); x++ {
			if x < len(row) && row[x].style == row[start].style {
				continue
			}
			run := make([]rune, 0, x-start)
			for _, c := range row[start:x] {
				run = append(run, c.ch)
			}
			if row[start].style == (cellStyle{}) {
				line.WriteString(string(run))
			} else {
				line.WriteString(lookup(row[start].style).Render(string(run)))
			}
			start = x
		}
		lines[y] = line.String()
	}
	return lines
}

func (m model) inputField() string {
	runes := []rune(m.input)
	field := string(runes) + strings.Repeat("_", max(inputFieldWidth-len(runes), 0))
	return "[" + field + "]"
}

// goButtonBounds returns the half-open column range of the Go control on the
// header line.
func (m model) goButtonBounds() (int, int) {
	x0 := utf8.RuneCountInString(inputPrompt) + utf8.RuneCountInString(m.inputField()) + 2
	return x0, x0 + len(goLabel)
}

func (m model) headerView() string {
	title := lipgloss.NewStyle().Bold(true)
	if m.startVisible {
		button := lipgloss.NewStyle().Bold(true).Reverse(true)
		return title.Render(inputPrompt) + m.inputField() + "  " + button.Render(goLabel)
	}

	header := fmt.Sprintf("%s | %d tiles", m.board.Phase(), m.board.Count())
	switch m.board.Phase() {
	case PhaseShuffling:
		header += fmt.Sprintf(" | round %d/%d", m.board.Rounds(), m.board.Count())
	case PhaseAwaitingInput:
		header += fmt.Sprintf(" | %d/%d found", m.board.Cursor(), m.board.Count())
	}
	return title.Render(header)
}

func (m model) statusView() string {
	status := fmt.Sprintf("Played %d | Won %d | Lost %d", m.stats.Played, m.stats.Wins, m.stats.Losses)
	if m.successMessage != "" {
		status += " | " + m.successMessage
	}
	if m.errorMessage != "" {
		status += " | " + lipgloss.NewStyle().Foreground(lipgloss.Color("#ff5555")).Render("ERROR: "+m.errorMessage)
	} else if m.successMessage == "" {
		if m.startVisible {
			status += " | Enter=Go ctrl+s=PNG ctrl+t=TXT ctrl+y=copy result esc=quit"
		} else {
			status += " | esc=quit"
		}
	}
	return status
}

func (m model) View() string {
	width, _ := m.board.Size()

	var result strings.Builder
	result.WriteString(m.headerView())
	result.WriteString("\n")
	result.WriteString(strings.Repeat("─", width))
	result.WriteString("\n")

	showCursor := m.board.Phase() == PhaseAwaitingInput && m.alert == ""
	for _, line := range styledLines(renderBoard(m.board, m.cursorX, m.cursorY, showCursor, m.alert)) {
		result.WriteString(line)
		result.WriteString("\n")
	}

	result.WriteString(m.statusView())
	return result.String()
}
