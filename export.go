package main

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"time"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
)

var errNothingToExport = errors.New("nothing to export")

// Pixels per terminal cell in PNG exports.
const (
	charWidth  = 8.0
	charHeight = 16.0
)

func (m *model) export(kind ExportType) {
	stamp := time.Now().Format("20060102-150405")

	var filename string
	var err error
	switch kind {
	case ExportPNG:
		filename = m.config.GetSavePath(fmt.Sprintf("memorize-%s.png", stamp))
		err = exportPNG(m.board, filename)
	case ExportVisualTXT:
		filename = m.config.GetSavePath(fmt.Sprintf("memorize-%s.txt", stamp))
		err = exportVisualTXT(m.board, filename)
	}

	if err != nil {
		m.log.Error().Err(err).Str("file", filename).Msg("export failed")
		m.successMessage = ""
		m.errorMessage = err.Error()
		return
	}
	m.log.Info().Str("file", filename).Msg("export written")
	m.errorMessage = ""
	m.successMessage = "Saved " + filename
}

// exportVisualTXT writes the play area exactly as drawn, without colors.
func exportVisualTXT(board *Board, filename string) error {
	if len(board.Tiles()) == 0 {
		return errNothingToExport
	}

	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	for _, line := range plainLines(renderBoard(board, 0, 0, false, "")) {
		if _, err := fmt.Fprintln(file, line); err != nil {
			return err
		}
	}
	return nil
}

func exportPNG(board *Board, filename string) error {
	if len(board.Tiles()) == 0 {
		return errNothingToExport
	}

	width, height := board.Size()
	imageWidth := int(float64(width) * charWidth)
	imageHeight := int(float64(height) * charHeight)
	if imageWidth <= 0 || imageHeight <= 0 {
		return errNothingToExport
	}

	dc := gg.NewContext(imageWidth, imageHeight)
	dc.SetColor(color.White)
	dc.Clear()

	ttfFont, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return fmt.Errorf("failed to parse font: %v", err)
	}
	face := truetype.NewFace(ttfFont, &truetype.Options{
		Size:    24,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	dc.SetFontFace(face)

	for _, tile := range board.Tiles() {
		drawTilePNG(dc, tile)
	}

	return dc.SavePNG(filename)
}

func drawTilePNG(dc *gg.Context, tile *Tile) {
	x := float64(tile.X) * charWidth
	y := float64(tile.Y) * charHeight
	w := float64(tile.Width) * charWidth
	h := float64(tile.Height) * charHeight

	dc.SetHexColor(tile.Color)
	dc.DrawRectangle(x, y, w, h)
	dc.Fill()

	dc.SetLineWidth(1.0)
	dc.SetColor(color.Black)
	dc.DrawRectangle(x, y, w, h)
	dc.Stroke()

	if label := tile.DisplayText(); label != "" {
		dc.SetHexColor(tile.TextColor())
		dc.DrawStringAnchored(label, x+w/2, y+h/2, 0.5, 0.5)
	}
}
