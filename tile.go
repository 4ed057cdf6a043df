package main

import (
	"math/rand"
	"strconv"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Tile is one numbered game piece. Coordinates are cells relative to the
// top-left corner of the play area.
type Tile struct {
	ID           int
	Label        int
	X            int
	Y            int
	Width        int
	Height       int
	Color        string
	LabelVisible bool
	Disabled     bool
}

func newTile(id, label, width, height, x, y int, rng *rand.Rand) *Tile {
	tile := &Tile{
		ID:           id,
		Label:        label,
		Width:        width,
		Height:       height,
		Color:        randomColor(rng),
		LabelVisible: true,
	}
	tile.SetPosition(x, y)
	return tile
}

// SetPosition does no bounds checking; the board only hands out valid spots.
func (t *Tile) SetPosition(x, y int) {
	t.X = x
	t.Y = y
}

func (t *Tile) HideLabel() {
	t.LabelVisible = false
}

func (t *Tile) ShowLabel() {
	t.LabelVisible = true
}

func (t *Tile) Disable() {
	t.Disabled = true
}

func (t *Tile) Bounds() rect {
	return rect{X: t.X, Y: t.Y, W: t.Width, H: t.Height}
}

func (t *Tile) Contains(x, y int) bool {
	return x >= t.X && x < t.X+t.Width && y >= t.Y && y < t.Y+t.Height
}

func (t *Tile) DisplayText() string {
	if !t.LabelVisible {
		return ""
	}
	return strconv.Itoa(t.Label)
}

// TextColor picks black or white for the label depending on how light the
// tile color is.
func (t *Tile) TextColor() string {
	c, err := colorful.Hex(t.Color)
	if err != nil {
		return "#000000"
	}
	l, _, _ := c.Lab()
	if l > 0.6 {
		return "#000000"
	}
	return "#ffffff"
}

func randomColor(rng *rand.Rand) string {
	c := colorful.Color{R: rng.Float64(), G: rng.Float64(), B: rng.Float64()}
	return c.Hex()
}
