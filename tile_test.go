package main

import (
	"math/rand"
	"regexp"
	"testing"
)

var hexColor = regexp.MustCompile(`^#[0-9a-f]{6}$`)

func TestNewTile(t *testing.T) {
	tile := newTile(2, 3, 10, 5, 7, 4, rand.New(rand.NewSource(1)))

	if tile.ID != 2 || tile.Label != 3 {
		t.Fatalf("tile id/label = %d/%d, want 2/3", tile.ID, tile.Label)
	}
	if tile.X != 7 || tile.Y != 4 || tile.Width != 10 || tile.Height != 5 {
		t.Fatalf("tile geometry = %+v", tile.Bounds())
	}
	if !tile.LabelVisible || tile.Disabled {
		t.Fatalf("new tile visible=%v disabled=%v", tile.LabelVisible, tile.Disabled)
	}
	if !hexColor.MatchString(tile.Color) {
		t.Fatalf("tile color = %q, want #rrggbb", tile.Color)
	}
}

func TestTileColorsVary(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		seen[newTile(i, i+1, 10, 5, 0, 0, rng).Color] = true
	}
	if len(seen) < 15 {
		t.Fatalf("expected varied colors, got %d distinct of 20", len(seen))
	}
}

func TestTileLabelVisibility(t *testing.T) {
	tile := newTile(0, 6, 10, 5, 0, 0, rand.New(rand.NewSource(1)))
	if got := tile.DisplayText(); got != "6" {
		t.Fatalf("DisplayText = %q, want %q", got, "6")
	}

	tile.HideLabel()
	if got := tile.DisplayText(); got != "" {
		t.Fatalf("DisplayText after HideLabel = %q, want empty", got)
	}
	if tile.Label != 6 || tile.X != 0 || tile.Y != 0 {
		t.Fatalf("HideLabel changed tile identity or position: %+v", tile)
	}

	tile.ShowLabel()
	if got := tile.DisplayText(); got != "6" {
		t.Fatalf("DisplayText after ShowLabel = %q, want %q", got, "6")
	}
}

func TestTileSetPositionAndContains(t *testing.T) {
	tile := newTile(0, 1, 10, 5, 0, 0, rand.New(rand.NewSource(1)))
	tile.SetPosition(20, 3)

	tcs := []struct {
		x, y int
		want bool
	}{
		{20, 3, true},
		{29, 7, true},
		{30, 3, false},
		{20, 8, false},
		{19, 3, false},
	}
	for _, tc := range tcs {
		if got := tile.Contains(tc.x, tc.y); got != tc.want {
			t.Fatalf("Contains(%d,%d) = %v, want %v", tc.x, tc.y, got, tc.want)
		}
	}
}

func TestTileTextColor(t *testing.T) {
	tile := &Tile{Color: "#ffffff"}
	if got := tile.TextColor(); got != "#000000" {
		t.Fatalf("TextColor on white = %q, want black", got)
	}
	tile.Color = "#000000"
	if got := tile.TextColor(); got != "#ffffff" {
		t.Fatalf("TextColor on black = %q, want white", got)
	}
}
