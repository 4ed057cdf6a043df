package main

import "math/rand"

type rect struct {
	X, Y, W, H int
}

type point struct {
	X, Y int
}

// overlaps is a strict intersection test: rectangles that only share an edge
// do not overlap.
func overlaps(a, b rect) bool {
	return a.X < b.X+b.W &&
		a.X+a.W > b.X &&
		a.Y < b.Y+b.H &&
		a.Y+a.H > b.Y
}

func (r rect) within(width, height int) bool {
	return r.X >= 0 && r.Y >= 0 && r.X+r.W <= width && r.Y+r.H <= height
}

// rowPackedPositions lays tiles out left to right starting at (0, top),
// wrapping to a new row when the next tile would run past boardWidth.
func rowPackedPositions(n, width, height, gap, top, boardWidth int) []point {
	positions := make([]point, 0, n)
	left := 0
	for i := 0; i < n; i++ {
		positions = append(positions, point{X: left, Y: top})

		left += width + gap
		if left+width > boardWidth {
			left = 0
			top += height + gap
		}
	}
	return positions
}

// gridSlots returns every slot origin at a (width+gap, height+gap) pitch that
// fits inside the board. Slots never overlap each other.
func gridSlots(width, height, gap, boardWidth, boardHeight int) []point {
	var slots []point
	if width <= 0 || height <= 0 {
		return slots
	}
	for y := 0; y+height <= boardHeight; y += height + gap {
		for x := 0; x+width <= boardWidth; x += width + gap {
			slots = append(slots, point{X: x, Y: y})
		}
	}
	return slots
}

// sampleFree draws uniform positions for tiles[idx] until one does not
// overlap any other tile's current box. It gives up after maxAttempts draws.
func sampleFree(rng *rand.Rand, tiles []*Tile, idx, boardWidth, boardHeight, maxAttempts int) (point, bool) {
	tile := tiles[idx]
	spanX := boardWidth - tile.Width
	spanY := boardHeight - tile.Height
	if spanX < 0 || spanY < 0 {
		return point{}, false
	}

	for attempt := 0; attempt < maxAttempts; attempt++ {
		candidate := rect{
			X: rng.Intn(spanX + 1),
			Y: rng.Intn(spanY + 1),
			W: tile.Width,
			H: tile.Height,
		}
		if !collides(tiles, idx, candidate) {
			return point{X: candidate.X, Y: candidate.Y}, true
		}
	}
	return point{}, false
}

func collides(tiles []*Tile, skip int, candidate rect) bool {
	for i, other := range tiles {
		if i == skip {
			continue
		}
		if overlaps(candidate, other.Bounds()) {
			return true
		}
	}
	return false
}

// assignSlots moves every tile onto a distinct grid slot in random order.
func assignSlots(rng *rand.Rand, tiles []*Tile, slots []point) bool {
	if len(slots) < len(tiles) {
		return false
	}
	order := rng.Perm(len(slots))
	for i, tile := range tiles {
		slot := slots[order[i]]
		tile.SetPosition(slot.X, slot.Y)
	}
	return true
}
