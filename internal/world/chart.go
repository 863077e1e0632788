package world

import "strings"

// Chart is an 8x8 glyph snapshot of a region, indexed [y][x].
type Chart [RegionSize][RegionSize]Glyph

// Get returns the glyph at (x, y). Out-of-bounds returns space.
func (c *Chart) Get(x, y int) Glyph {
	if x < 0 || x >= RegionSize || y < 0 || y >= RegionSize {
		return GlyphSpace
	}
	return c[y][x]
}

// Set writes a glyph at (x, y). Out-of-bounds writes are ignored.
func (c *Chart) Set(x, y int, g Glyph) {
	if x >= 0 && x < RegionSize && y >= 0 && y < RegionSize {
		c[y][x] = g
	}
}

// Count returns the number of cells holding g.
func (c *Chart) Count(g Glyph) int {
	n := 0
	for y := range c {
		for x := range c[y] {
			if c[y][x] == g {
				n++
			}
		}
	}
	return n
}

// Describe returns a human-readable description of the cell at (x, y).
func (c *Chart) Describe(x, y int) string {
	return glyphDescriptions[c.Get(x, y)]
}

// String renders the chart one row per line using glyph symbols.
func (c Chart) String() string {
	var sb strings.Builder
	for y := range c {
		for x := range c[y] {
			sb.WriteRune(c[y][x].Symbol())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

var glyphDescriptions = map[Glyph]string{
	GlyphSpace:    "Empty space",
	GlyphStarbase: "Starbase - dock to refuel and repair",
	GlyphStar:     "Star - impassable",
	GlyphHostile:  "Hostile warship",
	GlyphPlayer:   "Your ship",
}
