package render

import (
	"github.com/spacehole-rogue/trekmap/internal/game"
	"github.com/spacehole-rogue/trekmap/internal/world"
)

// Cells in a region chart are spaced so the 8x8 grid reads as a square.
const chartSpacing = 2

// RenderChart draws a region chart inside a frame whose top-left corner is
// at (x, y). The frame is (8*2+3) x (8+2) cells.
func RenderChart(buf *CellBuffer, c world.Chart, x, y int) {
	buf.DrawFrame(x, y, world.RegionSize*chartSpacing+3, world.RegionSize+2, ColorDarkGray)
	for row := 0; row < world.RegionSize; row++ {
		for col := 0; col < world.RegionSize; col++ {
			glyph, fg, bg := GlyphVisuals(c.Get(col, row))
			buf.Set(x+2+col*chartSpacing, y+1+row, glyph, fg, bg)
		}
	}
}

// GlyphVisuals returns the cell appearance of a region glyph.
func GlyphVisuals(g world.Glyph) (glyph byte, fg, bg Color) {
	switch g {
	case world.GlyphPlayer:
		return 'E', ColorWhite, ColorBlue
	case world.GlyphHostile:
		return 'K', ColorLightRed, ColorBlack
	case world.GlyphStarbase:
		return 'B', ColorLightCyan, ColorBlack
	case world.GlyphStar:
		return '*', ColorYellow, ColorBlack
	default:
		return '.', ColorDarkGray, ColorBlack
	}
}

// RenderScan draws a 3x3 long-range scan with its top-left at (x, y).
// Each quadrant takes five columns; the centre is highlighted.
func RenderScan(buf *CellBuffer, lrs [3][3]game.Quadrant, x, y int) {
	for row := range lrs {
		for col, q := range lrs[row] {
			fg := ColorLightGray
			switch {
			case !q.Scanned:
				fg = ColorDarkGray
			case q.Hostiles > 0:
				fg = ColorLightRed
			case q.Starbases > 0:
				fg = ColorLightCyan
			}
			bg := ColorBlack
			if row == 1 && col == 1 {
				bg = ColorBlue
			}
			buf.WriteString(x+col*5, y+row, " "+q.Code()+" ", fg, bg)
		}
	}
}
