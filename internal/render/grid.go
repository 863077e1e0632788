package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Cell represents a single character cell on screen.
type Cell struct {
	Glyph byte  // CP437 code (0-255)
	FG    Color // Foreground palette index
	BG    Color // Background palette index
}

var blank = Cell{Glyph: ' ', FG: ColorWhite, BG: ColorBlack}

// CellBuffer is a 2D grid of character cells.
type CellBuffer struct {
	Cols  int
	Rows  int
	Cells []Cell
}

// NewCellBuffer creates a new cell buffer filled with blank cells.
func NewCellBuffer(cols, rows int) *CellBuffer {
	b := &CellBuffer{Cols: cols, Rows: rows, Cells: make([]Cell, cols*rows)}
	b.Clear()
	return b
}

func (b *CellBuffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.Cols && y >= 0 && y < b.Rows
}

// Set writes a single cell at (x, y). Out-of-bounds writes are ignored.
func (b *CellBuffer) Set(x, y int, glyph byte, fg, bg Color) {
	if b.inBounds(x, y) {
		b.Cells[y*b.Cols+x] = Cell{Glyph: glyph, FG: fg, BG: bg}
	}
}

// Get reads a single cell at (x, y). Out-of-bounds reads return a zero cell.
func (b *CellBuffer) Get(x, y int) Cell {
	if b.inBounds(x, y) {
		return b.Cells[y*b.Cols+x]
	}
	return Cell{}
}

// Clear resets all cells to blank (space on black).
func (b *CellBuffer) Clear() {
	for i := range b.Cells {
		b.Cells[i] = blank
	}
}

// WriteString writes s starting at (x, y), one cell per rune. Runes outside
// CP437's single-byte range print as '?'.
func (b *CellBuffer) WriteString(x, y int, s string, fg, bg Color) {
	i := 0
	for _, ch := range s {
		if ch > 255 {
			ch = '?'
		}
		b.Set(x+i, y, byte(ch), fg, bg)
		i++
	}
}

// DrawFrame outlines the rectangle with its top-left corner at (x, y).
// w and h include the border.
func (b *CellBuffer) DrawFrame(x, y, w, h int, fg Color) {
	if w < 2 || h < 2 {
		return
	}
	right, bottom := x+w-1, y+h-1
	for i := x + 1; i < right; i++ {
		b.Set(i, y, CodeHLine, fg, ColorBlack)
		b.Set(i, bottom, CodeHLine, fg, ColorBlack)
	}
	for j := y + 1; j < bottom; j++ {
		b.Set(x, j, CodeVLine, fg, ColorBlack)
		b.Set(right, j, CodeVLine, fg, ColorBlack)
	}
	b.Set(x, y, CodeTopLeft, fg, ColorBlack)
	b.Set(right, y, CodeTopRight, fg, ColorBlack)
	b.Set(x, bottom, CodeBotLeft, fg, ColorBlack)
	b.Set(right, bottom, CodeBotRight, fg, ColorBlack)
}

// GridRenderer draws a CellBuffer to an Ebitengine screen.
type GridRenderer struct {
	Atlas   *FontAtlas
	CellW   int
	CellH   int
	bgPixel *ebiten.Image // 1x1 white pixel scaled up for backgrounds
}

// NewGridRenderer creates a renderer with the given atlas and cell dimensions.
func NewGridRenderer(atlas *FontAtlas, cellW, cellH int) *GridRenderer {
	bgPixel := ebiten.NewImage(1, 1)
	bgPixel.Fill(color.White)
	return &GridRenderer{
		Atlas:   atlas,
		CellW:   cellW,
		CellH:   cellH,
		bgPixel: bgPixel,
	}
}

// Draw renders the entire CellBuffer to the screen.
func (r *GridRenderer) Draw(screen *ebiten.Image, buf *CellBuffer) {
	sx := float64(r.CellW) / GlyphWidth
	sy := float64(r.CellH) / GlyphHeight

	for i, cell := range buf.Cells {
		px := float64((i % buf.Cols) * r.CellW)
		py := float64((i / buf.Cols) * r.CellH)

		if cell.BG != ColorBlack {
			var op ebiten.DrawImageOptions
			op.GeoM.Scale(float64(r.CellW), float64(r.CellH))
			op.GeoM.Translate(px, py)
			op.ColorScale.ScaleWithColor(Palette[cell.BG])
			screen.DrawImage(r.bgPixel, &op)
		}
		if cell.Glyph == ' ' || cell.Glyph == 0 {
			continue
		}
		var op ebiten.DrawImageOptions
		op.GeoM.Scale(sx, sy)
		op.GeoM.Translate(px, py)
		op.ColorScale.ScaleWithColor(Palette[cell.FG])
		screen.DrawImage(r.Atlas.Glyph(cell.Glyph), &op)
	}
}
