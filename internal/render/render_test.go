package render

import (
	"image"
	"testing"

	"github.com/spacehole-rogue/trekmap/internal/game"
	"github.com/spacehole-rogue/trekmap/internal/world"
)

func TestCellBufferBounds(t *testing.T) {
	b := NewCellBuffer(4, 2)
	b.Set(-1, 0, 'x', ColorRed, ColorBlack)
	b.Set(4, 1, 'x', ColorRed, ColorBlack)
	b.WriteString(2, 1, "abc", ColorWhite, ColorBlack)
	if got := b.Get(2, 1).Glyph; got != 'a' {
		t.Fatalf("Get(2,1) = %q", got)
	}
	if got := b.Get(3, 1).Glyph; got != 'b' {
		t.Fatalf("Get(3,1) = %q", got)
	}
	if (b.Get(9, 9) != Cell{}) {
		t.Fatalf("out-of-bounds Get should be zero")
	}
}

func TestDrawFrameCorners(t *testing.T) {
	b := NewCellBuffer(5, 4)
	b.DrawFrame(0, 0, 5, 4, ColorWhite)
	checks := map[[2]int]byte{
		{0, 0}: CodeTopLeft, {4, 0}: CodeTopRight,
		{0, 3}: CodeBotLeft, {4, 3}: CodeBotRight,
		{2, 0}: CodeHLine, {0, 2}: CodeVLine,
		{2, 2}: ' ',
	}
	for pos, want := range checks {
		if got := b.Get(pos[0], pos[1]).Glyph; got != want {
			t.Fatalf("cell %v = %d, want %d", pos, got, want)
		}
	}
}

func TestRenderChartPlacesGlyphs(t *testing.T) {
	var c world.Chart
	c.Set(0, 0, world.GlyphPlayer)
	c.Set(7, 7, world.GlyphHostile)
	b := NewCellBuffer(40, 20)
	RenderChart(b, c, 1, 1)

	if cell := b.Get(3, 2); cell.Glyph != 'E' || cell.BG != ColorBlue {
		t.Fatalf("player cell = %+v", cell)
	}
	if cell := b.Get(3+7*chartSpacing, 2+7); cell.Glyph != 'K' {
		t.Fatalf("hostile cell = %+v", cell)
	}
	if cell := b.Get(5, 2); cell.Glyph != '.' {
		t.Fatalf("space cell = %+v", cell)
	}
}

func TestRenderScanCodes(t *testing.T) {
	var lrs [3][3]game.Quadrant
	lrs[1][1] = game.Quadrant{Sector: 9, Hostiles: 1, Stars: 2, Scanned: true}
	b := NewCellBuffer(20, 3)
	RenderScan(b, lrs, 0, 0)
	if got := string([]byte{b.Get(6, 1).Glyph, b.Get(7, 1).Glyph, b.Get(8, 1).Glyph}); got != "102" {
		t.Fatalf("centre code = %q", got)
	}
	if b.Get(1, 0).Glyph != '*' {
		t.Fatalf("unscanned quadrant should read ***")
	}
}

func TestRasterizeGlyphs(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, AtlasCols*GlyphWidth, AtlasRows*GlyphHeight))
	RasterizeGlyphs(img)

	lit := func(code, x, y int) bool {
		r := glyphRect(code)
		return img.NRGBAAt(r.Min.X+x, r.Min.Y+y).A != 0
	}
	if !lit(CodeFullBlock, 0, 0) || !lit(CodeFullBlock, 15, 15) {
		t.Fatalf("full block not filled")
	}
	if lit(CodeSquare, 0, 0) || !lit(CodeSquare, 8, 8) {
		t.Fatalf("square fill wrong")
	}
	if !lit(CodeTopLeft, 15, 7) || !lit(CodeTopLeft, 7, 15) || lit(CodeTopLeft, 0, 7) {
		t.Fatalf("top-left corner arms wrong")
	}
	inked := false
	for y := 0; y < GlyphHeight; y++ {
		for x := 0; x < GlyphWidth; x++ {
			inked = inked || lit('K', x, y)
		}
	}
	if !inked {
		t.Fatalf("ASCII glyph 'K' rendered blank")
	}
}
