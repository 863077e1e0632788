package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	GlyphWidth  = 16
	GlyphHeight = 16
	AtlasCols   = 16
	AtlasRows   = 16
)

// CP437 codes drawn by hand rather than from the font.
const (
	CodeLightShade = 176 // ░
	CodeShade      = 177 // ▒
	CodeVLine      = 179 // │
	CodeTopRight   = 191 // ┐
	CodeBotLeft    = 192 // └
	CodeHLine      = 196 // ─
	CodeBotRight   = 217 // ┘
	CodeTopLeft    = 218 // ┌
	CodeFullBlock  = 219 // █
	CodeSquare     = 254 // ■
)

// FontAtlas holds the CP437 glyph atlas and cached sub-images.
type FontAtlas struct {
	image  *ebiten.Image
	glyphs [256]*ebiten.Image
}

// NewFontAtlas rasterises the glyph set into a 256x256 white-on-transparent
// image. Printable ASCII comes from basicfont.Face7x13; frame lines,
// shades and blocks are drawn pixel by pixel. Other codes stay blank.
func NewFontAtlas() *FontAtlas {
	img := image.NewNRGBA(image.Rect(0, 0, AtlasCols*GlyphWidth, AtlasRows*GlyphHeight))
	RasterizeGlyphs(img)

	eimg := ebiten.NewImageFromImage(img)
	a := &FontAtlas{image: eimg}
	for code := range a.glyphs {
		a.glyphs[code] = eimg.SubImage(glyphRect(code)).(*ebiten.Image)
	}
	return a
}

// Glyph returns the cached sub-image for a CP437 character code.
func (a *FontAtlas) Glyph(code byte) *ebiten.Image {
	return a.glyphs[code]
}

// RasterizeGlyphs draws every supported glyph into img at its atlas cell.
func RasterizeGlyphs(img *image.NRGBA) {
	face := basicfont.Face7x13
	for code := 0; code < 256; code++ {
		cell := glyphRect(code)
		switch {
		case code >= 32 && code <= 126:
			drawFontGlyph(img, face, cell.Min, rune(code))
		default:
			if fill, ok := pixelGlyphs[byte(code)]; ok {
				paint(img, cell.Min, fill)
			}
		}
	}
}

func glyphRect(code int) image.Rectangle {
	x := (code % AtlasCols) * GlyphWidth
	y := (code / AtlasCols) * GlyphHeight
	return image.Rect(x, y, x+GlyphWidth, y+GlyphHeight)
}

// drawFontGlyph renders one ASCII character, 7x13 centred in the 16x16 cell.
func drawFontGlyph(img *image.NRGBA, face font.Face, origin image.Point, r rune) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.White),
		Face: face,
		Dot:  fixed.P(origin.X+4, origin.Y+13),
	}
	d.DrawString(string(r))
}

// pixelFill reports whether pixel (x, y) of a 16x16 cell is lit.
type pixelFill func(x, y int) bool

// Frame lines are two pixels wide through the cell centre.
func onVLine(x int) bool { return x == 7 || x == 8 }
func onHLine(y int) bool { return y == 7 || y == 8 }

// frame builds a box-drawing fill with arms toward the named edges.
func frame(left, right, up, down bool) pixelFill {
	return func(x, y int) bool {
		switch {
		case onHLine(y) && left && x <= 8:
			return true
		case onHLine(y) && right && x >= 7:
			return true
		case onVLine(x) && up && y <= 8:
			return true
		case onVLine(x) && down && y >= 7:
			return true
		}
		return false
	}
}

var pixelGlyphs = map[byte]pixelFill{
	CodeLightShade: func(x, y int) bool { return (x+y)%4 == 0 },
	CodeShade:      func(x, y int) bool { return (x+y)%2 == 0 },
	CodeFullBlock:  func(x, y int) bool { return true },
	CodeSquare:     func(x, y int) bool { return x >= 4 && x < 12 && y >= 4 && y < 12 },
	CodeVLine:      frame(false, false, true, true),
	CodeHLine:      frame(true, true, false, false),
	CodeTopLeft:    frame(false, true, false, true),
	CodeTopRight:   frame(true, false, false, true),
	CodeBotLeft:    frame(false, true, true, false),
	CodeBotRight:   frame(true, false, true, false),
}

func paint(img *image.NRGBA, origin image.Point, fill pixelFill) {
	white := color.NRGBA{255, 255, 255, 255}
	for y := 0; y < GlyphHeight; y++ {
		for x := 0; x < GlyphWidth; x++ {
			if fill(x, y) {
				img.SetNRGBA(origin.X+x, origin.Y+y, white)
			}
		}
	}
}
