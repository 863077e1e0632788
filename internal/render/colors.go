package render

import "image/color"

// Color is an index into Palette.
type Color = uint8

// CGA 16-color palette indices.
const (
	ColorBlack Color = iota
	ColorBlue
	ColorGreen
	ColorCyan
	ColorRed
	ColorMagenta
	ColorBrown
	ColorLightGray
	ColorDarkGray
	ColorLightBlue
	ColorLightGreen
	ColorLightCyan
	ColorLightRed
	ColorLightMagenta
	ColorYellow
	ColorWhite
)

// Palette is the classic CGA palette: low-intensity channels at 0xAA,
// high-intensity adds 0x55 to every channel, brown halves green.
var Palette = func() [16]color.RGBA {
	var p [16]color.RGBA
	for i := range p {
		var r, g, b uint8
		if i&4 != 0 {
			r = 0xAA
		}
		if i&2 != 0 {
			g = 0xAA
		}
		if i&1 != 0 {
			b = 0xAA
		}
		if i == int(ColorBrown) {
			g = 0x55
		}
		if i >= 8 {
			r, g, b = r+0x55, g+0x55, b+0x55
		}
		p[i] = color.RGBA{r, g, b, 255}
	}
	return p
}()
