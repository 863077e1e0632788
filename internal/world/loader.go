package world

import "fmt"

// ParseChart builds a Chart from text rows, one row per line, using glyph
// symbols ('.', 'B', '*', 'K', 'E'). Short rows are padded with space.
func ParseChart(rows []string) (Chart, error) {
	var c Chart
	if len(rows) > RegionSize {
		return c, fmt.Errorf("chart rows (%d) exceed region size (%d)", len(rows), RegionSize)
	}
	for y, row := range rows {
		x := 0
		for _, ch := range row {
			if x >= RegionSize {
				return c, fmt.Errorf("chart row %d longer than %d cells", y, RegionSize)
			}
			g, ok := GlyphForSymbol(ch)
			if !ok {
				return c, fmt.Errorf("chart row %d col %d: unknown symbol %q", y, x, ch)
			}
			c.Set(x, y, g)
			x++
		}
	}
	return c, nil
}
