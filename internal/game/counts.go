package game

import (
	"fmt"

	"github.com/spacehole-rogue/trekmap/internal/world"
)

// Category is a kind of object the placement engine scatters.
type Category uint8

const (
	CatStarbase Category = iota
	CatStar
	CatHostile
)

// Categories lists the distributable categories in placement order.
var Categories = []Category{CatStarbase, CatStar, CatHostile}

// Glyph returns the region glyph placed for the category.
func (c Category) Glyph() world.Glyph {
	switch c {
	case CatStarbase:
		return world.GlyphStarbase
	case CatStar:
		return world.GlyphStar
	case CatHostile:
		return world.GlyphHostile
	default:
		return world.GlyphSpace
	}
}

func (c Category) String() string {
	switch c {
	case CatStarbase:
		return "starbases"
	case CatStar:
		return "stars"
	case CatHostile:
		return "hostiles"
	default:
		return "unknown"
	}
}

// Counts holds one tally per category.
type Counts struct {
	Starbases int
	Stars     int
	Hostiles  int
}

// Of returns the tally for a category.
func (c Counts) Of(cat Category) int {
	switch cat {
	case CatStarbase:
		return c.Starbases
	case CatStar:
		return c.Stars
	case CatHostile:
		return c.Hostiles
	default:
		return 0
	}
}

// Add adjusts the tally for a category by n.
func (c *Counts) Add(cat Category, n int) {
	switch cat {
	case CatStarbase:
		c.Starbases += n
	case CatStar:
		c.Stars += n
	case CatHostile:
		c.Hostiles += n
	}
}

// Total returns the sum over all categories.
func (c Counts) Total() int { return c.Starbases + c.Stars + c.Hostiles }

func (c Counts) String() string {
	return fmt.Sprintf("bases=%d stars=%d hostiles=%d", c.Starbases, c.Stars, c.Hostiles)
}
