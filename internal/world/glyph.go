package world

// Glyph tags the category of an object placed in a region.
type Glyph uint8

const (
	GlyphSpace    Glyph = iota // empty cell
	GlyphStarbase              // friendly docking point
	GlyphStar                  // navigational hazard
	GlyphHostile               // enemy warship
	GlyphPlayer                // the player's vessel
)

// Glyphs lists every placeable glyph in chart order.
var Glyphs = []Glyph{GlyphStarbase, GlyphStar, GlyphHostile, GlyphPlayer}

// Name returns a human-readable name for a glyph.
func (g Glyph) Name() string {
	switch g {
	case GlyphSpace:
		return "Space"
	case GlyphStarbase:
		return "Starbase"
	case GlyphStar:
		return "Star"
	case GlyphHostile:
		return "Hostile"
	case GlyphPlayer:
		return "Player"
	default:
		return "Unknown"
	}
}

// Symbol returns the single character used for the glyph in text charts.
func (g Glyph) Symbol() rune {
	switch g {
	case GlyphStarbase:
		return 'B'
	case GlyphStar:
		return '*'
	case GlyphHostile:
		return 'K'
	case GlyphPlayer:
		return 'E'
	default:
		return '.'
	}
}

// GlyphForSymbol is the inverse of Symbol. Unknown symbols report false.
func GlyphForSymbol(r rune) (Glyph, bool) {
	switch r {
	case '.', ' ':
		return GlyphSpace, true
	case 'B':
		return GlyphStarbase, true
	case '*':
		return GlyphStar, true
	case 'K':
		return GlyphHostile, true
	case 'E':
		return GlyphPlayer, true
	default:
		return GlyphSpace, false
	}
}

func (g Glyph) String() string { return g.Name() }
