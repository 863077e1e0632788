package game

import (
	"fmt"

	"github.com/spacehole-rogue/trekmap/internal/world"
)

// Quadrant is a read-only long-range-scan summary of one region.
// The zero value is the empty view returned for unknown sectors.
type Quadrant struct {
	Sector         int
	MajorX, MajorY int
	Hostiles       int
	Starbases      int
	Stars          int
	Scanned        bool
}

// QuadrantFrom summarises a region.
func QuadrantFrom(r *world.Region) Quadrant {
	mx, my := Translate(r.Number)
	return Quadrant{
		Sector:    r.Number,
		MajorX:    mx,
		MajorY:    my,
		Hostiles:  r.Count(world.GlyphHostile),
		Starbases: r.Count(world.GlyphStarbase),
		Stars:     r.Count(world.GlyphStar),
		Scanned:   true,
	}
}

// Empty reports whether the scan shows nothing.
func (q Quadrant) Empty() bool {
	return q.Hostiles == 0 && q.Starbases == 0 && q.Stars == 0
}

// Code is the classic three-digit scan readout: hostiles, starbases, stars.
// Each digit saturates at 9. Unscanned quadrants read "***".
func (q Quadrant) Code() string {
	if !q.Scanned {
		return "***"
	}
	return fmt.Sprintf("%d%d%d", min(q.Hostiles, 9), min(q.Starbases, 9), min(q.Stars, 9))
}

// Scan returns the summary for sector. Out-of-range sectors and sectors
// without a region yield an empty Quadrant.
func (g *Galaxy) Scan(sector int) Quadrant {
	if !ValidSector(sector) {
		return Quadrant{}
	}
	r := g.RegionFor(sector)
	if r == nil {
		return Quadrant{}
	}
	return QuadrantFrom(r)
}

// CurrentQuadrant scans the active sector.
func (g *Galaxy) CurrentQuadrant() Quadrant {
	return g.Scan(g.Sector)
}

// LongRangeScan returns the 3x3 neighbourhood around the active sector,
// indexed [row][col] with the active sector in the centre. Cells off the
// galaxy grid are empty quadrants.
func (g *Galaxy) LongRangeScan() [3][3]Quadrant {
	var out [3][3]Quadrant
	if g.MajorX < 0 || g.MajorY < 0 {
		return out
	}
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			out[dy+1][dx+1] = g.Scan(SectorAt(g.MajorX+dx, g.MajorY+dy))
		}
	}
	return out
}
