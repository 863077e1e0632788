package game

import (
	"testing"

	"github.com/spacehole-rogue/trekmap/internal/world"
)

func TestScanNamedSector(t *testing.T) {
	g := newTestGalaxy(t, seededDice(16), Options{})
	g.RegionFor(17).Place(world.GlyphHostile, nil)
	g.RegionFor(17).Place(world.GlyphHostile, nil)
	g.RegionFor(17).Place(world.GlyphStar, nil)
	g.TravelTo(world.NewDestination(1, 0, 0))

	q := g.Scan(17)
	if q.Sector != 17 || q.Hostiles != 2 || q.Stars != 1 || q.Starbases != 0 {
		t.Fatalf("Scan(17) = %+v", q)
	}
	if q.MajorX != 2 || q.MajorY != 0 {
		t.Fatalf("Scan(17) major = (%d,%d)", q.MajorX, q.MajorY)
	}
	if q.Code() != "201" {
		t.Fatalf("Code = %q", q.Code())
	}
}

func TestScanDegradesToEmpty(t *testing.T) {
	g := newTestGalaxy(t, seededDice(17), Options{Regions: 10})
	for _, s := range []int{-1, 0, 11, 65, 1000} {
		q := g.Scan(s)
		if q != (Quadrant{}) {
			t.Fatalf("Scan(%d) = %+v, want empty", s, q)
		}
		if q.Code() != "***" {
			t.Fatalf("Scan(%d).Code() = %q", s, q.Code())
		}
	}
	if q := g.Scan(4); !q.Scanned || !q.Empty() {
		t.Fatalf("Scan(4) of empty region = %+v", q)
	}
}

func TestLongRangeScanAtCorner(t *testing.T) {
	g := newTestGalaxy(t, seededDice(18), Options{})
	g.RegionFor(2).Place(world.GlyphStarbase, nil)
	g.TravelTo(world.NewDestination(1, 4, 4))

	lrs := g.LongRangeScan()
	// Row -1 and column -1 are off the grid.
	for i := 0; i < 3; i++ {
		if lrs[0][i].Scanned || lrs[i][0].Scanned {
			t.Fatalf("off-grid quadrant scanned: %+v", lrs)
		}
	}
	if lrs[1][1].Sector != 1 {
		t.Fatalf("centre = %+v", lrs[1][1])
	}
	if lrs[2][1].Sector != 2 || lrs[2][1].Starbases != 1 {
		t.Fatalf("south = %+v", lrs[2][1])
	}
	if lrs[1][2].Sector != 9 {
		t.Fatalf("east = %+v", lrs[1][2])
	}
}

func TestCodeSaturates(t *testing.T) {
	q := Quadrant{Hostiles: 12, Starbases: 1, Stars: 3, Scanned: true}
	if q.Code() != "913" {
		t.Fatalf("Code = %q", q.Code())
	}
}
