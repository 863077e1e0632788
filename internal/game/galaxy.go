package game

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spacehole-rogue/trekmap/internal/world"
)

// ErrInvalidSector is returned when an operation needs an active sector and
// the galaxy has none, or the sector has no region.
var ErrInvalidSector = errors.New("no active sector")

// Options configures a Galaxy. Zero values select defaults.
type Options struct {
	Regions   int // number of regions, defaults to SectorCount
	MaxSweeps int // placement attempt budget, defaults to DefaultMaxSweeps
	Strategy  Strategy
	Ships     ShipFactory
	Logger    *slog.Logger
}

// Galaxy is the galactic map: the regions, the active sector and the
// player's position in it.
type Galaxy struct {
	Sector         int // active sector, <= 0 when none
	MajorX, MajorY int // major coordinates of Sector, -1 when unset
	X, Y           int // player's intra-region position
	Difficulty     Counts
	Strategy       Strategy
	MaxSweeps      int

	regions []*world.Region
	lastNav *world.Destination
	dice    world.Dice
	ships   ShipFactory
	log     *slog.Logger
}

// Located pairs a piece with the region holding it.
type Located struct {
	Region *world.Region
	Piece  world.Piece
}

// NewGalaxy creates a galaxy of empty regions numbered from 1.
func NewGalaxy(dice world.Dice, opts Options) *Galaxy {
	n := opts.Regions
	if n <= 0 {
		n = SectorCount
	}
	g := &Galaxy{
		Sector:    -1,
		MajorX:    -1,
		MajorY:    -1,
		X:         -1,
		Y:         -1,
		Strategy:  opts.Strategy,
		MaxSweeps: opts.MaxSweeps,
		regions:   make([]*world.Region, n),
		dice:      dice,
		ships:     opts.Ships,
		log:       opts.Logger,
	}
	if g.MaxSweeps <= 0 {
		g.MaxSweeps = DefaultMaxSweeps
	}
	if g.ships == nil {
		g.ships = KlingonFactory{}
	}
	if g.log == nil {
		g.log = slog.Default()
	}
	for i := range g.regions {
		g.regions[i] = world.NewRegion(i+1, dice)
	}
	return g
}

// Regions returns the regions in galaxy order.
func (g *Galaxy) Regions() []*world.Region { return g.regions }

// RegionFor returns the region numbered n, or nil.
func (g *Galaxy) RegionFor(n int) *world.Region {
	if n < 1 || n > len(g.regions) {
		return nil
	}
	return g.regions[n-1]
}

// Region returns the region of the active sector, or nil when there is none.
func (g *Galaxy) Region() *world.Region {
	if g.Sector <= 0 {
		return nil
	}
	return g.RegionFor(g.Sector)
}

// Reset empties every region and forgets the player's navigation history.
func (g *Galaxy) Reset() {
	for _, r := range g.regions {
		r.Clear()
	}
	g.lastNav = nil
}

// EnterAt places glyph into the active region at the given cell, or at a
// random free cell when at is nil.
func (g *Galaxy) EnterAt(glyph world.Glyph, at *world.Point) (world.Point, error) {
	r := g.Region()
	if r == nil {
		return world.Point{}, fmt.Errorf("enter sector %d: %w", g.Sector, ErrInvalidSector)
	}
	return r.Place(glyph, at)
}

// Locate returns the cell of the first piece tagged glyph in the active region.
func (g *Galaxy) Locate(glyph world.Glyph) (world.Point, bool) {
	r := g.Region()
	if r == nil {
		return world.Point{}, false
	}
	found := r.Query(glyph)
	if len(found) == 0 {
		return world.Point{}, false
	}
	return found[0].Point(), true
}

// Exit removes the first piece tagged glyph from the active region, if present.
func (g *Galaxy) Exit(glyph world.Glyph) {
	if pos, ok := g.Locate(glyph); ok {
		g.Remove(pos.X, pos.Y)
	}
}

// Remove deletes whatever occupies (x, y) in the active region.
func (g *Galaxy) Remove(x, y int) bool {
	r := g.Region()
	if r == nil {
		return false
	}
	return r.Remove(x, y)
}

// RemoveItems deletes the given ships from the active region.
func (g *Galaxy) RemoveItems(destroyed []HostileShip) {
	for _, s := range destroyed {
		g.Remove(s.X, s.Y)
	}
}

// CountOf tallies the pieces tagged glyph in the active region.
func (g *Galaxy) CountOf(glyph world.Glyph) int {
	r := g.Region()
	if r == nil {
		return 0
	}
	return r.Count(glyph)
}

func (g *Galaxy) NumHostiles() int  { return g.CountOf(world.GlyphHostile) }
func (g *Galaxy) NumStarbases() int { return g.CountOf(world.GlyphStarbase) }
func (g *Galaxy) NumStars() int     { return g.CountOf(world.GlyphStar) }

// HostilesInRegion builds combat-ready ships for every hostile in the
// active region, in placement order.
func (g *Galaxy) HostilesInRegion() []HostileShip {
	r := g.Region()
	if r == nil {
		return nil
	}
	var ships []HostileShip
	for _, p := range r.Query(world.GlyphHostile) {
		ships = append(ships, g.ships.FromPlacement(p.X, p.Y))
	}
	return ships
}

// Pieces returns a copy of the active region's contents.
func (g *Galaxy) Pieces() []world.Piece {
	r := g.Region()
	if r == nil {
		return nil
	}
	return r.Pieces()
}

// Identify returns the galaxy-wide id of a piece in the active region.
func (g *Galaxy) Identify(p world.Piece) string {
	number := 0
	if r := g.Region(); r != nil {
		number = r.Number
	}
	return IdentifyIn(number, p)
}

// IdentifyIn returns the id of a piece in region number. Region numbers are
// 100 apart and an in-region offset is at most 63, so ids never collide.
func IdentifyIn(number int, p world.Piece) string {
	num := number*100 + p.Y*world.RegionSize + p.X
	return fmt.Sprintf("%cx%d", p.Glyph.Name()[0], num)
}

// FindAll returns every piece tagged glyph across the galaxy, in region order.
func (g *Galaxy) FindAll(glyph world.Glyph) []Located {
	var out []Located
	for _, r := range g.regions {
		for _, p := range r.Query(glyph) {
			out = append(out, Located{Region: r, Piece: p})
		}
	}
	return out
}

// Totals counts every distributable category across the galaxy.
func (g *Galaxy) Totals() Counts {
	var c Counts
	for _, r := range g.regions {
		for _, cat := range Categories {
			c.Add(cat, r.Count(cat.Glyph()))
		}
	}
	return c
}

// Chart returns a snapshot of the active region. It is empty when no sector is active.
func (g *Galaxy) Chart() world.Chart {
	r := g.Region()
	if r == nil {
		return world.Chart{}
	}
	return r.Chart()
}

// Preload loads a fixed chart into the region for sector.
func (g *Galaxy) Preload(sector int, c world.Chart) error {
	r := g.RegionFor(sector)
	if r == nil {
		return fmt.Errorf("preload sector %d: %w", sector, ErrInvalidSector)
	}
	if err := r.Load(c); err != nil {
		return fmt.Errorf("preload sector %d: %w", sector, err)
	}
	return nil
}
