package game

import (
	"fmt"

	"github.com/spacehole-rogue/trekmap/internal/world"
)

// TravelTo moves the player to dest. The player is removed from the current
// region first, then bookkeeping switches to the new sector and position
// before the player is placed there.
//
// A failed placement is not rolled back: Sector, X and Y keep the new
// values, the player is left off the map, and the error wraps
// world.ErrPlacementRejected or ErrInvalidSector.
func (g *Galaxy) TravelTo(dest world.Destination) error {
	if g.lastNav != nil {
		g.Exit(world.GlyphPlayer)
	}

	g.Sector = dest.Sector
	g.MajorX, g.MajorY = Translate(dest.Sector)
	g.X, g.Y = dest.X, dest.Y

	at := dest.Point()
	_, err := g.EnterAt(world.GlyphPlayer, &at)
	g.lastNav = &dest
	if err != nil {
		g.log.Info("arrived off-chart", "dest", dest.String(), "err", err)
		return fmt.Errorf("travel to %s: %w", dest, err)
	}
	g.log.Info("arrived", "dest", dest.String(), "major_x", g.MajorX, "major_y", g.MajorY)
	return nil
}

// RandomJump travels to a uniformly random sector and cell. There is no
// retry when the cell is taken; see TravelTo.
func (g *Galaxy) RandomJump() (world.Destination, error) {
	dest := world.NewDestination(
		1+g.dice.IntN(SectorCount),
		g.dice.IntN(world.RegionSize),
		g.dice.IntN(world.RegionSize),
	)
	return dest, g.TravelTo(dest)
}

// LastNav returns the most recent navigation target.
func (g *Galaxy) LastNav() (world.Destination, bool) {
	if g.lastNav == nil {
		return world.Destination{}, false
	}
	return *g.lastNav, true
}

// Placed reports whether the player is physically present in the active region.
func (g *Galaxy) Placed() bool {
	_, ok := g.Locate(world.GlyphPlayer)
	return ok
}
