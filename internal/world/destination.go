package world

import "fmt"

// Region interiors are RegionSize x RegionSize cells.
const RegionSize = 8

// Point is a cell inside a region.
type Point struct {
	X, Y int
}

// InBounds reports whether the point lies inside a region.
func (p Point) InBounds() bool {
	return p.X >= 0 && p.X < RegionSize && p.Y >= 0 && p.Y < RegionSize
}

func (p Point) String() string { return fmt.Sprintf("(%d,%d)", p.X, p.Y) }

// Destination is a navigation or placement target: a sector plus a cell.
// It is a value type and is never mutated after construction.
type Destination struct {
	Sector int
	X, Y   int
}

// NewDestination builds a destination.
func NewDestination(sector, x, y int) Destination {
	return Destination{Sector: sector, X: x, Y: y}
}

// Point returns the intra-region part of the destination.
func (d Destination) Point() Point { return Point{X: d.X, Y: d.Y} }

func (d Destination) String() string {
	return fmt.Sprintf("sector %d %s", d.Sector, d.Point())
}
