package game

import "github.com/spacehole-rogue/trekmap/internal/world"

// Starting values for hostile warships.
const (
	HostileEnergy  = 1000
	HostileShields = 200
)

// HostileShip is a combat-ready enemy built from a region placement.
type HostileShip struct {
	X, Y    int
	Energy  int
	Shields int
}

// Point returns the ship's cell.
func (s HostileShip) Point() world.Point { return world.Point{X: s.X, Y: s.Y} }

// Destroyed reports whether the ship has no energy left.
func (s HostileShip) Destroyed() bool { return s.Energy <= 0 }

// ShipFactory builds hostile ships from the coordinates of a placed hostile.
type ShipFactory interface {
	FromPlacement(x, y int) HostileShip
}

// ShipFactoryFunc adapts a function to ShipFactory.
type ShipFactoryFunc func(x, y int) HostileShip

func (f ShipFactoryFunc) FromPlacement(x, y int) HostileShip { return f(x, y) }

// KlingonFactory builds hostiles with fixed starting energy and shields.
// Zero fields fall back to HostileEnergy and HostileShields.
type KlingonFactory struct {
	Energy  int
	Shields int
}

func (f KlingonFactory) FromPlacement(x, y int) HostileShip {
	s := HostileShip{X: x, Y: y, Energy: f.Energy, Shields: f.Shields}
	if s.Energy <= 0 {
		s.Energy = HostileEnergy
	}
	if s.Shields <= 0 {
		s.Shields = HostileShields
	}
	return s
}
