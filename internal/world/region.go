package world

import (
	"errors"
	"fmt"
)

// Placement failures. All of them match ErrPlacementRejected via errors.Is.
var (
	ErrPlacementRejected = errors.New("placement rejected")
	ErrOutOfBounds       = fmt.Errorf("%w: cell out of bounds", ErrPlacementRejected)
	ErrCellOccupied      = fmt.Errorf("%w: cell occupied", ErrPlacementRejected)
	ErrRegionFull        = fmt.Errorf("%w: region full", ErrPlacementRejected)
)

// Dice is the random source used for free-cell selection and placement draws.
// *rand.Rand from math/rand/v2 satisfies it.
type Dice interface {
	IntN(n int) int
}

// Piece is an object placed in a region.
type Piece struct {
	X, Y  int
	Glyph Glyph
}

// Point returns the cell the piece occupies.
func (p Piece) Point() Point { return Point{X: p.X, Y: p.Y} }

// Region is the sparse object container for one sector of the galaxy.
// Pieces are kept in placement order.
type Region struct {
	Number int
	pieces []Piece
	dice   Dice
}

// NewRegion creates an empty region. dice picks free cells when Place is
// called without a target.
func NewRegion(number int, dice Dice) *Region {
	return &Region{Number: number, dice: dice}
}

// Place puts glyph g at the given cell, or at a random free cell if at is nil.
// It returns the cell actually used.
func (r *Region) Place(g Glyph, at *Point) (Point, error) {
	if at == nil {
		free := r.freeCells()
		if len(free) == 0 {
			return Point{}, ErrRegionFull
		}
		p := free[r.dice.IntN(len(free))]
		r.pieces = append(r.pieces, Piece{X: p.X, Y: p.Y, Glyph: g})
		return p, nil
	}
	if !at.InBounds() {
		return Point{}, fmt.Errorf("region %d %s: %w", r.Number, at, ErrOutOfBounds)
	}
	if _, ok := r.At(at.X, at.Y); ok {
		return Point{}, fmt.Errorf("region %d %s: %w", r.Number, at, ErrCellOccupied)
	}
	r.pieces = append(r.pieces, Piece{X: at.X, Y: at.Y, Glyph: g})
	return *at, nil
}

// Remove deletes whatever occupies (x, y). It reports whether anything was there.
func (r *Region) Remove(x, y int) bool {
	for i, p := range r.pieces {
		if p.X == x && p.Y == y {
			r.pieces = append(r.pieces[:i], r.pieces[i+1:]...)
			return true
		}
	}
	return false
}

// At returns the piece at (x, y), if any.
func (r *Region) At(x, y int) (Piece, bool) {
	for _, p := range r.pieces {
		if p.X == x && p.Y == y {
			return p, true
		}
	}
	return Piece{}, false
}

// Query returns the pieces tagged g, in placement order.
func (r *Region) Query(g Glyph) []Piece {
	var out []Piece
	for _, p := range r.pieces {
		if p.Glyph == g {
			out = append(out, p)
		}
	}
	return out
}

// Count returns how many pieces are tagged g.
func (r *Region) Count(g Glyph) int {
	n := 0
	for _, p := range r.pieces {
		if p.Glyph == g {
			n++
		}
	}
	return n
}

// Pieces returns a copy of the region's contents. Mutating the result does
// not change the region; use Place and Remove for that.
func (r *Region) Pieces() []Piece {
	out := make([]Piece, len(r.pieces))
	copy(out, r.pieces)
	return out
}

// Len returns the number of placed pieces.
func (r *Region) Len() int { return len(r.pieces) }

// Clear removes every piece.
func (r *Region) Clear() { r.pieces = r.pieces[:0] }

// Chart returns a grid snapshot of the region.
func (r *Region) Chart() Chart {
	var c Chart
	for _, p := range r.pieces {
		c.Set(p.X, p.Y, p.Glyph)
	}
	return c
}

// Load places every non-space cell of c into the region. Cells that are
// already occupied are reported as an error after the rest are placed.
func (r *Region) Load(c Chart) error {
	var errs []error
	for y := 0; y < RegionSize; y++ {
		for x := 0; x < RegionSize; x++ {
			g := c.Get(x, y)
			if g == GlyphSpace {
				continue
			}
			if _, err := r.Place(g, &Point{X: x, Y: y}); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errors.Join(errs...)
}

func (r *Region) freeCells() []Point {
	var used [RegionSize * RegionSize]bool
	for _, p := range r.pieces {
		used[p.Y*RegionSize+p.X] = true
	}
	free := make([]Point, 0, len(used)-len(r.pieces))
	for i, taken := range used {
		if !taken {
			free = append(free, Point{X: i % RegionSize, Y: i / RegionSize})
		}
	}
	return free
}
