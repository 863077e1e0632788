package game

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spacehole-rogue/trekmap/internal/world"
)

// DefaultMaxSweeps bounds placement attempts when Options leaves it unset.
const DefaultMaxSweeps = 10000

// ErrDistributionExhausted is returned when placement runs out of attempts
// (or free cells) before every requested object is placed.
var ErrDistributionExhausted = errors.New("distribution exhausted")

// Strategy selects how Distribute scatters objects.
type Strategy uint8

const (
	// StrategyWeighted sweeps regions in order, placing into region ss when
	// a d7 roll is divisible by ss+2. Early regions are favoured heavily.
	StrategyWeighted Strategy = iota
	// StrategyUniform samples free (region, cell) pairs without replacement.
	StrategyUniform
)

func (s Strategy) String() string {
	switch s {
	case StrategyWeighted:
		return "weighted"
	case StrategyUniform:
		return "uniform"
	default:
		return "unknown"
	}
}

// ParseStrategy maps a strategy name to a Strategy. Empty means weighted.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "weighted":
		return StrategyWeighted, nil
	case "uniform":
		return StrategyUniform, nil
	default:
		return StrategyWeighted, fmt.Errorf("unknown placement strategy %q", name)
	}
}

// Report summarises a Distribute call.
type Report struct {
	Placed    Counts
	Remaining Counts
	Passes    int // draws of a per-pass target, including zero draws
	Sweeps    int // full or partial passes over the regions
}

// Distribute scatters the requested objects across the regions. Categories
// with a zero request are skipped. On ErrDistributionExhausted the report
// describes the partial result.
func (g *Galaxy) Distribute(req Counts) (Report, error) {
	rep := Report{Remaining: req}
	for _, cat := range Categories {
		if rep.Remaining.Of(cat) <= 0 {
			continue
		}
		var err error
		switch g.Strategy {
		case StrategyUniform:
			err = g.distributeUniform(cat, &rep)
		default:
			err = g.distributeWeighted(cat, &rep)
		}
		if err != nil {
			g.log.Warn("distribution incomplete",
				"category", cat.String(), "placed", rep.Placed.String(), "remaining", rep.Remaining.String())
			return rep, err
		}
		g.log.Debug("distributed", "category", cat.String(), "count", rep.Placed.Of(cat),
			"passes", rep.Passes, "sweeps", rep.Sweeps)
	}
	return rep, nil
}

func (g *Galaxy) distributeWeighted(cat Category, rep *Report) error {
	glyph := cat.Glyph()
	for rep.Remaining.Of(cat) > 0 {
		if rep.Passes+rep.Sweeps >= g.MaxSweeps {
			return fmt.Errorf("%s: %d left after %d sweeps: %w",
				cat, rep.Remaining.Of(cat), rep.Sweeps, ErrDistributionExhausted)
		}
		rep.Passes++

		remaining := rep.Remaining.Of(cat)
		toTake := g.dice.IntN(remaining)
		if remaining == 1 {
			toTake = 1
		}
		if toTake == 0 {
			continue
		}

		taken := 0
		for taken < toTake {
			if rep.Passes+rep.Sweeps >= g.MaxSweeps {
				return fmt.Errorf("%s: %d left after %d sweeps: %w",
					cat, rep.Remaining.Of(cat), rep.Sweeps, ErrDistributionExhausted)
			}
			rep.Sweeps++
			for ss, r := range g.regions {
				roll := 1 + g.dice.IntN(7)
				if roll%(ss+2) != 0 {
					continue
				}
				if _, err := r.Place(glyph, nil); err != nil {
					continue
				}
				taken++
				rep.Placed.Add(cat, 1)
				rep.Remaining.Add(cat, -1)
				if taken == toTake {
					break
				}
			}
		}
	}
	return nil
}

type slot struct {
	region *world.Region
	cell   world.Point
}

func (g *Galaxy) distributeUniform(cat Category, rep *Report) error {
	var free []slot
	for _, r := range g.regions {
		chart := r.Chart()
		for y := 0; y < world.RegionSize; y++ {
			for x := 0; x < world.RegionSize; x++ {
				if chart.Get(x, y) == world.GlyphSpace {
					free = append(free, slot{region: r, cell: world.Point{X: x, Y: y}})
				}
			}
		}
	}

	rep.Passes++
	rep.Sweeps++
	want := rep.Remaining.Of(cat)
	for i := 0; i < want && i < len(free); i++ {
		j := i + g.dice.IntN(len(free)-i)
		free[i], free[j] = free[j], free[i]
		if _, err := free[i].region.Place(cat.Glyph(), &free[i].cell); err != nil {
			continue
		}
		rep.Placed.Add(cat, 1)
		rep.Remaining.Add(cat, -1)
	}
	if left := rep.Remaining.Of(cat); left > 0 {
		return fmt.Errorf("%s: %d left, galaxy full: %w", cat, left, ErrDistributionExhausted)
	}
	return nil
}

// Randomize clears the galaxy, loads any presets, and distributes a fresh
// set of objects. A zero hostile or starbase request is replaced by the
// default difficulty: 15-20 hostiles and 2-4 starbases.
func (g *Galaxy) Randomize(req Counts, presets ...Preset) (Report, error) {
	if req.Hostiles <= 0 {
		req.Hostiles = 15 + g.dice.IntN(6)
	}
	if req.Starbases <= 0 {
		req.Starbases = 2 + g.dice.IntN(3)
	}
	g.Difficulty = req
	g.Reset()
	for _, p := range presets {
		if err := g.Preload(p.Sector, p.Chart); err != nil {
			return Report{Remaining: req}, err
		}
	}
	rep, err := g.Distribute(req)
	if err != nil {
		return rep, fmt.Errorf("randomize galaxy: %w", err)
	}
	g.log.Info("galaxy randomized", "requested", req.String(), "passes", rep.Passes, "sweeps", rep.Sweeps)
	return rep, nil
}

// Preset is a fixed chart loaded into one sector before distribution.
type Preset struct {
	Sector int
	Chart  world.Chart
}
