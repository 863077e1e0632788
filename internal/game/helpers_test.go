package game

import (
	"math/rand/v2"
	"testing"

	"github.com/spacehole-rogue/trekmap/internal/logger"
	"github.com/spacehole-rogue/trekmap/internal/world"
)

// scriptDice replays fixed draws (mod n), then returns 0.
type scriptDice struct {
	vals []int
	i    int
}

func (d *scriptDice) IntN(n int) int {
	if d.i >= len(d.vals) {
		return 0
	}
	v := d.vals[d.i] % n
	d.i++
	return v
}

func seededDice(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed>>16|1))
}

func newTestGalaxy(t *testing.T, dice world.Dice, opts Options) *Galaxy {
	t.Helper()
	if opts.Logger == nil {
		opts.Logger = logger.Discard()
	}
	return NewGalaxy(dice, opts)
}
