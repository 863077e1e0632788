package game

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strings"

	"github.com/google/uuid"
	"github.com/mlange-42/ark/ecs"
	"github.com/spacehole-rogue/trekmap/internal/tuning"
	"github.com/spacehole-rogue/trekmap/internal/world"
)

// Position is the ECS component for anything located in the galaxy.
type Position struct {
	Sector int
	X, Y   int
}

// Hull is the ECS component for a warship's reserves.
type Hull struct {
	Energy  int
	Shields int
}

// PlayerControlled marks the player's ship entity.
type PlayerControlled struct{}

// startAttempts bounds the search for a free starting cell.
const startAttempts = 64

// Session is one game. It owns the galaxy, the comms log, and an ECS world
// mirroring the player and the hostiles of the active region.
type Session struct {
	ID     string
	Seed   uint64
	Galaxy *Galaxy
	ECS    *ecs.World
	Log    *MessageLog
	Turn   int

	player     ecs.Entity
	posMap     *ecs.Map[Position]
	hullMap    *ecs.Map[Hull]
	hostileMap *ecs.Map2[Position, Hull]
	hostiles   []ecs.Entity
	logger     *slog.Logger
}

// NewSession builds a galaxy from t, scatters its objects and drops the
// player into a random free cell.
func NewSession(t tuning.Tuning, logger *slog.Logger) (*Session, error) {
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("new session: %w", err)
	}
	strategy, err := ParseStrategy(t.Strategy)
	if err != nil {
		return nil, fmt.Errorf("new session: %w", err)
	}
	seed := uint64(t.Seed)
	if seed == 0 {
		seed = rand.Uint64()
	}
	id := uuid.NewString()
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("session", id)

	rng := rand.New(rand.NewPCG(seed, seed>>16|1))
	g := NewGalaxy(rng, Options{
		MaxSweeps: t.MaxSweeps,
		Strategy:  strategy,
		Logger:    logger,
	})

	presets := make([]Preset, 0, len(t.Presets))
	for _, p := range t.Presets {
		c, err := world.ParseChart(p.Rows)
		if err != nil {
			return nil, fmt.Errorf("preset sector %d: %w", p.Sector, err)
		}
		presets = append(presets, Preset{Sector: p.Sector, Chart: c})
	}
	req := Counts{Starbases: t.Starbases, Stars: t.Stars, Hostiles: t.Hostiles}
	if _, err := g.Randomize(req, presets...); err != nil {
		return nil, fmt.Errorf("new session: %w", err)
	}

	w := ecs.NewWorld(256)
	s := &Session{
		ID:         id,
		Seed:       seed,
		Galaxy:     g,
		ECS:        w,
		Log:        NewMessageLog(t.LogSize),
		posMap:     ecs.NewMap[Position](w),
		hullMap:    ecs.NewMap[Hull](w),
		hostileMap: ecs.NewMap2[Position, Hull](w),
		logger:     logger,
	}
	s.player = ecs.NewMap2[Position, PlayerControlled](w).NewEntity(
		&Position{Sector: -1, X: -1, Y: -1},
		&PlayerControlled{},
	)

	s.Log.Addf(MsgInfo, "Galaxy charted: %d hostiles, %d starbases.",
		g.Difficulty.Hostiles, g.Difficulty.Starbases)
	if err := s.start(); err != nil {
		return nil, err
	}
	return s, nil
}

// start jumps until the player lands on a free cell.
func (s *Session) start() error {
	for attempts := 0; attempts < startAttempts; attempts++ {
		dest, err := s.Galaxy.RandomJump()
		if err == nil {
			s.arrive(dest)
			return nil
		}
	}
	return fmt.Errorf("new session: no free starting cell after %d jumps", startAttempts)
}

// Jump performs a random jump and reports where the ship ended up.
func (s *Session) Jump() world.Destination {
	s.Turn++
	dest, err := s.Galaxy.RandomJump()
	if err != nil {
		s.Log.Addf(MsgCritical, "Jump to %s failed: cell obstructed. Ship adrift.", dest)
		s.logger.Warn("jump obstructed", "dest", dest.String(), "err", err)
	}
	s.arrive(dest)
	return dest
}

// Warp travels to a chosen destination.
func (s *Session) Warp(dest world.Destination) error {
	s.Turn++
	err := s.Galaxy.TravelTo(dest)
	if err != nil {
		s.Log.Addf(MsgWarning, "Cannot enter %s.", dest)
	}
	s.arrive(dest)
	return err
}

// arrive mirrors the galaxy state into the ECS world and reports the sector.
func (s *Session) arrive(dest world.Destination) {
	pos := s.posMap.Get(s.player)
	pos.Sector, pos.X, pos.Y = dest.Sector, dest.X, dest.Y

	for _, e := range s.hostiles {
		s.ECS.RemoveEntity(e)
	}
	s.hostiles = s.hostiles[:0]
	for _, h := range s.Galaxy.HostilesInRegion() {
		e := s.hostileMap.NewEntity(
			&Position{Sector: dest.Sector, X: h.X, Y: h.Y},
			&Hull{Energy: h.Energy, Shields: h.Shields},
		)
		s.hostiles = append(s.hostiles, e)
	}

	q := s.Galaxy.CurrentQuadrant()
	s.Log.Addf(MsgNav, "Entering sector %d [%d,%d].", dest.Sector, s.Galaxy.MajorX, s.Galaxy.MajorY)
	switch {
	case q.Hostiles > 0:
		s.Log.Addf(MsgCritical, "Red alert! %d hostile ships in sector.", q.Hostiles)
	case q.Starbases > 0:
		s.Log.Add("Starbase in range.", MsgInfo)
	}
}

// PlayerPos returns the player's position as mirrored in the ECS world.
func (s *Session) PlayerPos() Position {
	return *s.posMap.Get(s.player)
}

// Hostiles returns the hostile ships tracked for the active region.
func (s *Session) Hostiles() []HostileShip {
	ships := make([]HostileShip, 0, len(s.hostiles))
	for _, e := range s.hostiles {
		pos := s.posMap.Get(e)
		hull := s.hullMap.Get(e)
		ships = append(ships, HostileShip{X: pos.X, Y: pos.Y, Energy: hull.Energy, Shields: hull.Shields})
	}
	return ships
}

// HostileIDs returns the galaxy-wide ids of the active region's hostiles.
func (s *Session) HostileIDs() []string {
	var ids []string
	for _, h := range s.Hostiles() {
		ids = append(ids, s.Galaxy.Identify(world.Piece{X: h.X, Y: h.Y, Glyph: world.GlyphHostile}))
	}
	return ids
}

// Report writes a short status summary to d.
func (s *Session) Report(d Display) {
	g := s.Galaxy
	totals := g.Totals()
	d.Display(fmt.Sprintf("Stardate turn %d, sector %d [%d,%d] at %d,%d",
		s.Turn, g.Sector, g.MajorX, g.MajorY, g.X, g.Y))
	d.Display(fmt.Sprintf("Galaxy: %s", totals))
	for _, row := range strings.Split(strings.TrimRight(g.Chart().String(), "\n"), "\n") {
		d.Display(row)
	}
	lrs := g.LongRangeScan()
	for _, row := range lrs {
		d.Display(fmt.Sprintf(" %s  %s  %s", row[0].Code(), row[1].Code(), row[2].Code()))
	}
}
