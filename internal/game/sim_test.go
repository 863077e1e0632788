package game

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spacehole-rogue/trekmap/internal/logger"
	"github.com/spacehole-rogue/trekmap/internal/tuning"
	"github.com/spacehole-rogue/trekmap/internal/world"
)

func testTuning() tuning.Tuning {
	t := tuning.Defaults()
	t.Seed = 1234
	t.Starbases = 3
	t.Stars = 20
	t.Hostiles = 16
	return t
}

func TestNewSessionPlacesPlayer(t *testing.T) {
	s, err := NewSession(testTuning(), logger.Discard())
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	if s.ID == "" || s.Seed != 1234 {
		t.Fatalf("id=%q seed=%d", s.ID, s.Seed)
	}
	g := s.Galaxy
	if !g.Placed() {
		t.Fatalf("player not placed at start")
	}
	pos := s.PlayerPos()
	if pos.Sector != g.Sector || pos.X != g.X || pos.Y != g.Y {
		t.Fatalf("ECS position %+v does not match galaxy sector %d (%d,%d)", pos, g.Sector, g.X, g.Y)
	}
	want := Counts{Starbases: 3, Stars: 20, Hostiles: 16}
	if got := g.Totals(); got != want {
		t.Fatalf("totals = %+v, want %+v", got, want)
	}
	if len(s.Log.Messages) == 0 {
		t.Fatalf("expected opening messages")
	}
}

func TestSessionHostilesMirrorRegion(t *testing.T) {
	tn := testTuning()
	tn.Strategy = "uniform"
	tn.Hostiles = 60
	s, err := NewSession(tn, logger.Discard())
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	for i := 0; i < 20; i++ {
		s.Jump()
		want := s.Galaxy.HostilesInRegion()
		got := s.Hostiles()
		if len(got) != len(want) {
			t.Fatalf("turn %d: %d ECS hostiles, galaxy has %d", s.Turn, len(got), len(want))
		}
		for j := range want {
			if got[j] != want[j] {
				t.Fatalf("turn %d: hostile %d = %+v, want %+v", s.Turn, j, got[j], want[j])
			}
		}
		if len(s.HostileIDs()) != len(want) {
			t.Fatalf("turn %d: ids mismatch", s.Turn)
		}
	}
	if s.Turn != 20 {
		t.Fatalf("turn = %d", s.Turn)
	}
}

func TestSessionWarp(t *testing.T) {
	s, err := NewSession(testTuning(), logger.Discard())
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	// Sector 60 is never touched by weighted placement.
	dest := world.NewDestination(60, 4, 4)
	if err := s.Warp(dest); err != nil {
		t.Fatalf("warp: %v", err)
	}
	if p := s.PlayerPos(); p.Sector != 60 || p.X != 4 || p.Y != 4 {
		t.Fatalf("player pos = %+v", p)
	}
	if err := s.Warp(world.NewDestination(0, 1, 1)); err == nil {
		t.Fatalf("warp to sector 0 should fail")
	}
}

func TestNewSessionPresetAndValidation(t *testing.T) {
	tn := testTuning()
	tn.Presets = []tuning.PresetSpec{{Sector: 33, Rows: []string{"KKKK"}}}
	s, err := NewSession(tn, logger.Discard())
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	if n := s.Galaxy.RegionFor(33).Count(world.GlyphHostile); n != 4 {
		t.Fatalf("preset hostiles = %d, want 4", n)
	}

	tn.Presets = []tuning.PresetSpec{{Sector: 33, Rows: []string{"??"}}}
	if _, err := NewSession(tn, logger.Discard()); err == nil {
		t.Fatalf("bad preset should fail")
	}
	tn.Presets = nil
	tn.Strategy = "spiral"
	if _, err := NewSession(tn, logger.Discard()); err == nil {
		t.Fatalf("bad strategy should fail")
	}
}

func TestSessionReport(t *testing.T) {
	s, err := NewSession(testTuning(), logger.Discard())
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	var buf bytes.Buffer
	s.Report(ConsoleDisplay{W: &buf})
	out := buf.String()
	if !strings.Contains(out, "Galaxy: bases=3 stars=20 hostiles=16") {
		t.Fatalf("report missing totals:\n%s", out)
	}
	if !strings.ContainsRune(out, world.GlyphPlayer.Symbol()) {
		t.Fatalf("report chart missing player:\n%s", out)
	}
}
