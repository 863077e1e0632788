// Command chartdump builds a galaxy from a tuning file and prints its
// charts without opening a window.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spacehole-rogue/trekmap/internal/game"
	"github.com/spacehole-rogue/trekmap/internal/logger"
	"github.com/spacehole-rogue/trekmap/internal/tuning"
	"github.com/spacehole-rogue/trekmap/internal/world"
)

func main() {
	envFile := flag.String("env", ".env", "environment file")
	tuningPath := flag.String("tuning", "", "tuning file (default $TREKMAP_TUNING)")
	jumps := flag.Int("jumps", 0, "random jumps to take before reporting")
	all := flag.Bool("all", false, "list every hostile in the galaxy")
	flag.Parse()

	_ = godotenv.Load(*envFile)
	lg := logger.Setup()

	path := *tuningPath
	if path == "" {
		path = os.Getenv("TREKMAP_TUNING")
	}
	t, err := tuning.Load(path)
	if err != nil {
		log.Fatalf("load tuning: %v", err)
	}
	if v := os.Getenv("TREKMAP_SEED"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			log.Fatalf("TREKMAP_SEED: %v", err)
		}
		t.Seed = seed
	}

	s, err := game.NewSession(t, lg)
	if err != nil {
		log.Fatalf("start game: %v", err)
	}
	for i := 0; i < *jumps; i++ {
		s.Jump()
	}

	out := game.ConsoleDisplay{W: os.Stdout}
	out.Display(fmt.Sprintf("session %s seed %d", s.ID, s.Seed))
	s.Report(out)
	for _, m := range s.Log.Recent(10) {
		out.Display("> " + m.Text)
	}
	if *all {
		for _, loc := range s.Galaxy.FindAll(world.GlyphHostile) {
			out.Display(fmt.Sprintf("%s sector %d %s", game.IdentifyIn(loc.Region.Number, loc.Piece),
				loc.Region.Number, loc.Piece.Point()))
		}
	}
}
