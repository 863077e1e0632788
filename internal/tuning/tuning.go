package tuning

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Tuning holds the difficulty and placement settings for a new game.
type Tuning struct {
	// Seed drives every random draw. 0 picks a fresh seed per game.
	Seed int64 `yaml:"seed"`

	// Requested object counts. Zero starbases or hostiles selects the
	// randomized default difficulty.
	Starbases int `yaml:"starbases"`
	Stars     int `yaml:"stars"`
	Hostiles  int `yaml:"hostiles"`

	Strategy  string `yaml:"strategy"`   // "weighted" or "uniform"
	MaxSweeps int    `yaml:"max_sweeps"` // placement attempt budget

	LogSize int `yaml:"log_size"` // comms log capacity

	Presets []PresetSpec `yaml:"presets,omitempty"`
}

// PresetSpec fixes the contents of one sector before distribution.
type PresetSpec struct {
	Sector int      `yaml:"sector"`
	Rows   []string `yaml:"rows"`
}

// Defaults returns the settings used when no file is given.
func Defaults() Tuning {
	return Tuning{
		Stars:     40,
		Strategy:  "weighted",
		MaxSweeps: 10000,
		LogSize:   50,
	}
}

// Load reads a tuning file over the defaults. An empty path returns the defaults.
func Load(path string) (Tuning, error) {
	t := Defaults()
	if strings.TrimSpace(path) == "" {
		return t, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return t, err
	}
	if err := yaml.Unmarshal(raw, &t); err != nil {
		return t, fmt.Errorf("tuning.yaml: %w", err)
	}
	if err := t.Validate(); err != nil {
		return t, fmt.Errorf("tuning.yaml: %w", err)
	}
	return t, nil
}

// Validate rejects settings no game can start from.
func (t Tuning) Validate() error {
	var errs []error
	if t.Starbases < 0 || t.Stars < 0 || t.Hostiles < 0 {
		errs = append(errs, errors.New("object counts must not be negative"))
	}
	if t.MaxSweeps < 0 {
		errs = append(errs, errors.New("max_sweeps must not be negative"))
	}
	if t.LogSize < 0 {
		errs = append(errs, errors.New("log_size must not be negative"))
	}
	switch strings.ToLower(t.Strategy) {
	case "", "weighted", "uniform":
	default:
		errs = append(errs, fmt.Errorf("unknown strategy %q", t.Strategy))
	}
	seen := map[int]bool{}
	for _, p := range t.Presets {
		if p.Sector < 1 || p.Sector > 64 {
			errs = append(errs, fmt.Errorf("preset sector %d out of range", p.Sector))
		}
		if seen[p.Sector] {
			errs = append(errs, fmt.Errorf("duplicate preset for sector %d", p.Sector))
		}
		seen[p.Sector] = true
	}
	return errors.Join(errs...)
}
