package tuning

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoad_TuningYAML(t *testing.T) {
	tn, err := Load("../../configs/tuning.yaml")
	if err != nil {
		t.Fatalf("load tuning.yaml: %v", err)
	}
	if tn.Strategy != "weighted" {
		t.Fatalf("strategy = %q, want weighted", tn.Strategy)
	}
	if tn.MaxSweeps != 10000 {
		t.Fatalf("max_sweeps = %d, want 10000", tn.MaxSweeps)
	}
	if len(tn.Presets) != 1 || tn.Presets[0].Sector != 1 {
		t.Fatalf("presets = %+v", tn.Presets)
	}
}

func TestLoad_EmptyPathReturnsDefaults(t *testing.T) {
	tn, err := Load("  ")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	def := Defaults()
	if tn.Stars != def.Stars || tn.Strategy != def.Strategy || tn.MaxSweeps != def.MaxSweeps || tn.LogSize != def.LogSize {
		t.Fatalf("expected defaults, got %+v", tn)
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	if err := os.WriteFile(path, []byte("hostiles: 7\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	tn, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if tn.Hostiles != 7 {
		t.Fatalf("hostiles = %d, want 7", tn.Hostiles)
	}
	if tn.LogSize != 50 || tn.Stars != 40 {
		t.Fatalf("defaults lost: %+v", tn)
	}
}

func TestLoad_RejectsBadFiles(t *testing.T) {
	cases := map[string]string{
		"bad yaml":       "stars: [",
		"negative count": "stars: -1\n",
		"bad strategy":   "strategy: spiral\n",
		"bad preset":     "presets:\n  - sector: 65\n",
		"dup preset":     "presets:\n  - sector: 3\n  - sector: 3\n",
	}
	for name, body := range cases {
		path := filepath.Join(t.TempDir(), "tuning.yaml")
		if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
			t.Fatalf("%s: write: %v", name, err)
		}
		_, err := Load(path)
		if err == nil {
			t.Fatalf("%s: expected error", name)
		}
		if !strings.Contains(err.Error(), "tuning.yaml") {
			t.Fatalf("%s: error %q should name the file", name, err)
		}
	}
}
