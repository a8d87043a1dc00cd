package engine

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "engine.json")
	if err := os.WriteFile(path, []byte(`{"aspiration_window": 30, "use_lmr": false}`), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	def := DefaultConfig()
	if cfg.AspirationWindow != 30 || cfg.UseLMR {
		t.Fatalf("file values not applied: %+v", cfg)
	}
	if cfg.AspirationCap != def.AspirationCap || cfg.TTCapacity != def.TTCapacity || !cfg.UseFutility {
		t.Fatalf("defaults lost: %+v", cfg)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := LoadConfig(filepath.Join(dir, "missing.json")); err == nil {
		t.Fatalf("missing file accepted")
	}
	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte(`{"aspiration_window": `), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(bad); err == nil {
		t.Fatalf("malformed JSON accepted")
	}
	invalid := filepath.Join(dir, "invalid.json")
	if err := os.WriteFile(invalid, []byte(`{"tt_high_water": 0.5, "tt_trim_target": 0.6}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(invalid); err == nil {
		t.Fatalf("inverted trim thresholds accepted")
	}
}

func TestBudgetGrowsWithDepth(t *testing.T) {
	cfg := DefaultConfig()
	if BudgetFor(8, cfg) <= BudgetFor(4, cfg) {
		t.Fatalf("deeper targets should get more time")
	}
}
