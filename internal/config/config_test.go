package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultParses(t *testing.T) {
	cfg, err := LoadRules("")
	if err != nil {
		t.Fatalf("LoadRules(\"\") failed: %v", err)
	}

	if cfg.Scoring.PerDalek <= 0 {
		t.Errorf("PerDalek = %d, expected positive", cfg.Scoring.PerDalek)
	}
	if !cfg.Scrap.Enabled {
		t.Error("Default config should enable scrap")
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rules.yaml")
	custom := []byte("movement:\n  diagonal_daleks: false\nteleport:\n  allowed: 5\nscoring:\n  per_dalek: 25\n  per_round: 2\n")
	if err := os.WriteFile(path, custom, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadRules(path)
	if err != nil {
		t.Fatalf("LoadRules(%s) failed: %v", path, err)
	}

	if cfg.Movement.DiagonalDaleks {
		t.Error("diagonal_daleks should be false")
	}
	if cfg.Teleport.Allowed != 5 {
		t.Errorf("Teleport.Allowed = %d, expected 5", cfg.Teleport.Allowed)
	}
	if cfg.Scoring.PerDalek != 25 {
		t.Errorf("PerDalek = %d, expected 25", cfg.Scoring.PerDalek)
	}
}

func TestLoadMissingCustomPathFails(t *testing.T) {
	if _, err := LoadRules(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Missing explicit config path should be an error")
	}
}

func TestApplyPreset(t *testing.T) {
	base := DefaultRules()

	easy := ApplyPreset(base, DifficultyEasy)
	if easy.Movement.DiagonalDaleks {
		t.Error("easy preset should disable diagonal daleks")
	}

	hard := ApplyPreset(base, DifficultyHard)
	if !hard.Movement.DiagonalDaleks {
		t.Error("hard preset should enable diagonal daleks")
	}
	if hard.Teleport.Allowed != 3 {
		t.Errorf("hard preset teleport budget = %d, expected 3", hard.Teleport.Allowed)
	}

	unknown := ApplyPreset(base, DifficultyPreset("weird"))
	if unknown != base {
		t.Error("unknown preset should leave the config untouched")
	}
}
