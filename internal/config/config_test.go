package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultParses(t *testing.T) {
	var cfg TetrisConfig
	if err := yaml.Unmarshal(GetDefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded default YAML broken: %v", err)
	}
	if cfg.Board.Width != 10 || cfg.Board.Height != 20 {
		t.Errorf("board %dx%d, want 10x20", cfg.Board.Width, cfg.Board.Height)
	}
	if cfg.Timing.LockDelayMS != 500 || cfg.Rules.PreviewCount != 3 {
		t.Error("embedded defaults diverge from DefaultTetrisConfig")
	}
	if !cfg.Rules.EnableHold || !cfg.Rules.EnableGhost {
		t.Error("hold and ghost should default on")
	}
	if cfg.Input.DASDelayMS != 250 || cfg.Input.DASRepeatMS != 50 {
		t.Error("input defaults wrong")
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	data := []byte("board:\n  width: 8\n  height: 16\nrules:\n  starting_level: 3\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadTetris(path)
	if err != nil {
		t.Fatalf("LoadTetris: %v", err)
	}
	if cfg.Board.Width != 8 || cfg.Rules.StartingLevel != 3 {
		t.Errorf("custom values not loaded: %+v", cfg)
	}
}

func TestLoadMissingCustomPathFails(t *testing.T) {
	if _, err := LoadTetris("/nonexistent/tetris.yaml"); err == nil {
		t.Fatal("explicit missing path must be an error")
	}
}

func TestApplyPreset(t *testing.T) {
	cfg := DefaultTetrisConfig()
	ApplyTetrisPreset(&cfg, DifficultyHard)
	if cfg.Rules.StartingLevel != 5 || cfg.Timing.LockDelayMS != 400 {
		t.Errorf("hard preset not applied: %+v", cfg)
	}

	cfg = DefaultTetrisConfig()
	ApplyTetrisPreset(&cfg, DifficultyFixed)
	if cfg.Gravity.TableMS[1] != 1000 || cfg.Gravity.TableMS[19] != 1000 {
		t.Error("fixed preset should pin every level's gravity")
	}

	cfg = DefaultTetrisConfig()
	before := cfg
	ApplyTetrisPreset(&cfg, DifficultyNormal)
	if cfg.Rules != before.Rules || cfg.Timing != before.Timing {
		t.Error("normal preset must not change the config")
	}
}

func TestValidPreset(t *testing.T) {
	for _, p := range []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed} {
		if !ValidPreset(p) {
			t.Errorf("preset %q should be valid", p)
		}
	}
	if ValidPreset("nightmare") {
		t.Error("unknown preset accepted")
	}
}
