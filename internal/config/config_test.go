package config

import (
	"os"
	"path/filepath"
	"testing"
)

// #region env-tests

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DBPath != "shield.db" {
		t.Errorf("expected default db path, got %q", cfg.DBPath)
	}
	if cfg.SimAddr != "localhost:50051" {
		t.Errorf("expected default sim addr, got %q", cfg.SimAddr)
	}
	if cfg.MaxEpisodeSteps != 1600 {
		t.Errorf("expected 1600 max steps, got %d", cfg.MaxEpisodeSteps)
	}
	if cfg.Episodes != 10 {
		t.Errorf("expected 10 episodes, got %d", cfg.Episodes)
	}
	if cfg.ReducedDim != 0 {
		t.Errorf("expected reducer disabled, got %d", cfg.ReducedDim)
	}
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("SHIELD_DB_PATH", "/tmp/other.db")
	t.Setenv("SHIELD_EPISODES", "3")
	t.Setenv("SHIELD_BASE_SEED", "1000")
	t.Setenv("SHIELD_REDUCED_DIM", "8")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DBPath != "/tmp/other.db" {
		t.Errorf("db path not read: %q", cfg.DBPath)
	}
	if cfg.Episodes != 3 {
		t.Errorf("episodes not read: %d", cfg.Episodes)
	}
	if cfg.BaseSeed != 1000 {
		t.Errorf("base seed not read: %d", cfg.BaseSeed)
	}
	if cfg.ReducedDim != 8 {
		t.Errorf("reduced dim not read: %d", cfg.ReducedDim)
	}
}

func TestLoad_RejectsNonPositiveEpisodes(t *testing.T) {
	t.Setenv("SHIELD_EPISODES", "0")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for zero episodes")
	}
}

// #endregion env-tests

// #region override-tests

func TestLoadOverrides_EmptyPathUsesDefaults(t *testing.T) {
	ov, err := LoadOverrides("")
	if err != nil {
		t.Fatalf("load overrides: %v", err)
	}
	if len(ov) != 5 {
		t.Fatalf("expected 5 walker rules, got %d", len(ov))
	}
	if !ov[0].AtMidpoint || ov[0].Radius != 0.7 {
		t.Errorf("rule 0 wrong: %+v", ov[0])
	}
}

func TestLoadOverrides_FromYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "overrides.yaml")
	content := `overrides:
  0:
    radius: 0.5
  2:
    center: 0.25
    radius: 0.9
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	ov, err := LoadOverrides(path)
	if err != nil {
		t.Fatalf("load overrides: %v", err)
	}
	if len(ov) != 2 {
		t.Fatalf("expected 2 rules, got %d", len(ov))
	}
	if !ov[0].AtMidpoint || ov[0].Radius != 0.5 {
		t.Errorf("missing center should pin rule 0 to the midpoint: %+v", ov[0])
	}
	if ov[2].AtMidpoint || ov[2].Center != 0.25 || ov[2].Radius != 0.9 {
		t.Errorf("rule 2 wrong: %+v", ov[2])
	}
}

func TestLoadOverrides_MissingFile(t *testing.T) {
	if _, err := LoadOverrides(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadOverrides_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("overrides: ["), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	if _, err := LoadOverrides(path); err == nil {
		t.Fatal("expected parse error")
	}
}

// #endregion override-tests
