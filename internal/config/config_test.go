package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Validate(Default()); err != nil {
		t.Errorf("default config should validate, got %v", err)
	}
}

func TestEmbeddedDefaultParses(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load with no file should fall back to defaults, got %v", err)
	}
	if err := Validate(cfg); err != nil {
		t.Errorf("loaded config should validate, got %v", err)
	}
	if cfg.Player.Width <= 0 {
		t.Error("loaded config should have a positive player width")
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	content := `
colors:
  background: default
  player: bright-cyan
  bullet: bright-yellow
  enemy: bright-red
  enemy_bullet: orange
  explosion: bright-white
  score: white
  stars: gray
player:
  width: 32
  height: 16
  speed: 4
enemy:
  size: 20
stars:
  count: 10
  size: 2
speed_multiplier: 1.2
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%s): %v", path, err)
	}
	if cfg.Player.Width != 32 || cfg.Player.Height != 16 {
		t.Errorf("player size = %gx%g, want 32x16", cfg.Player.Width, cfg.Player.Height)
	}
	if cfg.Speed != 1.2 {
		t.Errorf("speed multiplier = %g, want 1.2", cfg.Speed)
	}
	if cfg.Colors.Player != "bright-cyan" {
		t.Errorf("player color = %q", cfg.Colors.Player)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := Load("/nonexistent/starfall.yaml"); err == nil {
		t.Error("a missing custom path must be an error, not a fallback")
	}

	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("player: [not a map"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("malformed YAML at a custom path must be an error")
	}
}

func TestValidateRejections(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero player width", func(c *Config) { c.Player.Width = 0 }},
		{"negative player height", func(c *Config) { c.Player.Height = -1 }},
		{"zero player speed", func(c *Config) { c.Player.Speed = 0 }},
		{"zero enemy size", func(c *Config) { c.Enemy.Size = 0 }},
		{"zero multiplier", func(c *Config) { c.Speed = 0 }},
		{"negative star count", func(c *Config) { c.Stars.Count = -1 }},
		{"zero star size with stars", func(c *Config) { c.Stars.Size = 0 }},
		{"empty color", func(c *Config) { c.Colors.Enemy = "" }},
		{"unknown color", func(c *Config) { c.Colors.Bullet = "chartreuse" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			if err := Validate(cfg); err == nil {
				t.Errorf("%s should be rejected", tc.name)
			}
		})
	}
}

func TestValidateAllowsZeroStars(t *testing.T) {
	cfg := Default()
	cfg.Stars.Count = 0
	cfg.Stars.Size = 0
	if err := Validate(cfg); err != nil {
		t.Errorf("a disabled star field should validate, got %v", err)
	}
}

func TestApplyPreset(t *testing.T) {
	cfg := Default()

	ApplyPreset(&cfg, DifficultyEasy)
	if cfg.Speed != 0.7 {
		t.Errorf("easy multiplier = %g, want 0.7", cfg.Speed)
	}

	ApplyPreset(&cfg, DifficultyHard)
	if cfg.Speed != 1.5 {
		t.Errorf("hard multiplier = %g, want 1.5", cfg.Speed)
	}

	cfg.Speed = 2.5
	ApplyPreset(&cfg, DifficultyFixed)
	if cfg.Speed != 2.5 {
		t.Errorf("fixed preset should keep the configured multiplier, got %g", cfg.Speed)
	}
}
