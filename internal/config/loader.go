package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/pixelvoid/starfall/internal/core"
)

// Load loads the shooter configuration and validates it.
// Search order: customPath -> ~/.starfall/config.yaml -> ./configs/starfall.yaml
// -> embedded default.
func Load(customPath string) (Config, error) {
	var cfg Config

	// A custom path is authoritative: failures there are errors, not fallbacks.
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		if err := Validate(cfg); err != nil {
			return cfg, err
		}
		return cfg, nil
	}

	// Try user config directory
	if userPath := userConfigPath("config.yaml"); userPath != "" {
		if data, err := os.ReadFile(userPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil && Validate(cfg) == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/starfall.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil && Validate(cfg) == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	if err := Validate(cfg); err != nil {
		return Default(), nil
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is
// unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".starfall", filename)
}

// Validate rejects malformed configuration before it can reach the
// simulation. Sizes and speeds must be positive; colors must name palette
// entries.
func Validate(cfg Config) error {
	if cfg.Player.Width <= 0 || cfg.Player.Height <= 0 {
		return fmt.Errorf("config: player size must be positive, got %gx%g", cfg.Player.Width, cfg.Player.Height)
	}
	if cfg.Player.Speed <= 0 {
		return fmt.Errorf("config: player speed must be positive, got %g", cfg.Player.Speed)
	}
	if cfg.Enemy.Size <= 0 {
		return fmt.Errorf("config: enemy size must be positive, got %g", cfg.Enemy.Size)
	}
	if cfg.Speed <= 0 {
		return fmt.Errorf("config: speed multiplier must be positive, got %g", cfg.Speed)
	}
	if cfg.Stars.Count < 0 {
		return fmt.Errorf("config: star count must not be negative, got %d", cfg.Stars.Count)
	}
	if cfg.Stars.Count > 0 && cfg.Stars.Size <= 0 {
		return fmt.Errorf("config: star size must be positive, got %g", cfg.Stars.Size)
	}

	for name, value := range map[string]string{
		"background":   cfg.Colors.Background,
		"player":       cfg.Colors.Player,
		"bullet":       cfg.Colors.Bullet,
		"enemy":        cfg.Colors.Enemy,
		"enemy_bullet": cfg.Colors.EnemyBullet,
		"explosion":    cfg.Colors.Explosion,
		"score":        cfg.Colors.Score,
		"stars":        cfg.Colors.Stars,
	} {
		if value == "" {
			return fmt.Errorf("config: colors.%s must not be empty", name)
		}
		if _, ok := core.ParseColor(value); !ok {
			return fmt.Errorf("config: colors.%s: unknown color %q", name, value)
		}
	}

	return nil
}
