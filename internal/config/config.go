// Package config provides YAML-based game configuration loading and
// difficulty presets for the shooter.
package config

// Config contains all session configuration for the shooter. It is injected
// once at game start and treated as read-only for the session, except for
// the player size which may be changed live through Game.SetPlayerSize.
type Config struct {
	Colors Colors  `yaml:"colors"`
	Player Player  `yaml:"player"`
	Enemy  Enemy   `yaml:"enemy"`
	Stars  Stars   `yaml:"stars"`
	Speed  float64 `yaml:"speed_multiplier"` // Global speed multiplier applied to all motion
}

// Colors names the palette entry used for each drawn element.
// Values must be palette names understood by core.ParseColor.
type Colors struct {
	Background  string `yaml:"background"`
	Player      string `yaml:"player"`
	Bullet      string `yaml:"bullet"`
	Enemy       string `yaml:"enemy"`
	EnemyBullet string `yaml:"enemy_bullet"`
	Explosion   string `yaml:"explosion"`
	Score       string `yaml:"score"`
	Stars       string `yaml:"stars"`
}

// Player defines the player entity parameters.
type Player struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Speed  float64 `yaml:"speed"` // Playfield units per tick before the multiplier
}

// Enemy defines the enemy entity parameters.
type Enemy struct {
	Size float64 `yaml:"size"` // Enemies are square
}

// Stars defines the decorative star field parameters.
type Stars struct {
	Count int     `yaml:"count"`
	Size  float64 `yaml:"size"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// SpeedForPreset returns the global speed multiplier for a difficulty preset.
// The fixed preset keeps whatever the config file says.
func SpeedForPreset(preset DifficultyPreset) (float64, bool) {
	switch preset {
	case DifficultyEasy:
		return 0.7, true
	case DifficultyNormal:
		return 1.0, true
	case DifficultyHard:
		return 1.5, true
	default:
		return 0, false
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	if speed, ok := SpeedForPreset(preset); ok {
		cfg.Speed = speed
	}
}
