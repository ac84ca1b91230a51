package config

import (
	_ "embed"
)

//go:embed defaults/starfall.yaml
var defaultYAML []byte

// Default returns the default shooter configuration.
func Default() Config {
	return Config{
		Colors: Colors{
			Background:  "default",
			Player:      "bright-green",
			Bullet:      "bright-yellow",
			Enemy:       "bright-red",
			EnemyBullet: "orange",
			Explosion:   "bright-white",
			Score:       "white",
			Stars:       "gray",
		},
		Player: Player{
			Width:  24,
			Height: 24,
			Speed:  5,
		},
		Enemy: Enemy{
			Size: 24,
		},
		Stars: Stars{
			Count: 60,
			Size:  2,
		},
		Speed: 1.0,
	}
}
