package shooter

import (
	"time"

	"github.com/pixelvoid/starfall/internal/config"
	"github.com/pixelvoid/starfall/internal/core"
)

// World is the authoritative mutable snapshot of the simulation. Every
// entity is owned by value; no entity holds a reference to another.
// Cross-entity relationships (which bullet hit which enemy) are discovered
// transiently during collision resolution and never stored.
//
// Collections are rebuilt by filtering at the end of each tick, so no
// entity persists inactive across ticks.
type World struct {
	Player       Player
	Enemies      []Enemy
	Bullets      []Bullet
	EnemyBullets []EnemyBullet
	Explosions   []Explosion

	Tick      uint64
	Elapsed   time.Duration // Simulated time, advanced by one tick duration per step
	LastFire  time.Duration // Elapsed at the last player shot
	LastSpawn time.Duration // Elapsed at the last enemy spawn
	GameOver  bool
	Score     int
}

// newWorld builds a fresh playing-state world from the session config.
// The player starts centered near the bottom edge. The fire and spawn
// timers are primed so the first tick shoots and spawns immediately.
func newWorld(cfg config.Config) World {
	return World{
		Player: Player{
			Pos: core.Vec{
				X: FieldW/2 - cfg.Player.Width/2,
				Y: FieldH - cfg.Player.Height - 4*PixelUnit,
			},
			W:     cfg.Player.Width,
			H:     cfg.Player.Height,
			Speed: cfg.Player.Speed,
			Alive: true,
		},
		LastFire:  -FireCooldown,
		LastSpawn: -SpawnCooldown,
	}
}
