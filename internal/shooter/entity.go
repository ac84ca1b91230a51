package shooter

import (
	"math/rand"
	"time"

	"github.com/pixelvoid/starfall/internal/core"
)

// Playfield dimensions in logical units. All entity positions are expressed
// in this fixed coordinate space; the renderer projects it onto whatever
// screen the platform provides.
const (
	FieldW = 800.0
	FieldH = 600.0
)

// PixelUnit is the art-grid size: rendering snaps every rectangle to this
// grid so entities keep a chunky pixel-art look regardless of screen size.
const PixelUnit = 4.0

// Gameplay constants.
const (
	BulletWidth       = 4.0
	BulletHeight      = 12.0
	BulletSpeed       = 8.0
	EnemyBulletWidth  = 4.0
	EnemyBulletHeight = 8.0
	EnemyBulletSpeed  = 4.0
	EnemyMinSpeed     = 2.0
	EnemyMaxSpeed     = 5.0
	EnemyKinds        = 2
	EnemyFireChance   = 0.005 // Per enemy per tick, scaled by the speed multiplier

	FireCooldown  = 200 * time.Millisecond
	SpawnCooldown = 1000 * time.Millisecond

	ExplosionLifetime = 10 // Frames until an explosion is removed
	PointerDeadZone   = 5.0
)

// Player is the player ship. It is created once per session and never
// removed; after game over it is marked not alive to suppress its draw.
type Player struct {
	Pos   core.Vec
	W, H  float64
	Speed float64
	Alive bool
}

// Rect returns the player's bounding box.
func (p Player) Rect() core.Rect {
	return core.NewRect(p.Pos.X, p.Pos.Y, p.W, p.H)
}

// Enemy descends from above the top edge. Kind affects only the score value
// awarded on destruction, not behavior.
type Enemy struct {
	Pos   core.Vec
	Size  float64
	Speed float64
	Kind  int
	Alive bool
}

// Rect returns the enemy's bounding box.
func (e Enemy) Rect() core.Rect {
	return core.NewRect(e.Pos.X, e.Pos.Y, e.Size, e.Size)
}

// ScoreValue returns the points awarded for destroying this enemy.
func (e Enemy) ScoreValue() int {
	return (e.Kind + 1) * 10
}

// Bullet is a player-fired projectile moving up the playfield.
type Bullet struct {
	Pos   core.Vec
	W, H  float64
	Speed float64
	Alive bool
}

// Rect returns the bullet's bounding box.
func (b Bullet) Rect() core.Rect {
	return core.NewRect(b.Pos.X, b.Pos.Y, b.W, b.H)
}

// EnemyBullet is an enemy-fired projectile moving down the playfield.
type EnemyBullet struct {
	Pos   core.Vec
	W, H  float64
	Speed float64
	Alive bool
}

// Rect returns the enemy bullet's bounding box.
func (b EnemyBullet) Rect() core.Rect {
	return core.NewRect(b.Pos.X, b.Pos.Y, b.W, b.H)
}

// Explosion is a purely visual burst. It never collides and is removed once
// its age reaches ExplosionLifetime.
type Explosion struct {
	Center core.Vec
	Age    int
	Alive  bool
}

// SpawnEnemy creates a new enemy just above the top edge at a random
// horizontal position, with a random speed in [EnemyMinSpeed, EnemyMaxSpeed)
// and a random kind.
func SpawnEnemy(rng *rand.Rand, size float64) Enemy {
	return Enemy{
		Pos:   core.Vec{X: rng.Float64() * (FieldW - size), Y: -size},
		Size:  size,
		Speed: EnemyMinSpeed + rng.Float64()*(EnemyMaxSpeed-EnemyMinSpeed),
		Kind:  rng.Intn(EnemyKinds),
		Alive: true,
	}
}

// FireBullet creates a player bullet centered horizontally on the player,
// spawned at the player's top edge. The player is not mutated.
func FireBullet(p Player) Bullet {
	return Bullet{
		Pos:   core.Vec{X: p.Pos.X + p.W/2 - BulletWidth/2, Y: p.Pos.Y - BulletHeight},
		W:     BulletWidth,
		H:     BulletHeight,
		Speed: BulletSpeed,
		Alive: true,
	}
}

// FireEnemyBullet creates an enemy bullet centered horizontally on the
// enemy, spawned at the enemy's bottom edge. The enemy is not mutated.
func FireEnemyBullet(e Enemy) EnemyBullet {
	return EnemyBullet{
		Pos:   core.Vec{X: e.Pos.X + e.Size/2 - EnemyBulletWidth/2, Y: e.Pos.Y + e.Size},
		W:     EnemyBulletWidth,
		H:     EnemyBulletHeight,
		Speed: EnemyBulletSpeed,
		Alive: true,
	}
}
