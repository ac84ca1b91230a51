package shooter

import "math"

// Snapshot captures the complete simulation state using primitive types
// only, flattened for stable hashing. Float coordinates are encoded as
// their IEEE-754 bit patterns so the capture is exact, not rounded.
type Snapshot struct {
	Tick     uint64
	Score    int
	GameOver bool

	PlayerX     uint64
	PlayerY     uint64
	PlayerW     uint64
	PlayerH     uint64
	PlayerAlive bool

	// Each enemy is 4 values: X, Y, Speed (bit patterns), Kind.
	EnemyCount int
	EnemyData  []uint64

	// Each bullet is 2 values: X, Y (bit patterns).
	BulletCount int
	BulletData  []uint64

	EnemyBulletCount int
	EnemyBulletData  []uint64

	// Each explosion is 3 values: X, Y (bit patterns), Age.
	ExplosionCount int
	ExplosionData  []uint64
}

// Snapshot returns the current simulation state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	w := &g.world

	enemyData := make([]uint64, 0, len(w.Enemies)*4)
	for _, e := range w.Enemies {
		enemyData = append(enemyData,
			math.Float64bits(e.Pos.X),
			math.Float64bits(e.Pos.Y),
			math.Float64bits(e.Speed),
			uint64(e.Kind), //#nosec G115 -- kind is a small non-negative enum
		)
	}

	bulletData := make([]uint64, 0, len(w.Bullets)*2)
	for _, b := range w.Bullets {
		bulletData = append(bulletData, math.Float64bits(b.Pos.X), math.Float64bits(b.Pos.Y))
	}

	enemyBulletData := make([]uint64, 0, len(w.EnemyBullets)*2)
	for _, b := range w.EnemyBullets {
		enemyBulletData = append(enemyBulletData, math.Float64bits(b.Pos.X), math.Float64bits(b.Pos.Y))
	}

	explosionData := make([]uint64, 0, len(w.Explosions)*3)
	for _, x := range w.Explosions {
		explosionData = append(explosionData,
			math.Float64bits(x.Center.X),
			math.Float64bits(x.Center.Y),
			uint64(x.Age), //#nosec G115 -- age is bounded by the explosion lifetime
		)
	}

	return Snapshot{
		Tick:     w.Tick,
		Score:    w.Score,
		GameOver: w.GameOver,

		PlayerX:     math.Float64bits(w.Player.Pos.X),
		PlayerY:     math.Float64bits(w.Player.Pos.Y),
		PlayerW:     math.Float64bits(w.Player.W),
		PlayerH:     math.Float64bits(w.Player.H),
		PlayerAlive: w.Player.Alive,

		EnemyCount: len(w.Enemies),
		EnemyData:  enemyData,

		BulletCount: len(w.Bullets),
		BulletData:  bulletData,

		EnemyBulletCount: len(w.EnemyBullets),
		EnemyBulletData:  enemyBulletData,

		ExplosionCount: len(w.Explosions),
		ExplosionData:  explosionData,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Score) //#nosec G115 -- hash computation
	if snap.GameOver {
		h = h*31 + 1
	} else {
		h = h * 31
	}

	h = h*31 + snap.PlayerX
	h = h*31 + snap.PlayerY
	h = h*31 + snap.PlayerW
	h = h*31 + snap.PlayerH
	if snap.PlayerAlive {
		h = h*31 + 1
	} else {
		h = h * 31
	}

	h = h*31 + uint64(snap.EnemyCount)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BulletCount)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.EnemyBulletCount) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.ExplosionCount)   //#nosec G115 -- hash computation

	for _, v := range snap.EnemyData {
		h = h*31 + v
	}
	for _, v := range snap.BulletData {
		h = h*31 + v
	}
	for _, v := range snap.EnemyBulletData {
		h = h*31 + v
	}
	for _, v := range snap.ExplosionData {
		h = h*31 + v
	}

	return h
}
