package shooter

import "github.com/pixelvoid/starfall/internal/core"

// Step advances the simulation by exactly one tick. Phases run in a fixed
// order: movement, firing, projectile advance, spawning, enemy advance,
// then the three collision passes, pruning, and explosion aging. Once the
// world is in game over the step is a strict no-op.
func (g *Game) Step(in Intent) core.StepResult {
	w := &g.world
	if w.GameOver {
		return core.StepResult{State: g.State()}
	}

	w.Elapsed += g.tickDur
	w.Tick++

	mult := g.cfg.Speed

	g.applyIntent(in)

	// Auto-fire on cooldown. There is no fire button; holding still shoots.
	if w.Elapsed-w.LastFire >= FireCooldown {
		w.Bullets = append(w.Bullets, FireBullet(w.Player))
		w.LastFire = w.Elapsed
	}

	// Advance player bullets upward, retiring any fully above the top edge.
	for i := range w.Bullets {
		w.Bullets[i].Pos.Y -= w.Bullets[i].Speed * mult
		if w.Bullets[i].Pos.Y+w.Bullets[i].H < 0 {
			w.Bullets[i].Alive = false
		}
	}

	// Advance enemy bullets downward, retiring any fully below the bottom.
	for i := range w.EnemyBullets {
		w.EnemyBullets[i].Pos.Y += w.EnemyBullets[i].Speed * mult
		if w.EnemyBullets[i].Pos.Y > FieldH {
			w.EnemyBullets[i].Alive = false
		}
	}

	// Spawn a new enemy on cooldown.
	if w.Elapsed-w.LastSpawn >= SpawnCooldown {
		w.Enemies = append(w.Enemies, SpawnEnemy(g.rng, g.cfg.Enemy.Size))
		w.LastSpawn = w.Elapsed
	}

	// Advance enemies downward. Each live enemy has an independent chance to
	// fire this tick; enemies fully past the bottom edge despawn unscored.
	for i := range w.Enemies {
		e := &w.Enemies[i]
		e.Pos.Y += e.Speed * mult
		if e.Pos.Y > FieldH {
			e.Alive = false
			continue
		}
		if g.rng.Float64() < EnemyFireChance*mult {
			w.EnemyBullets = append(w.EnemyBullets, FireEnemyBullet(*e))
		}
	}

	g.collideBulletsEnemies()
	g.collideEnemiesPlayer()
	g.collideEnemyBulletsPlayer()

	g.prune()

	// Age explosions last so a burst created this tick renders at age 0.
	for i := range w.Explosions {
		w.Explosions[i].Age++
		if w.Explosions[i].Age >= ExplosionLifetime {
			w.Explosions[i].Alive = false
		}
	}
	w.Explosions = filterExplosions(w.Explosions)

	return core.StepResult{State: g.State()}
}

// applyIntent moves the player from both input channels in one tick:
// keyboard first as per-axis velocity, then the pointer target, then a
// final clamp to the playfield.
func (g *Game) applyIntent(in Intent) {
	p := &g.world.Player
	step := p.Speed * g.cfg.Speed

	if in.Has(DirLeft) {
		p.Pos.X -= step
	}
	if in.Has(DirRight) {
		p.Pos.X += step
	}
	if in.Has(DirUp) {
		p.Pos.Y -= step
	}
	if in.Has(DirDown) {
		p.Pos.Y += step
	}

	// Pointer steering: move toward the target at player speed, but snap
	// when closer than one step so the ship settles instead of oscillating.
	// A small dead zone absorbs pointer jitter.
	if in.HasTarget {
		center := p.Rect().Center()
		delta := in.Target.Sub(center)
		if dist := delta.Len(); dist > PointerDeadZone {
			if dist <= step {
				p.Pos = p.Pos.Add(delta)
			} else {
				p.Pos = p.Pos.Add(delta.Normalized().Scale(step))
			}
		}
	}

	p.Pos.X = core.ClampF(p.Pos.X, 0, FieldW-p.W)
	p.Pos.Y = core.ClampF(p.Pos.Y, 0, FieldH-p.H)
}

// collideBulletsEnemies resolves player bullets against enemies. Each bullet
// destroys at most one enemy: the first live overlap in slice order wins,
// both participants die, and the enemy's value is scored exactly once.
func (g *Game) collideBulletsEnemies() {
	w := &g.world
	for bi := range w.Bullets {
		b := &w.Bullets[bi]
		if !b.Alive {
			continue
		}
		for ei := range w.Enemies {
			e := &w.Enemies[ei]
			if !e.Alive {
				continue
			}
			if b.Rect().Intersects(e.Rect()) {
				b.Alive = false
				e.Alive = false
				w.Score += e.ScoreValue()
				w.Explosions = append(w.Explosions, Explosion{Center: e.Rect().Center(), Alive: true})
				break
			}
		}
	}
}

// collideEnemiesPlayer ends the game if any live enemy touches the player.
func (g *Game) collideEnemiesPlayer() {
	w := &g.world
	if !w.Player.Alive {
		return
	}
	for i := range w.Enemies {
		e := &w.Enemies[i]
		if !e.Alive {
			continue
		}
		if e.Rect().Intersects(w.Player.Rect()) {
			g.killPlayer()
			return
		}
	}
}

// collideEnemyBulletsPlayer ends the game if any live enemy bullet hits the
// player. Skipped implicitly when the player already died this tick.
func (g *Game) collideEnemyBulletsPlayer() {
	w := &g.world
	if !w.Player.Alive {
		return
	}
	for i := range w.EnemyBullets {
		b := &w.EnemyBullets[i]
		if !b.Alive {
			continue
		}
		if b.Rect().Intersects(w.Player.Rect()) {
			b.Alive = false
			g.killPlayer()
			return
		}
	}
}

func (g *Game) killPlayer() {
	w := &g.world
	w.Player.Alive = false
	w.GameOver = true
	w.Explosions = append(w.Explosions, Explosion{Center: w.Player.Rect().Center(), Alive: true})
}

// prune rebuilds the entity collections keeping only live entities, so
// nothing inactive survives into the next tick.
func (g *Game) prune() {
	w := &g.world

	enemies := w.Enemies[:0]
	for _, e := range w.Enemies {
		if e.Alive {
			enemies = append(enemies, e)
		}
	}
	w.Enemies = enemies

	bullets := w.Bullets[:0]
	for _, b := range w.Bullets {
		if b.Alive {
			bullets = append(bullets, b)
		}
	}
	w.Bullets = bullets

	enemyBullets := w.EnemyBullets[:0]
	for _, b := range w.EnemyBullets {
		if b.Alive {
			enemyBullets = append(enemyBullets, b)
		}
	}
	w.EnemyBullets = enemyBullets
}

func filterExplosions(in []Explosion) []Explosion {
	out := in[:0]
	for _, x := range in {
		if x.Alive {
			out = append(out, x)
		}
	}
	return out
}
