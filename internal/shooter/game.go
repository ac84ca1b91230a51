// Package shooter implements the space-shooter simulation: a fixed-rate
// tick loop over a mutable world of player, enemies, bullets and
// explosions, with AABB collision, scoring and a terminal game-over state.
// The package is pure game logic with no platform dependencies; the
// platform layer owns timing, input mapping and display.
package shooter

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/pixelvoid/starfall/internal/config"
	"github.com/pixelvoid/starfall/internal/core"
)

// Game ties the session configuration, RNG and world state together and
// implements the Reset/Step/Render/State contract the platform drives.
type Game struct {
	cfg     config.Config
	world   World
	rng     *rand.Rand
	tickDur time.Duration
	palette palette

	// nowFn supplies wall-clock time for the decorative star field only.
	// It never feeds back into the simulation.
	nowFn func() time.Time
}

// New creates a game with the given session configuration. The config must
// have passed config.Validate; New does not re-check it.
func New(cfg config.Config) *Game {
	return &Game{
		cfg:     cfg,
		palette: resolvePalette(cfg.Colors),
		nowFn:   time.Now,
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "starfall"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Starfall"
}

// Reset initializes or restarts the simulation in a fresh playing state
// with score zero, preserving the current session configuration.
func (g *Game) Reset(rt core.RuntimeConfig) {
	if rt.TickRate <= 0 {
		rt.TickRate = 60
	}
	g.tickDur = time.Second / time.Duration(rt.TickRate)
	g.rng = rand.New(rand.NewSource(rt.Seed))
	g.world = newWorld(g.cfg)
}

// State returns the externally visible game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.world.Score,
		GameOver: g.world.GameOver,
	}
}

// Config returns the session configuration.
func (g *Game) Config() config.Config {
	return g.cfg
}

// SetPlayerSize resizes the current player entity without resetting the
// rest of the world. The position is re-clamped so the resized player
// stays inside the playfield.
func (g *Game) SetPlayerSize(w, h float64) error {
	if w <= 0 || h <= 0 {
		return fmt.Errorf("shooter: player size must be positive, got %gx%g", w, h)
	}
	g.cfg.Player.Width = w
	g.cfg.Player.Height = h

	p := &g.world.Player
	p.W = w
	p.H = h
	p.Pos.X = core.ClampF(p.Pos.X, 0, FieldW-p.W)
	p.Pos.Y = core.ClampF(p.Pos.Y, 0, FieldH-p.H)
	return nil
}
