package shooter

import (
	"strings"
	"testing"
	"time"

	"github.com/pixelvoid/starfall/internal/core"
)

func TestRenderDrawsPlayerAndScore(t *testing.T) {
	g := newTestGame(1)
	screen := core.NewScreen(80, 24)

	g.Render(screen)

	if !strings.Contains(screen.Row(0), "Score: 0") {
		t.Errorf("score line missing, row 0 = %q", screen.Row(0))
	}
	if !strings.Contains(screen.String(), "@") {
		t.Error("player glyph should be drawn while alive")
	}
}

func TestRenderDoesNotMutateWorld(t *testing.T) {
	g := newTestGame(1)
	g.nowFn = func() time.Time { return time.Unix(0, 0) }
	for i := 0; i < 30; i++ {
		g.Step(Intent{})
	}
	before := g.Snapshot().Hash()

	screen := core.NewScreen(80, 24)
	for i := 0; i < 5; i++ {
		g.Render(screen)
	}

	if after := g.Snapshot().Hash(); after != before {
		t.Errorf("render must not mutate the world, hash %d -> %d", before, after)
	}
}

func TestRenderGameOverOverlay(t *testing.T) {
	g := newTestGame(1)
	g.world.GameOver = true
	g.world.Player.Alive = false
	g.world.Score = 130

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()

	if !strings.Contains(out, "GAME OVER") {
		t.Error("game over overlay missing")
	}
	if !strings.Contains(out, "Final score: 130") {
		t.Error("final score missing from overlay")
	}
	if !strings.Contains(out, "restart") {
		t.Error("restart hint missing from overlay")
	}
	if strings.Contains(out, "@") {
		t.Error("player glyph should be suppressed after game over")
	}
}

func TestRenderNilScreen(t *testing.T) {
	g := newTestGame(1)
	g.Render(nil) // must not panic
	g.Render(core.NewScreen(0, 0))
}

func TestRenderEnemiesAndBullets(t *testing.T) {
	g := newTestGame(1)
	g.Step(Intent{}) // first tick spawns one enemy and fires one bullet
	quietTimers(g)
	g.world.Enemies = []Enemy{{Pos: core.Vec{X: 400, Y: 300}, Size: 24, Speed: 2, Kind: 0, Alive: true}}

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()

	if !strings.Contains(out, "#") {
		t.Error("enemy glyph missing")
	}
	if !strings.Contains(out, "|") {
		t.Error("bullet glyph missing")
	}
}

func TestRenderStarsUseWallClock(t *testing.T) {
	cfg := testConfig()
	cfg.Stars.Count = 40
	g := New(cfg)
	g.Reset(core.RuntimeConfig{TickRate: 60, Seed: 1})
	g.nowFn = func() time.Time { return time.Unix(100, 0) }

	s1 := core.NewScreen(80, 24)
	g.Render(s1)
	s2 := core.NewScreen(80, 24)
	g.Render(s2)
	if s1.String() != s2.String() {
		t.Error("star field should be stable for a fixed clock")
	}

	g.nowFn = func() time.Time { return time.Unix(200, 0) }
	s3 := core.NewScreen(80, 24)
	g.Render(s3)
	if s1.String() == s3.String() {
		t.Error("star field should drift with the wall clock")
	}
}

func TestPaletteResolvesConfigColors(t *testing.T) {
	cfg := testConfig()
	cfg.Colors.Player = "bright-cyan"
	g := New(cfg)
	if g.palette.player != core.ColorBrightCyan {
		t.Errorf("palette should resolve config names, got %v", g.palette.player)
	}
}
