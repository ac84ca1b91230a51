package shooter

import (
	"fmt"
	"math"

	"github.com/pixelvoid/starfall/internal/config"
	"github.com/pixelvoid/starfall/internal/core"
)

// palette is the session color scheme resolved from config names once at
// construction. Unknown names fall back to the default color, but Validate
// rejects them before a config ever reaches New.
type palette struct {
	background  core.Color
	player      core.Color
	bullet      core.Color
	enemy       core.Color
	enemyBullet core.Color
	explosion   core.Color
	score       core.Color
	stars       core.Color
}

func resolvePalette(c config.Colors) palette {
	lookup := func(name string) core.Color {
		if col, ok := core.ParseColor(name); ok {
			return col
		}
		return core.ColorDefault
	}
	return palette{
		background:  lookup(c.Background),
		player:      lookup(c.Player),
		bullet:      lookup(c.Bullet),
		enemy:       lookup(c.Enemy),
		enemyBullet: lookup(c.EnemyBullet),
		explosion:   lookup(c.Explosion),
		score:       lookup(c.Score),
		stars:       lookup(c.Stars),
	}
}

// Render draws the current world onto dst. Rendering is a pure projection:
// it never mutates simulation state, and calling it any number of times
// between steps produces the same picture. A nil or zero-sized screen is a
// no-op.
func (g *Game) Render(dst *core.Screen) {
	if dst == nil || dst.Width() <= 0 || dst.Height() <= 0 {
		return
	}
	w := &g.world

	dst.Fill(' ', g.palette.background)
	g.drawStars(dst)

	for _, e := range w.Enemies {
		ch := '#'
		if e.Kind == 1 {
			ch = '%'
		}
		g.drawEntity(dst, e.Rect(), ch, g.palette.enemy)
	}
	for _, b := range w.Bullets {
		g.drawEntity(dst, b.Rect(), '|', g.palette.bullet)
	}
	for _, b := range w.EnemyBullets {
		g.drawEntity(dst, b.Rect(), '!', g.palette.enemyBullet)
	}
	if w.Player.Alive {
		g.drawEntity(dst, w.Player.Rect(), '@', g.palette.player)
	}
	for _, x := range w.Explosions {
		g.drawExplosion(dst, x)
	}

	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", w.Score), g.palette.score)

	if w.GameOver {
		g.drawGameOver(dst)
	}
}

// drawEntity projects a playfield rectangle onto screen cells. The rectangle
// is first snapped to the art grid so entities keep a chunky pixel look, and
// anything on screen covers at least one cell.
func (g *Game) drawEntity(dst *core.Screen, r core.Rect, ch rune, col core.Color) {
	x := math.Floor(r.X/PixelUnit) * PixelUnit
	y := math.Floor(r.Y/PixelUnit) * PixelUnit
	wu := math.Max(r.W, PixelUnit)
	hu := math.Max(r.H, PixelUnit)

	scaleX := float64(dst.Width()) / FieldW
	scaleY := float64(dst.Height()) / FieldH

	cx := int(x * scaleX)
	cy := int(y * scaleY)
	cw := core.Max(1, int(wu*scaleX))
	chh := core.Max(1, int(hu*scaleY))

	dst.FillRect(cx, cy, cw, chh, ch, col)
}

// drawExplosion renders a burst that expands with age and fades by swapping
// to sparser glyphs over its lifetime.
func (g *Game) drawExplosion(dst *core.Screen, x Explosion) {
	frames := []rune{'*', '*', '+', '+', 'x', 'x', '.', '.', '.', '.'}
	ch := frames[core.Clamp(x.Age, 0, len(frames)-1)]

	size := PixelUnit * float64(1+x.Age/2)
	r := core.NewRect(x.Center.X-size/2, x.Center.Y-size/2, size, size)
	g.drawEntity(dst, r, ch, g.palette.explosion)
}

// drawStars scatters a decorative twinkling background. Star placement is
// derived from the star index and wall-clock time only, so the field is
// independent of simulation state and keeps drifting on the game-over screen.
func (g *Game) drawStars(dst *core.Screen) {
	count := g.cfg.Stars.Count
	if count <= 0 {
		return
	}
	w, h := dst.Width(), dst.Height()
	phase := g.nowFn().UnixMilli() / 400

	// Larger configured stars use a heavier base glyph.
	base, twinkle := '.', '+'
	if g.cfg.Stars.Size > PixelUnit/2 {
		base, twinkle = '+', '*'
	}

	for i := 0; i < count; i++ {
		// Cheap hash: well-spread positions without per-star state.
		n := int64(i)*2654435761 + phase*(int64(i%7)+1)
		x := int((n >> 8) % int64(w))
		y := int((n >> 20) % int64(h))
		if x < 0 {
			x += w
		}
		if y < 0 {
			y += h
		}
		ch := base
		if (n>>4)%5 == 0 {
			ch = twinkle
		}
		dst.Set(x, y, ch, g.palette.stars)
	}
}

func (g *Game) drawGameOver(dst *core.Screen) {
	w, h := dst.Width(), dst.Height()
	boxW := core.Min(34, w)
	boxH := 7
	bx := (w - boxW) / 2
	by := (h - boxH) / 2

	dst.FillRect(bx, by, boxW, boxH, ' ', core.ColorDefault)
	dst.DrawBox(bx, by, boxW, boxH, g.palette.score)
	dst.DrawTextCentered(by+1, "GAME OVER", core.ColorBrightRed)
	dst.DrawTextCentered(by+3, fmt.Sprintf("Final score: %d", g.world.Score), g.palette.score)
	dst.DrawTextCentered(by+5, "press any key to restart", core.ColorGray)
}
