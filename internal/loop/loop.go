// Package loop drives the simulation at a fixed tick rate, independent of
// any display. The TUI wires the same Driver to Bubble Tea ticks; the bench
// command runs it headless against a manual scheduler.
package loop

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/pixelvoid/starfall/internal/core"
	"github.com/pixelvoid/starfall/internal/shooter"
)

// Game is the simulation contract the driver needs: a resettable,
// synchronously tickable game that renders into a screen buffer.
type Game interface {
	Reset(rt core.RuntimeConfig)
	Step(in shooter.Intent) core.StepResult
	Render(dst *core.Screen)
	State() core.GameState
}

// Scheduler delivers tick signals to Run. The production scheduler wraps a
// time.Ticker; tests use a Manual scheduler to step synchronously.
type Scheduler interface {
	C() <-chan time.Time
	Stop()
}

type tickerScheduler struct {
	t *time.Ticker
}

// NewTicker returns a real-time scheduler firing every d.
func NewTicker(d time.Duration) Scheduler {
	return &tickerScheduler{t: time.NewTicker(d)}
}

func (s *tickerScheduler) C() <-chan time.Time { return s.t.C }
func (s *tickerScheduler) Stop()               { s.t.Stop() }

// Manual is a scheduler driven by explicit Fire calls. Run consumes one
// signal per tick, so tests control exactly how many ticks execute.
type Manual struct {
	ch chan time.Time
}

// NewManual returns a manual scheduler.
func NewManual() *Manual {
	return &Manual{ch: make(chan time.Time, 1)}
}

// Fire delivers one tick signal.
func (m *Manual) Fire() { m.ch <- time.Time{} }

func (m *Manual) C() <-chan time.Time { return m.ch }
func (m *Manual) Stop()               {}

// Driver owns the input-step-render cycle: one input snapshot, one
// simulation step, one render per tick. It never ticks concurrently.
type Driver struct {
	game   Game
	input  *shooter.Aggregator
	screen *core.Screen
	logger *log.Logger

	runtime core.RuntimeConfig
	ticks   uint64
	wasOver bool
}

// New creates a driver. A nil logger falls back to the package default.
func New(game Game, input *shooter.Aggregator, screen *core.Screen, logger *log.Logger) *Driver {
	if logger == nil {
		logger = log.Default()
	}
	return &Driver{
		game:   game,
		input:  input,
		screen: screen,
		logger: logger,
	}
}

// Reset restarts the game with the given runtime config and clears any
// pending input.
func (d *Driver) Reset(rt core.RuntimeConfig) {
	d.runtime = rt
	d.ticks = 0
	d.wasOver = false
	d.input.Reset()
	d.game.Reset(rt)
	d.logger.Debug("game reset", "seed", rt.Seed, "tick_rate", rt.TickRate)
}

// Input exposes the aggregator so event handlers can feed it between ticks.
func (d *Driver) Input() *shooter.Aggregator {
	return d.input
}

// Screen exposes the render target.
func (d *Driver) Screen() *core.Screen {
	return d.screen
}

// Ticks returns the number of ticks executed since the last Reset.
func (d *Driver) Ticks() uint64 {
	return d.ticks
}

// Tick executes exactly one cycle: snapshot the input, step the simulation,
// render the result.
func (d *Driver) Tick() core.StepResult {
	in := d.input.Snapshot()
	result := d.game.Step(in)
	d.game.Render(d.screen)
	d.ticks++

	if result.State.GameOver && !d.wasOver {
		d.wasOver = true
		d.logger.Info("game over", "score", result.State.Score, "ticks", d.ticks)
	}
	return result
}

// Run ticks the driver on every scheduler signal until the context is
// canceled. The scheduler is stopped on exit.
func (d *Driver) Run(ctx context.Context, sched Scheduler) error {
	defer sched.Stop()
	for {
		select {
		case <-ctx.Done():
			return fmt.Errorf("loop: stopped: %w", ctx.Err())
		case <-sched.C():
			d.Tick()
		}
	}
}
