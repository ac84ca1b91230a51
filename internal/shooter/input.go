package shooter

import "github.com/pixelvoid/starfall/internal/core"

// Direction identifies one of the four movement keys.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
	dirCount
)

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "Up"
	case DirDown:
		return "Down"
	case DirLeft:
		return "Left"
	case DirRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// Intent is the normalized movement request for a single tick: the set of
// held directions plus an optional pointer target the player should steer
// toward. Both channels may apply within the same tick.
type Intent struct {
	Held      [dirCount]bool
	Target    core.Vec
	HasTarget bool
}

// Has reports whether the given direction is held this tick.
func (in Intent) Has(d Direction) bool {
	if d < 0 || d >= dirCount {
		return false
	}
	return in.Held[d]
}

// Aggregator merges two asynchronous input channels - a held-key set and a
// pointer/touch target - into one Intent per tick. Event handlers write into
// it between ticks; the simulation reads it exactly once per tick through
// Snapshot. The host is single-threaded (event delivery and ticks never
// overlap), so no locking is needed; the snapshot boundary is what keeps a
// key change from producing partial effects mid-tick.
//
// Terminals deliver key presses but no key-up events, so Tap holds a
// direction for a fixed number of ticks and releases it automatically.
// Hosts with real key events use KeyDown/KeyUp instead.
type Aggregator struct {
	held      [dirCount]bool
	tap       [dirCount]int
	target    core.Vec
	hasTarget bool
}

// NewAggregator creates an empty input aggregator.
func NewAggregator() *Aggregator {
	return &Aggregator{}
}

// KeyDown marks a direction as held until the matching KeyUp.
func (a *Aggregator) KeyDown(d Direction) {
	if d < 0 || d >= dirCount {
		return
	}
	a.held[d] = true
}

// KeyUp releases a held direction.
func (a *Aggregator) KeyUp(d Direction) {
	if d < 0 || d >= dirCount {
		return
	}
	a.held[d] = false
	a.tap[d] = 0
}

// Tap holds a direction for the next ticks many snapshots, then releases it.
func (a *Aggregator) Tap(d Direction, ticks int) {
	if d < 0 || d >= dirCount || ticks <= 0 {
		return
	}
	a.tap[d] = ticks
}

// PointerMove sets the pointer target in playfield coordinates. The target
// persists across ticks until PointerUp, matching touch-drag semantics.
func (a *Aggregator) PointerMove(p core.Vec) {
	a.target = p
	a.hasTarget = true
}

// PointerUp clears the pointer target.
func (a *Aggregator) PointerUp() {
	a.hasTarget = false
}

// Reset clears all input state. Used on game restart and loop teardown.
func (a *Aggregator) Reset() {
	*a = Aggregator{}
}

// Snapshot returns the intent for the coming tick and decays tap holds.
// An empty snapshot means "no movement"; it is never an error.
func (a *Aggregator) Snapshot() Intent {
	var in Intent
	for d := Direction(0); d < dirCount; d++ {
		if a.held[d] || a.tap[d] > 0 {
			in.Held[d] = true
		}
		if a.tap[d] > 0 {
			a.tap[d]--
		}
	}
	in.Target = a.target
	in.HasTarget = a.hasTarget
	return in
}
