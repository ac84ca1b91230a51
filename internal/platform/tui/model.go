package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/pixelvoid/starfall/internal/core"
	"github.com/pixelvoid/starfall/internal/loop"
	"github.com/pixelvoid/starfall/internal/shooter"
)

// tapHoldTicks is how many simulation ticks a key press counts as held.
// Terminals deliver no key-up events, so each press (and each auto-repeat)
// re-arms a short hold; the value is tuned to bridge typical repeat delays.
const tapHoldTicks = 6

// playerSizeStep is the per-keypress change applied by the grow/shrink keys.
const playerSizeStep = shooter.PixelUnit

// Model is the Bubble Tea model that runs one shooter session.
type Model struct {
	game     *shooter.Game
	driver   *loop.Driver
	keys     KeyMap
	logger   *log.Logger
	config   core.RuntimeConfig
	state    core.GameState
	quitting bool
}

// NewModel creates a Bubble Tea model for the given game.
func NewModel(game *shooter.Game, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.Default()
	}

	screen := core.NewScreen(cfg.ScreenW, cfg.ScreenH)
	driver := loop.New(game, shooter.NewAggregator(), screen, logger)

	return Model{
		game:   game,
		driver: driver,
		keys:   DefaultKeyMap(),
		logger: logger,
		config: cfg,
	}
}

// Init starts the game and the tick loop.
func (m Model) Init() tea.Cmd {
	m.driver.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		result := m.driver.Tick()
		m.state = result.State
		return m, tickCmd(m.config.TickRate)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	}

	// Any other key restarts once the run has ended.
	if m.state.GameOver {
		return m.restart()
	}

	switch {
	case key.Matches(msg, m.keys.Grow):
		m.resizePlayer(playerSizeStep)
		return m, nil
	case key.Matches(msg, m.keys.Shrink):
		m.resizePlayer(-playerSizeStep)
		return m, nil
	}

	if dir, ok := m.keys.direction(msg.String()); ok {
		m.driver.Input().Tap(dir, tapHoldTicks)
	}

	return m, nil
}

// handleMouse treats the terminal mouse as the pointer channel: press and
// drag steer the ship toward the cursor, release lets go. Any click on the
// game-over screen restarts.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.state.GameOver {
		if msg.Action == tea.MouseActionPress {
			return m.restart()
		}
		return m, nil
	}

	switch msg.Action {
	case tea.MouseActionPress, tea.MouseActionMotion:
		m.driver.Input().PointerMove(m.cellToPlayfield(msg.X, msg.Y))
	case tea.MouseActionRelease:
		m.driver.Input().PointerUp()
	}

	return m, nil
}

// cellToPlayfield projects a screen cell to playfield coordinates, targeting
// the center of the cell.
func (m Model) cellToPlayfield(x, y int) core.Vec {
	w := m.driver.Screen().Width()
	h := m.driver.Screen().Height()
	if w <= 0 || h <= 0 {
		return core.Vec{}
	}
	return core.Vec{
		X: (float64(x) + 0.5) / float64(w) * shooter.FieldW,
		Y: (float64(y) + 0.5) / float64(h) * shooter.FieldH,
	}
}

// handleResize adjusts the render target. The playfield is a fixed logical
// space, so resizing never disturbs the running simulation.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.driver.Screen().Resize(msg.Width, msg.Height)
	return m, nil
}

// restart begins a fresh run with a new seed.
func (m Model) restart() (tea.Model, tea.Cmd) {
	m.config.Seed = time.Now().UnixNano()
	m.driver.Reset(m.config)
	m.state = m.game.State()
	return m, nil
}

// resizePlayer grows or shrinks the ship, staying on the art grid.
func (m Model) resizePlayer(delta float64) {
	p := m.game.Config().Player
	w := p.Width + delta
	h := p.Height + delta
	if w < shooter.PixelUnit || h < shooter.PixelUnit {
		return
	}
	if err := m.game.SetPlayerSize(w, h); err != nil {
		m.logger.Warn("resize rejected", "error", err)
	}
}

// saveScreenshot writes the current frame as plain text.
func (m Model) saveScreenshot() {
	dir := filepath.Join(os.Getenv("HOME"), ".starfall", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("starfall_%s.txt", timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.driver.Screen().String()), 0o600)
}

// View renders the current frame.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return RenderScreen(m.driver.Screen())
}

// Run starts the Bubble Tea program for a local play session.
func Run(game *shooter.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(), // Pointer steering
	)

	_, err := p.Run()
	return err
}
