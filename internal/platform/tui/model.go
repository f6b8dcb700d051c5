package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/registry"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

// Longest dt a single tick may report. A suspended terminal (ctrl+z, lost
// focus on some emulators) would otherwise deliver one huge step that teleports
// the piece to the floor.
const maxTickDelta = 250 * time.Millisecond

// Model is the Bubble Tea model for running a game mode.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	keyRepeat  *KeyRepeat
	inputFrame core.InputFrame
	gameState  core.GameState
	lastTick   time.Time
	startedAt  time.Time
	quitting   bool
	scoreSaved bool // Whether score has been saved for current game over
}

// NewModel creates a new Bubble Tea model for the given game mode.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, input config.InputConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:     store,
		config:    cfg,
		keyMapper: NewKeyMapper(),
		keyRepeat: NewKeyRepeat(
			time.Duration(input.DASRepeatMS)*time.Millisecond,
			time.Duration(input.DASDelayMS)*time.Millisecond,
		),
		startedAt: time.Now(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey maps keyboard input into the pending input frame. The frame
// preserves arrival order; the simulation consumes it on the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	now := time.Now()
	switch action {
	case core.ActionNone:
		// Ignore unbound keys

	case core.ActionMoveLeft, core.ActionMoveRight:
		if m.keyRepeat.Move(action, now) {
			m.inputFrame.Push(action)
		}

	case core.ActionSoftDropStart:
		if m.keyRepeat.SoftDropPress(now) {
			m.inputFrame.Push(action)
		}

	case core.ActionRestart:
		if m.gameState.GameOver {
			m.inputFrame.Push(action)
		}

	default:
		m.inputFrame.Push(action)
	}

	return m, nil
}

// handleResize processes window resize events. The playfield geometry is
// fixed, so only the screen buffer follows the terminal.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick runs one simulation step with the real elapsed time.
func (m Model) handleTick(at time.Time) (tea.Model, tea.Cmd) {
	dt := time.Second / time.Duration(m.config.TickRate)
	if !m.lastTick.IsZero() {
		dt = at.Sub(m.lastTick)
		if dt > maxTickDelta {
			dt = maxTickDelta
		}
		if dt < 0 {
			dt = 0
		}
	}
	m.lastTick = at

	// Reconstruct the soft-drop release the terminal never reports
	if m.keyRepeat.SoftDropExpired(at) {
		m.inputFrame.Push(core.ActionSoftDropEnd)
	}

	wasOver := m.gameState.GameOver
	result := m.game.Step(dt, m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	// The game handles the restart action itself; notice it happening so the
	// next game over saves again
	if wasOver && !m.gameState.GameOver {
		m.scoreSaved = false
		m.startedAt = at
		m.keyRepeat.Reset()
	}

	// Save score on game over (once)
	if m.gameState.GameOver && !m.scoreSaved && m.gameState.Score > 0 {
		if m.store != nil {
			//nolint:errcheck // Best-effort save, game continues regardless
			m.store.SaveScore(storage.ScoreEntry{
				ModeID:       m.game.ID(),
				Score:        m.gameState.Score,
				Lines:        m.gameState.Lines,
				Level:        m.gameState.Level,
				DurationSecs: int(at.Sub(m.startedAt) / time.Second),
				Won:          gameWon(m.game),
			})
		}
		m.scoreSaved = true
	}

	return m, tickCmd(m.config.TickRate)
}

// gameWon asks the mode whether the run ended as a win, when it can tell.
func gameWon(g registry.Game) bool {
	if w, ok := g.(interface{ Won() bool }); ok {
		return w.Won()
	}
	return false
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".tetris", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, input config.InputConfig) error {
	model := NewModel(game, store, cfg, input)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
