package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
)

// GameSetup holds the user's pre-game choices.
type GameSetup struct {
	Difficulty config.DifficultyPreset
	StartLevel int // 0 = use config default, 1-15 = explicit starting level
}

// setupDifficulties is the selectable preset order.
var setupDifficulties = []config.DifficultyPreset{
	config.DifficultyEasy,
	config.DifficultyNormal,
	config.DifficultyHard,
	config.DifficultyFixed,
}

// setupDifficultyLabels maps presets to menu labels.
var setupDifficultyLabels = map[config.DifficultyPreset]string{
	config.DifficultyEasy:   "Easy (slow lock, forgiving)",
	config.DifficultyNormal: "Normal (guideline timings)",
	config.DifficultyHard:   "Hard (start level 5, one preview)",
	config.DifficultyFixed:  "Fixed (constant gravity)",
}

const maxStartLevel = 15

// SetupModel lets users choose difficulty and starting level before a game.
type SetupModel struct {
	modeTitle     string
	cursor        int
	levelCursor   int
	inLevelSelect bool
	width         int
	height        int
	keyMapper     *KeyMapper
	setup         GameSetup
	choosing      bool
	quitting      bool
	back          bool
}

// NewSetupModel creates a new pre-game setup model.
func NewSetupModel(modeTitle string, width, height int) SetupModel {
	return SetupModel{
		modeTitle: modeTitle,
		cursor:    1, // Default to Normal
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
		choosing:  true,
	}
}

// Init initializes the model.
func (m SetupModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m SetupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m SetupModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)

	if m.inLevelSelect {
		return m.handleLevelSelectKey(action)
	}
	return m.handleDifficultyKey(action)
}

func (m SetupModel) handleDifficultyKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		// Presets plus the "Select starting level..." row
		if m.cursor < len(setupDifficulties) {
			m.cursor++
		}
	case MenuActionSelect:
		if m.cursor < len(setupDifficulties) {
			m.choosing = false
			m.setup.Difficulty = setupDifficulties[m.cursor]
			return m, tea.Quit
		}
		// "Select starting level..." keeps the chosen difficulty row above it
		m.inLevelSelect = true
		m.levelCursor = 0
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}

	return m, nil
}

func (m SetupModel) handleLevelSelectKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.levelCursor > 0 {
			m.levelCursor--
		}
	case MenuActionDown:
		if m.levelCursor < maxStartLevel-1 {
			m.levelCursor++
		}
	case MenuActionSelect:
		m.choosing = false
		m.setup = GameSetup{
			Difficulty: config.DifficultyNormal,
			StartLevel: m.levelCursor + 1, // 1-indexed
		}
		return m, tea.Quit
	case MenuActionBack:
		m.inLevelSelect = false
	}

	return m, nil
}

// View renders the difficulty/level selection.
func (m SetupModel) View() string {
	if m.quitting {
		return ""
	}

	if m.inLevelSelect {
		return m.viewLevelSelect()
	}
	return m.viewDifficultySelect()
}

func (m SetupModel) viewDifficultySelect() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(strings.ToUpper(m.modeTitle), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select difficulty:", m.width))
	b.WriteString("\n\n")

	for i, preset := range setupDifficulties {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(fmt.Sprintf("%s%s", cursor, setupDifficultyLabels[preset]), m.width))
		b.WriteString("\n")
	}

	cursor := "  "
	if m.cursor == len(setupDifficulties) {
		cursor = "> "
	}
	b.WriteString(centerText(fmt.Sprintf("%sSelect starting level...", cursor), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

func (m SetupModel) viewLevelSelect() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("STARTING LEVEL", m.width))
	b.WriteString("\n\n")

	for i := 0; i < maxStartLevel; i++ {
		cursor := "  "
		if i == m.levelCursor {
			cursor = "> "
		}

		line := fmt.Sprintf("%sLevel %2d", cursor, i+1)
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

// Selected returns the setup, or nil if still choosing.
func (m SetupModel) Selected() *GameSetup {
	if m.choosing {
		return nil
	}
	return &m.setup
}

// IsQuitting returns true if user wants to quit.
func (m SetupModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m SetupModel) WantsBack() bool {
	return m.back
}

// RunSetup runs the pre-game setup flow and returns the choices.
// A nil GameSetup with a nil error means the user backed out or quit.
func RunSetup(modeTitle string, cfg core.RuntimeConfig) (*GameSetup, core.RuntimeConfig, error) {
	model := NewSetupModel(modeTitle, cfg.ScreenW, cfg.ScreenH)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, cfg, err
	}

	m, ok := finalModel.(SetupModel)
	if !ok {
		return nil, cfg, nil
	}

	if m.IsQuitting() || m.WantsBack() {
		return nil, cfg, nil
	}

	return m.Selected(), cfg, nil
}
