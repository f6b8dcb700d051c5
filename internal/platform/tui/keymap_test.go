package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

func keyMsg(s string) tea.KeyMsg {
	if s == " " {
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	if len(s) == 1 {
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
	switch s {
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKeyGameActions(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		key    string
		action core.Action
	}{
		{"a", core.ActionMoveLeft},
		{"left", core.ActionMoveLeft},
		{"d", core.ActionMoveRight},
		{"right", core.ActionMoveRight},
		{"w", core.ActionRotateCW},
		{"up", core.ActionRotateCW},
		{"x", core.ActionRotateCW},
		{"z", core.ActionRotateCCW},
		{"s", core.ActionSoftDropStart},
		{"down", core.ActionSoftDropStart},
		{" ", core.ActionHardDrop},
		{"c", core.ActionHold},
		{"p", core.ActionPause},
		{"r", core.ActionRestart},
		{"esc", core.ActionBack},
	}

	for _, tt := range tests {
		action, isQuit := km.MapKey(keyMsg(tt.key))
		if isQuit {
			t.Errorf("key %q: unexpected quit", tt.key)
		}
		if action != tt.action {
			t.Errorf("key %q: action = %v, want %v", tt.key, action, tt.action)
		}
	}
}

func TestMapKeyQuit(t *testing.T) {
	km := NewKeyMapper()

	for _, key := range []string{"q", "ctrl+c"} {
		if _, isQuit := km.MapKey(keyMsg(key)); !isQuit {
			t.Errorf("key %q should quit", key)
		}
	}
}

func TestMapKeyUnbound(t *testing.T) {
	km := NewKeyMapper()

	action, isQuit := km.MapKey(keyMsg("y"))
	if isQuit || action != core.ActionNone {
		t.Errorf("unbound key: action = %v, isQuit = %v", action, isQuit)
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		key    string
		action MenuAction
	}{
		{"up", MenuActionUp},
		{"k", MenuActionUp},
		{"down", MenuActionDown},
		{"j", MenuActionDown},
		{"enter", MenuActionSelect},
		{" ", MenuActionSelect},
		{"tab", MenuActionScoreboard},
		{"esc", MenuActionBack},
		{"q", MenuActionQuit},
		{"y", MenuActionNone},
	}

	for _, tt := range tests {
		if got := km.MapKeyToMenuAction(keyMsg(tt.key)); got != tt.action {
			t.Errorf("key %q: action = %v, want %v", tt.key, got, tt.action)
		}
	}
}
