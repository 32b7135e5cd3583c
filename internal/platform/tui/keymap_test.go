package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/glyph-snake/internal/core"
	"github.com/vovakirdan/glyph-snake/internal/grid"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestKeyMapAction(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected core.Action
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{"w", runes("w"), core.ActionUp},
		{"k", runes("k"), core.ActionUp},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown},
		{"s", runes("s"), core.ActionDown},
		{"j", runes("j"), core.ActionDown},
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{"a", runes("a"), core.ActionLeft},
		{"h", runes("h"), core.ActionLeft},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{"d", runes("d"), core.ActionRight},
		{"l", runes("l"), core.ActionRight},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm},
		{"ctrl+s", tea.KeyMsg{Type: tea.KeyCtrlS}, core.ActionSnapshot},
		{"help", runes("?"), core.ActionHelp},
		{"q", runes("q"), core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"unbound", runes("x"), core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := keys.Action(tt.msg); got != tt.expected {
				t.Errorf("Action(%q) = %s, expected %s", tt.msg.String(), got, tt.expected)
			}
		})
	}
}

func TestDirection(t *testing.T) {
	tests := []struct {
		action   core.Action
		expected grid.Direction
		ok       bool
	}{
		{core.ActionUp, grid.Up, true},
		{core.ActionDown, grid.Down, true},
		{core.ActionLeft, grid.Left, true},
		{core.ActionRight, grid.Right, true},
		{core.ActionQuit, 0, false},
		{core.ActionNone, 0, false},
	}

	for _, tt := range tests {
		d, ok := Direction(tt.action)
		if ok != tt.ok || (ok && d != tt.expected) {
			t.Errorf("Direction(%s) = (%v, %v), expected (%v, %v)", tt.action, d, ok, tt.expected, tt.ok)
		}
	}
}

func TestKeyMapHelp(t *testing.T) {
	keys := DefaultKeyMap()
	if len(keys.ShortHelp()) == 0 {
		t.Error("ShortHelp should list bindings")
	}
	total := 0
	for _, col := range keys.FullHelp() {
		total += len(col)
	}
	if total != 7 {
		t.Errorf("FullHelp lists %d bindings, expected 7", total)
	}
}
