package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/glyph-snake/internal/config"
	"github.com/vovakirdan/glyph-snake/internal/core"
	"github.com/vovakirdan/glyph-snake/internal/grid"
	"github.com/vovakirdan/glyph-snake/internal/schedule"
	"github.com/vovakirdan/glyph-snake/internal/session"
	"github.com/vovakirdan/glyph-snake/internal/storage"
)

// openConfig is a two-row board with no obstacles: every passway is open.
func openConfig() config.GameConfig {
	cfg := config.Default()
	cfg.Grid = config.GridConfig{Unit: 20, Width: 400, Height: 40}
	cfg.Obstacles.PasswayDensity = 1
	return cfg
}

func newTestModel(t *testing.T, name string) (Model, *schedule.Manual) {
	t.Helper()
	clock := schedule.NewManual()
	m := NewModel(Options{
		Config:    openConfig(),
		Runtime:   core.RuntimeConfig{Seed: 1, SnapshotDir: t.TempDir()},
		Name:      name,
		Scores:    storage.KeyedScore{Store: storage.NewMemory(), Key: storage.DefaultKey},
		Scheduler: clock,
	})
	t.Cleanup(m.Close)
	return m, clock
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm, cmd
}

func TestModelNameIntake(t *testing.T) {
	m, _ := newTestModel(t, "")

	if m.ctrl.Frame().Phase != session.PhaseAwaitingName {
		t.Fatal("expected name screen")
	}
	if !strings.Contains(m.View(), "Name:") {
		t.Error("name screen should show the prompt")
	}

	// Empty submit keeps the prompt with an inline error.
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.ctrl.Frame().Phase != session.PhaseAwaitingName {
		t.Error("empty name must not start the game")
	}
	if !strings.Contains(m.View(), InvalidNameMessage) {
		t.Error("expected inline validation error")
	}

	// q is part of a name here, not quit.
	for _, r := range "qAB" {
		m, _ = update(t, m, runes(string(r)))
	}
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	f := m.ctrl.Frame()
	if f.Phase != session.PhaseRunning || f.Name != "qAB" {
		t.Errorf("phase %v name %q, expected running qAB", f.Phase, f.Name)
	}
	if strings.Contains(m.View(), InvalidNameMessage) {
		t.Error("error should clear after a valid name")
	}
}

func TestModelStartsWithName(t *testing.T) {
	m, _ := newTestModel(t, "AB")

	f := m.ctrl.Frame()
	if f.Phase != session.PhaseRunning || f.Name != "AB" {
		t.Fatalf("phase %v name %q, expected running AB", f.Phase, f.Name)
	}
	view := m.View()
	if !strings.Contains(view, "Score: 0 | High Score: 0") {
		t.Errorf("view missing score line:\n%s", view)
	}
}

func TestModelTurn(t *testing.T) {
	m, _ := newTestModel(t, "AB")

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	if d := m.ctrl.Frame().Game.Dir; d != grid.Right {
		t.Errorf("reversal accepted: dir %v", d)
	}
	m, _ = update(t, m, runes("w"))
	if d := m.ctrl.Frame().Game.Dir; d != grid.Up {
		t.Errorf("dir = %v, expected Up", d)
	}
}

func TestModelGameOverDismiss(t *testing.T) {
	m, clock := newTestModel(t, "AB")

	// With two rows, two steps up wrap the head back onto its own body.
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	clock.Advance(300 * time.Millisecond)

	f := m.ctrl.Frame()
	if f.Phase != session.PhaseGameOver {
		t.Fatalf("phase = %v, expected game over", f.Phase)
	}
	if !strings.Contains(m.View(), "Game Over! Your final score was:") {
		t.Errorf("view missing game-over notice:\n%s", m.View())
	}

	m, _ = update(t, m, runes("x"))
	f = m.ctrl.Frame()
	if f.Phase != session.PhaseRunning || f.Epoch != 2 {
		t.Errorf("after dismiss: phase %v epoch %d, expected running epoch 2", f.Phase, f.Epoch)
	}
}

func TestModelEventsRelisten(t *testing.T) {
	m, _ := newTestModel(t, "AB")

	for _, msg := range []tea.Msg{FrameMsg{Epoch: 1}, WarnMsg{Text: "x"}, GameOverMsg{Score: 1}} {
		if _, cmd := update(t, m, msg); cmd == nil {
			t.Errorf("%T should re-arm Listen", msg)
		}
	}
}

func TestModelSnapshot(t *testing.T) {
	m, _ := newTestModel(t, "A B")

	_, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	if cmd == nil {
		t.Fatal("ctrl+s should return a command")
	}
	msg, ok := cmd().(snapshotMsg)
	if !ok {
		t.Fatalf("command returned %T", msg)
	}
	if msg.err != nil {
		t.Fatalf("snapshot failed: %v", msg.err)
	}
	if !strings.HasSuffix(msg.path, ".png") || !strings.Contains(msg.path, "A_B_") {
		t.Errorf("path = %q", msg.path)
	}

	m, _ = update(t, m, msg)
	if !strings.Contains(m.View(), "saved") {
		t.Error("status should report the saved file")
	}
}

func TestModelQuitStopsSession(t *testing.T) {
	m, clock := newTestModel(t, "AB")

	m, cmd := update(t, m, runes("q"))
	if cmd == nil {
		t.Fatal("q should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
	if m.View() != "" {
		t.Error("view should be empty after quit")
	}
	if clock.Pending() != 0 {
		t.Errorf("Pending() = %d after quit, expected 0", clock.Pending())
	}
}

func TestModelTerminalTooSmall(t *testing.T) {
	m, _ := newTestModel(t, "AB")
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 10, Height: 5})

	if !strings.Contains(m.View(), "Terminal too small") {
		t.Error("expected size warning")
	}
}

func TestSlug(t *testing.T) {
	tests := []struct{ in, want string }{
		{"AB", "AB"},
		{"Ann Lee", "Ann_Lee"},
		{"Zoë!", "Zo"},
		{"日本", "glyphsnake"},
		{"x-y_z 9", "x_y_z_9"},
	}
	for _, tt := range tests {
		if got := slug(tt.in); got != tt.want {
			t.Errorf("slug(%q) = %q, expected %q", tt.in, got, tt.want)
		}
	}
}
