// Package tui provides the Bubble Tea host for a glyph snake session.
// It handles name intake, the terminal game view, input mapping and
// serving sessions over SSH.
package tui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/glyph-snake/internal/session"
)

// DefaultBridgeBuffer is the number of pending events a Bridge holds before
// it starts dropping the oldest.
const DefaultBridgeBuffer = 16

// FrameMsg is sent after every tick the session painted.
type FrameMsg struct {
	Epoch uint64
	Score int
}

// WarnMsg carries a user-visible warning from the session.
type WarnMsg struct {
	Text string
}

// GameOverMsg reports the final score of a finished run.
type GameOverMsg struct {
	Score int
}

// Bridge forwards session callbacks, which run on timer goroutines, into a
// Bubble Tea program. It never blocks the sender: when the buffer is full
// the oldest event is dropped. Views repaint from Controller.Frame, so a
// dropped event only skips a redundant repaint.
type Bridge struct {
	events chan tea.Msg
	done   chan struct{}
	once   sync.Once
}

// NewBridge creates a bridge holding up to buffer pending events.
func NewBridge(buffer int) *Bridge {
	return &Bridge{
		events: make(chan tea.Msg, max(buffer, 1)),
		done:   make(chan struct{}),
	}
}

// Render implements session.Renderer.
func (b *Bridge) Render(f session.Frame) {
	b.send(FrameMsg{Epoch: f.Epoch, Score: f.Game.Score})
}

// Warn implements session.Notifier.
func (b *Bridge) Warn(text string) {
	b.send(WarnMsg{Text: text})
}

// GameOver implements session.Notifier.
func (b *Bridge) GameOver(score int) {
	b.send(GameOverMsg{Score: score})
}

func (b *Bridge) send(msg tea.Msg) {
	select {
	case <-b.done:
		return
	default:
	}
	for {
		select {
		case b.events <- msg:
			return
		default:
		}
		// Full: drop the oldest and retry.
		select {
		case <-b.events:
		default:
		}
	}
}

// Listen returns a command that waits for the next event. The model
// re-issues it after handling each event. It yields nil once closed.
func (b *Bridge) Listen() tea.Cmd {
	return func() tea.Msg {
		select {
		case msg := <-b.events:
			return msg
		case <-b.done:
			return nil
		}
	}
}

// Close releases any pending Listen and discards later events.
func (b *Bridge) Close() {
	b.once.Do(func() {
		close(b.done)
	})
}
