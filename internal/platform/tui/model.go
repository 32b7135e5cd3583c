package tui

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/glyph-snake/internal/audio"
	"github.com/vovakirdan/glyph-snake/internal/config"
	"github.com/vovakirdan/glyph-snake/internal/core"
	"github.com/vovakirdan/glyph-snake/internal/render"
	"github.com/vovakirdan/glyph-snake/internal/schedule"
	"github.com/vovakirdan/glyph-snake/internal/session"
)

// Messages shown to the player.
const (
	InvalidNameMessage = "Please enter a valid name."
	GameOverFormat     = "Game Over! Your final score was: %d"
	DismissHint        = "Press any key to play again"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("208"))
	helpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	scoreStyle = lipgloss.NewStyle().Bold(true)
)

var gameOverBox = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("#d7261e")).
	Padding(0, 2).
	Align(lipgloss.Center)

// Options configures a Model.
type Options struct {
	Config  config.GameConfig
	Runtime core.RuntimeConfig
	Name    string // Starts immediately when non-empty
	Scores  session.ScoreStore
	Audio   audio.Player
	Logger  *log.Logger

	// Scheduler overrides the wall clock, for tests.
	Scheduler schedule.Scheduler
}

type snapshotMsg struct {
	path string
	err  error
}

// Model is the Bubble Tea model for one glyph snake session: the name
// screen, then the game view until quit.
type Model struct {
	ctrl     *session.Controller
	bridge   *Bridge
	runtime  core.RuntimeConfig
	logger   *log.Logger
	keys     KeyMap
	help     help.Model
	input    textinput.Model
	settings table.Model
	canvas   *CellCanvas
	inputErr string
	status   string
	width    int
	height   int
	quitting bool
}

// NewModel creates the model and its session controller. Game-over notices
// block until a key is pressed.
func NewModel(opts Options) Model {
	seed := opts.Runtime.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	bridge := NewBridge(DefaultBridgeBuffer)
	ctrl := session.New(session.Options{
		Config:       opts.Config,
		Scheduler:    opts.Scheduler,
		Renderer:     bridge,
		Notifier:     bridge,
		Scores:       opts.Scores,
		Audio:        opts.Audio,
		Logger:       logger,
		Rand:         rand.New(rand.NewSource(seed)),
		AwaitDismiss: true,
	})

	ti := textinput.New()
	ti.Placeholder = "your name"
	ti.Prompt = "Name: "
	ti.CharLimit = 24
	ti.Width = 24
	ti.Focus()

	h := help.New()
	h.ShowAll = false
	h.Width = opts.Runtime.ScreenW

	m := Model{
		ctrl:     ctrl,
		bridge:   bridge,
		runtime:  opts.Runtime,
		logger:   logger,
		keys:     DefaultKeyMap(),
		help:     h,
		input:    ti,
		settings: newSettingsTable(opts.Config, ctrl.Frame().HighScore),
		canvas:   NewCellCanvas(opts.Config.Grid.Width, opts.Config.Grid.Height, opts.Config.Grid.Unit),
		width:    opts.Runtime.ScreenW,
		height:   opts.Runtime.ScreenH,
	}
	if opts.Name != "" {
		m.start(opts.Name)
	}
	return m
}

// Close stops the session's timers and releases the event listener.
func (m Model) Close() {
	m.ctrl.Stop()
	m.bridge.Close()
}

// Init starts listening for session events.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.bridge.Listen())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case FrameMsg:
		return m, m.bridge.Listen()

	case WarnMsg:
		m.logger.Warn("session warning", "text", msg.Text)
		return m, m.bridge.Listen()

	case GameOverMsg:
		m.logger.Info("game over", "score", msg.Score)
		return m, m.bridge.Listen()

	case snapshotMsg:
		if msg.err != nil {
			m.status = "snapshot failed: " + msg.err.Error()
		} else {
			m.status = "saved " + msg.path
		}
		return m, nil
	}

	if m.ctrl.Frame().Phase == session.PhaseAwaitingName {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleKey processes keyboard input for the current phase.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	frame := m.ctrl.Frame()

	switch frame.Phase {
	case session.PhaseAwaitingName:
		switch {
		case key.Matches(msg, m.keys.ForceQuit):
			return m.quit()
		case key.Matches(msg, m.keys.Confirm):
			m.start(m.input.Value())
			return m, nil
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd

	case session.PhaseGameOver:
		if key.Matches(msg, m.keys.ForceQuit) {
			return m.quit()
		}
		if _, err := m.ctrl.Dismiss(); err != nil {
			m.status = err.Error()
		}
		return m, nil
	}

	action := m.keys.Action(msg)
	switch action {
	case core.ActionQuit:
		return m.quit()
	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
	case core.ActionSnapshot:
		return m, snapshotCmd(frame, m.runtime.SnapshotDir)
	default:
		if d, ok := Direction(action); ok {
			m.ctrl.Turn(d)
		}
	}
	return m, nil
}

// start submits a name. An invalid name keeps the name screen up with an
// inline error.
func (m *Model) start(name string) {
	err := m.ctrl.Start(name)
	switch {
	case err == nil:
		m.inputErr = ""
		m.input.Blur()
	case errors.Is(err, session.ErrEmptyName):
		m.inputErr = InvalidNameMessage
		m.input.Reset()
	default:
		m.inputErr = err.Error()
	}
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	m.Close()
	return m, tea.Quit
}

// snapshotCmd writes the frame as a PNG in dir.
func snapshotCmd(f session.Frame, dir string) tea.Cmd {
	return func() tea.Msg {
		if dir == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return snapshotMsg{err: err}
			}
			dir = filepath.Join(home, ".glyphsnake", "screenshots")
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return snapshotMsg{err: err}
		}

		timestamp := time.Now().Format("20060102_150405")
		path := filepath.Join(dir, fmt.Sprintf("%s_%s.png", slug(f.Name), timestamp))
		out, err := os.Create(path)
		if err != nil {
			return snapshotMsg{err: err}
		}
		err = render.WritePNG(out, f.Scene())
		if cerr := out.Close(); err == nil {
			err = cerr
		}
		return snapshotMsg{path: path, err: err}
	}
}

// slug keeps letters and digits of a name for use in a file name.
func slug(name string) string {
	s := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == ' ' || r == '-' || r == '_':
			return '_'
		}
		return -1
	}, name)
	if s == "" {
		return "glyphsnake"
	}
	return s
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	frame := m.ctrl.Frame()
	if frame.Phase == session.PhaseAwaitingName {
		return m.nameView()
	}
	return m.gameView(frame)
}

func (m Model) nameView() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("GLYPH SNAKE"))
	b.WriteString("\n\nYour name becomes the maze.\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	if m.inputErr != "" {
		b.WriteString(errorStyle.Render(m.inputErr))
	}
	b.WriteString("\n\n")
	b.WriteString(m.settings.View())
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("enter: start • esc: quit"))
	return b.String()
}

func (m Model) gameView(frame session.Frame) string {
	screen := m.canvas.Screen()
	if needW, needH := screen.Width(), screen.Height()+4; m.width > 0 && (m.width < needW || m.height < needH) {
		return errorStyle.Render(fmt.Sprintf("Terminal too small: need %dx%d, have %dx%d", needW, needH, m.width, m.height))
	}

	render.Draw(m.canvas, frame.Scene())

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("GLYPH SNAKE · %s", frame.Name)))
	info := fmt.Sprintf("  font %s · tick %v", frame.Style, frame.Interval)
	if m.runtime.Sound {
		info += " · sound on"
	}
	b.WriteString(helpStyle.Render(info))
	b.WriteString("\n")
	b.WriteString(RenderScreen(screen))
	b.WriteString("\n")
	b.WriteString(scoreStyle.Render(frame.ScoreLine()))
	b.WriteString("\n")
	if frame.Warning != "" {
		b.WriteString(warnStyle.Render(frame.Warning))
	}
	if m.status != "" {
		b.WriteString(helpStyle.Render("  " + m.status))
	}
	b.WriteString("\n")
	if frame.Phase == session.PhaseGameOver {
		notice := fmt.Sprintf(GameOverFormat, frame.FinalScore) + "\n" + DismissHint
		b.WriteString(gameOverBox.Render(notice))
		b.WriteString("\n")
	}
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// Run starts the Bubble Tea program with a new model and stops its session
// when the program exits.
func Run(opts Options) error {
	model := NewModel(opts)
	defer model.Close()

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
