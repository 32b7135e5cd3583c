package tui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/glyph-snake/internal/config"
)

// settingsRows lists the tunables a player sees before starting.
func settingsRows(cfg config.GameConfig, highScore int) []table.Row {
	speed := "fixed"
	if cfg.Speed.Enabled {
		speed = fmt.Sprintf("-%v every %d pts, floor %v", cfg.Speed.Step, cfg.Speed.Every, cfg.Speed.Floor)
	}
	font := cfg.Obstacles.FontStyle
	if font == "" {
		font = "random per run"
	}

	return []table.Row{
		{"Grid", fmt.Sprintf("%dx%d cells", cfg.Grid.Width/cfg.Grid.Unit, cfg.Grid.Height/cfg.Grid.Unit)},
		{"Tick", cfg.Speed.Initial.String()},
		{"Speed-up", speed},
		{"Grace", cfg.Grace.Duration.String()},
		{"Passways", strconv.FormatFloat(cfg.Obstacles.PasswayDensity, 'f', 2, 64)},
		{"Font", font},
		{"High score", strconv.Itoa(highScore)},
	}
}

// newSettingsTable creates the read-only settings table for the name screen.
func newSettingsTable(cfg config.GameConfig, highScore int) table.Model {
	columns := []table.Column{
		{Title: "Setting", Width: 12},
		{Title: "Value", Width: 34},
	}
	rows := settingsRows(cfg, highScore)

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(false),
		table.WithHeight(len(rows)+1),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Cell
	t.SetStyles(s)

	return t
}
