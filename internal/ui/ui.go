package ui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/toolcrib/cellmon/internal/cell"
	"github.com/toolcrib/cellmon/internal/feed"
	"github.com/toolcrib/cellmon/internal/prefs"
	"github.com/toolcrib/cellmon/internal/state"
)

const gridColumns = 4

// Options configures the console.
type Options struct {
	Store       *state.Store
	Gate        *feed.Gate
	RefreshTick time.Duration
	ThemeName   string
	PrefsPath   string
}

// Model is the root Bubble Tea state.
type Model struct {
	store       *state.Store
	gate        *feed.Gate
	refreshTick time.Duration
	prefsPath   string

	keys  keyMap
	help  help.Model
	theme Theme

	width  int
	height int

	view   state.View
	pushLC feed.Lifecycle
	pollLC feed.Lifecycle
}

type tickMsg time.Time

// NewModel builds the console model. The gate starts inactive; the operator
// unlocks it from the keyboard.
func NewModel(opts Options) Model {
	tick := opts.RefreshTick
	if tick <= 0 {
		tick = 250 * time.Millisecond
	}
	return Model{
		store:       opts.Store,
		gate:        opts.Gate,
		refreshTick: tick,
		prefsPath:   opts.PrefsPath,
		keys:        defaultKeyMap(),
		help:        help.New(),
		theme:       ThemeByName(opts.ThemeName),
		view:        opts.Store.Current(),
		pushLC:      feed.LifecycleIdle,
		pollLC:      feed.LifecycleIdle,
	}
}

// Run starts the console and blocks until the operator quits.
func Run(opts Options) error {
	program := tea.NewProgram(NewModel(opts), tea.WithAltScreen())
	_, err := program.Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return m.scheduleTick()
}

func (m Model) scheduleTick() tea.Cmd {
	return tea.Tick(m.refreshTick, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tickMsg:
		m.view = m.store.Current()
		m.pushLC, m.pollLC = m.gate.Lifecycles()
		return m, m.scheduleTick()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.gate.SetActive(false)
			return m, tea.Quit
		case key.Matches(msg, m.keys.ToggleLock):
			m.gate.SetActive(!m.gate.Active())
			m.view = m.store.Current()
			m.pushLC, m.pollLC = m.gate.Lifecycles()
			return m, nil
		case key.Matches(msg, m.keys.CycleTheme):
			m.theme = NextTheme(m.theme.Name)
			_ = prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name})
			return m, nil
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}
	}
	return m, nil
}

func (m Model) View() string {
	var body string
	if m.gate.Active() {
		body = m.renderGrid()
	} else {
		body = m.renderLocked()
	}

	header := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.theme.Accent)).
		Bold(true).
		Render("cellmon · tool crib")

	sections := []string{header, body, m.renderStatus(), m.help.View(m.keys)}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderLocked() string {
	style := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.theme.Muted)).
		Padding(1, 2)
	return style.Render("Console locked. Press u to unlock and start monitoring.")
}

func (m Model) renderGrid() string {
	tile := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.Border)).
		Padding(0, 1).
		Width(14)

	ids := cell.KnownIDs()
	rows := make([]string, 0, (len(ids)+gridColumns-1)/gridColumns)
	for start := 0; start < len(ids); start += gridColumns {
		end := start + gridColumns
		if end > len(ids) {
			end = len(ids)
		}
		tiles := make([]string, 0, end-start)
		for _, id := range ids[start:end] {
			tiles = append(tiles, tile.Render(m.renderTile(id)))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, tiles...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m Model) renderTile(id cell.ID) string {
	status := m.view.Cells[id]

	name := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.theme.Text)).
		Render(string(id))
	door := lipgloss.NewStyle().
		Foreground(m.theme.DoorColor(status.Door)).
		Bold(status.Door == cell.DoorOpen).
		Render(doorLabel(status.Door))
	cycle := lipgloss.NewStyle().
		Foreground(m.theme.CycleColor(status.Cycle)).
		Render(cycleLabel(status.Cycle))

	return lipgloss.JoinVertical(lipgloss.Left, name, door, cycle)
}

func (m Model) renderStatus() string {
	muted := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Muted))

	if !m.gate.Active() {
		return muted.Render("channels: stopped")
	}

	line := fmt.Sprintf("push %s %s   poll %s %s",
		channelGlyph(m.pushLC), m.pushLC,
		channelGlyph(m.pollLC), m.pollLC)
	if m.view.HasDiagnostic {
		line += "   last event: " + m.view.Diagnostic
	}
	if !m.view.LastUpdated.IsZero() {
		line += "   updated " + m.view.LastUpdated.Format("15:04:05")
	}
	return muted.Render(line)
}
