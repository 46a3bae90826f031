package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/astralforge/starcalc/internal/storage"
)

const maxHistoryRows = 100

// HistoryKeyMap defines the key bindings for the snapshot history screen.
type HistoryKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k HistoryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k HistoryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Quit}}
}

// DefaultHistoryKeyMap returns default key bindings.
func DefaultHistoryKeyMap() HistoryKeyMap {
	return HistoryKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// HistoryModel is the Bubble Tea model for browsing saved snapshots of a
// profile.
type HistoryModel struct {
	profile  string
	best     float64
	table    table.Model
	help     help.Model
	keys     HistoryKeyMap
	empty    bool
	width    int
	quitting bool
}

// NewHistoryModel creates a history browser over the stored snapshots.
func NewHistoryModel(store *storage.Store, profile string) (HistoryModel, error) {
	snaps, err := store.RecentSnapshots(profile, maxHistoryRows)
	if err != nil {
		return HistoryModel{}, fmt.Errorf("tui: cannot load snapshots: %w", err)
	}
	best, err := store.BestTotal(profile)
	if err != nil {
		return HistoryModel{}, fmt.Errorf("tui: cannot load best total: %w", err)
	}

	columns := []table.Column{
		{Title: "When", Width: 18},
		{Title: "Category", Width: 12},
		{Title: "Per Hour", Width: 12},
	}
	rows := make([]table.Row, len(snaps))
	for i, s := range snaps {
		rows[i] = table.Row{
			s.CreatedAt.Format("Jan 02 15:04"),
			s.Category,
			formatRate(s.Hourly),
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(15),
	)
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	h := help.New()

	return HistoryModel{
		profile: profile,
		best:    best,
		table:   t,
		help:    h,
		keys:    DefaultHistoryKeyMap(),
		empty:   len(snaps) == 0,
		width:   80,
	}, nil
}

// Init initializes the history model.
func (m HistoryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the history screen.
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the history screen.
func (m HistoryModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("SNAPSHOTS - %s", m.profile)))
	b.WriteString("\n\n")

	if m.empty {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		b.WriteString(emptyStyle.Render("No snapshots recorded yet.\nSave one from the dashboard with 's'."))
	} else {
		tableStyle := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
		b.WriteString(tableStyle.Render(m.table.View()))
		b.WriteString("\n")
		b.WriteString(grandTotalStyle.Render(fmt.Sprintf("best total: %s/h", formatRate(m.best))))
	}

	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// RunHistory runs the snapshot history screen.
func RunHistory(store *storage.Store, profile string) error {
	model, err := NewHistoryModel(store, profile)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
