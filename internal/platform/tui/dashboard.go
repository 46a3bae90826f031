// Package tui provides the Bubble Tea dashboard for the income calculator:
// a profile editor on the left, live per-hour results on the right.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/astralforge/starcalc/internal/config"
	"github.com/astralforge/starcalc/internal/income"
	"github.com/astralforge/starcalc/internal/storage"
)

// recalcDelay is how long the dashboard waits after the last edit before
// recomputing the report, so typing never runs the solver per keystroke.
const recalcDelay = 250 * time.Millisecond

// recalcMsg asks the dashboard to recompute. Stale messages (an older
// revision than the latest edit) are dropped.
type recalcMsg struct {
	revision int
}

// DashboardModel is the Bubble Tea model for the calculator dashboard.
type DashboardModel struct {
	profile     config.Profile
	profileName string
	store       *storage.Store

	fields  []field
	cursor  int
	offset  int // first visible field row
	editing bool
	input   textinput.Model

	report   income.Report
	calcErr  error
	revision int

	keys     DashboardKeyMap
	help     help.Model
	status   string
	width    int
	height   int
	quitting bool
}

// NewDashboardModel creates a dashboard for the given profile. The store
// may be nil; snapshots are then disabled.
func NewDashboardModel(profile config.Profile, profileName string, store *storage.Store) DashboardModel {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = 24
	ti.Width = 16

	h := help.New()
	h.ShowAll = false

	m := DashboardModel{
		profile:     profile,
		profileName: profileName,
		store:       store,
		fields:      buildFields(),
		input:       ti,
		keys:        DefaultDashboardKeyMap(),
		help:        h,
		width:       100,
		height:      30,
	}
	m.recompute()
	return m
}

// recompute runs the calculation for the current profile state.
func (m *DashboardModel) recompute() {
	m.report, m.calcErr = income.Calculate(m.profile)
}

// scheduleRecalc bumps the revision and returns the debounced recalc command.
func (m *DashboardModel) scheduleRecalc() tea.Cmd {
	m.revision++
	rev := m.revision
	return tea.Tick(recalcDelay, func(time.Time) tea.Msg {
		return recalcMsg{revision: rev}
	})
}

// Init initializes the dashboard.
func (m DashboardModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the dashboard.
func (m DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case recalcMsg:
		if msg.revision == m.revision {
			m.recompute()
		}
		return m, nil

	case tea.KeyMsg:
		if m.editing {
			return m.updateEditing(msg)
		}
		return m.updateBrowsing(msg)
	}

	return m, nil
}

// updateBrowsing handles keys while navigating the field list.
func (m DashboardModel) updateBrowsing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.fields)-1 {
			m.cursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.Edit):
		f := m.fields[m.cursor]
		if f.kind == fieldFloat {
			m.editing = true
			m.input.SetValue(f.get(&m.profile))
			m.input.CursorEnd()
			m.input.Focus()
			return m, nil
		}
		f.toggle(&m.profile)
		m.status = ""
		return m, m.scheduleRecalc()

	case key.Matches(msg, m.keys.Snapshot):
		m.saveSnapshot()
		return m, nil

	case key.Matches(msg, m.keys.Reset):
		m.profile = config.DefaultProfile()
		m.status = "profile reset to defaults"
		return m, m.scheduleRecalc()

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	return m, nil
}

// updateEditing handles keys while a numeric field is being edited.
func (m DashboardModel) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Apply):
		f := m.fields[m.cursor]
		if err := f.set(&m.profile, strings.TrimSpace(m.input.Value())); err != nil {
			m.status = err.Error()
			return m, nil
		}
		m.editing = false
		m.input.Blur()
		m.status = ""
		return m, m.scheduleRecalc()

	case key.Matches(msg, m.keys.Cancel):
		m.editing = false
		m.input.Blur()
		m.status = ""
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// saveSnapshot records the current grand total and per-category totals.
func (m *DashboardModel) saveSnapshot() {
	if m.store == nil {
		m.status = "no database; snapshots disabled"
		return
	}
	if m.calcErr != nil {
		m.status = "cannot snapshot an invalid profile"
		return
	}

	for _, c := range m.report.Categories {
		if c.Err != nil {
			continue
		}
		if _, err := m.store.SaveSnapshot(m.profileName, c.ID, c.Breakdown.Total); err != nil {
			m.status = fmt.Sprintf("snapshot failed: %v", err)
			return
		}
	}
	if _, err := m.store.SaveSnapshot(m.profileName, "total", m.report.GrandTotal); err != nil {
		m.status = fmt.Sprintf("snapshot failed: %v", err)
		return
	}
	m.status = fmt.Sprintf("snapshot saved (%s/h total)", formatRate(m.report.GrandTotal))
}

// View renders the dashboard.
func (m DashboardModel) View() string {
	if m.quitting {
		return ""
	}

	title := titleStyle.Render(fmt.Sprintf("STARFALL INCOME - %s", m.profileName))

	editorHeight := m.height - 6 // title, status, help
	if editorHeight < 5 {
		editorHeight = 5
	}
	editor := m.renderEditor(editorHeight)
	results := m.renderResults(editorHeight)
	body := lipgloss.JoinHorizontal(lipgloss.Top, editor, "  ", results)

	status := m.status
	if m.calcErr != nil {
		status = statusErrStyle.Render(m.calcErr.Error())
	} else if status == "" {
		status = statusOKStyle.Render(fmt.Sprintf("grand total: %s/h", formatRate(m.report.GrandTotal)))
	}

	return fmt.Sprintf("%s\n\n%s\n\n%s\n%s", title, body, status, m.help.View(m.keys))
}

// renderEditor renders the scrolling field list.
func (m DashboardModel) renderEditor(height int) string {
	// Build one display row per field, with a header row whenever the
	// section changes.
	type row struct {
		text     string
		fieldIdx int // -1 for section headers
	}
	var rows []row
	lastSection := ""
	cursorRow := 0
	for i, f := range m.fields {
		if f.section != lastSection {
			lastSection = f.section
			rows = append(rows, row{text: sectionStyle.Render(f.section), fieldIdx: -1})
		}

		value := f.get(&m.profile)
		if m.editing && i == m.cursor {
			value = m.input.View()
		}
		line := fmt.Sprintf("%-22s %s", f.label, value)
		if i == m.cursor {
			line = cursorStyle.Render("> " + line)
			cursorRow = len(rows)
		} else {
			line = "  " + line
		}
		rows = append(rows, row{text: line, fieldIdx: i})
	}

	// Keep the cursor row inside the visible window.
	offset := m.offset
	if cursorRow < offset {
		offset = cursorRow
	}
	if cursorRow >= offset+height {
		offset = cursorRow - height + 1
	}

	var b strings.Builder
	end := offset + height
	if end > len(rows) {
		end = len(rows)
	}
	for _, r := range rows[offset:end] {
		b.WriteString(r.text)
		b.WriteString("\n")
	}

	return editorStyle.Render(strings.TrimRight(b.String(), "\n"))
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	cursorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("229"))

	editorStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1).
			Width(44)

	statusOKStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("35"))

	statusErrStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))
)
