package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/astralforge/starcalc/internal/config"
	"github.com/astralforge/starcalc/internal/storage"
)

// Run starts the dashboard as a local terminal program.
// The store may be nil to run without snapshot support.
func Run(profile config.Profile, profileName string, store *storage.Store) error {
	model := NewDashboardModel(profile, profileName, store)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
