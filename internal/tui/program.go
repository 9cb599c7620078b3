package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/muurk/pokedex/internal/browser"
	"github.com/muurk/pokedex/internal/logging"
)

// Run starts the interactive browser against api and blocks until the
// user quits.
func Run(api browser.Catalog, opts browser.Options) error {
	view := NewProgramView()
	b := browser.New(api, view, opts)
	defer b.Close()

	p := tea.NewProgram(NewModel(b), tea.WithAltScreen(), tea.WithMouseCellMotion())
	view.Attach(p)

	logging.Debug("starting interactive browser")
	_, err := p.Run()
	return err
}
