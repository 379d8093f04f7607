package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"toolctl/internal/catalog"
	"toolctl/pkg/logging"
)

// NewProgram creates the Bubble Tea program for the workspace console. The
// caller owns the catalog service and the logging channel; both outlive the
// program so a clean quit never races pending commands.
func NewProgram(svc *catalog.Service, logChan <-chan logging.LogEntry) *tea.Program {
	m := InitialModel(svc, logChan)
	return tea.NewProgram(m, tea.WithAltScreen())
}
