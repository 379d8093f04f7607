package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"toolctl/internal/cache"
	"toolctl/internal/catalog"
	"toolctl/pkg/logging"
)

// InitialModel constructs the initial model with sensible defaults. The
// logging channel may be nil, in which case structured log entries are not
// mirrored into the activity log.
func InitialModel(svc *catalog.Service, logChan <-chan logging.LogEntry) model {
	filter := textinput.New()
	filter.Placeholder = "filter by name or identifier"
	filter.Prompt = "/ "
	filter.CharLimit = 128
	filter.Width = 40

	// Spinner setup.
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	m := model{
		svc:            svc,
		activityLog:    make([]string, 0),
		currentAppMode: ModeInitializing,
		filterInput:    filter,
		form:           newInstallForm(),
		detailViewport: viewport.New(0, 0),
		logViewport:    viewport.New(0, 0),
		spinner:        s,
		isLoading:      true,
		logChan:        logChan,
		keys:           DefaultKeyMap(),
		help:           help.New(),
	}
	m.help.ShowAll = true

	// A zero key subscribes to every store event, so an invalidation from
	// any path (form submit, delete, refresh key, CLI sharing the store)
	// funnels into the same refetch logic.
	m.cacheSub = svc.Subscribe(cache.Key{})

	return m
}

// Init implements tea.Model and starts asynchronous bootstrap tasks.
func (m model) Init() tea.Cmd {
	var cmds []tea.Cmd

	cmds = append(cmds, loadProvidersCmd(m.svc, false))
	cmds = append(cmds, loadToolSummaryCmd(m.svc, false))

	// Listen for async events.
	if m.cacheSub != nil {
		cmds = append(cmds, waitForCacheEventCmd(m.cacheSub))
	}
	if m.logChan != nil {
		cmds = append(cmds, listenForLogsCmd(m.logChan))
	}

	// Spinner.
	cmds = append(cmds, m.spinner.Tick)

	return tea.Batch(cmds...)
}
