package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// setStatusMessage updates the status bar message and schedules clearing it
// after the given duration. An older pending clear is cancelled first so it
// cannot wipe the newer message early.
func (m *model) setStatusMessage(message string, msgType MessageType, clearAfter time.Duration) tea.Cmd {
	m.statusBarMessage = message
	m.statusBarMessageType = msgType

	if m.statusBarClearCancel != nil {
		close(m.statusBarClearCancel)
	}

	m.statusBarClearCancel = make(chan struct{})
	captured := m.statusBarClearCancel

	return tea.Tick(clearAfter, func(t time.Time) tea.Msg {
		select {
		case <-captured:
			return nil
		default:
			return clearStatusBarMsg{}
		}
	})
}

// textInputFocused reports whether a text input currently owns the keyboard,
// in which case printable shortcuts like "q" must reach the input instead of
// acting globally.
func (m *model) textInputFocused() bool {
	if m.filterInput.Focused() {
		return true
	}
	return m.currentAppMode == ModeInstallForm
}

// shutdown releases channel-based resources so in-flight reader commands
// terminate instead of blocking forever.
func (m *model) shutdown() {
	if m.cacheSub != nil {
		m.svc.Unsubscribe(m.cacheSub)
		m.cacheSub = nil
	}
	if m.statusBarClearCancel != nil {
		close(m.statusBarClearCancel)
		m.statusBarClearCancel = nil
	}
}

// Update is the heart of the Bubbletea program – handling all incoming messages.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	// --- Global quit shortcuts ------------------------------------------------
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "ctrl+c":
			m.currentAppMode = ModeQuitting
			m.quittingMessage = "Shutting down..."
			m.shutdown()
			return m, tea.Quit
		case "q":
			if !m.textInputFocused() {
				m.currentAppMode = ModeQuitting
				m.quittingMessage = "Shutting down..."
				m.shutdown()
				return m, tea.Quit
			}
		}
	}

	// --- Mode specific handling ------------------------------------------------
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m, cmd = handleKeyMsg(m, msg)
		cmds = append(cmds, cmd)

	case tea.WindowSizeMsg:
		// Skip layout recalculations when the dimensions haven't changed.
		if msg.Width == m.width && msg.Height == m.height {
			return m, nil
		}
		m, cmd = handleWindowSizeMsg(m, msg)
		cmds = append(cmds, cmd)

	case spinner.TickMsg:
		// Only keep the spinner ticking while something is actually loading.
		if m.isLoading || m.detail.loading || m.form.phase == formSubmitting {
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}

	case clearStatusBarMsg:
		m.statusBarMessage = ""
		m.statusBarMessageType = StatusBarInfo

	// Remaining message types are delegated to specialised handlers in other files.
	case providersLoadedMsg:
		m, cmd = handleProvidersLoaded(m, msg)
		cmds = append(cmds, cmd)
	case toolProvidersLoadedMsg:
		m, cmd = handleToolProvidersLoaded(m, msg)
		cmds = append(cmds, cmd)
	case detailLoadedMsg:
		m, cmd = handleDetailLoaded(m, msg)
		cmds = append(cmds, cmd)
	case installCompletedMsg:
		m, cmd = handleInstallCompleted(m, msg)
		cmds = append(cmds, cmd)
	case deleteCompletedMsg:
		m, cmd = handleDeleteCompleted(m, msg)
		cmds = append(cmds, cmd)
	case clipboardCopiedMsg:
		m, cmd = handleClipboardCopied(m, msg)
		cmds = append(cmds, cmd)

	case cacheEventMsg:
		m, cmd = handleCacheEvent(m, msg)
		cmds = append(cmds, cmd)
	case cacheSubscriptionClosedMsg:
		// Subscription gone; stop the listener loop.

	case logEntryMsg:
		m, cmd = handleLogEntry(m, msg)
		cmds = append(cmds, cmd)
	case logChannelClosedMsg:
		// Logging channel gone; stop the reader loop.
	}

	return m, tea.Batch(cmds...)
}
