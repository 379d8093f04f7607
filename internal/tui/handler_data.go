package tui

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"toolctl/internal/cache"
	"toolctl/internal/workspace"
)

// handleProvidersLoaded stores the fetched skill provider list and re-applies
// a pending selection left behind by a fresh install.
func handleProvidersLoaded(m model, msg providersLoadedMsg) (model, tea.Cmd) {
	m.isLoading = false
	if m.currentAppMode == ModeInitializing {
		m.currentAppMode = ModeBrowse
	}

	if msg.err != nil {
		m.providersErr = msg.err
		m.LogError("Loading skill providers failed: %v", msg.err)
		return m, m.setStatusMessage(msg.err.Error(), StatusBarError, statusBarClearAfter)
	}

	m.providersErr = nil
	m.providers = msg.providers
	m.LogDebug("Loaded %d skill providers", len(msg.providers))

	if m.pendingSelectID != "" {
		for i, p := range m.filteredProviders() {
			if p.ID == m.pendingSelectID {
				m.selectedIndex = i
				break
			}
		}
		m.pendingSelectID = ""
	}
	m.clampSelection()
	return m, nil
}

// handleToolProvidersLoaded stores the cross-type provider catalog backing
// the summary strip.
func handleToolProvidersLoaded(m model, msg toolProvidersLoadedMsg) (model, tea.Cmd) {
	if msg.err != nil {
		m.LogWarn("Loading tool catalog failed: %v", msg.err)
		return m, m.setStatusMessage(msg.err.Error(), StatusBarError, statusBarClearAfter)
	}
	m.toolProviders = msg.providers
	m.LogDebug("Loaded %d tool providers", len(msg.providers))
	return m, nil
}

// handleDetailLoaded fills the detail drawer. A result for a drawer that has
// since moved to another provider is dropped. An unknown id closes the
// drawer silently; the collection simply has nothing to show.
func handleDetailLoaded(m model, msg detailLoadedMsg) (model, tea.Cmd) {
	if m.currentAppMode != ModeDetail || m.detail.providerID != msg.providerID {
		return m, nil
	}

	m.detail.loading = false
	if msg.err != nil {
		m.detail = detailState{}
		m.currentAppMode = ModeBrowse
		if errors.Is(msg.err, workspace.ErrNotFound) {
			m.LogDebug("Provider %s has no detail", msg.providerID)
			return m, nil
		}
		m.LogError("Loading provider detail failed: %v", msg.err)
		return m, m.setStatusMessage(msg.err.Error(), StatusBarError, statusBarClearAfter)
	}

	m.detail.detail = msg.detail
	m.detailViewport.SetContent(renderDetailContent(msg.detail, m.detailViewport.Width))
	m.detailViewport.GotoTop()
	return m, nil
}

// handleDeleteCompleted finishes a provider delete. Clearing the selection
// is this handler's job; the list itself never drops a selection on its own.
func handleDeleteCompleted(m model, msg deleteCompletedMsg) (model, tea.Cmd) {
	if msg.err != nil {
		m.LogError("Delete of %s failed: %v", msg.name, msg.err)
		return m, m.setStatusMessage(msg.err.Error(), StatusBarError, statusBarClearAfter)
	}

	m.selectedIndex = 0
	if m.detail.providerID == msg.providerID {
		m.detail = detailState{}
	}
	m.svc.InvalidateSkillProviders()
	m.LogInfo("Deleted skill provider %s", msg.name)
	return m, m.setStatusMessage(
		fmt.Sprintf("Deleted %s", msg.name),
		StatusBarSuccess,
		statusBarClearAfter,
	)
}

// handleClipboardCopied reports the outcome of a clipboard write.
func handleClipboardCopied(m model, msg clipboardCopiedMsg) (model, tea.Cmd) {
	if msg.err != nil {
		m.LogError("Clipboard copy failed: %v", msg.err)
		return m, m.setStatusMessage("Copy failed: "+msg.err.Error(), StatusBarError, statusBarClearAfter)
	}
	m.LogDebug("Copied %q to clipboard", msg.value)
	return m, m.setStatusMessage("Copied to clipboard", StatusBarSuccess, statusBarClearAfter)
}

// handleCacheEvent reacts to store notifications. Every mutation path in the
// application converges here: whoever invalidates a collection key causes
// exactly one refetch of that collection.
func handleCacheEvent(m model, msg cacheEventMsg) (model, tea.Cmd) {
	if m.cacheSub == nil {
		return m, nil
	}
	cmds := []tea.Cmd{waitForCacheEventCmd(m.cacheSub)}

	if msg.event.Kind == cache.EventInvalidated {
		switch msg.event.Key {
		case cache.KeySkillProviders:
			m.isLoading = true
			cmds = append(cmds, loadProvidersCmd(m.svc, false), m.spinner.Tick)
		case cache.KeyToolProviders:
			cmds = append(cmds, loadToolSummaryCmd(m.svc, false))
		}
	}
	return m, tea.Batch(cmds...)
}

// handleLogEntry appends a structured log entry to the activity log and
// keeps the overlay viewport in sync when it is open.
func handleLogEntry(m model, msg logEntryMsg) (model, tea.Cmd) {
	if m.logChan == nil {
		return m, nil
	}
	m.appendLogLine(formatLogEntry(msg.entry))
	if m.currentAppMode == ModeLog {
		m.logViewport.SetContent(prepareLogContent(m.activityLog, m.logViewport.Width))
		m.logViewport.GotoBottom()
	}
	return m, listenForLogsCmd(m.logChan)
}
